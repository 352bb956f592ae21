package seq

import (
	"github.com/kbukum/gomonad/validation"
)

type countParams struct {
	Count int `validate:"gte=0"`
}

type chunkParams struct {
	ChunkSize int `validate:"gt=0"`
}

type windowParams struct {
	WindowSize int `validate:"gte=1"`
}

type stepParams struct {
	Step int `validate:"gt=0"`
}

func checkCount(n int) {
	if n < 0 {
		validation.MustValidate(countParams{Count: n})
	}
}

func checkChunkSize(n int) {
	validation.MustValidate(chunkParams{ChunkSize: n})
}
