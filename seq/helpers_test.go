package seq

import (
	"bytes"
	"testing"

	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/logger"
	"github.com/kbukum/gomonad/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracked is a slice source that counts how often it is pulled.
type tracked[T any] struct {
	items []T
	pulls int
}

func track[T any](xs ...T) *tracked[T] {
	return &tracked[T]{items: xs}
}

func (t *tracked[T]) Next() option.Option[T] {
	t.pulls++
	if len(t.items) == 0 {
		return option.None[T]()
	}
	v := t.items[0]
	t.items = t.items[1:]
	return option.Some(v)
}

// oscillating yields Some(call index) on even calls and None on odd calls.
type oscillating struct {
	calls int
}

func (o *oscillating) Next() option.Option[int] {
	c := o.calls
	o.calls++
	if c%2 == 0 {
		return option.Some(c)
	}
	return option.None[int]()
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// requireAppErrorPanic asserts that fn panics with an *errors.AppError of the given code.
func requireAppErrorPanic(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, code), "got %v, want code %s", err, code)
	}()
	fn()
}

// captureSeqLog routes the seq component logger to a buffer for the test.
func captureSeqLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Register(component, logger.NewWithWriter(&logger.Config{Level: "debug", Format: logger.FormatJSON}, "test", &buf))
	t.Cleanup(func() { logger.Unregister(component) })
	return &buf
}
