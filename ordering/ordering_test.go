package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ranked struct {
	rank int
	name string
}

func byRank(a, b ranked) Ordering { return Compare(a.rank, b.rank) }

func TestFromIntAndCompare(t *testing.T) {
	assert.Equal(t, Less, FromInt(-5))
	assert.Equal(t, Equal, FromInt(0))
	assert.Equal(t, Greater, FromInt(3))

	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, 1.0))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		o                      Ordering
		eq, ne, lt, gt, le, ge bool
	}{
		{Less, false, true, true, false, true, false},
		{Equal, true, false, false, false, true, true},
		{Greater, false, true, false, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			assert.Equal(t, tt.eq, tt.o.IsEq())
			assert.Equal(t, tt.ne, tt.o.IsNe())
			assert.Equal(t, tt.lt, tt.o.IsLt())
			assert.Equal(t, tt.gt, tt.o.IsGt())
			assert.Equal(t, tt.le, tt.o.IsLe())
			assert.Equal(t, tt.ge, tt.o.IsGe())
		})
	}
}

func TestReverseThen(t *testing.T) {
	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
	assert.Equal(t, Less, Equal.Then(Less))
	assert.Equal(t, Greater, Greater.Then(Less))
}

func TestMaxMinTiesPreferSecond(t *testing.T) {
	a := ranked{1, "a"}
	b := ranked{1, "b"}
	c := ranked{2, "c"}

	assert.Equal(t, b, MaxBy(a, b, byRank))
	assert.Equal(t, b, MinBy(a, b, byRank))
	assert.Equal(t, c, MaxBy(c, a, byRank))
	assert.Equal(t, a, MinBy(c, a, byRank))
	assert.Equal(t, a, MinBy(a, c, byRank))

	assert.Equal(t, 3, Max(3, 1))
	assert.Equal(t, 1, Min(3, 1))
}
