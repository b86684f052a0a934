package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.InDelta(t, 1.5, Sum([]float64{0.5, 1.0}), 1e-9)
	assert.Equal(t, 0, Sum[int](nil))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	min, ok := Min([]int{3, 1, 2})
	require.True(t, ok)
	assert.Equal(t, 1, min)

	max, ok := Max([]string{"ant", "bee", "ape"})
	require.True(t, ok)
	assert.Equal(t, "bee", max)

	_, ok = Min[int](nil)
	assert.False(t, ok)
	_, ok = Max[int](nil)
	assert.False(t, ok)
}

func TestMinByMaxBy(t *testing.T) {
	t.Parallel()

	type job struct {
		name     string
		priority int
	}

	jobs := []job{
		{name: "compact", priority: 3},
		{name: "flush", priority: 1},
		{name: "sync", priority: 1},
		{name: "rotate", priority: 9},
	}

	lowest, ok := MinBy(jobs, func(j job) int { return j.priority })
	require.True(t, ok)
	assert.Equal(t, "flush", lowest.name, "ties keep the earliest value")

	highest, ok := MaxBy(jobs, func(j job) int { return j.priority })
	require.True(t, ok)
	assert.Equal(t, "rotate", highest.name)

	_, ok = MinBy(nil, func(j job) int { return j.priority })
	assert.False(t, ok)
}
