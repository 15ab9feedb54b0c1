package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens/lists"
	"lens/seqs"
	"lens/views"
)

func TestValues(t *testing.T) {
	v, err := views.NewSeq(views.SliceOf(digits()), views.All().By(2))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(views.Values[int](v)))
	assert.Equal(t, 5, seqs.Count(views.Values[int](v)))

	t.Run("EarlyStop", func(t *testing.T) {
		got := slices.Collect(seqs.Take(views.Values[int](v), 2))
		assert.Equal(t, []int{0, 2}, got)
	})

	t.Run("Pipelines", func(t *testing.T) {
		doubled := seqs.Map(views.Values[int](v), func(x int) int { return x * 2 })
		small := seqs.Filter(doubled, func(x int) bool { return x < 10 })
		assert.Equal(t, 12, seqs.Reduce(small, 0, func(a, b int) int { return a + b }))
	})
}

func TestTryValues(t *testing.T) {
	l := lists.NewArrayListOf(0, 1, 2, 3)
	v, err := views.NewSeq[int](l, views.All())
	require.NoError(t, err)

	var got []int
	var gotErr error
	for e, err := range views.TryValues[int](v) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, e)
		if len(got) == 2 {
			l.Add(4) // goes stale mid-iteration
		}
	}
	assert.Equal(t, []int{0, 1}, got)
	assert.ErrorIs(t, gotErr, views.ErrLengthChanged)
}

func TestCollect(t *testing.T) {
	v, err := views.ChainOf([]int{1, 2}, []int{3})
	require.NoError(t, err)

	got, err := views.Collect[any](v)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	t.Run("StaleFails", func(t *testing.T) {
		l := lists.NewArrayListOf(1, 2)
		v, err := views.NewSeq[int](l, views.All())
		require.NoError(t, err)
		l.Truncate(1)
		_, err = views.Collect[int](v)
		assert.ErrorIs(t, err, views.ErrLengthChanged)
	})
}
