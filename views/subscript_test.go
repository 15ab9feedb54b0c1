package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens/views"
)

type ordinal int

func (o ordinal) Index() int { return int(o) }

func TestSubscript(t *testing.T) {
	v, err := views.ChainOf([]int{10, 20, 30, 40})
	require.NoError(t, err)

	t.Run("IntegerKinds", func(t *testing.T) {
		for _, sub := range []any{1, int8(1), int16(1), int32(1), int64(1),
			uint(1), uint8(1), uint16(1), uint32(1), uint64(1)} {
			got, err := views.Subscript[any](v, sub)
			require.NoError(t, err, "%T", sub)
			assert.Equal(t, 20, got, "%T", sub)
		}
	})

	t.Run("NegativeInt", func(t *testing.T) {
		got, err := views.Subscript[any](v, -1)
		require.NoError(t, err)
		assert.Equal(t, 40, got)
	})

	t.Run("Indexer", func(t *testing.T) {
		got, err := views.Subscript[any](v, ordinal(2))
		require.NoError(t, err)
		assert.Equal(t, 30, got)
	})

	t.Run("Bounds", func(t *testing.T) {
		got, err := views.Subscript[any](v, views.All().By(-1))
		require.NoError(t, err)
		sub, ok := got.(views.View[any])
		require.True(t, ok, "slicing yields a view, got %T", got)
		assert.Equal(t, []any{40, 30, 20, 10}, collect[any](t, sub))
	})

	t.Run("MultiIndex", func(t *testing.T) {
		_, err := views.Subscript[any](v, 1, 2)
		assert.ErrorIs(t, err, views.ErrMultiIndex)

		_, err = views.Subscript[any](v)
		assert.ErrorIs(t, err, views.ErrMultiIndex)
	})

	t.Run("BadSubscript", func(t *testing.T) {
		_, err := views.Subscript[any](v, "one")
		require.ErrorIs(t, err, views.ErrBadSubscript)
		assert.Contains(t, err.Error(), "'string'")

		_, err = views.Subscript[any](v, 1.5)
		assert.ErrorIs(t, err, views.ErrBadSubscript)
	})
}
