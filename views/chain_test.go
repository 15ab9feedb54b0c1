package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens/lists"
	"lens/views"
)

func TestNewChain(t *testing.T) {
	t.Run("SumsLengths", func(t *testing.T) {
		c, err := views.NewChain(
			views.SliceOf([]int{0, 1}),
			views.SliceOf([]int{2, 3, 4}),
		)
		require.NoError(t, err)
		assert.Equal(t, 5, c.Len())
		assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(t, c))
	})

	t.Run("Empty", func(t *testing.T) {
		c, err := views.NewChain[any]()
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())

		_, err = c.Get(0)
		assert.ErrorIs(t, err, views.ErrIndexOutOfRange)
	})

	t.Run("NilPart", func(t *testing.T) {
		_, err := views.NewChain(views.SliceOf([]int{1}), nil)
		assert.ErrorIs(t, err, views.ErrNotSequence)
	})

	t.Run("EmptyParts", func(t *testing.T) {
		c, err := views.NewChain(
			views.SliceOf([]int{}),
			views.SliceOf([]int{7}),
			views.SliceOf([]int{}),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
		got, err := c.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})
}

func TestChainOf(t *testing.T) {
	t.Run("MixedParts", func(t *testing.T) {
		c, err := views.ChainOf([]int{0, 1, 2}, "abc")
		require.NoError(t, err)
		require.Equal(t, 6, c.Len())

		got, err := c.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 'a', got)

		got, err = c.Get(-1)
		require.NoError(t, err)
		assert.Equal(t, 'c', got)

		got, err = c.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("NotASequence", func(t *testing.T) {
		_, err := views.ChainOf([]int{1, 2}, 42)
		require.ErrorIs(t, err, views.ErrNotSequence)
		assert.Contains(t, err.Error(), "'int'")
	})

	t.Run("TypedParts", func(t *testing.T) {
		c, err := views.ChainOf(views.Ints(0, 3, 1), lists.NewArrayListOf[any]("x", "y"))
		require.NoError(t, err)
		assert.Equal(t, 5, c.Len())
		got, err := c.Get(4)
		require.NoError(t, err)
		assert.Equal(t, "y", got)
	})
}

func TestChain_Get(t *testing.T) {
	c, err := views.NewChain(
		views.SliceOf([]int{0, 1}),
		views.SliceOf([]int{2, 3, 4}),
		views.SliceOf([]int{5}),
	)
	require.NoError(t, err)

	t.Run("Flattening", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			got, err := c.Get(i)
			require.NoError(t, err)
			assert.Equal(t, i, got, "index %d", i)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		got, err := c.Get(-6)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := c.Get(6)
		assert.ErrorIs(t, err, views.ErrIndexOutOfRange)
		_, err = c.Get(-7)
		assert.ErrorIs(t, err, views.ErrIndexOutOfRange)
	})
}

func TestChain_Slice(t *testing.T) {
	c, err := views.NewChain(
		views.SliceOf([]int{0, 1, 2}),
		views.SliceOf([]int{3, 4, 5, 6}),
	)
	require.NoError(t, err)

	t.Run("CrossesParts", func(t *testing.T) {
		v, err := c.Slice(views.Span(1, 6).By(2))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 5}, collect(t, v))
	})

	t.Run("WrapsChain", func(t *testing.T) {
		v, err := c.Slice(views.All())
		require.NoError(t, err)
		// Slicing a chain produces a Seq whose single dependency is the
		// chain itself, keeping re-slicing uniform across view kinds.
		require.Len(t, v.Deps(), 1)
		assert.Equal(t, views.Sequence[int](c), v.Deps()[0])
	})

	t.Run("Reslice", func(t *testing.T) {
		v, err := c.Slice(views.All().By(-1))
		require.NoError(t, err) // 6..0
		sub, err := v.Slice(views.Span(1, 5).By(2))
		require.NoError(t, err)
		assert.Equal(t, []int{5, 3}, collect(t, sub))
	})
}

func TestChain_Staleness(t *testing.T) {
	t.Run("TruncatedPart", func(t *testing.T) {
		first := lists.NewArrayListOf(0, 1)
		second := lists.NewArrayListOf(2, 3, 4)
		c, err := views.NewChain[int](first, second)
		require.NoError(t, err)
		require.Equal(t, 5, c.Len())

		second.Truncate(2)

		// Any index fails, including ones owned by the untouched part.
		_, err = c.Get(0)
		assert.ErrorIs(t, err, views.ErrLengthChanged)
		_, err = c.Get(4)
		assert.ErrorIs(t, err, views.ErrLengthChanged)
	})

	t.Run("GrownEarlierPart", func(t *testing.T) {
		first := lists.NewArrayListOf(0, 1)
		second := lists.NewArrayListOf(2, 3)
		c, err := views.NewChain[int](first, second)
		require.NoError(t, err)

		first.Add(9)
		_, err = c.Get(3)
		assert.ErrorIs(t, err, views.ErrLengthChanged)
	})

	t.Run("ThroughSlice", func(t *testing.T) {
		part := lists.NewArrayListOf(0, 1, 2)
		c, err := views.NewChain[int](part)
		require.NoError(t, err)
		v, err := c.Slice(views.All())
		require.NoError(t, err)

		part.Truncate(2)
		_, err = v.Get(0)
		assert.ErrorIs(t, err, views.ErrLengthChanged)
	})
}

func TestChain_Nesting(t *testing.T) {
	inner, err := views.NewChain(
		views.SliceOf([]int{0, 1}),
		views.SliceOf([]int{2}),
	)
	require.NoError(t, err)

	strided, err := views.NewSeq(views.SliceOf([]int{3, 9, 4, 9, 5}), views.All().By(2))
	require.NoError(t, err)

	outer, err := views.NewChain[int](inner, strided)
	require.NoError(t, err)
	require.Equal(t, 6, outer.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(t, outer))

	v, err := outer.Slice(views.All().By(-1))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, collect(t, v))
}

func TestChain_Deps(t *testing.T) {
	p1 := views.SliceOf([]int{1})
	p2 := views.SliceOf([]int{2})
	c, err := views.NewChain(p1, p2)
	require.NoError(t, err)

	deps := c.Deps()
	require.Len(t, deps, 2)
	assert.Equal(t, p1, deps[0])
	assert.Equal(t, p2, deps[1])
}
