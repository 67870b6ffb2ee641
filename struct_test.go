package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	option "github.com/sagikazarmark/go-option"
)

func TestReplace(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		o := option.Some(1).Replace(2)

		assert.Equal(t, option.Some(2), o)
	})

	// replacing into an absent option is a no-op:
	// the new value is NOT installed
	t.Run("None", func(t *testing.T) {
		o := option.None[int]().Replace(2)

		assert.True(t, o.IsNone())
		assert.NotEqual(t, option.Some(2), o)
	})
}

func TestZip(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		o := option.Zip(option.Some(1), option.Some("hi"))

		expected := option.Some(option.Pair[int, string]{
			First:  1,
			Second: "hi",
		})

		assert.Equal(t, expected, o)
	})

	t.Run("FirstNone", func(t *testing.T) {
		o := option.Zip(option.None[int](), option.Some("hi"))

		assert.True(t, o.IsNone())
	})

	t.Run("SecondNone", func(t *testing.T) {
		o := option.Zip(option.Some(1), option.None[string]())

		assert.True(t, o.IsNone())
	})
}

func TestUnzip(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		a, b := option.Unzip(option.Zip(option.Some(1), option.Some("hi")))

		assert.Equal(t, option.Some(1), a)
		assert.Equal(t, option.Some("hi"), b)
	})

	t.Run("None", func(t *testing.T) {
		a, b := option.Unzip(option.None[option.Pair[int, string]]())

		assert.True(t, a.IsNone())
		assert.True(t, b.IsNone())
	})
}

func TestFlatten(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		o := option.Flatten(option.Some(option.Some(6)))

		assert.Equal(t, option.Some(6), o)
	})

	t.Run("InnerNone", func(t *testing.T) {
		o := option.Flatten(option.Some(option.None[int]()))

		assert.True(t, o.IsNone())
	})

	t.Run("None", func(t *testing.T) {
		o := option.Flatten(option.None[option.Option[int]]())

		assert.True(t, o.IsNone())
	})

	// one level per call, any depth by repeated application
	t.Run("Nested", func(t *testing.T) {
		o := option.Some(option.Some(option.Some(6)))

		once := option.Flatten(o)
		require.Equal(t, option.Some(option.Some(6)), once)

		assert.Equal(t, option.Some(6), option.Flatten(once))
	})
}
