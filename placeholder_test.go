package langstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstore"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("substitutes string and numeric values", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("Hello, {name}! You have {count} messages.",
			langstore.Replacements{"name": "John", "count": 5})
		require.Equal(t, "Hello, John! You have 5 messages.", got)
	})

	t.Run("numeric zero renders as 0", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("Items: {num}", langstore.Replacements{"num": 0})
		require.Equal(t, "Items: 0", got)
	})

	t.Run("unmatched placeholder is preserved verbatim", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("Welcome, {name}!", langstore.Replacements{"wrong": "x"})
		require.Equal(t, "Welcome, {name}!", got)
	})

	t.Run("nil value leaves the token in place", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("Hi {name}", langstore.Replacements{"name": nil})
		require.Equal(t, "Hi {name}", got)
	})

	t.Run("empty replacements map is a no-op", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("Hi {name}", langstore.Replacements{})
		require.Equal(t, "Hi {name}", got)
	})

	t.Run("substituted values are not re-scanned", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("{a}", langstore.Replacements{"a": "{b}", "b": "nope"})
		require.Equal(t, "{b}", got)
	})

	t.Run("same placeholder replaced at every occurrence", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("{x} and {x}", langstore.Replacements{"x": "y"})
		require.Equal(t, "y and y", got)
	})

	t.Run("braces without a name stay untouched", func(t *testing.T) {
		t.Parallel()
		got := langstore.ReplacePlaceholders("empty {} stays", langstore.Replacements{"": "x"})
		require.Equal(t, "empty {} stays", got)
	})
}
