package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstore/pkg/observe"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("returns initial value", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue("en")
		require.Equal(t, "en", v.Get())
	})

	t.Run("set updates current value", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue(1)
		v.Set(2)
		require.Equal(t, 2, v.Get())
	})

	t.Run("subscriber receives current value immediately", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue("initial")

		var got []string
		v.Subscribe(func(s string) { got = append(got, s) })

		require.Equal(t, []string{"initial"}, got)
	})

	t.Run("subscriber receives every subsequent write", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue("a")

		var got []string
		v.Subscribe(func(s string) { got = append(got, s) })

		v.Set("b")
		v.Set("c")

		require.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("duplicate writes are still delivered", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue("x")

		calls := 0
		v.Subscribe(func(string) { calls++ })

		v.Set("x")
		v.Set("x")

		require.Equal(t, 3, calls)
	})

	t.Run("subscribers are notified in subscription order", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue(0)

		var order []string
		v.Subscribe(func(n int) {
			if n > 0 {
				order = append(order, "first")
			}
		})
		v.Subscribe(func(n int) {
			if n > 0 {
				order = append(order, "second")
			}
		})

		v.Set(1)

		require.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("notification is synchronous", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue("old")

		seen := ""
		v.Subscribe(func(s string) { seen = s })

		v.Set("new")
		assert.Equal(t, "new", seen, "subscriber must run before Set returns")
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue(0)

		calls := 0
		unsubscribe := v.Subscribe(func(int) { calls++ })
		require.Equal(t, 1, calls)

		unsubscribe()
		v.Set(1)
		require.Equal(t, 1, calls)

		// Second call is a no-op.
		unsubscribe()
	})

	t.Run("unsubscribe removes only its own subscription", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue(0)

		var a, b int
		unsubA := v.Subscribe(func(int) { a++ })
		v.Subscribe(func(int) { b++ })

		unsubA()
		v.Set(1)

		require.Equal(t, 1, a)
		require.Equal(t, 2, b)
	})

	t.Run("subscriber may write the same value reentrantly", func(t *testing.T) {
		t.Parallel()
		v := observe.NewValue(0)

		var got []int
		v.Subscribe(func(n int) {
			got = append(got, n)
			if n == 1 {
				v.Set(2)
			}
		})

		v.Set(1)

		require.Equal(t, []int{0, 1, 2}, got)
		require.Equal(t, 2, v.Get())
	})
}
