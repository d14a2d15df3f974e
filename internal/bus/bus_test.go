package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	b := New()
	require.NotNil(t, b)
	assert.Empty(t, b.Events())
}

func TestOnEmit_OrderAndArgs(t *testing.T) {
	b := New()
	var got []string

	b.On("ping", func(args ...any) { got = append(got, "a:"+args[0].(string)) })
	b.On("ping", func(args ...any) { got = append(got, "b:"+args[0].(string)) })

	b.Emit("ping", "x")

	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestOn_DuplicatesAreIndependent(t *testing.T) {
	b := New()
	calls := 0
	fn := func(...any) { calls++ }

	first := b.On("e", fn)
	b.On("e", fn)
	require.Equal(t, 2, b.ListenerCount("e"))

	b.Emit("e")
	assert.Equal(t, 2, calls)

	b.Off("e", first)
	b.Emit("e")
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, b.ListenerCount("e"))
}

func TestEmit_NoListenersIsNoop(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() { b.Emit("nobody", 1, 2, 3) })
}

func TestOff(t *testing.T) {
	t.Run("without handles removes the whole event", func(t *testing.T) {
		b := New()
		calls := 0
		b.On("e", func(...any) { calls++ })
		b.On("e", func(...any) { calls++ })
		b.On("other", func(...any) {})

		b.Off("e")
		b.Emit("e")

		assert.Zero(t, calls)
		assert.Zero(t, b.ListenerCount("e"))
		assert.Equal(t, []string{"other"}, b.Events())
	})

	t.Run("unknown event is ignored", func(t *testing.T) {
		b := New()
		assert.NotPanics(t, func() {
			b.Off("missing")
			b.Off("missing", Subscription(42))
		})
	})

	t.Run("unknown handle leaves listeners intact", func(t *testing.T) {
		b := New()
		sub := b.On("e", func(...any) {})
		b.Off("e", sub+100)
		assert.True(t, b.Has("e", sub))
	})
}

func TestEmit_IteratesSnapshot(t *testing.T) {
	t.Run("listener unsubscribing a later listener does not stop its delivery", func(t *testing.T) {
		b := New()
		var order []string
		var second Subscription

		b.On("e", func(...any) {
			order = append(order, "first")
			b.Off("e", second)
		})
		second = b.On("e", func(...any) { order = append(order, "second") })

		b.Emit("e")
		assert.Equal(t, []string{"first", "second"}, order)

		order = nil
		b.Emit("e")
		assert.Equal(t, []string{"first"}, order)
	})

	t.Run("listener added during emission is not called for that emission", func(t *testing.T) {
		b := New()
		late := 0
		b.On("e", func(...any) {
			b.On("e", func(...any) { late++ })
		})

		b.Emit("e")
		assert.Zero(t, late)

		b.Emit("e")
		assert.Equal(t, 1, late)
	})
}

func TestEmit_Reentrant(t *testing.T) {
	b := New()
	var trace []string

	b.On("outer", func(...any) {
		trace = append(trace, "outer:start")
		b.Emit("inner")
		trace = append(trace, "outer:end")
	})
	b.On("inner", func(...any) { trace = append(trace, "inner") })

	b.Emit("outer")

	assert.Equal(t, []string{"outer:start", "inner", "outer:end"}, trace)
}

func TestOnce(t *testing.T) {
	t.Run("delivers exactly once", func(t *testing.T) {
		b := New()
		calls := 0
		b.Once("e", func(args ...any) {
			calls++
			assert.Equal(t, []any{"payload"}, args)
		})

		b.Emit("e", "payload")
		b.Emit("e", "payload")

		assert.Equal(t, 1, calls)
		assert.Zero(t, b.ListenerCount("e"))
	})

	t.Run("nested emit of the same event does not deliver twice", func(t *testing.T) {
		b := New()
		calls := 0
		b.Once("e", func(...any) {
			calls++
			b.Emit("e")
		})

		b.Emit("e")
		assert.Equal(t, 1, calls)
	})

	t.Run("can be removed before firing", func(t *testing.T) {
		b := New()
		calls := 0
		sub := b.Once("e", func(...any) { calls++ })
		b.Off("e", sub)
		b.Emit("e")
		assert.Zero(t, calls)
	})
}

func TestEmit_DeliversToAllCurrentSubscribers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := New()
		n := rapid.IntRange(0, 20).Draw(rt, "listeners")
		removed := map[int]bool{}

		var got []int
		subs := make([]Subscription, n)
		for i := 0; i < n; i++ {
			i := i
			subs[i] = b.On("e", func(...any) { got = append(got, i) })
		}
		for i := 0; i < n; i++ {
			if rapid.Bool().Draw(rt, "remove") {
				b.Off("e", subs[i])
				removed[i] = true
			}
		}

		b.Emit("e")

		var want []int
		for i := 0; i < n; i++ {
			if !removed[i] {
				want = append(want, i)
			}
		}
		if len(want) != len(got) {
			rt.Fatalf("delivered to %v, want %v", got, want)
		}
		for i := range want {
			if want[i] != got[i] {
				rt.Fatalf("delivered to %v, want %v", got, want)
			}
		}
	})
}
