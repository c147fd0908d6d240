package iface

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter interface {
	Count() int32
	Bump()
}

type tick int32

func (t *tick) Count() int32 { return int32(*t) }
func (t *tick) Bump()        { *t++ }

type tock int64

func (t *tock) Count() int32 { return int32(*t) }
func (t *tock) Bump()        { *t += 2 }

type silent struct{}

func TestTable(t *testing.T) {
	t.Run("same type yields the same table", func(t *testing.T) {
		a, b := tick(1), tick(2)

		ta, ok := Table[counter](&a)
		require.True(t, ok)
		tb, ok := Table[counter](&b)
		require.True(t, ok)

		assert.Equal(t, ta, tb)
		assert.NotNil(t, ta)
	})

	t.Run("different types yield different tables", func(t *testing.T) {
		a, b := tick(1), tock(1)

		ta, ok := Table[counter](&a)
		require.True(t, ok)
		tb, ok := Table[counter](&b)
		require.True(t, ok)

		assert.NotEqual(t, ta, tb)
	})

	t.Run("non-implementer reports false", func(t *testing.T) {
		var s silent
		tab, ok := Table[counter](&s)
		assert.False(t, ok)
		assert.Nil(t, tab)
	})
}

func TestMake(t *testing.T) {
	t.Run("dispatches against the given memory", func(t *testing.T) {
		v := tick(7)
		tab, ok := Table[counter](&v)
		require.True(t, ok)

		got := Make[counter](tab, unsafe.Pointer(&v))
		assert.Equal(t, int32(7), got.Count())

		// Writes through the assembled interface land in v...
		got.Bump()
		assert.Equal(t, tick(8), v)

		// ...and writes to v are visible through it.
		v = 41
		assert.Equal(t, int32(41), got.Count())
	})

	t.Run("empty interface", func(t *testing.T) {
		v := tock(9)
		tab, ok := Table[any](&v)
		require.True(t, ok)

		got := Make[any](tab, unsafe.Pointer(&v))
		p, ok := got.(*tock)
		require.True(t, ok)
		assert.Same(t, &v, p)
	})

	t.Run("two views of distinct memory are independent", func(t *testing.T) {
		a, b := tick(1), tick(100)
		tab, ok := Table[counter](&a)
		require.True(t, ok)

		va := Make[counter](tab, unsafe.Pointer(&a))
		vb := Make[counter](tab, unsafe.Pointer(&b))

		va.Bump()
		assert.Equal(t, int32(2), va.Count())
		assert.Equal(t, int32(100), vb.Count())
	})
}
