package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 4096, m.Size())

	data := m.Bytes()
	require.Len(t, data, 4096)

	// Anonymous mappings are zero-initialized.
	for i, b := range data {
		require.Zero(t, b, "byte %d", i)
	}

	// And writable.
	data[0] = 0xAA
	data[4095] = 0x55
	assert.Equal(t, byte(0xAA), m.Bytes()[0])
	assert.Equal(t, byte(0x55), m.Bytes()[4095])
}

func TestMapAnonOddSize(t *testing.T) {
	// Sub-page sizes round up inside the OS; the mapping still honors the
	// requested length.
	m, err := MapAnon(100)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 100, m.Size())
	assert.Len(t, m.Bytes(), 100)
}

func TestMapAnonInvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMappingClose(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close(), "Close must be idempotent")
	assert.Nil(t, m.Bytes())
}
