package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beampack/storage"
)

func TestHeapBackendRoundTrip(t *testing.T) {
	h := storage.NewHeap[uint32](7)
	require.Len(t, h.Sparse(), 8)
	require.Len(t, h.Dense(), 8)
	require.Equal(t, uint32(0), *h.Len())

	*h.Len() = 3
	h.Sparse()[5] = 1
	h.Dense()[1] = 5
	require.Equal(t, uint32(3), *h.Len())
	require.Equal(t, uint32(1), h.Sparse()[5])
	require.Equal(t, uint32(5), h.Dense()[1])

	require.NoError(t, h.Close())
}

func TestHeapValuesBackendRoundTrip(t *testing.T) {
	hv := storage.NewHeapValues[uint32, string](3)
	require.Len(t, hv.Values(), 4)

	hv.Values()[2] = "hello"
	require.Equal(t, "hello", hv.Values()[2])
	require.NoError(t, hv.Close())
}

func TestFileSizeAndFileSizeValue(t *testing.T) {
	n := 10
	setSize := storage.FileSize[uint32](n)
	require.Equal(t, int64(4+2*4*(n+1)), setSize)

	valSize := storage.FileSizeValue[uint32, uint64](n)
	require.Greater(t, valSize, setSize)
}

func TestMmapBackendRoundTrip(t *testing.T) {
	n := 15
	path := filepath.Join(t.TempDir(), "sparset.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Truncate(storage.FileSize[uint32](n)))

	m, err := storage.NewMmap[uint32](f, n)
	require.NoError(t, err)
	defer m.Close()

	require.Len(t, m.Sparse(), n+1)
	require.Len(t, m.Dense(), n+1)

	*m.Len() = 5
	m.Sparse()[9] = 2
	m.Dense()[2] = 9
	require.Equal(t, uint32(5), *m.Len())
	require.Equal(t, uint32(2), m.Sparse()[9])
	require.Equal(t, uint32(9), m.Dense()[2])
}

func TestMmapValuesBackendRoundTrip(t *testing.T) {
	n := 6
	path := filepath.Join(t.TempDir(), "sparmap.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Truncate(storage.FileSizeValue[uint32, uint64](n)))

	mv, err := storage.NewMmapValues[uint32, uint64](f, n)
	require.NoError(t, err)
	defer mv.Close()

	require.Len(t, mv.Values(), n+1)
	mv.Values()[3] = 0xDEADBEEF
	require.Equal(t, uint64(0xDEADBEEF), mv.Values()[3])
}

func TestMmapRejectsUndersizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "too_small.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Truncate(4))

	_, err = storage.NewMmap[uint32](f, 15)
	require.Error(t, err)
}
