package storage

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/katalvlaran/beampack/key"
)

// maxPreloadBytes bounds how much of a region WillNeed is requested
// for, matching spec's "first min(size, 4 GiB) bytes" advisory hint.
const maxPreloadBytes = 4 << 30

// FileSize returns the number of bytes a file-backed SparSet of
// capacity n requires: one length cell plus two (n+1)-element key
// buffers.
func FileSize[K key.Unsigned](n int) int64 {
	var k K
	ks := int64(unsafe.Sizeof(k))
	return ks + 2*ks*int64(n+1)
}

// FileSizeValue returns the number of bytes a file-backed SparMap of
// capacity n and value type V requires: the set's file size, padded
// up to a sizeof(V) boundary, plus a (n+1)-element value buffer.
func FileSizeValue[K key.Unsigned, V any](n int) int64 {
	var v V
	vs := int64(unsafe.Sizeof(v))
	base := FileSize[K](n)
	pad := (vs - base%vs) % vs
	return base + pad + vs*int64(n+1)
}

// Mmap is a file-backed Backend. The mapped region survives the
// owning process so long as the file itself is kept: bytes outside
// the length cell may be uninitialized across sessions, which is safe
// because SparSet never trusts sparse/dense without the triple-check.
type Mmap[K key.Unsigned] struct {
	raw    []byte
	length []K
	sparse []K
	dense  []K
}

// NewMmap maps an existing file as a SparSet backend of capacity n.
// The file must be at least FileSize[K](n) bytes.
func NewMmap[K key.Unsigned](f *os.File, n int) (*Mmap[K], error) {
	var k K
	ks := int(unsafe.Sizeof(k))
	need := FileSize[K](n)

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("storage: stat backing file: %w", err)
	}
	if info.Size() < need {
		return nil, fmt.Errorf("storage: backing file too small: have %d bytes, need %d", info.Size(), need)
	}

	raw, err := unix.Mmap(int(f.Fd()), 0, int(need), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("storage: mmap backing file: %w", err)
	}

	bufLen := ks * (n + 1)
	adviseRegion(raw[:ks], unix.MADV_WILLNEED)
	adviseRegion(raw[ks:ks+bufLen], unix.MADV_WILLNEED)
	adviseRegion(raw[ks:ks+bufLen], unix.MADV_RANDOM)
	adviseRegion(raw[ks+bufLen:ks+2*bufLen], unix.MADV_WILLNEED)
	adviseRegion(raw[ks+bufLen:ks+2*bufLen], unix.MADV_SEQUENTIAL)

	return &Mmap[K]{
		raw:    raw,
		length: unsafe.Slice((*K)(unsafe.Pointer(&raw[0])), 1),
		sparse: unsafe.Slice((*K)(unsafe.Pointer(&raw[ks])), n+1),
		dense:  unsafe.Slice((*K)(unsafe.Pointer(&raw[ks+bufLen])), n+1),
	}, nil
}

func (m *Mmap[K]) Len() *K      { return &m.length[0] }
func (m *Mmap[K]) Sparse() []K  { return m.sparse }
func (m *Mmap[K]) Dense() []K   { return m.dense }
func (m *Mmap[K]) Close() error { return unix.Munmap(m.raw) }

// MmapValues is a file-backed Backend for SparMap: the set's three
// regions plus a values region appended after sizeof(V) alignment
// padding.
type MmapValues[K key.Unsigned, V any] struct {
	*Mmap[K]
	vals []V
}

// NewMmapValues maps an existing file as a SparMap backend of
// capacity n and value type V. V must be trivially copyable (no
// pointers, no padding-sensitive invariants) since its bytes are
// shared directly with the mapped file.
func NewMmapValues[K key.Unsigned, V any](f *os.File, n int) (*MmapValues[K, V], error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("storage: stat backing file: %w", err)
	}
	if need := FileSizeValue[K, V](n); info.Size() < need {
		return nil, fmt.Errorf("storage: backing file too small: have %d bytes, need %d", info.Size(), need)
	}

	set, err := NewMmap[K](f, n)
	if err != nil {
		return nil, err
	}

	var v V
	vs := int(unsafe.Sizeof(v))
	base := FileSize[K](n)
	pad := (int64(vs) - base%int64(vs)) % int64(vs)
	offset := base + pad

	valsLen := vs * (n + 1)
	raw := set.raw
	needed := int(offset) + valsLen
	if needed > len(raw) {
		// The set-only mapping didn't cover the values region; remap
		// the whole file at the size FileSizeValue actually requires.
		if err := unix.Munmap(raw); err != nil {
			return nil, fmt.Errorf("storage: remap for values region: %w", err)
		}
		raw, err = unix.Mmap(int(f.Fd()), 0, needed, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			return nil, fmt.Errorf("storage: mmap backing file: %w", err)
		}
		ks := int(unsafe.Sizeof(*new(K)))
		bufLen := ks * (n + 1)
		set.raw = raw
		set.length = unsafe.Slice((*K)(unsafe.Pointer(&raw[0])), 1)
		set.sparse = unsafe.Slice((*K)(unsafe.Pointer(&raw[ks])), n+1)
		set.dense = unsafe.Slice((*K)(unsafe.Pointer(&raw[ks+bufLen])), n+1)
	}

	adviseRegion(raw[offset:needed], unix.MADV_WILLNEED)
	adviseRegion(raw[offset:needed], unix.MADV_SEQUENTIAL)

	return &MmapValues[K, V]{
		Mmap: set,
		vals: unsafe.Slice((*V)(unsafe.Pointer(&raw[offset])), n+1),
	}, nil
}

func (m *MmapValues[K, V]) Values() []V { return m.vals }

// adviseRegion requests a madvise hint, capping the length at
// maxPreloadBytes for WillNeed per spec's advisory-hint table. madvise
// is best-effort: a failure here does not affect correctness, so it is
// not surfaced as an error (construction only fails on the mmap call
// itself).
func adviseRegion(region []byte, advice int) {
	if len(region) == 0 {
		return
	}
	if advice == unix.MADV_WILLNEED && len(region) > maxPreloadBytes {
		region = region[:maxPreloadBytes]
	}
	_ = unix.Madvise(region, advice)
}
