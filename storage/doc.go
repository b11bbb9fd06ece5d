// Package storage presents the backing-memory capability sparset and
// sparmap are built on: a length cell, a sparse buffer, a dense
// buffer, and (for maps) a values buffer.
//
// What:
//
//   - Backend[K] exposes Len/Sparse/Dense over a key type K.
//   - ValueBackend[K,V] adds Values for the map layer.
//   - Heap is an anonymous, process-local backend (plain Go slices).
//   - Mmap/MmapValues are file-backed backends surviving restart,
//     built on golang.org/x/sys/unix.Mmap + Madvise.
//
// Why:
//
//   - sparset/sparmap never touch memory directly; they operate
//     through this capability so the anonymous and file-backed models
//     are interchangeable at construction time (spec's "mmap" option).
//
// Errors:
//
//   - File-backed construction fails if the file is smaller than the
//     required size or the mmap syscall fails; the OS error is
//     wrapped and returned. madvise hints are best-effort and their
//     failures are ignored. No other I/O errors are surfaced after
//     construction.
package storage
