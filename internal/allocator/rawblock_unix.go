//go:build unix

package allocator

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// acquireAlignedRegion mmaps an anonymous, page-backed region and trims it
// down to a size-aligned interior of exactly size bytes, following the
// over-allocate-then-trim technique used by cznic/memory's mmap_unix.go.
// size (BlockSize) is always a multiple of the OS page size, so every trim
// offset computed below lands on a page boundary, which Munmap requires.
func acquireAlignedRegion(size uintptr) (unsafe.Pointer, func(), error) {
	total := size + size

	data, err := unix.Mmap(-1, 0, int(total), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, ErrOOM
	}

	base := uintptr(unsafe.Pointer(&data[0]))
	aligned := (base + size - 1) &^ (size - 1)
	headLen := aligned - base

	if headLen > 0 {
		if err := unix.Munmap(data[:headLen]); err != nil {
			_ = unix.Munmap(data)
			return nil, nil, ErrOOM
		}
	}

	tailStart := headLen + size
	if tailStart < total {
		if err := unix.Munmap(data[tailStart:total]); err != nil {
			_ = unix.Munmap(data[headLen:tailStart])
			return nil, nil, ErrOOM
		}
	}

	ptr := unsafe.Pointer(aligned)
	release := func() {
		region := unsafe.Slice((*byte)(ptr), int(size))
		_ = unix.Munmap(region)
	}

	return ptr, release, nil
}
