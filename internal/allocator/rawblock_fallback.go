//go:build !unix && !windows

package allocator

import "unsafe"

// acquireAlignedRegion is the portable fallback for build targets with no
// x/sys mmap/VirtualAlloc support (e.g. js/wasm). It over-allocates a
// Go-heap buffer and hands back an aligned interior pointer, in the manner
// of the bump-pointer-over-a-buffer trick internal/allocator/arena.go uses
// for its own bump cursor.
//
// The oversized slice is kept reachable via the closure so the garbage
// collector never reclaims it out from under the aligned interior pointer.
func acquireAlignedRegion(size uintptr) (unsafe.Pointer, func(), error) {
	buf := make([]byte, size+size)

	base := uintptr(unsafe.Pointer(&buf[0]))
	aligned := (base + size - 1) &^ (size - 1)

	release := func() {
		_ = buf // keep the backing array alive until Release is called
	}

	return unsafe.Pointer(aligned), release, nil
}
