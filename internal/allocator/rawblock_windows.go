//go:build windows

package allocator

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// acquireAlignedRegion reserves and commits memory via VirtualAlloc.
// Windows' allocation granularity (64KiB on every supported target) is
// always a multiple of BlockSize (32KiB), so the address VirtualAlloc
// returns is already block-aligned — no over-allocate-then-trim trick is
// needed here, unlike the unix mmap path.
func acquireAlignedRegion(size uintptr) (unsafe.Pointer, func(), error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, ErrOOM
	}

	ptr := unsafe.Pointer(addr)
	release := func() {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}

	return ptr, release, nil
}
