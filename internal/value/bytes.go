package value

import (
	"unsafe"

	"github.com/vellum-lang/vellum/internal/allocator"
)

// bytesOf views a RawPtr[byte] array allocation as a Go []byte of length
// n. Used anywhere a Text/Symbol/ArrayU8 payload needs to be read or
// written as bytes.
func bytesOf(p allocator.RawPtr[byte], n uint32) []byte {
	return unsafe.Slice((*byte)(p.AsPtr()), n)
}
