package cstr

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// New allocates a nul-terminated C copy of s. The caller owns the memory and
// must release it with Free.
func New(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// GoString copies the nul-terminated bytes at p into a Go string. A nil
// pointer yields the empty string.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}

// Free releases memory previously allocated by New. Free of nil is a no-op.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}
