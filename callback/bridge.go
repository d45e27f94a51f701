package callback

/*
#cgo CFLAGS: -I${SRCDIR}/../trampoline
#include "thunks.h"
*/
import "C"

import "unsafe"

// ffiCallbackBridge is the single Go entry point behind every C thunk. It
// must live in its own file: cgo forbids C function definitions in the
// preamble of a file containing //export directives, so the thunks are
// compiled from thunks.c instead.
//
//export ffiCallbackBridge
func ffiCallbackBridge(slot C.int, result *C.char, errMsg *C.char) {
	dispatchSlot(int(slot), unsafe.Pointer(result), unsafe.Pointer(errMsg))
}
