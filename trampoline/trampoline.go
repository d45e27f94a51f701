package trampoline

/*
#include "extern.h"
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/tarmac-project/ffi/cstr"
)

var (
	// ErrNilCallback is returned when the provided callback pointer is nil.
	ErrNilCallback = errors.New("callback pointer cannot be nil")
)

// Invoke calls the native callback fn exactly once with the two
// nul-terminated byte-string pointers, in order. The pointers are forwarded
// verbatim: the callback observes the same addresses the caller supplied,
// and a nil pointer is delivered as NULL rather than an empty string. Both
// strings must remain valid until Invoke returns.
func Invoke(fn unsafe.Pointer, result unsafe.Pointer, errMsg unsafe.Pointer) error {
	if fn == nil {
		return ErrNilCallback
	}

	C.invokeFunctionPointer(C.callbackFunc(fn), (*C.char)(result), (*C.char)(errMsg))
	return nil
}

// InvokeStrings delivers a (result, error) pair from Go strings. C copies of
// both strings are allocated for the duration of the call and freed before
// InvokeStrings returns; the callback must not retain them.
func InvokeStrings(fn unsafe.Pointer, result string, errMsg string) error {
	if fn == nil {
		return ErrNilCallback
	}

	resultPtr := cstr.New(result)
	defer cstr.Free(resultPtr)

	errMsgPtr := cstr.New(errMsg)
	defer cstr.Free(errMsgPtr)

	return Invoke(fn, resultPtr, errMsgPtr)
}
