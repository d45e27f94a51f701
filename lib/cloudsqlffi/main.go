//go:build cgo

// Package main builds the callback shim as a C shared library
// (-buildmode=c-shared) for non-Go hosts such as a .NET or JVM runtime. The
// host registers the raw address of one of its own C-compatible entry points
// per instance, and native code delivers (result, error) pairs back through
// the trampoline.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../trampoline
#include <stdlib.h>
#include "extern.h"
*/
import "C"

import (
	"unsafe"

	"github.com/tarmac-project/ffi/callback"
	"github.com/tarmac-project/ffi/cstr"
)

const (
	statusOK    = C.int(0)
	statusError = C.int(1)
)

var registry = callback.NewRegistry()

// RegisterStatusCallback stores the host callback for the named instance.
// The pointer must remain valid until UnregisterStatusCallback is called.
//
//export RegisterStatusCallback
func RegisterStatusCallback(instance *C.char, fn C.callbackFunc) C.int {
	if err := registry.Register(C.GoString(instance), unsafe.Pointer(fn)); err != nil {
		return statusError
	}
	return statusOK
}

// UnregisterStatusCallback removes the callback for the named instance.
//
//export UnregisterStatusCallback
func UnregisterStatusCallback(instance *C.char) {
	registry.Unregister(C.GoString(instance))
}

// NotifyConnectionResult delivers a (result, error) pair to the callback
// registered for the named instance. Both strings are copied before the
// delivery, so the caller may free its arguments as soon as the call
// returns.
//
//export NotifyConnectionResult
func NotifyConnectionResult(instance *C.char, result *C.char, errmsg *C.char) C.int {
	err := registry.Notify(C.GoString(instance), C.GoString(result), C.GoString(errmsg))
	if err != nil {
		return statusError
	}
	return statusOK
}

// Echo returns a freshly allocated copy of message. It exists so hosts can
// smoke-test symbol resolution and string marshalling; the caller owns the
// returned memory and must free() it.
//
//export Echo
func Echo(message *C.char) *C.char {
	return (*C.char)(cstr.New(C.GoString(message)))
}

func main() {}
