package callback

/*
#cgo CFLAGS: -I${SRCDIR}/../trampoline
#include "thunks.h"
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	ffi "github.com/tarmac-project/ffi"
)

var (
	// ErrNoSlotsAvailable is returned when every native entry point is in use.
	ErrNoSlotsAvailable = errors.New("no callback slots available")
)

// RawHandler receives the two nul-terminated byte-string pointers exactly as
// the native caller supplied them; either may be nil. The pointers are
// borrowed for the duration of the call and must not be retained.
type RawHandler func(result unsafe.Pointer, errMsg unsafe.Pointer)

var (
	slotMu       sync.RWMutex
	slotHandlers [C.FFI_CALLBACK_SLOTS]RawHandler
)

// dispatchSlot routes a delivery from the exported C bridge to the handler
// currently bound to the slot. Deliveries to a released slot are dropped.
func dispatchSlot(slot int, result unsafe.Pointer, errMsg unsafe.Pointer) {
	if slot < 0 || slot >= len(slotHandlers) {
		return
	}

	slotMu.RLock()
	handler := slotHandlers[slot]
	slotMu.RUnlock()

	if handler == nil {
		return
	}
	handler(result, errMsg)
}

// GoCallback exposes a Go handler as a C-compatible callback entry point.
type GoCallback struct {
	slot     int
	pointer  unsafe.Pointer
	released bool
	mu       sync.Mutex
}

// NewGoCallback binds the handler to a free native entry point. The returned
// GoCallback holds the slot until Release is called; holding all
// FFI_CALLBACK_SLOTS entry points at once yields ErrNoSlotsAvailable.
func NewGoCallback(handler RawHandler) (*GoCallback, error) {
	if handler == nil {
		return nil, ffi.ErrHandlerNil
	}

	slotMu.Lock()
	defer slotMu.Unlock()

	for i := range slotHandlers {
		if slotHandlers[i] != nil {
			continue
		}
		slotHandlers[i] = handler
		return &GoCallback{
			slot:    i,
			pointer: unsafe.Pointer(C.ffiCallbackSlot(C.int(i))),
		}, nil
	}

	return nil, ErrNoSlotsAvailable
}

// Pointer returns the C-compatible entry point address. It remains valid
// until Release; invoking it afterwards is a silent no-op.
func (g *GoCallback) Pointer() unsafe.Pointer {
	return g.pointer
}

// Release detaches the handler and returns the slot to the pool. Release is
// idempotent.
func (g *GoCallback) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return
	}
	g.released = true

	slotMu.Lock()
	slotHandlers[g.slot] = nil
	slotMu.Unlock()
}
