package callback

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"unsafe"

	ffi "github.com/tarmac-project/ffi"
	"github.com/tarmac-project/ffi/trampoline"
)

var (
	// ErrInvalidInstanceName indicates an instance name that does not match
	// the supported format.
	ErrInvalidInstanceName = errors.New("instance name is invalid")

	// ErrNotRegistered is returned when no callback is registered for the
	// requested instance.
	ErrNotRegistered = errors.New("no callback registered for instance")

	// ErrRegistryNil is returned when a nil registry is provided.
	ErrRegistryNil = errors.New("registry cannot be nil")

	// isInstanceNameValid accepts instance connection names such as
	// "project:region:instance".
	isInstanceNameValid = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)
)

// Registry stores native callback pointers keyed by instance connection
// name. Registered pointers must stay valid (not unloaded, not reclaimed)
// until they are unregistered; the registry never dereferences them outside
// a delivery. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]unsafe.Pointer
}

// NewRegistry creates an empty callback registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]unsafe.Pointer)}
}

// Register stores the callback pointer for the named instance, replacing any
// previous registration.
func (r *Registry) Register(instance string, fn unsafe.Pointer) error {
	if !isInstanceNameValid.MatchString(instance) {
		return fmt.Errorf("%w: %q", ErrInvalidInstanceName, instance)
	}
	if fn == nil {
		return trampoline.ErrNilCallback
	}

	r.mu.Lock()
	r.entries[instance] = fn
	r.mu.Unlock()
	return nil
}

// Unregister removes the callback registered for the named instance, if any.
func (r *Registry) Unregister(instance string) {
	r.mu.Lock()
	delete(r.entries, instance)
	r.mu.Unlock()
}

// Registered reports whether a callback is registered for the named instance.
func (r *Registry) Registered(instance string) bool {
	r.mu.RLock()
	_, ok := r.entries[instance]
	r.mu.RUnlock()
	return ok
}

// Notify delivers a (result, error) pair to the callback registered for the
// named instance. The delivery runs synchronously on the calling goroutine.
func (r *Registry) Notify(instance string, result string, errMsg string) error {
	r.mu.RLock()
	fn, ok := r.entries[instance]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrNotRegistered, instance)
	}

	return trampoline.InvokeStrings(fn, result, errMsg)
}

// NotifyStatus validates the status convention (exactly one of result and
// error message non-empty) before delivering it. Use Notify to deliver a
// pair without the convention check.
func (r *Registry) NotifyStatus(instance string, status ffi.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	return r.Notify(instance, status.Result, status.ErrMsg)
}
