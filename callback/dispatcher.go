package callback

import (
	"fmt"

	ffi "github.com/tarmac-project/ffi"
)

// ensure Dispatcher satisfies the delivery interface
var _ ffi.Notifier = (*Dispatcher)(nil)

// Dispatcher binds a Registry and an instance name into the ffi.Notifier
// interface, so producer code can deliver status pairs without knowing
// whether they land in a native callback or elsewhere.
type Dispatcher struct {
	registry *Registry
	instance string
}

// NewDispatcher creates a Dispatcher for the named instance. The instance
// does not need to be registered yet; deliveries to an unregistered instance
// fail with ErrNotRegistered.
func NewDispatcher(registry *Registry, instance string) (*Dispatcher, error) {
	if registry == nil {
		return nil, ErrRegistryNil
	}
	if !isInstanceNameValid.MatchString(instance) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInstanceName, instance)
	}

	return &Dispatcher{registry: registry, instance: instance}, nil
}

// Notify delivers the pair to the callback registered for the bound instance.
func (d *Dispatcher) Notify(result string, errMsg string) error {
	return d.registry.Notify(d.instance, result, errMsg)
}

// Close releases the dispatcher. The native registration is owned by the
// host that created it and is left untouched.
func (d *Dispatcher) Close() error {
	return nil
}
