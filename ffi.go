package ffi

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "cloudsql"

// Handler processes a single connection status delivery. The result and
// error message arguments are Go copies; implementations may retain them.
type Handler func(result string, errMsg string)

// RuntimeConfig carries configuration shared by delivery components.
type RuntimeConfig struct {
	// Namespace scopes host interactions for guest-side delivery.
	Namespace string
}

// Notifier delivers a (result, error) pair to a registered consumer. It is
// implemented by callback.Dispatcher for native consumers and guest.Notifier
// for waPC guests.
type Notifier interface {
	// Notify delivers the pair. By convention exactly one of the two
	// strings is non-empty; see Status.Validate.
	Notify(result string, errMsg string) error

	// Close releases resources held by the notifier.
	Close() error
}

// Status is the (result, error) pair carried across the callback boundary.
// The first slot holds a success payload such as a connection string, the
// second an error message. Producers own the convention that exactly one of
// the two is non-empty; the trampoline itself never inspects the bytes.
type Status struct {
	// Result is the success payload, e.g. a connection string.
	Result string

	// ErrMsg is the error message for a failed operation.
	ErrMsg string
}

// OK builds a successful Status carrying the given result payload.
func OK(result string) Status { return Status{Result: result} }

// Failure builds a failed Status carrying the given error message.
func Failure(errMsg string) Status { return Status{ErrMsg: errMsg} }

// Failed reports whether the status carries an error message.
func (s Status) Failed() bool { return s.ErrMsg != "" }

// Validate enforces the producer-side convention that exactly one of the
// two slots is non-empty.
func (s Status) Validate() error {
	if s.Result != "" && s.ErrMsg != "" {
		return ErrStatusConflict
	}
	if s.Result == "" && s.ErrMsg == "" {
		return ErrStatusEmpty
	}
	return nil
}
