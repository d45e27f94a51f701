package callbackmock

import (
	"sync"
	"unsafe"

	"github.com/tarmac-project/ffi/callback"
	"github.com/tarmac-project/ffi/cstr"
)

// Call records a single delivery observed by the mock.
type Call struct {
	// Result is a Go copy of the first string argument ("" when NULL).
	Result string

	// ErrMsg is a Go copy of the second string argument ("" when NULL).
	ErrMsg string

	// ResultPtr is the raw address of the first argument as received.
	ResultPtr uintptr

	// ErrMsgPtr is the raw address of the second argument as received.
	ErrMsgPtr uintptr

	// ResultNil reports whether the first argument was NULL.
	ResultNil bool

	// ErrMsgNil reports whether the second argument was NULL.
	ErrMsgNil bool
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// Observer, if set, is invoked synchronously for every recorded call.
	Observer func(Call)

	// Discard disables per-call recording; only the call count is kept.
	// Useful for benchmarks where the record slice would grow unbounded.
	Discard bool
}

// Mock simulates a native callback, recording every delivery it receives.
type Mock struct {
	mu       sync.Mutex
	calls    []Call
	count    int
	discard  bool
	observer func(Call)
	cb       *callback.GoCallback
}

// New creates a Mock backed by a real native callback entry point.
func New(config Config) (*Mock, error) {
	m := &Mock{observer: config.Observer, discard: config.Discard}

	cb, err := callback.NewGoCallback(m.record)
	if err != nil {
		return nil, err
	}
	m.cb = cb

	return m, nil
}

// record copies both arguments before the caller reclaims them; the raw
// pointers are kept only as integers for identity assertions.
func (m *Mock) record(result unsafe.Pointer, errMsg unsafe.Pointer) {
	call := Call{
		Result:    cstr.GoString(result),
		ErrMsg:    cstr.GoString(errMsg),
		ResultPtr: uintptr(result),
		ErrMsgPtr: uintptr(errMsg),
		ResultNil: result == nil,
		ErrMsgNil: errMsg == nil,
	}

	m.mu.Lock()
	m.count++
	if !m.discard {
		m.calls = append(m.calls, call)
	}
	m.mu.Unlock()

	if m.observer != nil {
		m.observer(call)
	}
}

// Pointer returns the C-compatible entry point address of the mock callback.
func (m *Mock) Pointer() unsafe.Pointer {
	return m.cb.Pointer()
}

// Calls returns a copy of all recorded deliveries in arrival order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]Call, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of deliveries observed so far.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Reset discards all recorded deliveries and resets the call count.
func (m *Mock) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.count = 0
	m.mu.Unlock()
}

// Close releases the native entry point backing the mock.
func (m *Mock) Close() {
	m.cb.Release()
}
