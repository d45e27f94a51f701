/*
Package callback connects native callback pointers with Go producers and
consumers of (result, error) string pairs.

Registry stores callback pointers registered by a native host, keyed by
instance connection name, and delivers status pairs to them through the
trampoline shim. Dispatcher binds a Registry and an instance name into the
ffi.Notifier interface so producer code does not need to know where its
deliveries land.

GoCallback covers the opposite direction: it hands out a C-compatible entry
point for a Go handler, so Go code can act as the registered callback of a
native component. Because the callback signature has no user-data argument,
entry points come from a fixed table of C thunks; NewGoCallback acquires a
slot and Release returns it.
*/
package callback
