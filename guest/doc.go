/*
Package guest delivers connection status pairs from waPC guest functions.

A WebAssembly guest cannot hand a function pointer across its boundary at
all, so the native callback is replaced by a named host capability: Notify
frames the (result, error) pair as a protobuf message and forwards it to the
host's "callback" capability. The host acknowledges with a standard Status
message, which is validated before Notify returns.

Zero-value Config options fall back to sensible defaults such as
ffi.DefaultNamespace and the default waPC host call. Tests can inject custom
host behaviour with Config.HostCall to exercise failure paths without a real
host.
*/
package guest
