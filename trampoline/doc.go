/*
Package trampoline invokes native C callbacks of the form

	void (*callbackFunc)(char *result, char *errmsg)

on behalf of Go code. Go cannot call a C function pointer directly, so the
call is routed through a minimal C shim (extern.h / extern.c) that performs a
single indirect call and nothing else: no allocation, no copy, no retained
state.

Invoke forwards two raw nul-terminated byte-string pointers verbatim — the
callback observes the exact addresses the caller supplied, and NULL is passed
through rather than substituted. InvokeStrings is the allocating convenience
for Go-side producers: it makes C copies of both strings, invokes the
callback, and frees the copies before returning, so the callback must not
retain the pointers past its own return.

The callback runs synchronously on the calling goroutine's thread; the shim
introduces no scheduling, cancellation, or shared state of its own.
*/
package trampoline
