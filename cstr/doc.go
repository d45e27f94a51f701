/*
Package cstr provides helpers for crossing the nul-terminated byte-string
boundary between Go and native code.

New allocates a C copy of a Go string, GoString copies a nul-terminated byte
run back into a Go string, and Free releases memory allocated by New. All
three accept or return unsafe.Pointer so that callers — including test files,
which cannot use cgo — never need to name C types directly.
*/
package cstr
