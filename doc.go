/*
Package ffi provides the shared types for delivering (result, error) string
pairs across a foreign-function boundary.

The repository bridges runtimes that cannot pass function values through
their FFI surface: a native host registers a raw callback address (see
trampoline and callback), while a WebAssembly guest — which cannot exchange
pointers at all — delivers through a named host capability (see guest). Both
directions meet at the Notifier interface and the Status pair defined here.

This package is cgo-free so it can be imported from TinyGo guest builds.
*/
package ffi
