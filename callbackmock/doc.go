/*
Package callbackmock provides a recording native callback for tests.

A Mock hands out a real C-compatible entry point via Pointer() and records
every delivery it receives: the decoded result and error strings, the raw
pointer values (so tests can assert pointer identity across the boundary),
and whether either slot was NULL. Tests drive it through the trampoline or
through any code path that invokes a registered callback, then inspect Calls.

Close releases the underlying native entry point; forgetting it leaks one of
the fixed callback slots for the remainder of the test binary.
*/
package callbackmock
