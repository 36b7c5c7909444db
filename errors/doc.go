/*
Package errors implements custom error interfaces for trustbridge.

The package is a fork of the standard error handling with two
additions: every root error carries a unique ABCI code so it can be
reported over the wire without leaking internals, and the first Wrap
call attaches a stack trace so debug output can point at the frame
that failed.

Create root errors with Register. Wrap them with context as they
travel up the stack. Test for a kind with the root error Is method.
*/
package errors
