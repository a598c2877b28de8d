// Package ffi holds the Go side of the native callback boundary.
//
// A LandingPad owns the user's integrand and performs one evaluation per
// native callback: it rebuilds the typed input from the raw input buffer,
// calls the integrand, and writes the typed output back into the raw output
// buffer. Every failure, including a panic, is returned as an error so that
// nothing unwinds into foreign stack frames.
//
// # Lifetime
//
// A pad is created right before a native integration call and must stay
// reachable until that call returns. The native library never sees a Go
// pointer to the pad; drivers register it with the backend handle registry and
// pass the handle instead.
//
// # Concurrency
//
// The pad adds no locking around the integrand. When the integration routine
// evaluates points concurrently, the integrand itself must be safe for
// concurrent use.
package ffi
