// Package backend hosts the thin cgo layer that links the Go API to the
// native Cuba library, together with the pure-Go half of the callback
// boundary that the cgo layer delegates to.
//
// The native implementation lives behind the "cuba" build tag (and cgo) so
// that the rest of the repository compiles and tests without libcuba. Without
// the tag, Run returns ErrNotBuilt.
//
// Callbacks from C carry a Handle in their userdata pointer. The handle is an
// integer key into a registry of Evaluators, never a Go pointer, which keeps
// the cgo pointer-passing rules intact.
package backend
