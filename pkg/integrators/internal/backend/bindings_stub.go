//go:build !cgo || !cuba

package backend

import "context"

// Stub implementation for builds without cgo or without the cuba tag.
// The package still compiles; Native.Run returns ErrNotBuilt.

// Native runs calls through libcuba when it is linked in.
type Native struct{}

func (Native) Run(context.Context, Call) (Output, error) {
	return Output{}, ErrNotBuilt
}

// Version returns the version string from the native library, or empty if not available.
func Version() string { return "" }
