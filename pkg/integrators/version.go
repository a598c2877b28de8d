package integrators

import "github.com/integrators-go/integrators/pkg/integrators/internal/backend"

var (
	Version = "v0.0.0-in-progress"
	// CubaPinned is the libcuba release the native bindings are written against.
	CubaPinned = "4.2.2"
)

// ModuleVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func ModuleVersion() string {
	return Version
}

// CubaLinked reports whether the native library was built into the binary.
func CubaLinked() bool { return backend.Version() != "" }

// CubaVersion returns the version reported by the linked native library, or
// "unavailable" when the module was built without libcuba.
func CubaVersion() string {
	if v := backend.Version(); v != "" {
		return v
	}
	return "unavailable"
}
