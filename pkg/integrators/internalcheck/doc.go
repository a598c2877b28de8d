// Package internalcheck holds source policy tests for the integrators module.
//
// The tests load the module's own packages with golang.org/x/tools/go/packages
// and fail on constructs that would break the callback contract. There is no
// non-test code; the package is not meant to be imported.
package internalcheck
