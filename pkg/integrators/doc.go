// Package integrators defines the contracts shared by every integration
// backend in this module: how a Go value is read from and written to the flat
// real-valued buffers a native integration library works with, and the
// backend-neutral shape of an integration result.
//
// # Integrand Types
//
// An integrand is a Go function func(A) B. The input type A describes a point
// in the integration domain and the output type B the components produced at
// that point. Both types carry a fixed length:
//
//	// *A must implement IntegrandInput[A]
//	func (p *Vec2) Dim() int               { return 2 }
//	func (p *Vec2) FromArgs(args []Real)   { copy(p[:], args) }
//
//	// B must implement IntegrandOutput
//	func (s Scalar) NComp() int            { return 1 }
//	func (s Scalar) IntoArgs(out []Real)   { out[0] = Real(s) }
//
// Dim and NComp are called on zero values and must not depend on the value.
//
// Scalar, Vec2, Vec3 and Vec4 satisfy both contracts and cover the common
// cases. Domain types can implement the contracts directly.
//
// # Results
//
// Each backend returns its own richly typed result. The IntegrationResults
// contract exposes those results as a sequence of (value, error) pairs so that
// callers can stay backend-agnostic.
package integrators
