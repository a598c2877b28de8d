package integrators

// Real is the floating-point type exchanged with native integration libraries.
// It matches cubareal in its default double precision build.
type Real = float64

// IntegrandInput is implemented by *A for every integrand input type A.
//
// Dim reports the number of reals A is built from. It is fixed per type and
// must be answerable on a zero value. FromArgs overwrites the receiver from
// exactly Dim() reals; callers guarantee the length, so implementations do not
// re-check it.
type IntegrandInput[A any] interface {
	*A
	Dim() int
	FromArgs(args []Real)
}

// IntegrandOutput is implemented by integrand output types.
//
// NComp reports the number of components, fixed per type. IntoArgs writes the
// value into out, which has exactly NComp() elements, and must assign every
// element: the buffer is reused between evaluations.
type IntegrandOutput interface {
	NComp() int
	IntoArgs(out []Real)
}

// IntegrationResult is the backend-neutral estimate for one component.
type IntegrationResult struct {
	Value Real
	Error Real
}

// ResultIterator walks a finite sequence of results once. After Next reports
// false it keeps reporting false.
type ResultIterator interface {
	Next() (IntegrationResult, bool)
}

// IntegrationResults is implemented by backend result types.
type IntegrationResults interface {
	Results() ResultIterator
}

// Collect drains it into a slice.
func Collect(it ResultIterator) []IntegrationResult {
	var out []IntegrationResult
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// Dim returns the dimensionality declared by input type A.
func Dim[A any, PA IntegrandInput[A]]() int {
	var zero A
	return PA(&zero).Dim()
}

// NComp returns the component count declared by output type B.
func NComp[B IntegrandOutput]() int {
	var zero B
	return zero.NComp()
}
