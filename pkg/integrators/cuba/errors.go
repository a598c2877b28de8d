package cuba

import (
	"errors"
	"fmt"

	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrBadDim         = errors.New("invalid number of dimensions")
	ErrBadComp        = errors.New("invalid number of outputs")
	ErrDidNotConverge = errors.New("integral did not converge")
	ErrAborted        = errors.New("integration aborted by integrand")

	// ErrNotBuilt is returned by the native routine when libcuba is not linked.
	ErrNotBuilt = backend.ErrNotBuilt
)

// ErrorKind distinguishes the failures an integration can report.
type ErrorKind int

const (
	// KindBadDim: the algorithm does not support the integrand's dimensionality.
	KindBadDim ErrorKind = iota + 1
	// KindBadComp: the algorithm does not support the integrand's component count.
	KindBadComp
	// KindDidNotConverge: the requested precision was not reached. Results
	// holds the estimates anyway.
	KindDidNotConverge
	// KindAborted: an evaluation failed and the routine stopped early.
	KindAborted
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadDim:
		return "BadDim"
	case KindBadComp:
		return "BadComp"
	case KindDidNotConverge:
		return "DidNotConverge"
	case KindAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by this package's integration calls.
type Error struct {
	Kind ErrorKind
	// Algorithm and Attempted are set for KindBadDim and KindBadComp.
	Algorithm string
	Attempted int
	// Results is set for KindDidNotConverge, and for KindAborted when the
	// routine reported estimates.
	Results *Results
	// Cause is set for KindAborted when the run was stopped by the caller's
	// context rather than by the integrand.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadDim:
		return fmt.Sprintf("invalid number of dimensions for algorithm %s: %d", e.Algorithm, e.Attempted)
	case KindBadComp:
		return fmt.Sprintf("invalid number of outputs for algorithm %s: %d", e.Algorithm, e.Attempted)
	case KindDidNotConverge:
		return ErrDidNotConverge.Error()
	case KindAborted:
		if e.Cause != nil {
			return "integration aborted: " + e.Cause.Error()
		}
		return ErrAborted.Error()
	default:
		return "cuba: unknown error"
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadDim:
		return e.Kind == KindBadDim
	case ErrBadComp:
		return e.Kind == KindBadComp
	case ErrDidNotConverge:
		return e.Kind == KindDidNotConverge
	case ErrAborted:
		return e.Kind == KindAborted
	}
	return false
}

// Unwrap returns the cancellation cause of an aborted run, if any.
func (e *Error) Unwrap() error { return e.Cause }

// BadDim builds a KindBadDim error.
func BadDim(algorithm string, ndim int) *Error {
	return &Error{Kind: KindBadDim, Algorithm: algorithm, Attempted: ndim}
}

// BadComp builds a KindBadComp error.
func BadComp(algorithm string, ncomp int) *Error {
	return &Error{Kind: KindBadComp, Algorithm: algorithm, Attempted: ncomp}
}

// DidNotConverge builds a KindDidNotConverge error carrying r.
func DidNotConverge(r *Results) *Error {
	return &Error{Kind: KindDidNotConverge, Results: r}
}

// PartialResults extracts the estimates attached to err, if any.
func PartialResults(err error) (*Results, bool) {
	var cerr *Error
	if errors.As(err, &cerr) && cerr.Results != nil {
		return cerr.Results, true
	}
	return nil, false
}
