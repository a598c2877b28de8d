package cuba

import (
	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
	"github.com/integrators-go/integrators/pkg/integrators/logging"
)

// Routine executes an integration call, invoking the registered landing pad
// through backend.Dispatch for every sample point.
type Routine = backend.Runner

// Handle identifies the integrand of a Call. A Routine passes it back to
// Dispatch for every sample point.
type Handle = backend.Handle

// Statuses returned by Dispatch.
const (
	StatusSuccess = backend.Success
	StatusAbort   = backend.Abort
)

// Fail codes a Routine reports in RawResults.Fail.
const (
	FailConverged    = backend.FailNone
	FailNotConverged = 1
	FailBadDim       = backend.FailBadDim
	FailAborted      = backend.FailAborted
)

// Dispatch evaluates the integrand registered under h at x and writes its
// components into f. x holds Call.NDim reals and f Call.NComp reals. It
// returns StatusSuccess or StatusAbort; after StatusAbort the routine must
// stop and report FailAborted.
func Dispatch(h Handle, x, f []integrators.Real) int32 {
	return backend.Dispatch(h, x, f)
}

// NewRawResults returns zeroed result buffers for ncomp components.
func NewRawResults(ncomp int) RawResults { return backend.NewOutput(ncomp) }

// Native returns the libcuba routine. It reports ErrNotBuilt unless the binary
// was built with cgo and the "cuba" tag.
func Native() Routine { return backend.Native{} }

// Option configures Integrate.
type Option func(*options)

type options struct {
	routine Routine
	logger  logging.Logger
	metrics *Metrics
}

func newOptions(opts []Option) options {
	o := options{routine: Native(), logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRoutine replaces the native routine.
func WithRoutine(r Routine) Option {
	return func(o *options) {
		if r != nil {
			o.routine = r
		}
	}
}

// WithLogger sets the logger for lifecycle events. The default discards them.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records integration outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
