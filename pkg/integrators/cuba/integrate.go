package cuba

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/ffi"
	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
	"github.com/integrators-go/integrators/pkg/integrators/logging"
)

// Integrate integrates fn over the unit hypercube with alg until the estimate
// for every component reaches epsRel (relative) or epsAbs (absolute)
// precision.
//
// A panic in fn stops the integration with ErrAborted. Cancelling ctx makes
// every later evaluation fail, which aborts the integration the same way.
func Integrate[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput](
	ctx context.Context, alg Algorithm, fn func(A) B, epsRel, epsAbs integrators.Real, opts ...Option,
) (*Results, error) {
	if fn == nil {
		return nil, errors.New("cuba: nil integrand")
	}
	return run(ctx, alg, ffi.New[A, PA](fn).WithContext(ctx), epsRel, epsAbs, opts)
}

// IntegrateE is Integrate for integrands that report failures as errors. The
// first error aborts the integration.
func IntegrateE[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput](
	ctx context.Context, alg Algorithm, fn func(A) (B, error), epsRel, epsAbs integrators.Real, opts ...Option,
) (*Results, error) {
	if fn == nil {
		return nil, errors.New("cuba: nil integrand")
	}
	return run(ctx, alg, ffi.NewFallible[A, PA](fn).WithContext(ctx), epsRel, epsAbs, opts)
}

// pad is the type-erased view of an ffi.LandingPad.
type pad interface {
	backend.Evaluator
	Dim() int
	NComp() int
	Evals() int64
	Err() error
}

func run(ctx context.Context, alg Algorithm, p pad, epsRel, epsAbs integrators.Real, opts []Option) (*Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if alg == nil {
		return nil, errors.New("cuba: nil algorithm")
	}
	o := newOptions(opts)
	name := alg.Name()
	ndim, ncomp := p.Dim(), p.NComp()

	if err := checkDims(alg, ndim, ncomp); err != nil {
		outcome := OutcomeBadDim
		if errors.Is(err, ErrBadComp) {
			outcome = OutcomeBadComp
		}
		o.metrics.observe(name, outcome, 0, 0)
		return nil, err
	}

	log := o.logger.With("run_id", uuid.NewString(), "algorithm", name, "ndim", ndim, "ncomp", ncomp)

	c := alg.call()
	c.NDim, c.NComp = ndim, ncomp
	c.EpsRel, c.EpsAbs = epsRel, epsAbs

	h := backend.Register(p)
	defer backend.Release(h)
	c.Handle = h

	log.Debug(ctx, "integration started", "epsrel", epsRel, "epsabs", epsAbs, "maxeval", c.MaxEval)
	start := time.Now()
	raw, err := o.routine.Run(ctx, c)
	elapsed := time.Since(start)
	runtime.KeepAlive(p)
	if err != nil {
		o.metrics.observe(name, OutcomeError, 0, elapsed)
		log.Error(ctx, "integration routine failed", "error", err)
		return nil, fmt.Errorf("cuba: %s: %w", name, err)
	}

	res, err := ParseResults(name, raw)
	switch {
	case err == nil:
		o.metrics.observe(name, OutcomeConverged, raw.NEval, elapsed)
		log.Debug(ctx, "integration converged", "neval", raw.NEval, "elapsed", elapsed)
	case errors.Is(err, ErrDidNotConverge):
		o.metrics.observe(name, OutcomeNotConverged, raw.NEval, elapsed)
		log.Warn(ctx, "integration did not converge", "neval", raw.NEval, "fail", raw.Fail)
	case errors.Is(err, ErrAborted):
		o.metrics.observe(name, OutcomeAborted, raw.NEval, elapsed)
		cause := p.Err()
		log.Warn(ctx, "integration aborted by integrand", "evals", p.Evals(), "cause", cause, logging.Redacted("x"))
		var cerr *Error
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(cause, ctxErr) && errors.As(err, &cerr) {
			cerr.Cause = ctxErr
		}
	case errors.Is(err, ErrBadDim):
		o.metrics.observe(name, OutcomeBadDim, 0, elapsed)
		err = BadDim(name, ndim)
	default:
		o.metrics.observe(name, OutcomeError, raw.NEval, elapsed)
		log.Error(ctx, "unreadable routine output", "error", err)
	}
	return res, err
}
