package ffi

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/integrators-go/integrators/pkg/integrators"
)

// ErrIntegrand wraps every error returned by an integrand.
var ErrIntegrand = errors.New("integrand failed")

// PanicError reports a panic recovered during an evaluation.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("integrand panicked: %v", e.Value)
}

// Unwrap exposes a panic value that was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// LandingPad adapts an integrand func(A) (B, error) to raw real buffers.
type LandingPad[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput] struct {
	fn  func(A) (B, error)
	ctx context.Context

	evals atomic.Int64
	first atomic.Pointer[error]
}

// New wraps an infallible integrand. A panic inside fn aborts the integration.
func New[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput](fn func(A) B) *LandingPad[A, PA, B] {
	return NewFallible[A, PA](func(a A) (B, error) { return fn(a), nil })
}

// NewFallible wraps an integrand that reports failures as errors. The first
// non-nil error aborts the integration.
func NewFallible[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput](fn func(A) (B, error)) *LandingPad[A, PA, B] {
	return &LandingPad[A, PA, B]{fn: fn, ctx: context.Background()}
}

// WithContext makes every evaluation after ctx is done fail with ctx.Err().
// It must be called before the pad is handed to a routine.
func (p *LandingPad[A, PA, B]) WithContext(ctx context.Context) *LandingPad[A, PA, B] {
	if ctx != nil {
		p.ctx = ctx
	}
	return p
}

// Dim is the input dimensionality declared by A.
func (p *LandingPad[A, PA, B]) Dim() int { return integrators.Dim[A, PA]() }

// NComp is the component count declared by B.
func (p *LandingPad[A, PA, B]) NComp() int { return integrators.NComp[B]() }

// Evals reports how many evaluations were attempted.
func (p *LandingPad[A, PA, B]) Evals() int64 { return p.evals.Load() }

// Err returns the first evaluation failure, if any.
func (p *LandingPad[A, PA, B]) Err() error {
	if e := p.first.Load(); e != nil {
		return *e
	}
	return nil
}

// Eval performs one evaluation. x must hold Dim() reals and f NComp() reals;
// the caller guarantees both lengths. f is fully overwritten on success.
func (p *LandingPad[A, PA, B]) Eval(x, f []integrators.Real) (err error) {
	p.evals.Add(1)
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
		if err != nil {
			p.first.CompareAndSwap(nil, &err)
		}
	}()

	if cerr := p.ctx.Err(); cerr != nil {
		return cerr
	}

	var in A
	PA(&in).FromArgs(x)

	out, ferr := p.fn(in)
	if ferr != nil {
		return fmt.Errorf("%w: %w", ErrIntegrand, ferr)
	}
	out.IntoArgs(f)
	return nil
}
