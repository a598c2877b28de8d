package backend

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary (cgo disabled or built without the cuba tag).
var ErrNotBuilt = errors.New("integrators/internal/backend: native bindings not built")

// Status codes returned to Cuba by the integrand callback.
const (
	Success int32 = 0
	// Abort is Cuba's documented "abort integration" return value.
	Abort int32 = -999
)

// Values Cuba stores in the fail output.
const (
	FailNone    = 0
	FailBadDim  = -1
	FailAborted = -99
	MaxDim      = 1024
	MaxComp     = 1024
)

// Evaluator performs one integrand evaluation over raw buffers.
type Evaluator interface {
	Eval(x, f []float64) error
}

// Algorithm selects the native entry point.
type Algorithm int

const (
	Vegas Algorithm = iota + 1
	Suave
	Cuhre
)

func (a Algorithm) String() string {
	switch a {
	case Vegas:
		return "vegas"
	case Suave:
		return "suave"
	case Cuhre:
		return "cuhre"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Call carries everything a native integration routine needs. Fields that do
// not apply to Algorithm are ignored.
type Call struct {
	Algorithm Algorithm
	NDim      int
	NComp     int
	Handle    Handle

	EpsRel  float64
	EpsAbs  float64
	Flags   int
	Seed    int
	MinEval int64
	MaxEval int64

	// Vegas
	NStart    int64
	NIncrease int64
	NBatch    int64
	GridNo    int

	// Suave
	NNew     int64
	NMin     int64
	Flatness float64

	// Cuhre
	Key int
}

// Output holds the raw buffers and counters a routine reports.
type Output struct {
	NRegions   int
	HasRegions bool
	NEval      int64
	Fail       int
	Integral   []float64
	Error      []float64
	Prob       []float64
}

// NewOutput allocates result buffers for ncomp components.
func NewOutput(ncomp int) Output {
	return Output{
		Integral: make([]float64, ncomp),
		Error:    make([]float64, ncomp),
		Prob:     make([]float64, ncomp),
	}
}

// Validate rejects calls no routine can run.
func (c *Call) Validate() error {
	if c.NDim < 1 || c.NDim > MaxDim {
		return fmt.Errorf("%s: ndim %d out of range [1,%d]", c.Algorithm, c.NDim, MaxDim)
	}
	if c.NComp < 1 || c.NComp > MaxComp {
		return fmt.Errorf("%s: ncomp %d out of range [1,%d]", c.Algorithm, c.NComp, MaxComp)
	}
	if c.Handle == 0 {
		return errors.New("nil handle")
	}
	return nil
}

// Runner is satisfied by anything that can execute a Call.
type Runner interface {
	Run(ctx context.Context, c Call) (Output, error)
}
