package mockcuba

import (
	"context"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
)

const defaultBatch = 1000

// Routine is an in-process integration routine.
type Routine struct {
	workers int
	seed    uint64
	calls   atomic.Int64
}

// Option configures a Routine.
type Option func(*Routine)

// WithWorkers evaluates each round with up to n concurrent callbacks. The
// integrand must then be safe for concurrent use.
func WithWorkers(n int) Option {
	return func(r *Routine) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSeed overrides the seed taken from the call. It only has an effect when
// the call requests Mersenne Twister (nonzero seed).
func WithSeed(seed uint64) Option {
	return func(r *Routine) { r.seed = seed }
}

// New returns a Routine that evaluates serially.
func New(opts ...Option) *Routine {
	r := &Routine{workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Calls reports how many times Run was invoked.
func (r *Routine) Calls() int64 { return r.calls.Load() }

// Run integrates the landing pad registered under c.Handle.
func (r *Routine) Run(ctx context.Context, c backend.Call) (backend.Output, error) {
	r.calls.Add(1)
	if err := c.Validate(); err != nil {
		return backend.Output{}, err
	}
	if err := ctx.Err(); err != nil {
		return backend.Output{}, err
	}

	out := backend.NewOutput(c.NComp)
	out.HasRegions = c.Algorithm == backend.Suave || c.Algorithm == backend.Cuhre
	if c.Algorithm == backend.Cuhre && c.NDim < 2 {
		out.Fail = backend.FailBadDim
		return out, nil
	}

	src := r.points(c)
	est := newEstimator(c.NComp)
	maxEval := c.MaxEval
	if maxEval <= 0 {
		maxEval = math.MaxInt64
	}

	for round := int64(0); ; round++ {
		n := batchSize(c, round)
		if remaining := maxEval - out.NEval; n > remaining {
			n = remaining
		}
		if n <= 0 {
			out.Fail = 1
			break
		}

		x := src.next(int(n))
		f, dispatched, ok := r.evaluate(c, x, int(n))
		out.NEval += dispatched
		if !ok {
			out.Fail = backend.FailAborted
			break
		}
		est.add(f, int(n))

		if out.NEval >= c.MinEval && est.converged(c.EpsRel, c.EpsAbs) {
			out.Fail = backend.FailNone
			break
		}
	}

	est.report(&out)
	return out, nil
}

func batchSize(c backend.Call, round int64) int64 {
	switch c.Algorithm {
	case backend.Vegas:
		if c.NStart > 0 {
			return c.NStart + round*max(c.NIncrease, 0)
		}
	case backend.Suave:
		if c.NNew > 0 {
			return c.NNew
		}
	}
	return defaultBatch
}

// evaluate fills one row of f per point through backend.Dispatch and returns
// the number of callbacks made. It reports false as soon as any callback
// returns the abort status.
func (r *Routine) evaluate(c backend.Call, x []float64, n int) ([]float64, int64, bool) {
	f := make([]float64, n*c.NComp)
	var (
		aborted    atomic.Bool
		dispatched atomic.Int64
	)

	eval := func(lo, hi int) {
		for i := lo; i < hi && !aborted.Load(); i++ {
			xi := x[i*c.NDim : (i+1)*c.NDim]
			fi := f[i*c.NComp : (i+1)*c.NComp]
			dispatched.Add(1)
			if backend.Dispatch(c.Handle, xi, fi) != backend.Success {
				aborted.Store(true)
			}
		}
	}

	if r.workers <= 1 {
		eval(0, n)
		return f, dispatched.Load(), !aborted.Load()
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	chunk := (n + r.workers - 1) / r.workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			eval(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return f, dispatched.Load(), !aborted.Load()
}

// sampler produces points in the unit hypercube, ndim reals per point.
type sampler interface {
	next(n int) []float64
}

func (r *Routine) points(c backend.Call) sampler {
	if c.Seed == 0 {
		return newAdditive(c.NDim)
	}
	seed := uint64(c.Seed)
	if r.seed != 0 {
		seed = r.seed
	}
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &uniform{ndim: c.NDim, rng: rand.New(mt)}
}

type uniform struct {
	ndim int
	rng  *rand.Rand
}

func (u *uniform) next(n int) []float64 {
	x := make([]float64, n*u.ndim)
	for i := range x {
		x[i] = u.rng.Float64()
	}
	return x
}

// additive is the R_d sequence: point k is frac(0.5 + k*alpha) with alpha
// derived from the generalized golden ratio of dimension ndim.
type additive struct {
	alpha []float64
	k     int64
}

func newAdditive(ndim int) *additive {
	phi := 2.0
	for i := 0; i < 64; i++ {
		phi = math.Pow(1+phi, 1/float64(ndim+1))
	}
	alpha := make([]float64, ndim)
	for j := range alpha {
		alpha[j] = math.Mod(math.Pow(1/phi, float64(j+1)), 1)
	}
	return &additive{alpha: alpha}
}

func (a *additive) next(n int) []float64 {
	ndim := len(a.alpha)
	x := make([]float64, n*ndim)
	for i := 0; i < n; i++ {
		a.k++
		for j, aj := range a.alpha {
			_, frac := math.Modf(0.5 + float64(a.k)*aj)
			x[i*ndim+j] = frac
		}
	}
	return x
}

// estimator accumulates per-round moments for every component.
type estimator struct {
	ncomp  int
	counts []float64
	means  [][]float64
	vars   [][]float64
}

func newEstimator(ncomp int) *estimator {
	return &estimator{ncomp: ncomp, means: make([][]float64, ncomp), vars: make([][]float64, ncomp)}
}

func (e *estimator) add(f []float64, n int) {
	col := make([]float64, n)
	for j := 0; j < e.ncomp; j++ {
		for i := 0; i < n; i++ {
			col[i] = f[i*e.ncomp+j]
		}
		mean, variance := stat.MeanVariance(col, nil)
		if n < 2 {
			variance = 0
		}
		e.means[j] = append(e.means[j], mean)
		e.vars[j] = append(e.vars[j], variance)
	}
	e.counts = append(e.counts, float64(n))
}

// combined returns the count-weighted value, its standard error and the
// chi-square probability of the round means for component j.
func (e *estimator) combined(j int) (value, sigma, prob float64) {
	if len(e.counts) == 0 {
		return 0, 0, 0
	}
	value = stat.Mean(e.means[j], e.counts)

	var total, variance float64
	for k, n := range e.counts {
		total += n
		variance += n * e.vars[j][k]
	}
	sigma = math.Sqrt(variance) / total

	rounds := len(e.counts)
	if rounds < 2 {
		return value, sigma, 0
	}
	var chi2 float64
	dof := 0
	for k, n := range e.counts {
		if v := e.vars[j][k] / n; v > 0 {
			d := e.means[j][k] - value
			chi2 += d * d / v
			dof++
		}
	}
	if dof < 2 {
		return value, sigma, 0
	}
	prob = distuv.ChiSquared{K: float64(dof - 1)}.CDF(chi2)
	return value, sigma, prob
}

func (e *estimator) converged(epsRel, epsAbs float64) bool {
	for j := 0; j < e.ncomp; j++ {
		value, sigma, _ := e.combined(j)
		if sigma > max(epsAbs, epsRel*math.Abs(value)) {
			return false
		}
	}
	return true
}

func (e *estimator) report(out *backend.Output) {
	for j := 0; j < e.ncomp; j++ {
		out.Integral[j], out.Error[j], out.Prob[j] = e.combined(j)
	}
	out.NRegions = len(e.counts)
}
