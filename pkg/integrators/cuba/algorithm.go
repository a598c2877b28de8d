package cuba

import (
	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
)

// Call is the request a Routine executes.
type Call = backend.Call

// Algorithm is one of Vegas, Suave or Cuhre.
type Algorithm interface {
	// Name is the lower-case algorithm name used in errors and logs.
	Name() string
	// DimRange is the supported input dimensionality, inclusive.
	DimRange() (min, max int)
	// CompRange is the supported component count, inclusive.
	CompRange() (min, max int)

	call() Call
}

// Cuba flag bits shared by every routine.
const (
	flagVerbosityMask = 0x3
	flagLastSamples   = 1 << 2
	flagNoSmoothing   = 1 << 3
)

// Common holds settings every algorithm understands.
type Common struct {
	MinEval int64
	MaxEval int64
	// Verbosity is Cuba's progress output level, 0 (silent) to 3.
	Verbosity int
	// LastSamplesOnly bases the final estimate on the last iteration only
	// (Vegas, Suave).
	LastSamplesOnly bool
	// NoSmoothing disables smoothing of the importance function (Vegas).
	NoSmoothing bool
	// RandomSource and Seed select the sampling sequence (Vegas, Suave).
	RandomSource RandomNumberSource
	Seed         int
}

func defaultCommon() Common {
	return Common{MinEval: 0, MaxEval: 50000}
}

// Flags encodes the settings into Cuba's flags argument.
func (c Common) Flags() int {
	f := c.Verbosity & flagVerbosityMask
	if c.LastSamplesOnly {
		f |= flagLastSamples
	}
	if c.NoSmoothing {
		f |= flagNoSmoothing
	}
	return f
}

func (c Common) call(alg backend.Algorithm) Call {
	return Call{
		Algorithm: alg,
		Flags:     c.Flags(),
		Seed:      c.RandomSource.seed(c.Seed),
		MinEval:   c.MinEval,
		MaxEval:   c.MaxEval,
	}
}

// Vegas is importance-sampling Monte Carlo.
type Vegas struct {
	Common
	NStart    int64
	NIncrease int64
	NBatch    int64
	GridNo    int
}

// NewVegas returns Vegas with Cuba's documented defaults.
func NewVegas() *Vegas {
	return &Vegas{Common: defaultCommon(), NStart: 1000, NIncrease: 500, NBatch: 1000}
}

func (v *Vegas) Name() string               { return "vegas" }
func (v *Vegas) DimRange() (int, int)       { return 1, backend.MaxDim }
func (v *Vegas) CompRange() (int, int)      { return 1, backend.MaxComp }
func (v *Vegas) WithMinEval(n int64) *Vegas { v.MinEval = n; return v }
func (v *Vegas) WithMaxEval(n int64) *Vegas { v.MaxEval = n; return v }
func (v *Vegas) WithNStart(n int64) *Vegas  { v.NStart = n; return v }
func (v *Vegas) WithNIncrease(n int64) *Vegas {
	v.NIncrease = n
	return v
}
func (v *Vegas) WithNBatch(n int64) *Vegas { v.NBatch = n; return v }
func (v *Vegas) WithGridNo(n int) *Vegas   { v.GridNo = n; return v }
func (v *Vegas) WithRandomSource(s RandomNumberSource, seed int) *Vegas {
	v.RandomSource, v.Seed = s, seed
	return v
}

func (v *Vegas) call() Call {
	c := v.Common.call(backend.Vegas)
	c.NStart, c.NIncrease, c.NBatch, c.GridNo = v.NStart, v.NIncrease, v.NBatch, v.GridNo
	return c
}

// Suave is adaptive stratified sampling with importance sampling in each
// subregion.
type Suave struct {
	Common
	NNew     int64
	NMin     int64
	Flatness integrators.Real
}

// NewSuave returns Suave with Cuba's documented defaults.
func NewSuave() *Suave {
	return &Suave{Common: defaultCommon(), NNew: 1000, NMin: 2, Flatness: 25}
}

func (s *Suave) Name() string               { return "suave" }
func (s *Suave) DimRange() (int, int)       { return 1, backend.MaxDim }
func (s *Suave) CompRange() (int, int)      { return 1, backend.MaxComp }
func (s *Suave) WithMinEval(n int64) *Suave { s.MinEval = n; return s }
func (s *Suave) WithMaxEval(n int64) *Suave { s.MaxEval = n; return s }
func (s *Suave) WithNNew(n int64) *Suave    { s.NNew = n; return s }
func (s *Suave) WithNMin(n int64) *Suave    { s.NMin = n; return s }
func (s *Suave) WithFlatness(f integrators.Real) *Suave {
	s.Flatness = f
	return s
}
func (s *Suave) WithRandomSource(src RandomNumberSource, seed int) *Suave {
	s.RandomSource, s.Seed = src, seed
	return s
}

func (s *Suave) call() Call {
	c := s.Common.call(backend.Suave)
	c.NNew, c.NMin, c.Flatness = s.NNew, s.NMin, s.Flatness
	return c
}

// Cuhre is deterministic globally adaptive cubature. It needs at least two
// dimensions.
type Cuhre struct {
	Common
	// Key selects the cubature rule; 0 picks the default degree for the
	// dimension.
	Key int
}

// NewCuhre returns Cuhre with Cuba's documented defaults.
func NewCuhre() *Cuhre {
	return &Cuhre{Common: defaultCommon()}
}

func (c *Cuhre) Name() string               { return "cuhre" }
func (c *Cuhre) DimRange() (int, int)       { return 2, backend.MaxDim }
func (c *Cuhre) CompRange() (int, int)      { return 1, backend.MaxComp }
func (c *Cuhre) WithMinEval(n int64) *Cuhre { c.MinEval = n; return c }
func (c *Cuhre) WithMaxEval(n int64) *Cuhre { c.MaxEval = n; return c }
func (c *Cuhre) WithKey(key int) *Cuhre     { c.Key = key; return c }

func (c *Cuhre) call() Call {
	cl := c.Common.call(backend.Cuhre)
	cl.Seed = 0
	cl.Key = c.Key
	return cl
}

// checkDims validates ndim and ncomp against alg before any native call.
func checkDims(alg Algorithm, ndim, ncomp int) error {
	if lo, hi := alg.DimRange(); ndim < lo || ndim > hi {
		return BadDim(alg.Name(), ndim)
	}
	if lo, hi := alg.CompRange(); ncomp < lo || ncomp > hi {
		return BadComp(alg.Name(), ncomp)
	}
	return nil
}

// ByName returns a default-configured algorithm.
func ByName(name string) (Algorithm, bool) {
	switch name {
	case "vegas":
		return NewVegas(), true
	case "suave":
		return NewSuave(), true
	case "cuhre":
		return NewCuhre(), true
	}
	return nil, false
}
