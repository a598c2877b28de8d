package cuba

import (
	"fmt"

	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
)

// Result is the estimate for one integrand component.
type Result struct {
	Value integrators.Real
	// Error is the estimated absolute uncertainty of Value.
	Error integrators.Real
	// Prob is the chi-square probability that the error estimate is not
	// reliable; values near 1 indicate an inconsistent estimate.
	Prob integrators.Real
}

// Results is the outcome of one integration call. It is read-only; accessors
// return copies.
type Results struct {
	nregions   int
	hasRegions bool
	neval      int64
	comps      []Result
}

var _ integrators.IntegrationResults = (*Results)(nil)

// NewResults builds a Results value. Pass hasRegions=false for algorithms
// that do not partition the domain (Vegas).
func NewResults(nregions int, hasRegions bool, neval int64, comps []Result) *Results {
	r := &Results{hasRegions: hasRegions, neval: neval, comps: append([]Result(nil), comps...)}
	if hasRegions {
		r.nregions = nregions
	}
	return r
}

// NRegions returns the number of subregions, when the algorithm reports one.
func (r *Results) NRegions() (int, bool) { return r.nregions, r.hasRegions }

// NEval returns the number of integrand evaluations performed.
func (r *Results) NEval() int64 { return r.neval }

// Len returns the number of components.
func (r *Results) Len() int { return len(r.comps) }

// Component returns the estimate for component i.
func (r *Results) Component(i int) Result { return r.comps[i] }

// Components returns a copy of all per-component estimates, in component order.
func (r *Results) Components() []Result { return append([]Result(nil), r.comps...) }

// Results returns a single-pass iterator over (value, error) pairs.
func (r *Results) Results() integrators.ResultIterator {
	return &ResultsIter{rest: r.comps}
}

func (r *Results) String() string {
	regions := "n/a"
	if r.hasRegions {
		regions = fmt.Sprint(r.nregions)
	}
	return fmt.Sprintf("cuba.Results{nregions: %s, neval: %d, results: %v}", regions, r.neval, r.comps)
}

// ResultsIter yields each component's value and error once.
type ResultsIter struct {
	rest []Result
}

// Next returns the next pair. Once exhausted it keeps returning false.
func (it *ResultsIter) Next() (integrators.IntegrationResult, bool) {
	if len(it.rest) == 0 {
		it.rest = nil
		return integrators.IntegrationResult{}, false
	}
	c := it.rest[0]
	it.rest = it.rest[1:]
	return integrators.IntegrationResult{Value: c.Value, Error: c.Error}, true
}

// RawResults is what a routine reports after an integration call.
type RawResults = backend.Output

// ParseResults turns a routine's raw output into Results and applies the
// convergence check: fail == 0 returns the results, fail > 0 returns a
// KindDidNotConverge error carrying them, and fail == -99 returns a
// KindAborted error. fail == -1 means the routine rejected the dimension.
func ParseResults(algorithm string, raw RawResults) (*Results, error) {
	n := len(raw.Integral)
	if len(raw.Error) != n || len(raw.Prob) != n {
		return nil, fmt.Errorf("cuba: %s: mismatched result buffers (integral=%d error=%d prob=%d)",
			algorithm, n, len(raw.Error), len(raw.Prob))
	}

	comps := make([]Result, n)
	for i := range comps {
		comps[i] = Result{Value: raw.Integral[i], Error: raw.Error[i], Prob: raw.Prob[i]}
	}
	res := NewResults(raw.NRegions, raw.HasRegions, raw.NEval, comps)

	switch {
	case raw.Fail == backend.FailNone:
		return res, nil
	case raw.Fail > 0:
		return nil, DidNotConverge(res)
	case raw.Fail == backend.FailAborted:
		return nil, &Error{Kind: KindAborted, Results: res}
	case raw.Fail == backend.FailBadDim:
		return nil, BadDim(algorithm, -1)
	default:
		return nil, fmt.Errorf("cuba: %s: unexpected fail status %d", algorithm, raw.Fail)
	}
}
