package cuba_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/cuba"
)

func raw(fail int) cuba.RawResults {
	return cuba.RawResults{
		NRegions:   7,
		HasRegions: true,
		NEval:      4000,
		Fail:       fail,
		Integral:   []float64{0.5, 1.25},
		Error:      []float64{1e-3, 2e-3},
		Prob:       []float64{0.1, 0.2},
	}
}

func TestParseResultsConverged(t *testing.T) {
	res, err := cuba.ParseResults("suave", raw(0))
	require.NoError(t, err)

	n, ok := res.NRegions()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.EqualValues(t, 4000, res.NEval())
	assert.Equal(t, []cuba.Result{
		{Value: 0.5, Error: 1e-3, Prob: 0.1},
		{Value: 1.25, Error: 2e-3, Prob: 0.2},
	}, res.Components())
}

func TestParseResultsNotConverged(t *testing.T) {
	want, err := cuba.ParseResults("suave", raw(0))
	require.NoError(t, err)

	for _, fail := range []int{1, 3} {
		res, err := cuba.ParseResults("suave", raw(fail))
		assert.Nil(t, res)
		require.ErrorIs(t, err, cuba.ErrDidNotConverge)
		assert.EqualError(t, err, "integral did not converge")

		partial, ok := cuba.PartialResults(err)
		require.True(t, ok)
		assert.Equal(t, want, partial)
	}
}

func TestParseResultsAborted(t *testing.T) {
	res, err := cuba.ParseResults("vegas", raw(-99))
	assert.Nil(t, res)
	require.ErrorIs(t, err, cuba.ErrAborted)
	assert.False(t, errors.Is(err, cuba.ErrDidNotConverge))

	var cerr *cuba.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cuba.KindAborted, cerr.Kind)
	require.NotNil(t, cerr.Results)
	assert.Equal(t, 2, cerr.Results.Len())
}

func TestParseResultsBadDim(t *testing.T) {
	_, err := cuba.ParseResults("cuhre", raw(-1))
	require.ErrorIs(t, err, cuba.ErrBadDim)
	_, ok := cuba.PartialResults(err)
	assert.False(t, ok)
}

func TestParseResultsInvalid(t *testing.T) {
	_, err := cuba.ParseResults("vegas", raw(-7))
	assert.ErrorContains(t, err, "unexpected fail status -7")

	r := raw(0)
	r.Prob = r.Prob[:1]
	_, err = cuba.ParseResults("vegas", r)
	assert.ErrorContains(t, err, "mismatched result buffers")
}

func TestResultsIterator(t *testing.T) {
	res, err := cuba.ParseResults("suave", raw(0))
	require.NoError(t, err)

	it := res.Results()
	r, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, integrators.IntegrationResult{Value: 0.5, Error: 1e-3}, r)
	r, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, integrators.IntegrationResult{Value: 1.25, Error: 2e-3}, r)

	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		assert.False(t, ok)
	}

	// A fresh iterator starts over; the first one stays exhausted.
	assert.Len(t, integrators.Collect(res.Results()), 2)
	assert.Empty(t, integrators.Collect(it))
}

func TestResultsWithoutRegions(t *testing.T) {
	r := raw(0)
	r.HasRegions = false
	res, err := cuba.ParseResults("vegas", r)
	require.NoError(t, err)

	n, ok := res.NRegions()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Contains(t, res.String(), "nregions: n/a")
}

func TestResultsAreCopies(t *testing.T) {
	comps := []cuba.Result{{Value: 1}}
	res := cuba.NewResults(0, false, 10, comps)
	comps[0].Value = 2
	assert.Equal(t, integrators.Real(1), res.Component(0).Value)

	out := res.Components()
	out[0].Value = 3
	assert.Equal(t, integrators.Real(1), res.Component(0).Value)
}
