package cuba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/integrators-go/integrators/pkg/integrators/internal/backend"
)

func TestCommonFlags(t *testing.T) {
	tests := []struct {
		c    Common
		want int
	}{
		{Common{}, 0},
		{Common{Verbosity: 2}, 2},
		{Common{Verbosity: 7}, 3},
		{Common{LastSamplesOnly: true}, 4},
		{Common{NoSmoothing: true}, 8},
		{Common{Verbosity: 1, LastSamplesOnly: true, NoSmoothing: true}, 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.Flags(), "%+v", tt.c)
	}
}

func TestRandomSourceSeed(t *testing.T) {
	assert.Equal(t, 0, Sobol.seed(0))
	assert.Equal(t, 0, Sobol.seed(99))
	assert.Equal(t, defaultMTSeed, MersenneTwister.seed(0))
	assert.Equal(t, 99, MersenneTwister.seed(99))
}

func TestParseRandomNumberSource(t *testing.T) {
	for name, want := range map[string]RandomNumberSource{
		"":         Sobol,
		"sobol":    Sobol,
		"mersenne": MersenneTwister,
		"mt":       MersenneTwister,
	} {
		got, err := ParseRandomNumberSource(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseRandomNumberSource("ranlux")
	assert.Error(t, err)
	assert.Equal(t, "mersenne", MersenneTwister.String())
}

func TestVegasCall(t *testing.T) {
	c := NewVegas().
		WithMaxEval(1e6).
		WithNStart(2000).
		WithRandomSource(MersenneTwister, 7).
		call()

	assert.Equal(t, backend.Vegas, c.Algorithm)
	assert.EqualValues(t, 1e6, c.MaxEval)
	assert.EqualValues(t, 2000, c.NStart)
	assert.EqualValues(t, 500, c.NIncrease)
	assert.Equal(t, 7, c.Seed)
}

func TestSuaveCall(t *testing.T) {
	c := NewSuave().WithNNew(300).WithFlatness(10).call()
	assert.Equal(t, backend.Suave, c.Algorithm)
	assert.EqualValues(t, 300, c.NNew)
	assert.Equal(t, 10.0, c.Flatness)
	assert.Zero(t, c.Seed)
}

func TestCuhreIgnoresRandomSource(t *testing.T) {
	cu := NewCuhre().WithKey(11)
	cu.RandomSource, cu.Seed = MersenneTwister, 3
	c := cu.call()
	assert.Equal(t, backend.Cuhre, c.Algorithm)
	assert.Zero(t, c.Seed)
	assert.Equal(t, 11, c.Key)
}

func TestCheckDims(t *testing.T) {
	tests := []struct {
		alg   Algorithm
		ndim  int
		ncomp int
		want  error
	}{
		{NewVegas(), 1, 1, nil},
		{NewVegas(), 0, 1, ErrBadDim},
		{NewVegas(), backend.MaxDim + 1, 1, ErrBadDim},
		{NewSuave(), 3, 0, ErrBadComp},
		{NewSuave(), 3, backend.MaxComp + 1, ErrBadComp},
		{NewCuhre(), 1, 1, ErrBadDim},
		{NewCuhre(), 2, 1, nil},
	}
	for _, tt := range tests {
		err := checkDims(tt.alg, tt.ndim, tt.ncomp)
		if tt.want == nil {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, tt.want, "%s ndim=%d ncomp=%d", tt.alg.Name(), tt.ndim, tt.ncomp)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"vegas", "suave", "cuhre"} {
		alg, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, alg.Name())
	}
	_, ok := ByName("divonne")
	assert.False(t, ok)
}
