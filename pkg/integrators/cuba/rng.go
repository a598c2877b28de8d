package cuba

import "fmt"

// RandomNumberSource selects the generator used by Vegas and Suave.
type RandomNumberSource int

const (
	// Sobol is Cuba's quasi-random default.
	Sobol RandomNumberSource = iota
	// MersenneTwister is the pseudo-random alternative.
	MersenneTwister
)

// defaultMTSeed is the reference seed of MT19937.
const defaultMTSeed = 5489

func (s RandomNumberSource) String() string {
	switch s {
	case Sobol:
		return "sobol"
	case MersenneTwister:
		return "mersenne"
	default:
		return fmt.Sprintf("RandomNumberSource(%d)", int(s))
	}
}

// ParseRandomNumberSource accepts the names produced by String.
func ParseRandomNumberSource(name string) (RandomNumberSource, error) {
	switch name {
	case "sobol", "":
		return Sobol, nil
	case "mersenne", "mersenne-twister", "mt":
		return MersenneTwister, nil
	}
	return Sobol, fmt.Errorf("unknown random number source %q", name)
}

// seed maps the source onto Cuba's seed argument: zero selects Sobol, any
// other value selects Mersenne Twister (with RNG level 0 in flags).
func (s RandomNumberSource) seed(requested int) int {
	if s != MersenneTwister {
		return 0
	}
	if requested == 0 {
		return defaultMTSeed
	}
	return requested
}
