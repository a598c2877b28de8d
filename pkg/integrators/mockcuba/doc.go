// Package mockcuba provides an in-process integration routine for testing and
// examples.
//
// Routine implements cuba.Routine without libcuba. It drives the registered
// landing pad through backend.Dispatch exactly as the native callback does, so
// code written against the native routine can be exercised with plain
// "go test".
//
// # Algorithm
//
// Every algorithm is served by the same plain Monte Carlo estimator:
//
//   - Samples are drawn over the unit hypercube in rounds of NStart points
//     (Vegas; each round grows by NIncrease), NNew points (Suave) or 1000
//     points (Cuhre).
//   - Per-round mean and variance come from gonum's stat package; rounds are
//     combined weighted by their sample counts.
//   - Prob is the chi-square probability that the round means are
//     inconsistent, from gonum's distuv.ChiSquared.
//   - The run stops once every component reaches max(epsabs, epsrel*|value|)
//     after at least MinEval evaluations, or when MaxEval is exhausted.
//
// Seed 0 selects a deterministic additive low-discrepancy sequence standing in
// for Sobol; any other seed draws from gonum's MT19937.
//
// # Usage
//
//	routine := mockcuba.New(mockcuba.WithWorkers(4))
//	res, err := cuba.Integrate[integrators.Vec2](ctx, cuba.NewVegas(), f, 1e-3, 0,
//	    cuba.WithRoutine(routine))
//
// # Fail codes
//
// Run reports fail 0 on convergence, 1 when MaxEval ran out first, -99 when
// an evaluation aborted and -1 when Cuhre is asked for fewer than two
// dimensions.
//
// # Limitations
//
// mockcuba is designed for testing and examples only:
//   - No adaptive subdivision or importance sampling
//   - Error estimates assume independent samples
//   - Not a substitute for libcuba's accuracy
package mockcuba
