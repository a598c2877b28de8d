package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/integrators-go/integrators/internal/config"
	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/cuba"
	"github.com/integrators-go/integrators/pkg/integrators/logging"
	"github.com/integrators-go/integrators/pkg/integrators/mockcuba"
)

type runFlags struct {
	integrand string
	algorithm string
	routine   string
	epsRel    float64
	epsAbs    float64
	minEval   int64
	maxEval   int64
	rng       string
	seed      int
	workers   int
	metrics   bool
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Integrate a built-in integrand",
		Long: `Integrate a built-in integrand and print one line per component.

Examples:
  # Gaussian in three dimensions with the in-process routine
  integrate run --integrand gaussian --algorithm vegas --routine reference

  # Two-component polynomial through libcuba's Cuhre
  integrate run --integrand poly --algorithm cuhre --routine native --epsrel 1e-6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, &f, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runIntegrand(ctx, cmd.OutOrStdout(), f.integrand, cfg, f.metrics)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.integrand, "integrand", "gaussian", "built-in integrand (see 'integrate list')")
	fl.StringVar(&f.algorithm, "algorithm", "", "vegas, suave or cuhre")
	fl.StringVar(&f.routine, "routine", "", "native (libcuba) or reference (in-process)")
	fl.Float64Var(&f.epsRel, "epsrel", 0, "requested relative accuracy")
	fl.Float64Var(&f.epsAbs, "epsabs", 0, "requested absolute accuracy")
	fl.Int64Var(&f.minEval, "mineval", 0, "minimum number of evaluations")
	fl.Int64Var(&f.maxEval, "maxeval", 0, "maximum number of evaluations")
	fl.StringVar(&f.rng, "rng", "", "random number source for vegas and suave (sobol, mersenne)")
	fl.IntVar(&f.seed, "seed", 0, "mersenne twister seed")
	fl.IntVar(&f.workers, "workers", 0, "concurrent evaluations (reference routine only)")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the run")
	return cmd
}

// applyRunFlags copies explicitly set flags over cfg.
func applyRunFlags(cmd *cobra.Command, f *runFlags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fl.Changed("routine") {
		cfg.Routine = f.routine
	}
	if fl.Changed("epsrel") {
		cfg.EpsRel = f.epsRel
	}
	if fl.Changed("epsabs") {
		cfg.EpsAbs = f.epsAbs
	}
	if fl.Changed("mineval") {
		cfg.MinEval = f.minEval
	}
	if fl.Changed("maxeval") {
		cfg.MaxEval = f.maxEval
	}
	if fl.Changed("rng") {
		cfg.RNG = f.rng
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
}

func runIntegrand(ctx context.Context, out io.Writer, name string, cfg *config.Config, dumpMetrics bool) error {
	b, ok := builtins[name]
	if !ok {
		return fmt.Errorf("unknown integrand %q (see 'integrate list')", name)
	}
	alg, err := cfg.BuildAlgorithm()
	if err != nil {
		return err
	}

	zl, err := buildLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	reg := prometheus.NewRegistry()
	opts := []cuba.Option{
		cuba.WithLogger(logging.NewZap(zl)),
		cuba.WithMetrics(cuba.NewMetrics(reg)),
	}
	if cfg.Routine == config.RoutineReference {
		opts = append(opts, cuba.WithRoutine(mockcuba.New(mockcuba.WithWorkers(cfg.Workers))))
	}

	zl.Info("integrating",
		zap.String("integrand", b.name),
		zap.String("algorithm", alg.Name()),
		zap.String("routine", cfg.Routine),
	)
	res, err := b.run(ctx, alg, cfg.EpsRel, cfg.EpsAbs, opts...)
	switch {
	case err == nil:
		printResults(out, b, res, "converged")
	case errors.Is(err, cuba.ErrDidNotConverge):
		partial, _ := cuba.PartialResults(err)
		printResults(out, b, partial, "not converged")
	default:
		return err
	}

	if dumpMetrics {
		if err := writeMetrics(out, reg); err != nil {
			return err
		}
	}
	return nil
}

func printResults(out io.Writer, b builtin, res *cuba.Results, status string) {
	fmt.Fprintf(out, "%s: %s after %d evaluations", b.name, status, res.NEval())
	if n, ok := res.NRegions(); ok {
		fmt.Fprintf(out, " in %d regions", n)
	}
	fmt.Fprintln(out)

	i := 0
	for _, r := range integrators.Collect(res.Results()) {
		line := fmt.Sprintf("  [%d] %.10g +- %.3g", i, r.Value, r.Error)
		if i < len(b.exact) {
			line += fmt.Sprintf("  (exact %.10g, deviation %.2f sigma)", b.exact[i], sigmas(r, b.exact[i]))
		}
		fmt.Fprintln(out, line)
		i++
	}
}

func sigmas(r integrators.IntegrationResult, exact float64) float64 {
	if r.Error == 0 {
		return 0
	}
	return math.Abs(r.Value-exact) / r.Error
}

func writeMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
