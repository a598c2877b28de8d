package main

import (
	"context"
	"math"
	"sort"

	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/cuba"
)

// builtin is an integrand the command can run by name.
type builtin struct {
	name  string
	desc  string
	ndim  int
	ncomp int
	exact []float64
	run   func(ctx context.Context, alg cuba.Algorithm, epsRel, epsAbs float64, opts ...cuba.Option) (*cuba.Results, error)
}

func newBuiltin[A any, PA integrators.IntegrandInput[A], B integrators.IntegrandOutput](
	name, desc string, fn func(A) B, exact ...float64,
) builtin {
	return builtin{
		name:  name,
		desc:  desc,
		ndim:  integrators.Dim[A, PA](),
		ncomp: integrators.NComp[B](),
		exact: exact,
		run: func(ctx context.Context, alg cuba.Algorithm, epsRel, epsAbs float64, opts ...cuba.Option) (*cuba.Results, error) {
			return cuba.Integrate[A, PA](ctx, alg, fn, epsRel, epsAbs, opts...)
		},
	}
}

var builtins = map[string]builtin{}

func register(b builtin) { builtins[b.name] = b }

func init() {
	register(newBuiltin("gaussian", "exp(-|x|^2) over [0,1]^3",
		func(v integrators.Vec3) integrators.Scalar {
			return integrators.Scalar(math.Exp(-(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
		},
		math.Pow(math.Sqrt(math.Pi)/2*math.Erf(1), 3)))

	register(newBuiltin("sphere", "volume of the ball inscribed in [0,1]^3",
		func(v integrators.Vec3) integrators.Scalar {
			var r2 float64
			for _, c := range v {
				r2 += (c - 0.5) * (c - 0.5)
			}
			if r2 < 0.25 {
				return 1
			}
			return 0
		},
		math.Pi/6))

	register(newBuiltin("poly", "(x*y, x+y) over [0,1]^2",
		func(v integrators.Vec2) integrators.Vec2 {
			return integrators.Vec2{v[0] * v[1], v[0] + v[1]}
		},
		0.25, 1))

	register(newBuiltin("oscillator", "cos(x1+x2+x3+x4) over [0,1]^4",
		func(v integrators.Vec4) integrators.Scalar {
			return integrators.Scalar(math.Cos(v[0] + v[1] + v[2] + v[3]))
		},
		math.Pow(2-2*math.Cos(1), 2)*math.Cos(2)))
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
