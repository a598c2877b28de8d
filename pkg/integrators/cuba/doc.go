// Package cuba integrates typed Go integrands with the Cuba library's Vegas,
// Suave and Cuhre routines.
//
// # Usage
//
//	res, err := cuba.Integrate(ctx, cuba.NewVegas().WithMaxEval(1_000_000),
//	    func(p integrators.Vec2) integrators.Scalar {
//	        return integrators.Scalar(math.Exp(-p[0]*p[0] - p[1]*p[1]))
//	    }, 1e-4, 1e-12)
//	if err != nil {
//	    var cerr *cuba.Error
//	    if errors.As(err, &cerr) && cerr.Kind == cuba.KindDidNotConverge {
//	        // cerr.Results still holds the estimates
//	    }
//	    return err
//	}
//	fmt.Println(res.Component(0).Value)
//
// The integration domain is the unit hypercube; integrands map it onto the
// domain of interest themselves.
//
// # Routines
//
// By default Integrate runs the native library, which is linked only when
// building with cgo and the "cuba" tag (go build -tags cuba). Otherwise the
// native routine reports ErrNotBuilt. WithRoutine substitutes another Routine,
// such as mockcuba's in-process reference routine.
//
// # Errors
//
// Dimension and component counts are checked against the algorithm before any
// native call (ErrBadDim, ErrBadComp). An integrand that fails or panics aborts
// the whole integration (ErrAborted). A run that ends without reaching the
// requested precision returns ErrDidNotConverge with the estimates attached.
//
// # Concurrency
//
// The native routine runs one integration at a time and evaluates serially.
// Routines that evaluate concurrently require integrands that are safe for
// concurrent use.
package cuba
