//go:build cgo && cuba

package backend

/*
#cgo LDFLAGS: -lcuba -lm
#include <stdlib.h>
#include <cuba.h>

extern int integrators_cuba_integrand(int*, double*, int*, double*, void*);

static void integrators_serial(void) {
	int n = 0, p = 10000;
	cubacores(&n, &p);
}

static void integrators_vegas(int ndim, int ncomp, void *userdata,
		double epsrel, double epsabs, int flags, int seed,
		long long mineval, long long maxeval,
		long long nstart, long long nincrease, long long nbatch, int gridno,
		long long *neval, int *fail, double *integral, double *error, double *prob) {
	llVegas(ndim, ncomp, (integrand_t)integrators_cuba_integrand, userdata, 1,
		epsrel, epsabs, flags, seed, mineval, maxeval,
		nstart, nincrease, nbatch, gridno, NULL, NULL,
		neval, fail, integral, error, prob);
}

static void integrators_suave(int ndim, int ncomp, void *userdata,
		double epsrel, double epsabs, int flags, int seed,
		long long mineval, long long maxeval,
		long long nnew, long long nmin, double flatness,
		int *nregions, long long *neval, int *fail, double *integral, double *error, double *prob) {
	llSuave(ndim, ncomp, (integrand_t)integrators_cuba_integrand, userdata, 1,
		epsrel, epsabs, flags, seed, mineval, maxeval,
		nnew, nmin, flatness, NULL, NULL,
		nregions, neval, fail, integral, error, prob);
}

static void integrators_cuhre(int ndim, int ncomp, void *userdata,
		double epsrel, double epsabs, int flags,
		long long mineval, long long maxeval, int key,
		int *nregions, long long *neval, int *fail, double *integral, double *error, double *prob) {
	llCuhre(ndim, ncomp, (integrand_t)integrators_cuba_integrand, userdata, 1,
		epsrel, epsabs, flags, mineval, maxeval, key, NULL, NULL,
		nregions, neval, fail, integral, error, prob);
}
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"unsafe"
)

// Cuba keeps global state (core count, spin workers); one native integration
// runs at a time.
var nativeMu sync.Mutex

// Native runs calls through libcuba.
type Native struct{}

// Run executes c with forked worker processes disabled, so every callback
// runs on the calling goroutine's thread. ctx is consulted only before the
// native call starts; cancellation during the call is the evaluator's job.
func (Native) Run(ctx context.Context, c Call) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if err := c.Validate(); err != nil {
		return Output{}, err
	}

	n := C.size_t(c.NComp) * C.size_t(unsafe.Sizeof(C.double(0)))
	integral := (*C.double)(C.malloc(n))
	errs := (*C.double)(C.malloc(n))
	prob := (*C.double)(C.malloc(n))
	defer C.free(unsafe.Pointer(integral))
	defer C.free(unsafe.Pointer(errs))
	defer C.free(unsafe.Pointer(prob))
	if integral == nil || errs == nil || prob == nil {
		return Output{}, fmt.Errorf("%s: failed to allocate result buffers", c.Algorithm)
	}

	var (
		nregions C.int
		neval    C.longlong
		fail     C.int
	)

	nativeMu.Lock()
	defer nativeMu.Unlock()
	C.integrators_serial()

	out := Output{}
	switch c.Algorithm {
	case Vegas:
		// Convert uintptr to unsafe.Pointer inline when passing to C.
		//nolint:govet // Intentional uintptr to unsafe.Pointer conversion for CGO
		C.integrators_vegas(C.int(c.NDim), C.int(c.NComp), unsafe.Pointer(uintptr(c.Handle)),
			C.double(c.EpsRel), C.double(c.EpsAbs), C.int(c.Flags), C.int(c.Seed),
			C.longlong(c.MinEval), C.longlong(c.MaxEval),
			C.longlong(c.NStart), C.longlong(c.NIncrease), C.longlong(c.NBatch), C.int(c.GridNo),
			&neval, &fail, integral, errs, prob)
	case Suave:
		//nolint:govet // Intentional uintptr to unsafe.Pointer conversion for CGO
		C.integrators_suave(C.int(c.NDim), C.int(c.NComp), unsafe.Pointer(uintptr(c.Handle)),
			C.double(c.EpsRel), C.double(c.EpsAbs), C.int(c.Flags), C.int(c.Seed),
			C.longlong(c.MinEval), C.longlong(c.MaxEval),
			C.longlong(c.NNew), C.longlong(c.NMin), C.double(c.Flatness),
			&nregions, &neval, &fail, integral, errs, prob)
		out.HasRegions = true
	case Cuhre:
		//nolint:govet // Intentional uintptr to unsafe.Pointer conversion for CGO
		C.integrators_cuhre(C.int(c.NDim), C.int(c.NComp), unsafe.Pointer(uintptr(c.Handle)),
			C.double(c.EpsRel), C.double(c.EpsAbs), C.int(c.Flags),
			C.longlong(c.MinEval), C.longlong(c.MaxEval), C.int(c.Key),
			&nregions, &neval, &fail, integral, errs, prob)
		out.HasRegions = true
	default:
		return Output{}, fmt.Errorf("unsupported algorithm %s", c.Algorithm)
	}

	out.NRegions = int(nregions)
	out.NEval = int64(neval)
	out.Fail = int(fail)
	out.Integral = cDoublesToGo(integral, c.NComp)
	out.Error = cDoublesToGo(errs, c.NComp)
	out.Prob = cDoublesToGo(prob, c.NComp)
	return out, nil
}

// cDoublesToGo copies n doubles out of C memory.
func cDoublesToGo(p *C.double, n int) []float64 {
	out := make([]float64, n)
	copy(out, unsafe.Slice((*float64)(unsafe.Pointer(p)), n))
	return out
}

// Version reports the linked library family.
func Version() string { return "cuba-4" }
