//go:build cgo && cuba

package backend

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// integrators_cuba_integrand is the integrand_t Cuba calls for every point.
// userdata carries a Handle; x and f are viewed in place without copying.
//
//export integrators_cuba_integrand
func integrators_cuba_integrand(ndim *C.int, x *C.double, ncomp *C.int, f *C.double, userdata unsafe.Pointer) C.int {
	if ndim == nil || ncomp == nil || x == nil || f == nil {
		return C.int(Abort)
	}
	in := unsafe.Slice((*float64)(unsafe.Pointer(x)), int(*ndim))
	out := unsafe.Slice((*float64)(unsafe.Pointer(f)), int(*ncomp))
	return C.int(Dispatch(Handle(uintptr(userdata)), in, out))
}
