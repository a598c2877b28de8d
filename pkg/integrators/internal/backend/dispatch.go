package backend

// Dispatch runs one evaluation for the Evaluator registered under h and maps
// the outcome to a Cuba status: Success, or Abort for an unknown handle, an
// evaluation error, or a panic. It never returns any other value and never
// panics.
//
// x and f are views over the routine's buffers; f is overwritten on success.
func Dispatch(h Handle, x, f []float64) (status int32) {
	defer func() {
		if recover() != nil {
			status = Abort
		}
	}()

	ev, ok := Lookup(h)
	if !ok {
		return Abort
	}
	if err := ev.Eval(x, f); err != nil {
		return Abort
	}
	return Success
}
