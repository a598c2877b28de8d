package backend

import "sync"

// Handle is an opaque reference to a registered Evaluator that can be passed
// to C code as userdata.
type Handle uintptr

var (
	mu   sync.Mutex
	next Handle = 1
	reg         = map[Handle]Evaluator{}
)

// Register stores ev and returns its handle. The handle must be released with
// Release once the native call that uses it has returned.
func Register(ev Evaluator) Handle {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = ev
	return h
}

// Lookup returns the Evaluator registered under h.
func Lookup(h Handle) (Evaluator, bool) {
	if h == 0 {
		return nil, false
	}
	mu.Lock()
	ev, ok := reg[h]
	mu.Unlock()
	return ev, ok
}

// Release removes h from the registry. Releasing an unknown or zero handle is
// a no-op.
func Release(h Handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// Registered reports how many handles are live.
func Registered() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}
