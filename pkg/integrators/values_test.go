package integrators_test

import (
	"math"
	"testing"

	"github.com/integrators-go/integrators/pkg/integrators"
)

// sentinel marks buffer cells that an IntoArgs call failed to overwrite.
var sentinel = math.NaN()

func filled(n int) []integrators.Real {
	buf := make([]integrators.Real, n)
	for i := range buf {
		buf[i] = sentinel
	}
	return buf
}

func roundTrip[A any, PA integrators.IntegrandInput[A]](t *testing.T, out integrators.IntegrandOutput, want A) {
	t.Helper()

	d := integrators.Dim[A, PA]()
	if d != out.NComp() {
		t.Fatalf("Dim() = %d, NComp() = %d for the same type", d, out.NComp())
	}

	buf := filled(d)
	out.IntoArgs(buf)
	for i, v := range buf {
		if math.IsNaN(v) {
			t.Fatalf("IntoArgs left position %d untouched", i)
		}
	}

	var got A
	PA(&got).FromArgs(buf)
	if any(got) != any(want) {
		t.Fatalf("round trip = %v, want %v", got, want)
	}
}

func TestRoundTripLaws(t *testing.T) {
	t.Run("Scalar", func(t *testing.T) {
		for _, v := range []integrators.Scalar{0, -1.5, 3.25, math.MaxFloat64, math.SmallestNonzeroFloat64} {
			roundTrip[integrators.Scalar](t, v, v)
		}
	})
	t.Run("Vec2", func(t *testing.T) {
		for _, v := range []integrators.Vec2{{}, {1, 2}, {-0.5, 1e300}} {
			roundTrip[integrators.Vec2](t, v, v)
		}
	})
	t.Run("Vec3", func(t *testing.T) {
		for _, v := range []integrators.Vec3{{}, {1, 2, 3}, {0.1, -0.2, 0.3}} {
			roundTrip[integrators.Vec3](t, v, v)
		}
	})
	t.Run("Vec4", func(t *testing.T) {
		for _, v := range []integrators.Vec4{{}, {1, 2, 3, 4}, {-1, -2, -3, -4}} {
			roundTrip[integrators.Vec4](t, v, v)
		}
	})
}

func TestDeclaredLengths(t *testing.T) {
	tests := []struct {
		name  string
		dim   int
		ncomp int
		want  int
	}{
		{"Scalar", integrators.Dim[integrators.Scalar](), integrators.NComp[integrators.Scalar](), 1},
		{"Vec2", integrators.Dim[integrators.Vec2](), integrators.NComp[integrators.Vec2](), 2},
		{"Vec3", integrators.Dim[integrators.Vec3](), integrators.NComp[integrators.Vec3](), 3},
		{"Vec4", integrators.Dim[integrators.Vec4](), integrators.NComp[integrators.Vec4](), 4},
	}
	for _, tt := range tests {
		if tt.dim != tt.want || tt.ncomp != tt.want {
			t.Errorf("%s: Dim=%d NComp=%d, want %d", tt.name, tt.dim, tt.ncomp, tt.want)
		}
	}
}

func TestIntoArgsOverwritesStaleData(t *testing.T) {
	buf := []integrators.Real{9, 9, 9}
	integrators.Vec3{1, 2, 3}.IntoArgs(buf)
	integrators.Vec3{}.IntoArgs(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("position %d kept stale value %v", i, v)
		}
	}
}

type sliceIter struct {
	items []integrators.IntegrationResult
}

func (s *sliceIter) Next() (integrators.IntegrationResult, bool) {
	if len(s.items) == 0 {
		return integrators.IntegrationResult{}, false
	}
	r := s.items[0]
	s.items = s.items[1:]
	return r, true
}

func TestCollect(t *testing.T) {
	it := &sliceIter{items: []integrators.IntegrationResult{{Value: 1, Error: 0.1}, {Value: 2, Error: 0.2}}}
	got := integrators.Collect(it)
	if len(got) != 2 || got[0].Value != 1 || got[1].Error != 0.2 {
		t.Fatalf("Collect = %+v", got)
	}
	if rest := integrators.Collect(it); len(rest) != 0 {
		t.Fatalf("second Collect = %+v, want empty", rest)
	}
}
