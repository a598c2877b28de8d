//go:build !cgo || !cuba

package cuba_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/integrators-go/integrators/pkg/integrators"
	"github.com/integrators-go/integrators/pkg/integrators/cuba"
)

func TestNativeNotBuilt(t *testing.T) {
	_, err := cuba.Integrate(context.Background(), cuba.NewVegas(),
		func(x integrators.Scalar) integrators.Scalar { return x }, 1e-3, 0)
	require.ErrorIs(t, err, cuba.ErrNotBuilt)
	require.Equal(t, "unavailable", integrators.CubaVersion())
	require.False(t, integrators.CubaLinked())
}
