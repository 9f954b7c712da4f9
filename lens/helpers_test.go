package lens_test

import (
	"testing"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/lens"
	"github.com/stretchr/testify/require"
)

// testCosmology builds the H0=70, Om0=0.3 flat ΛCDM shared by the lens
// tests.
func testCosmology(t *testing.T) *cosmo.FlatLambdaCDM {
	t.Helper()
	h0, om0 := 70.0, 0.3
	c, err := cosmo.NewFlatLambdaCDM("cosmo", cosmo.FlatLambdaCDMOptions{H0: &h0, Om0: &om0})
	require.NoError(t, err)

	return c
}

// potentialAt evaluates a lens potential at a single point.
func potentialAt(t *testing.T, l lens.ThinLens, x, y, zS float64) float64 {
	t.Helper()
	psi, err := l.Potential([]float64{x}, []float64{y}, zS, nil)
	require.NoError(t, err)

	return psi[0]
}

// gradPotentialFD estimates ∇ψ at a point by central differences.
func gradPotentialFD(t *testing.T, l lens.ThinLens, x, y, zS, h float64) (gx, gy float64) {
	t.Helper()
	gx = (potentialAt(t, l, x+h, y, zS) - potentialAt(t, l, x-h, y, zS)) / (2 * h)
	gy = (potentialAt(t, l, x, y+h, zS) - potentialAt(t, l, x, y-h, zS)) / (2 * h)

	return gx, gy
}

// laplacianPotentialFD estimates ∇²ψ at a point by the 5-point stencil.
func laplacianPotentialFD(t *testing.T, l lens.ThinLens, x, y, zS, h float64) float64 {
	t.Helper()
	center := potentialAt(t, l, x, y, zS)
	sum := potentialAt(t, l, x+h, y, zS) + potentialAt(t, l, x-h, y, zS) +
		potentialAt(t, l, x, y+h, zS) + potentialAt(t, l, x, y-h, zS)

	return (sum - 4*center) / (h * h)
}

// deflectionAt evaluates the reduced deflection at a single point.
func deflectionAt(t *testing.T, l lens.Lens, x, y, zS float64) (ax, ay float64) {
	t.Helper()
	axs, ays, err := l.DeflectionAngle([]float64{x}, []float64{y}, zS, nil)
	require.NoError(t, err)

	return axs[0], ays[0]
}

// convergenceAt evaluates κ at a single point.
func convergenceAt(t *testing.T, l lens.Lens, x, y, zS float64) float64 {
	t.Helper()
	kappa, err := l.Convergence([]float64{x}, []float64{y}, zS, nil)
	require.NoError(t, err)

	return kappa[0]
}
