package lens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravlens/gravlens/lens"
)

// TestThinLens_Raytrace checks β = θ − α through the derived path.
func TestThinLens_Raytrace(t *testing.T) {
	s := newTestShear(t)

	bx, by, err := s.Raytrace([]float64{1}, []float64{1}, 1.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, bx[0], 1e-15)
	assert.InDelta(t, 1.1, by[0], 1e-15)
}

// TestThinLens_PhysicalDeflectionAngle checks the D_s/D_ls rescaling of
// the reduced angle.
func TestThinLens_PhysicalDeflectionAngle(t *testing.T) {
	pm := newTestPointMass(t)
	c := pm.Cosmology()

	ds, err := c.AngularDiameterDistance(1.5, nil)
	require.NoError(t, err)
	dls, err := c.AngularDiameterDistanceZ1Z2(0.5, 1.5, nil)
	require.NoError(t, err)

	// Reduced deflection at (1, 0) is exactly θ_E²/θ = 1.
	ax, ay, err := pm.PhysicalDeflectionAngle([]float64{1}, []float64{0}, 1.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, ds/dls, ax[0], 1e-12)
	assert.InDelta(t, 0.0, ay[0], 1e-12)
}

// TestThinLens_SurfaceDensity checks Σ = κ·Σ_cr.
func TestThinLens_SurfaceDensity(t *testing.T) {
	n := newTestNFW(t)

	sigmaCr, err := n.Cosmology().CriticalSurfaceDensity(0.5, 1.5, nil)
	require.NoError(t, err)
	kappa := convergenceAt(t, n, 1.0, 0.0, 1.5)

	sigma, err := n.SurfaceDensity([]float64{1}, []float64{0}, 1.5, nil)
	require.NoError(t, err)
	assert.InEpsilon(t, kappa*sigmaCr, sigma[0], 1e-12)
}

// TestThinLens_TimeDelay cross-checks the assembled delay against the
// Fermat potential computed from the primitives.
func TestThinLens_TimeDelay(t *testing.T) {
	pm := newTestPointMass(t)
	c := pm.Cosmology()

	dl, err := c.AngularDiameterDistance(0.5, nil)
	require.NoError(t, err)
	ds, err := c.AngularDiameterDistance(1.5, nil)
	require.NoError(t, err)
	dls, err := c.AngularDiameterDistanceZ1Z2(0.5, 1.5, nil)
	require.NoError(t, err)

	ax, ay := deflectionAt(t, pm, 2.0, 0.0, 1.5)
	psi := potentialAt(t, pm, 2.0, 0.0, 1.5)
	fermat := 0.5*(ax*ax+ay*ay) - psi
	want := (1 + 0.5) / 9.71561e-15 * ds * dl / dls *
		fermat * lens.ArcsecToRad * lens.ArcsecToRad

	delay, err := pm.TimeDelay([]float64{2}, []float64{0}, 1.5, nil)
	require.NoError(t, err)
	assert.InEpsilon(t, want, delay[0], 1e-12)

	// A log potential dominates the quadratic term at θ = 2θ_E, so the
	// relative delay is negative there.
	assert.Negative(t, delay[0])
}

// TestThinLens_MagnificationMatchesClosedForm checks the Jacobian-derived
// magnification against the uniform-shear closed form at several points.
func TestThinLens_MagnificationMatchesClosedForm(t *testing.T) {
	s := newTestShear(t)

	mu, err := s.Magnification([]float64{0, 1, -4}, []float64{0, 2, 3}, 1.5, nil)
	require.NoError(t, err)
	for _, m := range mu {
		assert.InDelta(t, 1/(1-0.01), m, 1e-6)
	}
}

// TestThinLens_ShapeMismatch propagates through every derived operation.
func TestThinLens_ShapeMismatch(t *testing.T) {
	pm := newTestPointMass(t)
	x, y := []float64{1, 2}, []float64{1}

	_, _, err := pm.Raytrace(x, y, 1.5, nil)
	assert.ErrorIs(t, err, lens.ErrShapeMismatch)

	_, _, err = pm.PhysicalDeflectionAngle(x, y, 1.5, nil)
	assert.ErrorIs(t, err, lens.ErrShapeMismatch)

	_, err = pm.SurfaceDensity(x, y, 1.5, nil)
	assert.ErrorIs(t, err, lens.ErrShapeMismatch)

	_, err = pm.TimeDelay(x, y, 1.5, nil)
	assert.ErrorIs(t, err, lens.ErrShapeMismatch)

	_, err = pm.Magnification(x, y, 1.5, nil)
	assert.ErrorIs(t, err, lens.ErrShapeMismatch)
}
