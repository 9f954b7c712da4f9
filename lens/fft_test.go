package lens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravlens/gravlens/params"
)

// gaussianProfile is a synthetic profile with ψ = A·exp(−r²/2σ²), whose
// Hessian is known in closed form. It only backs the frequency-domain
// magnification tests.
type gaussianProfile struct {
	amp, sigma float64
}

func (g *gaussianProfile) Name() string { return "gauss" }

func (g *gaussianProfile) LensRedshift(p *params.Packed) (float64, error) { return 0.5, nil }

func (g *gaussianProfile) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	s2 := g.sigma * g.sigma
	for i := range x {
		e := g.amp * math.Exp(-(x[i]*x[i]+y[i]*y[i])/(2*s2))
		ax[i] = -e * x[i] / s2
		ay[i] = -e * y[i] / s2
	}

	return ax, ay, nil
}

func (g *gaussianProfile) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	kappa := make([]float64, len(x))
	for i := range x {
		xx, yy, _ := g.hessian(x[i], y[i])
		kappa[i] = 0.5 * (xx + yy)
	}

	return kappa, nil
}

func (g *gaussianProfile) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	psi := make([]float64, len(x))
	s2 := g.sigma * g.sigma
	for i := range x {
		psi[i] = g.amp * math.Exp(-(x[i]*x[i]+y[i]*y[i])/(2*s2))
	}

	return psi, nil
}

// hessian is the closed-form second-derivative triple (ψ_xx, ψ_yy, ψ_xy).
func (g *gaussianProfile) hessian(x, y float64) (xx, yy, xy float64) {
	s2 := g.sigma * g.sigma
	e := g.amp * math.Exp(-(x*x + y*y) / (2 * s2))
	xx = e * (x*x/s2 - 1) / s2
	yy = e * (y*y/s2 - 1) / s2
	xy = e * x * y / (s2 * s2)

	return xx, yy, xy
}

// magnification is μ from the closed-form Hessian.
func (g *gaussianProfile) magnification(x, y float64) float64 {
	xx, yy, xy := g.hessian(x, y)

	return 1 / ((1-xx)*(1-yy) - xy*xy)
}

// meshgrid builds an n×n "xy" grid spanning [lo, lo+n·d).
func meshgrid(n int, lo, d float64) (x, y [][]float64) {
	x = make([][]float64, n)
	y = make([][]float64, n)
	for i := 0; i < n; i++ {
		x[i] = make([]float64, n)
		y[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			x[i][j] = lo + d*float64(j)
			y[i][j] = lo + d*float64(i)
		}
	}

	return x, y
}

// TestMagnificationFFT_Gaussian compares the frequency-domain
// magnification with the closed form on a well-resolved Gaussian bump.
func TestMagnificationFFT_Gaussian(t *testing.T) {
	g := &gaussianProfile{amp: 0.5, sigma: 1}
	tl := &thinLens{prim: g}

	const n = 64
	d := 12.0 / n
	x, y := meshgrid(n, -6, d)

	mu, err := tl.MagnificationFFT(x, y, 1.5, nil)
	require.NoError(t, err)
	require.Len(t, mu, n)

	// At the grid center (0, 0) the Hessian is diag(−A/σ²) exactly.
	want := 1 / ((1 + 0.5) * (1 + 0.5))
	assert.InDelta(t, want, mu[n/2][n/2], 1e-4)

	// Interior samples track the closed form; edges carry the residual
	// spectral error and are excluded.
	for i := n / 4; i < 3*n/4; i++ {
		for j := n / 4; j < 3*n/4; j++ {
			assert.InDelta(t, g.magnification(x[i][j], y[i][j]), mu[i][j], 1e-3,
				"mu at (%g,%g)", x[i][j], y[i][j])
		}
	}
}

// TestMagnificationFFT_MatchesJacobian cross-checks the two numerical
// magnification paths against each other away from the bump center.
func TestMagnificationFFT_MatchesJacobian(t *testing.T) {
	g := &gaussianProfile{amp: 0.5, sigma: 1}
	tl := &thinLens{prim: g}

	const n = 64
	d := 12.0 / n
	x, y := meshgrid(n, -6, d)
	mu, err := tl.MagnificationFFT(x, y, 1.5, nil)
	require.NoError(t, err)

	i, j := n/2+4, n/2-3
	muFD, err := magnificationFD(tl, []float64{x[i][j]}, []float64{y[i][j]}, 1.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, muFD[0], mu[i][j], 1e-3)
}

// TestMagnificationFFT_GridValidation rejects every malformed grid shape.
func TestMagnificationFFT_GridValidation(t *testing.T) {
	g := &gaussianProfile{amp: 0.5, sigma: 1}
	tl := &thinLens{prim: g}

	x, y := meshgrid(4, -1, 0.5)

	// Too small.
	_, err := tl.MagnificationFFT(x[:1], y[:1], 1.5, nil)
	assert.ErrorIs(t, err, ErrNonUniformGrid)

	// Rectangular.
	_, err = tl.MagnificationFFT(x[:3], y[:3], 1.5, nil)
	assert.ErrorIs(t, err, ErrNonUniformGrid)

	// Non-uniform spacing.
	x2, y2 := meshgrid(4, -1, 0.5)
	x2[2][2] += 0.01
	_, err = tl.MagnificationFFT(x2, y2, 1.5, nil)
	assert.ErrorIs(t, err, ErrNonUniformGrid)

	// Transposed ("ij") layout: x constant along rows.
	x3, y3 := meshgrid(4, -1, 0.5)
	_, err = tl.MagnificationFFT(y3, x3, 1.5, nil)
	assert.ErrorIs(t, err, ErrNonUniformGrid)
}
