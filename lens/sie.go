package lens

import (
	"math"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// SIE is a singular isothermal ellipsoid with Einstein radius theta_E,
// axis ratio q ∈ (0, 1), and major-axis position angle phi. Closed forms
// follow Kormann et al. 1994 with b = θ_E·√q and f = √(1−q²), evaluated
// in the rotated profile frame:
//
//	ψ_ell = √(q²(s²+x²) + y²)
//	α     = (b/f·atan(fx/(ψ_ell+s)), b/f·atanh(fy/(ψ_ell+q²s)))
//	κ     = b/(2ψ_ell)
//	ψ     = x·αx + y·αy
//
// Parameter registration order: z_l, x0, y0, q, phi, theta_E.
type SIE struct {
	thinLens
	name      string
	reg       *params.Registry
	softening float64
}

// SIEOptions configures NewSIE. Nil fields mark the parameter dynamic.
type SIEOptions struct {
	// ZLens is the lens redshift z_l.
	ZLens *float64
	// X0, Y0 center the profile in the image plane, in arcsec.
	X0, Y0 *float64
	// AxisRatio is q ∈ (0, 1).
	AxisRatio *float64
	// PositionAngle is phi in radians.
	PositionAngle *float64
	// EinsteinRadius is theta_E in arcsec.
	EinsteinRadius *float64
	// Softening is the core softening length s in arcsec (0 = singular).
	Softening float64
}

// NewSIE builds a singular isothermal ellipsoid under the given model name.
func NewSIE(name string, cosmology cosmo.Cosmology, opts SIEOptions) (*SIE, error) {
	if opts.AxisRatio != nil && (*opts.AxisRatio <= 0 || *opts.AxisRatio >= 1) {
		return nil, ErrInvalidAxisRatio
	}
	reg := params.NewRegistry(name)
	fields := []struct {
		name  string
		value *float64
	}{
		{"z_l", opts.ZLens},
		{"x0", opts.X0},
		{"y0", opts.Y0},
		{"q", opts.AxisRatio},
		{"phi", opts.PositionAngle},
		{"theta_E", opts.EinsteinRadius},
	}
	for _, f := range fields {
		if err := addParam(reg, f.name, f.value); err != nil {
			return nil, err
		}
	}

	s := &SIE{name: name, reg: reg, softening: opts.Softening}
	s.thinLens = thinLens{cosmology: cosmology, prim: s}

	return s, nil
}

// Name implements Lens.
func (s *SIE) Name() string { return s.name }

// LensRedshift implements ThinLens.
func (s *SIE) LensRedshift(p *params.Packed) (float64, error) {
	return s.reg.Resolve(p, "z_l")
}

// resolve unpacks (z_l, x0, y0, q, phi, theta_E) and validates q, which
// may arrive per call through the bundle.
func (s *SIE) resolve(p *params.Packed) (x0, y0, q, phi, thetaE float64, err error) {
	values, err := s.reg.Unpack(p)
	if err != nil {
		return 0, 0, 0, 0, 0, err
	}
	q = values[3]
	if q <= 0 || q >= 1 {
		return 0, 0, 0, 0, 0, ErrInvalidAxisRatio
	}

	return values[1], values[2], q, values[4], values[5], nil
}

// deflectionFrame evaluates the frame-local deflection at (tx, ty).
func (s *SIE) deflectionFrame(tx, ty, q, thetaE float64) (ax, ay float64) {
	b := thetaE * math.Sqrt(q)
	f := math.Sqrt(1 - q*q)
	psi := math.Sqrt(q*q*(s.softening*s.softening+tx*tx) + ty*ty)
	if psi == 0 {
		return 0, 0 // undeflected exactly at a singular center
	}
	ax = b / f * math.Atan(f*tx/(psi+s.softening))
	ay = b / f * math.Atanh(f*ty/(psi+q*q*s.softening))

	return ax, ay
}

// DeflectionAngle implements the reduced deflection angle.
func (s *SIE) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	x0, y0, q, phi, thetaE, err := s.resolve(p)
	if err != nil {
		return nil, nil, err
	}

	tx, ty := translateRotate(x, y, x0, y0, phi)
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	for i := range tx {
		ax[i], ay[i] = s.deflectionFrame(tx[i], ty[i], q, thetaE)
	}
	derotate(ax, ay, phi)

	return ax, ay, nil
}

// Convergence implements κ = b/(2ψ_ell).
func (s *SIE) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	x0, y0, q, phi, thetaE, err := s.resolve(p)
	if err != nil {
		return nil, err
	}

	b := thetaE * math.Sqrt(q)
	tx, ty := translateRotate(x, y, x0, y0, phi)
	kappa := make([]float64, len(x))
	for i := range tx {
		psi := math.Sqrt(q*q*(s.softening*s.softening+tx[i]*tx[i]) + ty[i]*ty[i])
		kappa[i] = 0.5 * b / psi
	}

	return kappa, nil
}

// Potential implements ψ = x·αx + y·αy, exact for the isothermal profile
// (the potential is homogeneous of degree one).
func (s *SIE) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	x0, y0, q, phi, thetaE, err := s.resolve(p)
	if err != nil {
		return nil, err
	}

	tx, ty := translateRotate(x, y, x0, y0, phi)
	psi := make([]float64, len(x))
	for i := range tx {
		ax, ay := s.deflectionFrame(tx[i], ty[i], q, thetaE)
		psi[i] = tx[i]*ax + ty[i]*ay
	}

	return psi, nil
}
