package lens

import (
	"math"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// ShearParametrization selects how an external shear field is supplied.
type ShearParametrization int

const (
	// CartesianShear parametrizes the field by components (gamma_1, gamma_2).
	CartesianShear ShearParametrization = iota
	// PolarShear parametrizes the field by magnitude and angle (gamma, phi);
	// values are converted polar→cartesian after unpacking, before any
	// closed form is evaluated.
	PolarShear
)

// ExternalShear is a uniform external shear field: the tidal distortion
// from structure outside the modeled lens. Its potential is
// ψ = ½γ₁(x²−y²) + γ₂xy and its convergence is identically zero.
//
// Parameter registration order: z_l, then (gamma_1, gamma_2) for the
// cartesian parametrization or (gamma, phi) for the polar one.
type ExternalShear struct {
	thinLens
	name            string
	reg             *params.Registry
	parametrization ShearParametrization
}

// ExternalShearOptions configures NewExternalShear. Nil fields mark the
// parameter dynamic. Only the fields of the chosen parametrization are
// registered; the others are ignored.
type ExternalShearOptions struct {
	// ZLens is the lens redshift z_l.
	ZLens *float64
	// Parametrization chooses cartesian or polar supply.
	Parametrization ShearParametrization
	// Gamma1, Gamma2 are the cartesian shear components.
	Gamma1, Gamma2 *float64
	// Gamma, Phi are the polar magnitude and angle (radians).
	Gamma, Phi *float64
}

// NewExternalShear builds an external shear field under the given model name.
func NewExternalShear(name string, cosmology cosmo.Cosmology, opts ExternalShearOptions) (*ExternalShear, error) {
	reg := params.NewRegistry(name)
	if err := addParam(reg, "z_l", opts.ZLens); err != nil {
		return nil, err
	}
	switch opts.Parametrization {
	case CartesianShear:
		if err := addParam(reg, "gamma_1", opts.Gamma1); err != nil {
			return nil, err
		}
		if err := addParam(reg, "gamma_2", opts.Gamma2); err != nil {
			return nil, err
		}
	case PolarShear:
		if err := addParam(reg, "gamma", opts.Gamma); err != nil {
			return nil, err
		}
		if err := addParam(reg, "phi", opts.Phi); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownParametrization
	}

	s := &ExternalShear{name: name, reg: reg, parametrization: opts.Parametrization}
	s.thinLens = thinLens{cosmology: cosmology, prim: s}

	return s, nil
}

// PolarToCartesianShear converts (γ, φ) to (γ₁, γ₂):
// γ₁ = γ·cos2φ, γ₂ = γ·sin2φ.
func PolarToCartesianShear(gamma, phi float64) (gamma1, gamma2 float64) {
	return gamma * math.Cos(2*phi), gamma * math.Sin(2*phi)
}

// CartesianToPolarShear converts (γ₁, γ₂) to (γ, φ) with φ ∈ (−π/2, π/2].
func CartesianToPolarShear(gamma1, gamma2 float64) (gamma, phi float64) {
	return math.Hypot(gamma1, gamma2), 0.5 * math.Atan2(gamma2, gamma1)
}

// Name implements Lens.
func (s *ExternalShear) Name() string { return s.name }

// LensRedshift implements ThinLens.
func (s *ExternalShear) LensRedshift(p *params.Packed) (float64, error) {
	return s.reg.Resolve(p, "z_l")
}

// resolve unpacks the shear parameters and returns cartesian components;
// a polar parametrization is converted here, so the closed forms below
// only ever see (γ₁, γ₂).
func (s *ExternalShear) resolve(p *params.Packed) (gamma1, gamma2 float64, err error) {
	values, err := s.reg.Unpack(p)
	if err != nil {
		return 0, 0, err
	}
	if s.parametrization == PolarShear {
		gamma1, gamma2 = PolarToCartesianShear(values[1], values[2])

		return gamma1, gamma2, nil
	}

	return values[1], values[2], nil
}

// DeflectionAngle implements the exact gradient of the shear potential:
// α = (γ₁x + γ₂y, γ₂x − γ₁y).
func (s *ExternalShear) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	g1, g2, err := s.resolve(p)
	if err != nil {
		return nil, nil, err
	}
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	for i := range x {
		ax[i] = g1*x[i] + g2*y[i]
		ay[i] = g2*x[i] - g1*y[i]
	}

	return ax, ay, nil
}

// Convergence is identically zero for an external shear. Parameters are
// still resolved first so that a missing dynamic value fails loudly
// instead of silently returning zeros.
func (s *ExternalShear) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	if _, _, err := s.resolve(p); err != nil {
		return nil, err
	}

	return make([]float64, len(x)), nil
}

// Potential implements ψ = ½γ₁(x²−y²) + γ₂xy, in arcsec².
func (s *ExternalShear) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	g1, g2, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	psi := make([]float64, len(x))
	for i := range x {
		psi[i] = 0.5*g1*(x[i]*x[i]-y[i]*y[i]) + g2*x[i]*y[i]
	}

	return psi, nil
}
