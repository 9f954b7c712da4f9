package lens

import (
	"math"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// PointMass is a point-mass lens with Einstein radius th_ein:
// ψ = θ_E²·ln r, α = θ_E²·(x, y)/r², κ = 0 away from the center.
//
// Parameter registration order: z_l, x0, y0, th_ein.
type PointMass struct {
	thinLens
	name      string
	reg       *params.Registry
	softening float64
}

// PointMassOptions configures NewPointMass. Nil fields mark the
// parameter dynamic.
type PointMassOptions struct {
	// ZLens is the lens redshift z_l.
	ZLens *float64
	// X0, Y0 center the lens in the image plane, in arcsec.
	X0, Y0 *float64
	// EinsteinRadius is th_ein in arcsec.
	EinsteinRadius *float64
	// Softening regularizes the center: r² := x²+y²+s².
	Softening float64
}

// NewPointMass builds a point-mass lens under the given model name.
func NewPointMass(name string, cosmology cosmo.Cosmology, opts PointMassOptions) (*PointMass, error) {
	reg := params.NewRegistry(name)
	fields := []struct {
		name  string
		value *float64
	}{
		{"z_l", opts.ZLens},
		{"x0", opts.X0},
		{"y0", opts.Y0},
		{"th_ein", opts.EinsteinRadius},
	}
	for _, f := range fields {
		if err := addParam(reg, f.name, f.value); err != nil {
			return nil, err
		}
	}

	pm := &PointMass{name: name, reg: reg, softening: opts.Softening}
	pm.thinLens = thinLens{cosmology: cosmology, prim: pm}

	return pm, nil
}

// Name implements Lens.
func (pm *PointMass) Name() string { return pm.name }

// LensRedshift implements ThinLens.
func (pm *PointMass) LensRedshift(p *params.Packed) (float64, error) {
	return pm.reg.Resolve(p, "z_l")
}

// resolve unpacks (z_l, x0, y0, th_ein) against the bundle.
func (pm *PointMass) resolve(p *params.Packed) (x0, y0, thetaE float64, err error) {
	values, err := pm.reg.Unpack(p)
	if err != nil {
		return 0, 0, 0, err
	}

	return values[1], values[2], values[3], nil
}

// DeflectionAngle implements α = θ_E²·(x, y)/r².
func (pm *PointMass) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	x0, y0, thetaE, err := pm.resolve(p)
	if err != nil {
		return nil, nil, err
	}

	tx, ty := translate(x, y, x0, y0)
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	for i := range tx {
		r2 := tx[i]*tx[i] + ty[i]*ty[i] + pm.softening*pm.softening
		if r2 == 0 {
			continue
		}
		ax[i] = thetaE * thetaE * tx[i] / r2
		ay[i] = thetaE * thetaE * ty[i] / r2
	}

	return ax, ay, nil
}

// Convergence is zero everywhere except the (excluded) central point.
// Parameters are resolved first so missing dynamic values fail loudly.
func (pm *PointMass) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	if _, _, _, err := pm.resolve(p); err != nil {
		return nil, err
	}

	return make([]float64, len(x)), nil
}

// Potential implements ψ = θ_E²·ln r, in arcsec².
func (pm *PointMass) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	x0, y0, thetaE, err := pm.resolve(p)
	if err != nil {
		return nil, err
	}

	tx, ty := translate(x, y, x0, y0)
	psi := make([]float64, len(x))
	for i := range tx {
		r2 := tx[i]*tx[i] + ty[i]*ty[i] + pm.softening*pm.softening
		psi[i] = 0.5 * thetaE * thetaE * math.Log(r2)
	}

	return psi, nil
}
