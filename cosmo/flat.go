package cosmo

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/gravlens/gravlens/params"
)

// quadNodes is the Gauss–Legendre node count for distance integrals.
// Legendre quadrature converges spectrally on the smooth 1/E(z)
// integrand; 96 nodes hold the result well below float64 tolerance for
// any redshift of lensing interest.
const quadNodes = 96

// FlatLambdaCDM is a flat ΛCDM cosmology (matter + cosmological
// constant, radiation neglected) parametrized by h0 (km/s/Mpc) and Om0.
// Both parameters live in a params.Registry, so they may be bound
// statically at construction or supplied per call through a Packed
// bundle, keeping distance computations overridable end to end.
type FlatLambdaCDM struct {
	name string
	reg  *params.Registry
}

// FlatLambdaCDMOptions configures NewFlatLambdaCDM. Nil fields mark the
// parameter dynamic: it must then be supplied per call via the bundle.
type FlatLambdaCDMOptions struct {
	// H0 is the Hubble constant in km/s/Mpc.
	H0 *float64
	// Om0 is the matter density parameter today.
	Om0 *float64
}

// DefaultFlatLambdaCDMOptions binds H0=67.4 km/s/Mpc and Om0=0.315
// (Planck 2018) statically.
func DefaultFlatLambdaCDMOptions() FlatLambdaCDMOptions {
	h0, om0 := 67.4, 0.315
	return FlatLambdaCDMOptions{H0: &h0, Om0: &om0}
}

// NewFlatLambdaCDM builds a flat ΛCDM cosmology under the given model
// name, registering h0 then Om0.
func NewFlatLambdaCDM(name string, opts FlatLambdaCDMOptions) (*FlatLambdaCDM, error) {
	reg := params.NewRegistry(name)
	if err := addParam(reg, "h0", opts.H0); err != nil {
		return nil, err
	}
	if err := addParam(reg, "Om0", opts.Om0); err != nil {
		return nil, err
	}

	return &FlatLambdaCDM{name: name, reg: reg}, nil
}

// addParam registers a static or dynamic parameter from an options field.
func addParam(reg *params.Registry, name string, v *float64) error {
	if v == nil {
		return reg.AddDynamic(name)
	}

	return reg.Add(name, *v)
}

// Name implements Cosmology.
func (f *FlatLambdaCDM) Name() string { return f.name }

// resolve unpacks (h0, Om0) against the bundle.
func (f *FlatLambdaCDM) resolve(p *params.Packed) (h0, om0 float64, err error) {
	values, err := f.reg.Unpack(p)
	if err != nil {
		return 0, 0, err
	}

	return values[0], values[1], nil
}

// efunc is the dimensionless Hubble parameter E(z) for a flat universe.
func efunc(z, om0 float64) float64 {
	zp := 1 + z

	return math.Sqrt(om0*zp*zp*zp + (1 - om0))
}

// ComovingDistance implements Cosmology.
func (f *FlatLambdaCDM) ComovingDistance(z float64, p *params.Packed) (float64, error) {
	if z < 0 {
		return 0, ErrNegativeRedshift
	}
	h0, om0, err := f.resolve(p)
	if err != nil {
		return 0, err
	}
	if z == 0 {
		return 0, nil
	}
	hubbleDist := SpeedOfLightKmS / h0
	integral := quad.Fixed(func(zp float64) float64 {
		return 1 / efunc(zp, om0)
	}, 0, z, quadNodes, nil, 0)

	return hubbleDist * integral, nil
}

// AngularDiameterDistance implements Cosmology. In a flat universe
// D_A(z) = χ(z)/(1+z).
func (f *FlatLambdaCDM) AngularDiameterDistance(z float64, p *params.Packed) (float64, error) {
	chi, err := f.ComovingDistance(z, p)
	if err != nil {
		return 0, err
	}

	return chi / (1 + z), nil
}

// AngularDiameterDistanceZ1Z2 implements Cosmology. In a flat universe
// D_A(z1, z2) = (χ(z2) − χ(z1))/(1+z2).
func (f *FlatLambdaCDM) AngularDiameterDistanceZ1Z2(z1, z2 float64, p *params.Packed) (float64, error) {
	if z2 < z1 {
		return 0, ErrRedshiftOrder
	}
	chi1, err := f.ComovingDistance(z1, p)
	if err != nil {
		return 0, err
	}
	chi2, err := f.ComovingDistance(z2, p)
	if err != nil {
		return 0, err
	}

	return (chi2 - chi1) / (1 + z2), nil
}

// CriticalDensity implements Cosmology: ρ_cr(z) = ρ_cr,0·E²(z).
func (f *FlatLambdaCDM) CriticalDensity(z float64, p *params.Packed) (float64, error) {
	if z < 0 {
		return 0, ErrNegativeRedshift
	}
	h0, om0, err := f.resolve(p)
	if err != nil {
		return 0, err
	}
	h := h0 / 100
	e := efunc(z, om0)

	return critDensityConst * h * h * e * e, nil
}

// CriticalSurfaceDensity implements Cosmology:
// Σ_cr = D_s / (4π·(G/c²)·D_l·D_ls).
func (f *FlatLambdaCDM) CriticalSurfaceDensity(zL, zS float64, p *params.Packed) (float64, error) {
	if zL >= zS {
		return 0, ErrRedshiftOrder
	}
	dl, err := f.AngularDiameterDistance(zL, p)
	if err != nil {
		return 0, err
	}
	ds, err := f.AngularDiameterDistance(zS, p)
	if err != nil {
		return 0, err
	}
	dls, err := f.AngularDiameterDistanceZ1Z2(zL, zS, p)
	if err != nil {
		return 0, err
	}

	return ds / (4 * math.Pi * GravOverC2 * dl * dls), nil
}
