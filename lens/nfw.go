package lens

import (
	"math"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// nfwBranchTol is the half-width of the x≈1 band where the auxiliary
// functions switch to their exact removable-singularity limits, keeping
// the arctan/arctanh branches away from their domain boundaries.
const nfwBranchTol = 1e-8

// NFW is a Navarro–Frenk–White halo profile parametrized by halo mass m
// (Msun, Δ=200 spherical overdensity) and concentration c. The scale
// radius follows from r_Δ = (3m/(4π·Δ·ρ_cr))^⅓, r_s = r_Δ/c, with ρ_cr
// the critical density at the lens redshift.
//
// Parameter registration order: z_l, x0, y0, m, c.
type NFW struct {
	thinLens
	name string
	reg  *params.Registry
}

// NFWOptions configures NewNFW. Nil fields mark the parameter dynamic.
type NFWOptions struct {
	// ZLens is the lens redshift z_l.
	ZLens *float64
	// X0, Y0 center the halo in the image plane, in arcsec.
	X0, Y0 *float64
	// Mass is the halo mass m in Msun.
	Mass *float64
	// Concentration is the halo concentration c.
	Concentration *float64
}

// NewNFW builds an NFW halo under the given model name.
func NewNFW(name string, cosmology cosmo.Cosmology, opts NFWOptions) (*NFW, error) {
	reg := params.NewRegistry(name)
	fields := []struct {
		name  string
		value *float64
	}{
		{"z_l", opts.ZLens},
		{"x0", opts.X0},
		{"y0", opts.Y0},
		{"m", opts.Mass},
		{"c", opts.Concentration},
	}
	for _, f := range fields {
		if err := addParam(reg, f.name, f.value); err != nil {
			return nil, err
		}
	}

	n := &NFW{name: name, reg: reg}
	n.thinLens = thinLens{cosmology: cosmology, prim: n}

	return n, nil
}

// addParam registers a static or dynamic parameter from an options field.
func addParam(reg *params.Registry, name string, v *float64) error {
	if v == nil {
		return reg.AddDynamic(name)
	}

	return reg.Add(name, *v)
}

// Name implements Lens.
func (n *NFW) Name() string { return n.name }

// LensRedshift implements ThinLens.
func (n *NFW) LensRedshift(p *params.Packed) (float64, error) {
	return n.reg.Resolve(p, "z_l")
}

// resolve unpacks (z_l, x0, y0, m, c) against the bundle.
func (n *NFW) resolve(p *params.Packed) (zL, x0, y0, m, c float64, err error) {
	values, err := n.reg.Unpack(p)
	if err != nil {
		return 0, 0, 0, 0, 0, err
	}

	return values[0], values[1], values[2], values[3], values[4], nil
}

// scales derives the angular scale radius θ_s (arcsec) and convergence
// scale κ_s = ρ_s·r_s/Σ_cr for the resolved halo parameters.
func (n *NFW) scales(zL, zS, m, c float64, p *params.Packed) (thetaS, kappaS float64, err error) {
	rhoCr, err := n.cosmology.CriticalDensity(zL, p)
	if err != nil {
		return 0, 0, err
	}
	rDelta := math.Cbrt(3 * m / (4 * math.Pi * overdensity * rhoCr))
	rs := rDelta / c
	rhoS := overdensity / 3 * rhoCr * c * c * c / (math.Log(1+c) - c/(1+c))

	dl, err := n.cosmology.AngularDiameterDistance(zL, p)
	if err != nil {
		return 0, 0, err
	}
	sigmaCr, err := n.cosmology.CriticalSurfaceDensity(zL, zS, p)
	if err != nil {
		return 0, 0, err
	}

	return rs / dl * RadToArcsec, rhoS * rs / sigmaCr, nil
}

// nfwF is the Wright–Brainerd auxiliary F(x). Each branch only ever
// evaluates expressions valid on its own domain; the x≈1 band returns
// the exact limit 0.
func nfwF(x float64) float64 {
	switch {
	case x > 1+nfwBranchTol:
		return 1 - 2/math.Sqrt(x*x-1)*math.Atan(math.Sqrt((x-1)/(x+1)))
	case x < 1-nfwBranchTol:
		return 1 - 2/math.Sqrt(1-x*x)*math.Atanh(math.Sqrt((1-x)/(1+x)))
	default:
		return 0
	}
}

// nfwFRatio is F(x)/(x²−1) with its removable singularity at x=1 filled
// by the exact limit ⅓.
func nfwFRatio(x float64) float64 {
	if math.Abs(x-1) <= nfwBranchTol {
		return 1.0 / 3.0
	}

	return nfwF(x) / (x*x - 1)
}

// nfwG is the potential auxiliary G(x); G(1) = ½·ln²(½).
func nfwG(x float64) float64 {
	l := math.Log(x / 2)
	term := 0.5 * l * l
	switch {
	case x > 1+nfwBranchTol:
		a := math.Atan(math.Sqrt((x - 1) / (x + 1)))
		return term + 2*a*a
	case x < 1-nfwBranchTol:
		a := math.Atanh(math.Sqrt((1 - x) / (1 + x)))
		return term - 2*a*a
	default:
		return term
	}
}

// nfwH is the deflection auxiliary H(x) = x·G'(x); H(1) = 1 + ln(½).
func nfwH(x float64) float64 {
	term := math.Log(x / 2)
	switch {
	case x > 1+nfwBranchTol:
		return term + 2/math.Sqrt(x*x-1)*math.Atan(math.Sqrt((x-1)/(x+1)))
	case x < 1-nfwBranchTol:
		return term + 2/math.Sqrt(1-x*x)*math.Atanh(math.Sqrt((1-x)/(1+x)))
	default:
		return term + 1
	}
}

// DeflectionAngle implements the reduced deflection angle
// α(θ) = 4κ_s·θ_s·H(x)/x pointing radially, x = θ/θ_s.
func (n *NFW) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	zL, x0, y0, m, c, err := n.resolve(p)
	if err != nil {
		return nil, nil, err
	}
	thetaS, kappaS, err := n.scales(zL, zS, m, c, p)
	if err != nil {
		return nil, nil, err
	}

	tx, ty := translate(x, y, x0, y0)
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	for i := range tx {
		th := math.Hypot(tx[i], ty[i])
		if th == 0 {
			continue // α → 0 at the center
		}
		xd := th / thetaS
		alpha := 4 * kappaS * thetaS * nfwH(xd) / xd
		ax[i] = alpha * tx[i] / th
		ay[i] = alpha * ty[i] / th
	}

	return ax, ay, nil
}

// Convergence implements κ(θ) = 2κ_s·F(x)/(x²−1), with the exact limit
// 2κ_s/3 on the x=1 branch boundary.
func (n *NFW) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	zL, x0, y0, m, c, err := n.resolve(p)
	if err != nil {
		return nil, err
	}
	thetaS, kappaS, err := n.scales(zL, zS, m, c, p)
	if err != nil {
		return nil, err
	}

	tx, ty := translate(x, y, x0, y0)
	kappa := make([]float64, len(x))
	for i := range tx {
		xd := math.Hypot(tx[i], ty[i]) / thetaS
		kappa[i] = 2 * kappaS * nfwFRatio(xd)
	}

	return kappa, nil
}

// Potential implements ψ(θ) = 4κ_s·θ_s²·G(x), in arcsec².
func (n *NFW) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	zL, x0, y0, m, c, err := n.resolve(p)
	if err != nil {
		return nil, err
	}
	thetaS, kappaS, err := n.scales(zL, zS, m, c, p)
	if err != nil {
		return nil, err
	}

	tx, ty := translate(x, y, x0, y0)
	psi := make([]float64, len(x))
	for i := range tx {
		xd := math.Hypot(tx[i], ty[i]) / thetaS
		psi[i] = 4 * kappaS * thetaS * thetaS * nfwG(xd)
	}

	return psi, nil
}
