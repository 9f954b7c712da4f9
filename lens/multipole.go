package lens

import (
	"math"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// Multipole is an order-m angular multipole perturbation (Xu et al.
// 2014, eqs. B3, B10–B12). With C = a_m/(1−m²) and φ' = φ − φ_m:
//
//	ψ = C·r·cos(mφ')
//	α = C·(cosφ·cos(mφ') + m·sinφ·sin(mφ'),
//	     sinφ·cos(mφ') − m·cosφ·sin(mφ'))
//	κ = a_m·cos(mφ')/(2r)
//
// The integer order m is fixed at construction; amplitude a_m and
// orientation phi_m are parameters.
//
// Parameter registration order: z_l, x0, y0, a_m, phi_m.
type Multipole struct {
	thinLens
	name  string
	reg   *params.Registry
	order int
}

// MultipoleOptions configures NewMultipole. Nil fields mark the
// parameter dynamic.
type MultipoleOptions struct {
	// ZLens is the lens redshift z_l.
	ZLens *float64
	// X0, Y0 center the perturbation in the image plane, in arcsec.
	X0, Y0 *float64
	// Amplitude is the multipole strength a_m.
	Amplitude *float64
	// Orientation is phi_m in radians.
	Orientation *float64
	// Order is the multipole moment m; must be ≥ 2.
	Order int
}

// NewMultipole builds an order-m multipole under the given model name.
func NewMultipole(name string, cosmology cosmo.Cosmology, opts MultipoleOptions) (*Multipole, error) {
	if opts.Order < 2 {
		return nil, ErrInvalidOrder
	}
	reg := params.NewRegistry(name)
	fields := []struct {
		name  string
		value *float64
	}{
		{"z_l", opts.ZLens},
		{"x0", opts.X0},
		{"y0", opts.Y0},
		{"a_m", opts.Amplitude},
		{"phi_m", opts.Orientation},
	}
	for _, f := range fields {
		if err := addParam(reg, f.name, f.value); err != nil {
			return nil, err
		}
	}

	mp := &Multipole{name: name, reg: reg, order: opts.Order}
	mp.thinLens = thinLens{cosmology: cosmology, prim: mp}

	return mp, nil
}

// Name implements Lens.
func (mp *Multipole) Name() string { return mp.name }

// Order returns the fixed multipole moment m.
func (mp *Multipole) Order() int { return mp.order }

// LensRedshift implements ThinLens.
func (mp *Multipole) LensRedshift(p *params.Packed) (float64, error) {
	return mp.reg.Resolve(p, "z_l")
}

// resolve unpacks (z_l, x0, y0, a_m, phi_m) against the bundle.
func (mp *Multipole) resolve(p *params.Packed) (x0, y0, am, phiM float64, err error) {
	values, err := mp.reg.Unpack(p)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return values[1], values[2], values[3], values[4], nil
}

// DeflectionAngle implements the multipole deflection (B11, B12).
func (mp *Multipole) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	x0, y0, am, phiM, err := mp.resolve(p)
	if err != nil {
		return nil, nil, err
	}

	m := float64(mp.order)
	c := am / (1 - m*m)
	tx, ty := translate(x, y, x0, y0)
	ax := make([]float64, len(x))
	ay := make([]float64, len(y))
	for i := range tx {
		if tx[i] == 0 && ty[i] == 0 {
			continue // direction undefined exactly at the center
		}
		phi := math.Atan2(ty[i], tx[i])
		cosM, sinM := math.Cos(m*(phi-phiM)), math.Sin(m*(phi-phiM))
		ax[i] = c * (math.Cos(phi)*cosM + m*math.Sin(phi)*sinM)
		ay[i] = c * (math.Sin(phi)*cosM - m*math.Cos(phi)*sinM)
	}

	return ax, ay, nil
}

// Convergence implements κ = a_m·cos(m(φ−φ_m))/(2r) (B10).
func (mp *Multipole) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	x0, y0, am, phiM, err := mp.resolve(p)
	if err != nil {
		return nil, err
	}

	m := float64(mp.order)
	tx, ty := translate(x, y, x0, y0)
	kappa := make([]float64, len(x))
	for i := range tx {
		r := math.Hypot(tx[i], ty[i])
		phi := math.Atan2(ty[i], tx[i])
		kappa[i] = am * math.Cos(m*(phi-phiM)) / (2 * r)
	}

	return kappa, nil
}

// Potential implements ψ = a_m/(1−m²)·r·cos(m(φ−φ_m)) (B3, B11).
func (mp *Multipole) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}
	x0, y0, am, phiM, err := mp.resolve(p)
	if err != nil {
		return nil, err
	}

	m := float64(mp.order)
	c := am / (1 - m*m)
	tx, ty := translate(x, y, x0, y0)
	psi := make([]float64, len(x))
	for i := range tx {
		r := math.Hypot(tx[i], ty[i])
		phi := math.Atan2(ty[i], tx[i])
		psi[i] = c * r * math.Cos(m*(phi-phiM))
	}

	return psi, nil
}
