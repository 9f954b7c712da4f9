package lens

import (
	"fmt"
	"sort"

	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// Multiplane composes an ordered chain of thin lenses at non-decreasing
// redshift into one thick lens, ray-traced by the flat-cosmology
// comoving recursion: a ray carries an angular direction and a comoving
// transverse position; at each plane it is propagated by the comoving
// distance step, deflected by that plane's physical deflection angle
// (with the next plane — or the true source, for the last plane — in the
// source role), and finally propagated to the source.
//
// Only geometric ray-tracing and Jacobian-derived convergence and
// magnification are defined for a generic composition; Potential,
// SurfaceDensity, and TimeDelay fail with ErrUnsupportedOperation.
//
// The chain membership and order are fixed at construction; every chain
// lens must bind a static z_l so the order can be validated fast.
type Multiplane struct {
	name      string
	cosmology cosmo.Cosmology
	chain     []ThinLens
}

// NewMultiplane builds a thick lens from a chain of thin lenses.
// Construction fails fast on an empty chain, duplicate model names,
// an unbound lens redshift, or redshifts out of order.
func NewMultiplane(name string, cosmology cosmo.Cosmology, chain []ThinLens) (*Multiplane, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	seen := make(map[string]bool, len(chain))
	zs := make([]float64, len(chain))
	for i, l := range chain {
		if seen[l.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, l.Name())
		}
		seen[l.Name()] = true

		z, err := l.LensRedshift(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnboundRedshift, l.Name())
		}
		zs[i] = z
	}
	if !sort.Float64sAreSorted(zs) {
		return nil, ErrUnsortedChain
	}

	return &Multiplane{
		name:      name,
		cosmology: cosmology,
		chain:     append([]ThinLens(nil), chain...),
	}, nil
}

// Name implements Lens.
func (m *Multiplane) Name() string { return m.name }

// Cosmology returns the shared read-only cosmology handle.
func (m *Multiplane) Cosmology() cosmo.Cosmology { return m.cosmology }

// Chain returns the composed thin lenses in plane order.
func (m *Multiplane) Chain() []ThinLens {
	return append([]ThinLens(nil), m.chain...)
}

// planeRedshifts re-resolves the chain redshifts against the bundle and
// re-validates the ordering contract, which per-call overrides must
// preserve.
func (m *Multiplane) planeRedshifts(zS float64, p *params.Packed) ([]float64, error) {
	zs := make([]float64, len(m.chain))
	for i, l := range m.chain {
		z, err := l.LensRedshift(p)
		if err != nil {
			return nil, err
		}
		if z >= zS {
			return nil, fmt.Errorf("%w: lens %q at z=%g, source at z=%g", ErrSourceRedshift, l.Name(), z, zS)
		}
		zs[i] = z
	}
	if !sort.Float64sAreSorted(zs) {
		return nil, ErrUnsortedChain
	}

	return zs, nil
}

// Raytrace implements the recursive multi-plane mapping. The recursion
// is sequential across planes and vectorized across samples.
func (m *Multiplane) Raytrace(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, nil, err
	}
	zs, err := m.planeRedshifts(zS, p)
	if err != nil {
		return nil, nil, err
	}

	n := len(x)
	// Ray state: direction in radians, comoving transverse position in Mpc.
	dirX := make([]float64, n)
	dirY := make([]float64, n)
	posX := make([]float64, n)
	posY := make([]float64, n)
	for i := range x {
		dirX[i] = x[i] * ArcsecToRad
		dirY[i] = y[i] * ArcsecToRad
	}

	bx := make([]float64, n)
	by := make([]float64, n)
	chiPrev := 0.0
	for plane, l := range m.chain {
		chi, err := m.cosmology.ComovingDistance(zs[plane], p)
		if err != nil {
			return nil, nil, err
		}
		dchi := chi - chiPrev
		for i := range posX {
			posX[i] += dirX[i] * dchi
			posY[i] += dirY[i] * dchi
			// Angular hit position of the ray on this plane, arcsec.
			bx[i] = posX[i] / chi * RadToArcsec
			by[i] = posY[i] / chi * RadToArcsec
		}

		// The "source" for an intermediate plane is the next plane; for
		// the last plane it is the true source.
		zNext := zS
		if plane+1 < len(m.chain) {
			zNext = zs[plane+1]
		}
		ax, ay, err := l.PhysicalDeflectionAngle(bx, by, zNext, p)
		if err != nil {
			return nil, nil, err
		}
		for i := range dirX {
			dirX[i] -= ax[i] * ArcsecToRad
			dirY[i] -= ay[i] * ArcsecToRad
		}
		chiPrev = chi
	}

	chiS, err := m.cosmology.ComovingDistance(zS, p)
	if err != nil {
		return nil, nil, err
	}
	dchi := chiS - chiPrev
	out1 := make([]float64, n)
	out2 := make([]float64, n)
	for i := range posX {
		out1[i] = (posX[i] + dirX[i]*dchi) / chiS * RadToArcsec
		out2[i] = (posY[i] + dirY[i]*dchi) / chiS * RadToArcsec
	}

	return out1, out2, nil
}

// DeflectionAngle returns the effective reduced deflection angle of the
// composition, θ − β.
func (m *Multiplane) DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	bx, by, err := m.Raytrace(x, y, zS, p)
	if err != nil {
		return nil, nil, err
	}
	for i := range bx {
		bx[i] = x[i] - bx[i]
		by[i] = y[i] - by[i]
	}

	return bx, by, nil
}

// Convergence returns the effective convergence 1 − ½·tr(∂β/∂θ), derived
// from the Jacobian of the composite mapping: no closed form exists for
// a generic chain.
func (m *Multiplane) Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}

	return convergenceFD(m, x, y, zS, p)
}

// Magnification returns 1/det(∂β/∂θ) from the composite Jacobian.
func (m *Multiplane) Magnification(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}

	return magnificationFD(m, x, y, zS, p)
}

// TimeDelay has no analytic form for a generic multi-plane composition.
func (m *Multiplane) TimeDelay(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	return nil, ErrUnsupportedOperation
}

// Potential has no closed form for a generic multi-plane composition.
func (m *Multiplane) Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	return nil, ErrUnsupportedOperation
}

// SurfaceDensity is undefined for a composition spanning several
// critical surface densities.
func (m *Multiplane) SurfaceDensity(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	return nil, ErrUnsupportedOperation
}
