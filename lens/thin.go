package lens

import (
	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// profile is the primitive capability set each analytic thin-lens model
// implements; thinLens derives everything else from it.
type profile interface {
	Name() string
	LensRedshift(p *params.Packed) (float64, error)
	DeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error)
	Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
	Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
}

// thinLens supplies the derived operations shared by every analytic
// profile, dispatching to the embedding profile's primitives. The prim
// back-pointer is wired by each profile constructor.
type thinLens struct {
	cosmology cosmo.Cosmology
	prim      profile
}

// Cosmology returns the shared read-only cosmology handle.
func (t *thinLens) Cosmology() cosmo.Cosmology { return t.cosmology }

// Raytrace maps image-plane to source-plane coordinates: β = θ − α with
// α the reduced deflection angle.
func (t *thinLens) Raytrace(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	ax, ay, err := t.prim.DeflectionAngle(x, y, zS, p)
	if err != nil {
		return nil, nil, err
	}
	bx := make([]float64, len(x))
	by := make([]float64, len(y))
	for i := range x {
		bx[i] = x[i] - ax[i]
		by[i] = y[i] - ay[i]
	}

	return bx, by, nil
}

// PhysicalDeflectionAngle rescales the reduced deflection angle by
// D_s/D_ls, yielding the bend of the ray immediately behind the plane.
func (t *thinLens) PhysicalDeflectionAngle(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error) {
	zL, err := t.prim.LensRedshift(p)
	if err != nil {
		return nil, nil, err
	}
	ds, err := t.cosmology.AngularDiameterDistance(zS, p)
	if err != nil {
		return nil, nil, err
	}
	dls, err := t.cosmology.AngularDiameterDistanceZ1Z2(zL, zS, p)
	if err != nil {
		return nil, nil, err
	}
	ax, ay, err := t.prim.DeflectionAngle(x, y, zS, p)
	if err != nil {
		return nil, nil, err
	}
	scale := ds / dls
	for i := range ax {
		ax[i] *= scale
		ay[i] *= scale
	}

	return ax, ay, nil
}

// SurfaceDensity converts convergence to physical projected density:
// Σ = κ·Σ_cr(z_l, z_s), in Msun/Mpc².
func (t *thinLens) SurfaceDensity(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	zL, err := t.prim.LensRedshift(p)
	if err != nil {
		return nil, err
	}
	sigmaCr, err := t.cosmology.CriticalSurfaceDensity(zL, zS, p)
	if err != nil {
		return nil, err
	}
	kappa, err := t.prim.Convergence(x, y, zS, p)
	if err != nil {
		return nil, err
	}
	for i := range kappa {
		kappa[i] *= sigmaCr
	}

	return kappa, nil
}

// TimeDelay returns the lensing time delay in seconds relative to an
// undeflected path: the geometric term ½|α|² (reduced angle) minus the
// potential ψ, scaled by the Shapiro distance factor
// (1+z_l)/c · D_s·D_l/D_ls and the arcsec²→rad² conversion.
func (t *thinLens) TimeDelay(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	zL, err := t.prim.LensRedshift(p)
	if err != nil {
		return nil, err
	}
	dl, err := t.cosmology.AngularDiameterDistance(zL, p)
	if err != nil {
		return nil, err
	}
	ds, err := t.cosmology.AngularDiameterDistance(zS, p)
	if err != nil {
		return nil, err
	}
	dls, err := t.cosmology.AngularDiameterDistanceZ1Z2(zL, zS, p)
	if err != nil {
		return nil, err
	}
	ax, ay, err := t.prim.DeflectionAngle(x, y, zS, p)
	if err != nil {
		return nil, err
	}
	psi, err := t.prim.Potential(x, y, zS, p)
	if err != nil {
		return nil, err
	}

	factor := (1 + zL) / speedOfLightMpcS * ds * dl / dls
	delay := make([]float64, len(x))
	for i := range delay {
		fermat := 0.5*(ax[i]*ax[i]+ay[i]*ay[i]) - psi[i]
		delay[i] = factor * fermat * ArcsecToRad * ArcsecToRad
	}

	return delay, nil
}

// Magnification returns 1/det J per sample, with J the central-difference
// Jacobian of Raytrace.
func (t *thinLens) Magnification(x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	if err := checkShape(x, y); err != nil {
		return nil, err
	}

	return magnificationFD(t, x, y, zS, p)
}
