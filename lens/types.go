// Package lens core contracts: the capability set shared by thin and
// thick (multi-plane) models, and the extended thin-lens surface.
package lens

import (
	"github.com/gravlens/gravlens/cosmo"
	"github.com/gravlens/gravlens/params"
)

// Lens is the capability set every lens model satisfies, thin or thick.
// Coordinates x, y are image-plane angles in arcsec, zS is the source
// redshift, and p is an optional per-call parameter override bundle (nil
// means "use bound defaults"). All slices returned match len(x).
type Lens interface {
	// Name identifies the model inside a shared override bundle.
	Name() string
	// DeflectionAngle returns the reduced deflection angle (ax, ay) in
	// arcsec. For a thick lens this is the effective angle θ − β.
	DeflectionAngle(x, y []float64, zS float64, p *params.Packed) (ax, ay []float64, err error)
	// Raytrace maps image-plane coordinates to source-plane coordinates:
	// β = θ − α.
	Raytrace(x, y []float64, zS float64, p *params.Packed) (bx, by []float64, err error)
	// Convergence returns the dimensionless projected density κ.
	Convergence(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
	// Magnification returns 1/det J with J the Jacobian of Raytrace.
	Magnification(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
	// TimeDelay returns the lensing time delay in seconds, or
	// ErrUnsupportedOperation where no closed form exists.
	TimeDelay(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
}

// ThinLens is the contract of a single-plane model: the Lens surface plus
// the quantities that only exist under the thin-lens approximation.
type ThinLens interface {
	Lens
	// LensRedshift resolves z_l against the bundle.
	LensRedshift(p *params.Packed) (float64, error)
	// PhysicalDeflectionAngle is the reduced angle rescaled by D_s/D_ls.
	PhysicalDeflectionAngle(x, y []float64, zS float64, p *params.Packed) (ax, ay []float64, err error)
	// Potential returns the lensing potential ψ in arcsec².
	Potential(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
	// SurfaceDensity returns κ·Σ_cr in Msun/Mpc².
	SurfaceDensity(x, y []float64, zS float64, p *params.Packed) ([]float64, error)
	// Cosmology returns the shared read-only cosmology handle.
	Cosmology() cosmo.Cosmology
}

// Static binds a construction-time parameter value in a profile options
// struct; nil fields mark the parameter dynamic (supplied per call).
func Static(v float64) *float64 { return &v }

// checkShape validates that x and y describe the same samples.
func checkShape(x, y []float64) error {
	if len(x) != len(y) {
		return ErrShapeMismatch
	}

	return nil
}
