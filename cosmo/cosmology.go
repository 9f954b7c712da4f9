package cosmo

import (
	"errors"

	"github.com/gravlens/gravlens/params"
)

// Sentinel errors for cosmology operations.
var (
	// ErrRedshiftOrder indicates z2 < z1 in a two-redshift distance or
	// zL ≥ zS in a critical surface density.
	ErrRedshiftOrder = errors.New("cosmo: redshifts out of order")
	// ErrNegativeRedshift indicates a redshift below zero.
	ErrNegativeRedshift = errors.New("cosmo: redshift must be non-negative")
)

// Physical constants in the library's unit system.
const (
	// GravOverC2 is G/c² in Mpc/Msun.
	GravOverC2 = 4.78554e-20
	// SpeedOfLightKmS is c in km/s.
	SpeedOfLightKmS = 299792.458
	// critDensityConst is 3·(100 km/s/Mpc)²/(8πG) in Msun/Mpc³, so that
	// ρ_cr,0 = critDensityConst·(H0/100)².
	critDensityConst = 2.77536627e11
)

// Cosmology supplies the distances and densities lensing computations
// depend on. Implementations must be pure: no per-call mutable state, so
// one instance may back many concurrent lens evaluations.
//
// Every method accepts an optional *params.Packed bundle addressed by the
// cosmology's model name, keeping cosmological parameters overridable per
// call exactly like lens parameters.
type Cosmology interface {
	// Name identifies the cosmology inside a shared override bundle.
	Name() string

	// ComovingDistance returns the line-of-sight comoving distance to z, in Mpc.
	ComovingDistance(z float64, p *params.Packed) (float64, error)

	// AngularDiameterDistance returns the angular-diameter distance to z, in Mpc.
	AngularDiameterDistance(z float64, p *params.Packed) (float64, error)

	// AngularDiameterDistanceZ1Z2 returns the angular-diameter distance
	// between z1 and z2 (z1 ≤ z2), in Mpc.
	AngularDiameterDistanceZ1Z2(z1, z2 float64, p *params.Packed) (float64, error)

	// CriticalDensity returns the critical density of the universe at z,
	// in Msun/Mpc³.
	CriticalDensity(z float64, p *params.Packed) (float64, error)

	// CriticalSurfaceDensity returns Σ_cr for a lens at zL and a source at
	// zS (zL < zS), in Msun/Mpc².
	CriticalSurfaceDensity(zL, zS float64, p *params.Packed) (float64, error)
}
