package lens

import "math"

const (
	// ArcsecToRad converts arcseconds to radians.
	ArcsecToRad = math.Pi / (180 * 3600)
	// RadToArcsec converts radians to arcseconds.
	RadToArcsec = 1 / ArcsecToRad

	// speedOfLightMpcS is c in Mpc/s, used by the time-delay distance factor.
	speedOfLightMpcS = 9.71561e-15

	// overdensity is the Δ=200 spherical-overdensity contrast defining
	// halo mass and radius.
	overdensity = 200.0

	// jacobianStep is the central-difference step, in arcsec, for
	// ray-tracing Jacobians.
	jacobianStep = 1e-4
)
