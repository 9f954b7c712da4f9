// Package lens computes gravitational lensing quantities — deflection
// angles, convergence, lensing potential, time delay, and magnification —
// for analytic thin-lens profiles and for recursive multi-plane
// compositions of them.
//
// What:
//
//   - Analytic profiles: NFW halo, external shear, SIE, point mass, and
//     multipole, each exposing the primitive set {DeflectionAngle,
//     Convergence, Potential} as closed forms that are mutually
//     consistent (α = ∇ψ, κ = ½∇²ψ).
//   - A shared thin-lens layer deriving Raytrace, PhysicalDeflectionAngle,
//     SurfaceDensity, TimeDelay, and Magnification from any profile's
//     primitives.
//   - Multiplane: an ordered chain of thin lenses at increasing redshift,
//     ray-traced recursively through flat-cosmology comoving geometry;
//     effective convergence and magnification follow from the Jacobian of
//     the composite mapping.
//   - Numerical utilities: finite-difference ray-tracing Jacobians
//     (gonum/diff/fd) and a frequency-domain potential Hessian
//     (gonum/dsp/fourier) for grid magnification maps.
//
// Conventions:
//
//   - Coordinates are image-plane angles in arcsec; z_s is the source
//     redshift; every operation takes an optional *params.Packed override
//     bundle and is a pure function of its inputs.
//   - DeflectionAngle returns the REDUCED deflection angle in arcsec;
//     Raytrace is β = θ − α. PhysicalDeflectionAngle rescales by D_s/D_ls.
//   - Parameter registration order per profile: z_l first, then profile
//     parameters in the documented order, so positional overrides line up.
//
// Errors:
//
//   - ErrUnsupportedOperation: quantity structurally undefined for the
//     model (e.g. closed-form potential of a generic multi-plane chain).
//   - ErrUnsortedChain, ErrEmptyChain, ErrDuplicateName,
//     ErrUnboundRedshift, ErrSourceRedshift: multi-plane contract
//     violations.
//   - ErrUnknownParametrization, ErrInvalidAxisRatio, ErrInvalidOrder:
//     profile configuration violations.
//   - ErrShapeMismatch, ErrNonUniformGrid: coordinate input violations.
package lens
