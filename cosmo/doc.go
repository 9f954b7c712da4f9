// Package cosmo defines the cosmology contract consumed by the lensing
// code — angular-diameter distances and critical densities as functions
// of redshift — plus a concrete flat ΛCDM implementation.
//
// What:
//
//   - Cosmology: the read-only adapter interface every lens references.
//     All methods accept the same *params.Packed override bundle as lens
//     parameters, so cosmological parameters stay per-call overridable in
//     inference loops.
//   - FlatLambdaCDM: flat ΛCDM with parameters h0 (km/s/Mpc) and Om0,
//     registered through params.Registry. Comoving distance is evaluated
//     by Gauss–Legendre quadrature of 1/E(z); angular-diameter distances
//     follow from the flat-universe identities.
//
// Why:
//
//   - Lensing quantities are ratios of distances; keeping the cosmology
//     behind an interface lets callers substitute tabulated or externally
//     computed distances without touching the lens code.
//   - A Cosmology holds no per-call state and is safe to share across
//     concurrent lens evaluations.
//
// Units: distances in Mpc, densities in Msun/Mpc³, surface densities in
// Msun/Mpc², H0 in km/s/Mpc.
//
// Errors:
//
//   - ErrRedshiftOrder: z2 < z1 in a two-redshift distance, or zL ≥ zS in
//     a critical surface density.
//   - ErrNegativeRedshift: a redshift below zero.
package cosmo
