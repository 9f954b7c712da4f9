// Package gravlens is a gravitational-lensing toolkit: closed-form thin
// lenses, recursive multi-plane ray-tracing, and run-time reconfigurable
// parameters for differentiable inference.
//
// 🔭 What is gravlens?
//
//	A pure-computation library that brings together:
//		• Analytic profiles: NFW halo, external shear, SIE, point mass, multipole
//		• Thin-lens contract: raytrace, time delay, surface density, magnification
//		• Multi-plane engine: chains of lenses at increasing redshift, ray-traced
//		  through flat-cosmology comoving geometry
//		• Parameter packing: any subset of model parameters supplied per call
//		  through an override bundle, the rest bound at construction
//		• Numerics: finite-difference ray-tracing Jacobians and frequency-domain
//		  potential Hessians (gonum)
//
// ✨ Why choose gravlens?
//
//   - Consistent closed forms – α = ∇ψ and κ = ½∇²ψ hold analytically,
//     removable singularities included
//   - Inference-ready – models are pure functions of coordinates plus
//     resolved parameters; bundles make every quantity a function of the
//     parameters you fit
//   - Concurrency-safe – immutable models, shared read-only cosmology,
//     no locks
//
// Everything is organized under three subpackages:
//
//	params/ — per-model parameter registries and per-call override bundles
//	cosmo/  — the cosmology contract and a flat ΛCDM implementation
//	lens/   — profiles, thin/thick lens contracts, multi-plane ray-tracing
//
// Quick ASCII sketch of the multi-plane recursion:
//
//	observer ──θ──▶ plane₁ ──▶ plane₂ ──▶ … ──▶ source
//	                 −α̂₁        −α̂₂              β
//
//	each plane bends the ray; geometry propagates it between planes.
//
//	go get github.com/gravlens/gravlens
package gravlens
