// Package params provides run-time reconfigurable parameter packing for
// lens and cosmology models: named parameters registered once per model,
// with an optional per-call override bundle that resolves effective values
// without ever mutating the model.
//
// What:
//
//   - Registry holds a model's named parameters in registration order,
//     each either static (bound at construction) or dynamic (must be
//     supplied per call).
//   - Packed is an immutable-after-build override bundle keyed by model
//     name, carrying positional or named override values for any subset
//     of models sharing one call.
//   - Unpack resolves, per parameter: positional override → named
//     override → static default → ErrMissingParameter.
//
// Why:
//
//   - Fixed-parameter evaluation: bind everything statically, pass nil.
//   - Parameter inference: declare fitted parameters dynamic and build a
//     fresh Packed per objective evaluation; models stay pure functions
//     of coordinates plus resolved values.
//   - Composed models (multi-plane chains, parametrized cosmologies)
//     resolve their own entries from the one shared bundle by model name,
//     so a single Packed drives a whole model graph.
//
// Ordering:
//
//   - Registration order is significant and preserved; positional
//     overrides are matched to it. Models registering inherited
//     parameters must do so before their own (z_l precedes profile
//     parameters throughout this library).
//
// Errors:
//
//   - ErrMissingParameter: dynamic parameter with no override at call time.
//   - ErrDuplicateParameter: a name registered twice on one Registry.
//   - ErrUnknownParameter: named override for an unregistered parameter.
//   - ErrTooManyValues: more positional overrides than registered names.
package params
