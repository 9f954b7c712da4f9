package params_test

import (
	"errors"
	"fmt"

	"github.com/gravlens/gravlens/params"
)

// ExampleRegistry_Unpack demonstrates static defaults, a dynamic
// parameter, and per-call resolution through a Packed bundle.
//
// Scenario:
//
//	A model binds z_l statically and leaves m free for inference.
//	Each objective evaluation builds a fresh bundle with the trial m.
func ExampleRegistry_Unpack() {
	reg := params.NewRegistry("halo")
	_ = reg.Add("z_l", 0.5)
	_ = reg.AddDynamic("m")

	// No bundle: the dynamic parameter is a contract violation.
	_, err := reg.Unpack(nil)
	fmt.Println("missing:", errors.Is(err, params.ErrMissingParameter))

	// A fresh bundle per call supplies the trial value.
	p := params.NewPacked().WithNamed("halo", "m", 1e13)
	values, _ := reg.Unpack(p)
	fmt.Printf("resolved: z_l=%.1f m=%.0e\n", values[0], values[1])
	// Output:
	// missing: true
	// resolved: z_l=0.5 m=1e+13
}

// ExamplePacked_WithPositional demonstrates positional overrides matched
// to registration order, superclass parameters first.
func ExamplePacked_WithPositional() {
	reg := params.NewRegistry("shear")
	_ = reg.Add("z_l", 0.5)     // inherited slot, registered first
	_ = reg.AddDynamic("gamma_1")
	_ = reg.AddDynamic("gamma_2")

	p := params.NewPacked().WithPositional("shear", 0.5, 0.1, -0.02)
	values, _ := reg.Unpack(p)
	fmt.Println(values)
	// Output:
	// [0.5 0.1 -0.02]
}
