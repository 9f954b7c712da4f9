package lens

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/gravlens/gravlens/params"
)

// raytracer is the minimal surface needed to differentiate the lens
// mapping θ → β.
type raytracer interface {
	Raytrace(x, y []float64, zS float64, p *params.Packed) ([]float64, []float64, error)
}

// raytraceJacobian evaluates the 2×2 Jacobian ∂β/∂θ of the lens mapping
// at a single image-plane point by central finite differences. It stands
// in for automatic differentiation of the (possibly recursive) mapping:
// no closed form exists for a generic composition.
func raytraceJacobian(l raytracer, x, y, zS float64, p *params.Packed) (*mat.Dense, error) {
	var traceErr error
	f := func(dst, pt []float64) {
		bx, by, err := l.Raytrace([]float64{pt[0]}, []float64{pt[1]}, zS, p)
		if err != nil {
			if traceErr == nil {
				traceErr = err
			}
			dst[0], dst[1] = math.NaN(), math.NaN()

			return
		}
		dst[0], dst[1] = bx[0], by[0]
	}

	jac := mat.NewDense(2, 2, nil)
	fd.Jacobian(jac, f, []float64{x, y}, &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    jacobianStep,
	})
	if traceErr != nil {
		return nil, traceErr
	}

	return jac, nil
}

// magnificationFD returns μ = 1/det(∂β/∂θ) per sample.
func magnificationFD(l raytracer, x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	mu := make([]float64, len(x))
	for i := range x {
		jac, err := raytraceJacobian(l, x[i], y[i], zS, p)
		if err != nil {
			return nil, err
		}
		mu[i] = 1 / mat.Det(jac)
	}

	return mu, nil
}

// convergenceFD returns the effective convergence κ = 1 − ½·tr(∂β/∂θ)
// per sample, the Jacobian-derived quantity that generalizes projected
// density to compositions without a closed-form potential.
func convergenceFD(l raytracer, x, y []float64, zS float64, p *params.Packed) ([]float64, error) {
	kappa := make([]float64, len(x))
	for i := range x {
		jac, err := raytraceJacobian(l, x[i], y[i], zS, p)
		if err != nil {
			return nil, err
		}
		kappa[i] = 1 - 0.5*(jac.At(0, 0)+jac.At(1, 1))
	}

	return kappa, nil
}
