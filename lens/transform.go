package lens

import "math"

// translateRotate shifts image-plane coordinates to a profile center
// (x0, y0) and rotates them by −phi into the profile frame. phi is the
// position angle of the profile's major axis, in radians.
func translateRotate(x, y []float64, x0, y0, phi float64) ([]float64, []float64) {
	tx := make([]float64, len(x))
	ty := make([]float64, len(y))
	c, s := math.Cos(phi), math.Sin(phi)
	for i := range x {
		dx, dy := x[i]-x0, y[i]-y0
		tx[i] = dx*c + dy*s
		ty[i] = -dx*s + dy*c
	}

	return tx, ty
}

// translate shifts image-plane coordinates to a profile center.
func translate(x, y []float64, x0, y0 float64) ([]float64, []float64) {
	tx := make([]float64, len(x))
	ty := make([]float64, len(y))
	for i := range x {
		tx[i] = x[i] - x0
		ty[i] = y[i] - y0
	}

	return tx, ty
}

// derotate rotates a vector field computed in a profile frame back to
// the observer frame, in place.
func derotate(ax, ay []float64, phi float64) {
	c, s := math.Cos(phi), math.Sin(phi)
	for i := range ax {
		vx, vy := ax[i], ay[i]
		ax[i] = vx*c - vy*s
		ay[i] = vx*s + vy*c
	}
}
