package lens

// Export shims so the external test package can probe unexported
// numerics directly.

// NFWAuxF exposes nfwF for branch-continuity tests.
func NFWAuxF(x float64) float64 { return nfwF(x) }

// NFWAuxG exposes nfwG for branch-continuity tests.
func NFWAuxG(x float64) float64 { return nfwG(x) }

// NFWAuxH exposes nfwH for branch-continuity tests.
func NFWAuxH(x float64) float64 { return nfwH(x) }

// NFWAuxFRatio exposes nfwFRatio for removable-singularity tests.
func NFWAuxFRatio(x float64) float64 { return nfwFRatio(x) }

// TranslateRotate exposes the frame transform for coordinate tests.
func TranslateRotate(x, y []float64, x0, y0, phi float64) ([]float64, []float64) {
	return translateRotate(x, y, x0, y0, phi)
}

// Derotate exposes the inverse vector rotation for coordinate tests.
func Derotate(ax, ay []float64, phi float64) { derotate(ax, ay, phi) }
