package lens

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/gravlens/gravlens/params"
)

// gridTol is the relative tolerance for uniform-spacing validation.
const gridTol = 1e-9

// MagnificationFFT evaluates the magnification on a uniform square
// meshgrid by estimating the potential's second derivatives in frequency
// space: μ = 1/det(I − Hess ψ). The grid is zero-padded to twice its
// size before transforming, to suppress periodic-wraparound artifacts,
// and cropped back afterwards.
//
// x[i][j] must vary along rows and y[i][j] down columns with one common
// spacing ("xy" meshgrid layout); anything else is ErrNonUniformGrid.
// This path serves profiles whose potential is advertised but whose
// deflection gradients are not tractable; edge rows carry residual
// spectral error, so prefer interior samples.
func (t *thinLens) MagnificationFFT(x, y [][]float64, zS float64, p *params.Packed) ([][]float64, error) {
	n, d, err := checkGrid(x, y)
	if err != nil {
		return nil, err
	}

	psiXX, psiYY, psiXY, err := t.potentialHessianFFT(x, y, n, d, zS, p)
	if err != nil {
		return nil, err
	}

	mu := make([][]float64, n)
	for i := 0; i < n; i++ {
		mu[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			det := (1-psiXX[i][j])*(1-psiYY[i][j]) - psiXY[i][j]*psiXY[i][j]
			mu[i][j] = 1 / det
		}
	}

	return mu, nil
}

// potentialHessianFFT samples the potential on the grid and returns its
// second derivatives ψ_xx, ψ_yy, ψ_xy via zero-padded 2D FFTs.
func (t *thinLens) potentialHessianFFT(x, y [][]float64, n int, d, zS float64, p *params.Packed) (psiXX, psiYY, psiXY [][]float64, err error) {
	flatX := make([]float64, 0, n*n)
	flatY := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		flatX = append(flatX, x[i]...)
		flatY = append(flatY, y[i]...)
	}
	psi, err := t.prim.Potential(flatX, flatY, zS, p)
	if err != nil {
		return nil, nil, nil, err
	}

	// Zero-pad to twice the grid size before transforming.
	m := 2 * n
	grid := make([][]complex128, m)
	for i := range grid {
		grid[i] = make([]complex128, m)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			grid[i][j] = complex(psi[i*n+j], 0)
		}
	}

	fft := fourier.NewCmplxFFT(m)
	fft2(fft, grid)

	// Angular wavenumbers per axis: k = 2π·f/d, f the coefficient's
	// relative frequency in cycles per sample.
	k := make([]float64, m)
	for i := 0; i < m; i++ {
		k[i] = 2 * math.Pi * fft.Freq(i) / d
	}

	xx := make([][]complex128, m)
	yy := make([][]complex128, m)
	xy := make([][]complex128, m)
	for i := 0; i < m; i++ {
		xx[i] = make([]complex128, m)
		yy[i] = make([]complex128, m)
		xy[i] = make([]complex128, m)
		ky := k[i] // row index runs along y
		for j := 0; j < m; j++ {
			kx := k[j]
			c := grid[i][j]
			xx[i][j] = complex(-kx*kx, 0) * c
			yy[i][j] = complex(-ky*ky, 0) * c
			xy[i][j] = complex(-kx*ky, 0) * c
		}
	}
	ifft2(fft, xx)
	ifft2(fft, yy)
	ifft2(fft, xy)

	// Crop back to the unpadded region.
	psiXX = cropReal(xx, n)
	psiYY = cropReal(yy, n)
	psiXY = cropReal(xy, n)

	return psiXX, psiYY, psiXY, nil
}

// fft2 transforms the square grid in place, rows then columns.
func fft2(fft *fourier.CmplxFFT, grid [][]complex128) {
	m := len(grid)
	for i := 0; i < m; i++ {
		fft.Coefficients(grid[i], grid[i])
	}
	col := make([]complex128, m)
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			col[i] = grid[i][j]
		}
		fft.Coefficients(col, col)
		for i := 0; i < m; i++ {
			grid[i][j] = col[i]
		}
	}
}

// ifft2 inverse-transforms the square grid in place, normalizing by the
// grid size (the underlying transform pair is unnormalized).
func ifft2(fft *fourier.CmplxFFT, grid [][]complex128) {
	m := len(grid)
	norm := complex(1/float64(m*m), 0)
	for i := 0; i < m; i++ {
		fft.Sequence(grid[i], grid[i])
	}
	col := make([]complex128, m)
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			col[i] = grid[i][j]
		}
		fft.Sequence(col, col)
		for i := 0; i < m; i++ {
			grid[i][j] = col[i] * norm
		}
	}
}

// cropReal extracts the real n×n corner of a padded complex grid.
func cropReal(grid [][]complex128, n int) [][]float64 {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = real(grid[i][j])
		}
	}

	return out
}

// checkGrid validates the meshgrid layout and returns its size and spacing.
func checkGrid(x, y [][]float64) (int, float64, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0, 0, ErrNonUniformGrid
	}
	for i := 0; i < n; i++ {
		if len(x[i]) != n || len(y[i]) != n {
			return 0, 0, ErrNonUniformGrid
		}
	}
	d := x[0][1] - x[0][0]
	if d == 0 {
		return 0, 0, ErrNonUniformGrid
	}
	tol := gridTol * math.Abs(d)
	for i := 0; i < n; i++ {
		for j := 1; j < n; j++ {
			if math.Abs(x[i][j]-x[i][j-1]-d) > tol {
				return 0, 0, ErrNonUniformGrid
			}
			if math.Abs(y[j][i]-y[j-1][i]-d) > tol {
				return 0, 0, ErrNonUniformGrid
			}
		}
	}

	return n, d, nil
}
