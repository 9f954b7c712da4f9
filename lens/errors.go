package lens

import "errors"

// Sentinel errors for lensing operations.
var (
	// ErrUnsupportedOperation indicates a quantity that is structurally
	// undefined for the model, such as the closed-form potential of a
	// generic multi-plane composition.
	ErrUnsupportedOperation = errors.New("lens: operation is not defined for this lens model")
	// ErrUnsortedChain indicates a multi-plane chain whose lens redshifts
	// are not in non-decreasing order.
	ErrUnsortedChain = errors.New("lens: multiplane chain must be sorted by non-decreasing lens redshift")
	// ErrEmptyChain indicates a multi-plane chain with no lenses.
	ErrEmptyChain = errors.New("lens: multiplane chain must contain at least one lens")
	// ErrDuplicateName indicates two chain lenses sharing a model name,
	// which would make their override-bundle entries collide.
	ErrDuplicateName = errors.New("lens: multiplane chain lenses must have unique names")
	// ErrUnboundRedshift indicates a chain lens whose z_l is dynamic with
	// no default, so the chain order cannot be validated at construction.
	ErrUnboundRedshift = errors.New("lens: multiplane chain lenses must bind a static lens redshift")
	// ErrSourceRedshift indicates a source at or below a chain lens.
	ErrSourceRedshift = errors.New("lens: source redshift must exceed every lens redshift in the chain")
	// ErrUnknownParametrization indicates an unrecognized shear
	// parametrization selector.
	ErrUnknownParametrization = errors.New("lens: unrecognized shear parametrization")
	// ErrInvalidAxisRatio indicates an SIE axis ratio outside (0, 1).
	ErrInvalidAxisRatio = errors.New("lens: axis ratio q must lie in (0, 1)")
	// ErrInvalidOrder indicates a multipole order below 2.
	ErrInvalidOrder = errors.New("lens: multipole order must be at least 2")
	// ErrShapeMismatch indicates coordinate slices of differing lengths.
	ErrShapeMismatch = errors.New("lens: coordinate slices x and y must have equal length")
	// ErrNonUniformGrid indicates an FFT grid that is not square with
	// uniform spacing in both directions.
	ErrNonUniformGrid = errors.New("lens: FFT grid must be square with uniform spacing")
)
