// Package spline implements invertible, monotone piecewise rational
// interpolators over batches of 1-D knot sequences.
//
// A Spline holds knot coordinates (x, y) and derivatives d laid out along a
// chosen axis of a batched tensor, and evaluates a rational interpolant per
// segment. Both interpolant families are monotone when the knot coordinates
// increase along the axis and all derivatives are positive, which makes the
// forward map a bijection with a closed-form inverse.
package spline

import (
	"github.com/pkg/errors"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Kind selects the interpolant family.
type Kind int

const (
	// Pade22 is the rational quadratic interpolant. Value and derivative
	// are continuous across interior knots.
	Pade22 Kind = iota
	// Pade11 is the rational linear interpolant. Value is continuous
	// across interior knots; the derivative generally is not.
	Pade11
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case Pade22:
		return "pade22"
	case Pade11:
		return "pade11"
	default:
		return "unknown"
	}
}

// Extrap selects the boundary treatment on one side of the knot range.
//
// Fictitious knots are appended at construction so that out-of-range queries
// land on an ordinary segment. Queries beyond the fictitious knots fall back
// to the outermost segment's rational function, which can develop poles.
type Extrap string

const (
	// ExtrapNone extends the outermost segment's rational function.
	ExtrapNone Extrap = ""
	// ExtrapLinear patches a unit-width linear segment to the boundary.
	ExtrapLinear Extrap = "linear"
	// ExtrapPeriodic reflects the knots assuming a periodic boundary.
	// Requires a zero derivative at the boundary knot.
	ExtrapPeriodic Extrap = "periodic"
	// ExtrapAntiPeriodic reflects the knots assuming an anti-periodic
	// boundary. The spelling "anti" is accepted as an alias.
	ExtrapAntiPeriodic Extrap = "anti-periodic"
)

func parseExtrap(e Extrap) (Extrap, error) {
	switch e {
	case ExtrapNone, ExtrapLinear, ExtrapPeriodic, ExtrapAntiPeriodic:
		return e, nil
	case "anti":
		return ExtrapAntiPeriodic, nil
	default:
		return "", errors.Errorf("unknown extrapolation selector %q", string(e))
	}
}

// Spline is an immutable batched piecewise rational interpolator.
type Spline[T tensor.Float, B tensor.Backend] struct {
	kind Kind

	knotsX *tensor.Tensor[T, B]
	knotsY *tensor.Tensor[T, B]
	knotsD *tensor.Tensor[T, B]

	axis     int
	knotsLen int
	segmLen  int

	extrapLeft  Extrap
	extrapRight Extrap
}

type config[T tensor.Float, B tensor.Backend] struct {
	knotsD        *tensor.Tensor[T, B]
	axis          int
	extrapLeft    Extrap
	extrapRight   Extrap
	noExtrapolate bool
	unitBoundary  bool
}

// Option configures spline construction.
type Option[T tensor.Float, B tensor.Backend] func(*config[T, B])

// WithDerivatives supplies the derivatives at the knots. Without this
// option the derivatives are computed by the family's smoothing policy.
func WithDerivatives[T tensor.Float, B tensor.Backend](d *tensor.Tensor[T, B]) Option[T, B] {
	return func(c *config[T, B]) { c.knotsD = d }
}

// WithAxis sets the axis along which knot coordinates are placed.
// Negative values count from the end. The default is -1.
func WithAxis[T tensor.Float, B tensor.Backend](axis int) Option[T, B] {
	return func(c *config[T, B]) { c.axis = axis }
}

// WithExtrapLeft sets the boundary treatment below the first knot.
func WithExtrapLeft[T tensor.Float, B tensor.Backend](e Extrap) Option[T, B] {
	return func(c *config[T, B]) { c.extrapLeft = e }
}

// WithExtrapRight sets the boundary treatment above the last knot.
func WithExtrapRight[T tensor.Float, B tensor.Backend](e Extrap) Option[T, B] {
	return func(c *config[T, B]) { c.extrapRight = e }
}

// WithoutExtrapolation requests rejection of out-of-range queries.
// Not supported; construction fails with an error.
func WithoutExtrapolation[T tensor.Float, B tensor.Backend]() Option[T, B] {
	return func(c *config[T, B]) { c.noExtrapolate = true }
}

// WithUnitBoundaryDerivatives forces the smoothed derivative to 1 at the
// two boundary knots instead of the adjacent segment slope. Only meaningful
// for Pade22 when derivatives are not supplied.
func WithUnitBoundaryDerivatives[T tensor.Float, B tensor.Backend]() Option[T, B] {
	return func(c *config[T, B]) { c.unitBoundary = true }
}

// New constructs a spline of the given family over batched knot tensors.
//
// knotsX and knotsY must have the same shape and hold coordinates that
// increase strictly along the knot axis, with at least 2 knots. Derivatives,
// when supplied, must match that shape and be positive for the result to be
// monotone; neither ordering nor positivity is verified here, and violations
// surface as non-finite evaluation results.
func New[T tensor.Float, B tensor.Backend](
	kind Kind,
	knotsX, knotsY *tensor.Tensor[T, B],
	opts ...Option[T, B],
) (*Spline[T, B], error) {
	if kind != Pade22 && kind != Pade11 {
		return nil, errors.Errorf("unknown spline kind %d", int(kind))
	}

	cfg := config[T, B]{axis: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.noExtrapolate {
		return nil, errors.New("rejecting out-of-range queries is not supported")
	}
	if !knotsX.Shape().Equal(knotsY.Shape()) {
		return nil, errors.Errorf("knots_x shape %v and knots_y shape %v differ", knotsX.Shape(), knotsY.Shape())
	}

	axis := knotsX.Shape().Normalize(cfg.axis)
	if knotsX.Shape()[axis] < 2 {
		return nil, errors.Errorf("need at least 2 knots along axis %d, got %d", axis, knotsX.Shape()[axis])
	}

	left, err := parseExtrap(cfg.extrapLeft)
	if err != nil {
		return nil, errors.Wrap(err, "extrap_left")
	}
	right, err := parseExtrap(cfg.extrapRight)
	if err != nil {
		return nil, errors.Wrap(err, "extrap_right")
	}

	knotsD := cfg.knotsD
	if knotsD == nil {
		switch kind {
		case Pade22:
			knotsD = averagedSlopeDerivatives(knotsX, knotsY, axis, cfg.unitBoundary)
		case Pade11:
			if cfg.unitBoundary {
				return nil, errors.New("unit boundary derivatives apply only to pade22 smoothing")
			}
			knotsD = alternatingProductDerivatives(knotsX, knotsY, axis)
		}
	} else {
		if cfg.unitBoundary {
			return nil, errors.New("unit boundary derivatives conflict with supplied derivatives")
		}
		if !knotsD.Shape().Equal(knotsX.Shape()) {
			return nil, errors.Errorf("knots_d shape %v and knots_x shape %v differ", knotsD.Shape(), knotsX.Shape())
		}
	}

	knotsX, knotsY, knotsD, err = augmentKnots(knotsX, knotsY, knotsD, axis, left, right)
	if err != nil {
		return nil, err
	}

	knotsLen := knotsX.Shape()[axis]
	return &Spline[T, B]{
		kind:        kind,
		knotsX:      knotsX,
		knotsY:      knotsY,
		knotsD:      knotsD,
		axis:        axis,
		knotsLen:    knotsLen,
		segmLen:     knotsLen - 1,
		extrapLeft:  left,
		extrapRight: right,
	}, nil
}

// Kind returns the interpolant family.
func (s *Spline[T, B]) Kind() Kind { return s.kind }

// Axis returns the normalized knot axis.
func (s *Spline[T, B]) Axis() int { return s.axis }

// KnotsLen returns the number of knots after augmentation.
func (s *Spline[T, B]) KnotsLen() int { return s.knotsLen }

// KnotsX returns the augmented x-coordinates.
func (s *Spline[T, B]) KnotsX() *tensor.Tensor[T, B] { return s.knotsX }

// KnotsY returns the augmented y-coordinates.
func (s *Spline[T, B]) KnotsY() *tensor.Tensor[T, B] { return s.knotsY }

// KnotsD returns the augmented derivatives.
func (s *Spline[T, B]) KnotsD() *tensor.Tensor[T, B] { return s.knotsD }

type evalConfig struct {
	grad     bool
	squeezed bool
}

// EvalOption configures a single evaluation call.
type EvalOption func(*evalConfig)

// WithGrad requests the derivative alongside the value.
func WithGrad() EvalOption {
	return func(c *evalConfig) { c.grad = true }
}

// Squeezed declares that the query tensor omits the knot axis dimension.
// The input is unsqueezed before evaluation and the result squeezed back.
func Squeezed() EvalOption {
	return func(c *evalConfig) { c.squeezed = true }
}

// Forward maps x through the spline. The returned derivative is nil unless
// WithGrad is passed.
//
// Without Squeezed, x must have the rank of the knot tensors and match
// their size on every axis except the knot axis.
func (s *Spline[T, B]) Forward(x *tensor.Tensor[T, B], opts ...EvalOption) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	cfg := evalOptions(opts)
	if cfg.squeezed {
		x = x.Unsqueeze(s.axis)
	}

	ind := searchSorted(s.knotsX, x, s.axis)
	seg := s.gatherSegments(ind)

	var y, deriv *tensor.Tensor[T, B]
	switch s.kind {
	case Pade22:
		y, deriv = pade22Forward(seg, x, cfg.grad)
	case Pade11:
		y, deriv = pade11Forward(seg, x, cfg.grad)
	}
	return squeezeResults(s.axis, cfg.squeezed, y, deriv)
}

// Backward maps y back through the spline, inverting Forward. The returned
// derivative is that of the inverse map and is nil unless WithGrad is
// passed.
func (s *Spline[T, B]) Backward(y *tensor.Tensor[T, B], opts ...EvalOption) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	cfg := evalOptions(opts)
	if cfg.squeezed {
		y = y.Unsqueeze(s.axis)
	}

	ind := searchSorted(s.knotsY, y, s.axis)
	seg := s.gatherSegments(ind)

	var x, deriv *tensor.Tensor[T, B]
	switch s.kind {
	case Pade22:
		x, deriv = pade22Backward(seg, y, cfg.grad)
	case Pade11:
		x, deriv = pade11Backward(seg, y, cfg.grad)
	}
	return squeezeResults(s.axis, cfg.squeezed, x, deriv)
}

func evalOptions(opts []EvalOption) evalConfig {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func squeezeResults[T tensor.Float, B tensor.Backend](
	axis int, squeezed bool, value, deriv *tensor.Tensor[T, B],
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	if !squeezed {
		return value, deriv
	}
	value = value.Squeeze(axis)
	if deriv != nil {
		deriv = deriv.Squeeze(axis)
	}
	return value, deriv
}

// segments bundles the per-query knot data of the selected segment.
type segments[T tensor.Float, B tensor.Backend] struct {
	x0, x1 *tensor.Tensor[T, B]
	y0, y1 *tensor.Tensor[T, B]
	d0, d1 *tensor.Tensor[T, B]
	m      *tensor.Tensor[T, B] // average slope of the segment
}

// gatherSegments resolves raw insertion indices to segment endpoints.
//
// The insertion index ranges over [0, knots_len]; clamping to
// [1, segm_len] and subtracting 1 sends out-of-range queries to the
// outermost segments.
func (s *Spline[T, B]) gatherSegments(ind *tensor.Tensor[int32, B]) segments[T, B] {
	ind = tensor.Clamp(ind, 1, int32(s.segmLen)).AddScalar(-1)
	next := ind.AddScalar(1)

	x0 := s.knotsX.Gather(s.axis, ind)
	x1 := s.knotsX.Gather(s.axis, next)
	y0 := s.knotsY.Gather(s.axis, ind)
	y1 := s.knotsY.Gather(s.axis, next)

	return segments[T, B]{
		x0: x0,
		x1: x1,
		y0: y0,
		y1: y1,
		d0: s.knotsD.Gather(s.axis, ind),
		d1: s.knotsD.Gather(s.axis, next),
		m:  y1.Sub(y0).Div(x1.Sub(x0)),
	}
}
