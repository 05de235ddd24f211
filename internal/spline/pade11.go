package spline

import "github.com/flowspline-ml/flowspline/internal/tensor"

// Rational linear (Pade [1,1]) segment evaluation.
//
// With theta = (x - x0)/(x1 - x0) and m the segment slope, the value is
//
//	y0 + (y1 - y0) * d0 * theta / (m + (d0 - m) * theta)
//
// which interpolates the endpoints and matches d0 at the left one. The
// derivative at the right endpoint is fixed to m^2/d0, which is what makes
// the alternating-product smoothing produce a globally continuous
// derivative.

func pade11Forward[T tensor.Float, B tensor.Backend](
	seg segments[T, B], x *tensor.Tensor[T, B], grad bool,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	theta := x.Sub(seg.x0).Div(seg.x1.Sub(seg.x0))

	denom := seg.m.Add(seg.d0.Sub(seg.m).Mul(theta))
	y := seg.y0.Add(seg.y1.Sub(seg.y0).Mul(seg.d0).Mul(theta).Div(denom))
	if !grad {
		return y, nil
	}
	return y, pade11Deriv(seg, theta)
}

func pade11Backward[T tensor.Float, B tensor.Backend](
	seg segments[T, B], y *tensor.Tensor[T, B], grad bool,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	eta := y.Sub(seg.y0).Div(seg.y1.Sub(seg.y0))

	// theta = -eta*m / (eta*(d0 - m) - d0), the direct algebraic inverse.
	theta := eta.MulScalar(T(-1)).Mul(seg.m).
		Div(eta.Mul(seg.d0.Sub(seg.m)).Sub(seg.d0))
	x := seg.x0.Add(seg.x1.Sub(seg.x0).Mul(theta))
	if !grad {
		return x, nil
	}
	deriv := pade11Deriv(seg, theta)
	return x, tensor.Ones[T, B](deriv.Shape(), deriv.Backend()).Div(deriv)
}

// pade11Deriv evaluates dy/dx at theta:
//
//	m^2 * d0 / (m + (d0 - m) * theta)^2
func pade11Deriv[T tensor.Float, B tensor.Backend](
	seg segments[T, B], theta *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	denom := seg.m.Add(seg.d0.Sub(seg.m).Mul(theta))
	return seg.m.Mul(seg.m).Mul(seg.d0).Div(denom.Mul(denom))
}
