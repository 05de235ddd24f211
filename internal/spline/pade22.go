package spline

import "github.com/flowspline-ml/flowspline/internal/tensor"

// Rational quadratic (Pade [2,2]) segment evaluation.
//
// With theta = (x - x0)/(x1 - x0) and m the segment slope, the value is
//
//	y0 + (y1 - y0) * theta * (m*theta + d0*(1-theta))
//	   / (m + (d1 + d0 - 2m) * theta * (1-theta))
//
// which interpolates the endpoints and matches d0, d1 there. The map is
// monotone when m, d0, d1 > 0.

func pade22Forward[T tensor.Float, B tensor.Backend](
	seg segments[T, B], x *tensor.Tensor[T, B], grad bool,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	theta := x.Sub(seg.x0).Div(seg.x1.Sub(seg.x0))
	y := pade22Value(seg, theta)
	if !grad {
		return y, nil
	}
	return y, pade22Deriv(seg, theta)
}

func pade22Backward[T tensor.Float, B tensor.Backend](
	seg segments[T, B], y *tensor.Tensor[T, B], grad bool,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	eta := y.Sub(seg.y0).Div(seg.y1.Sub(seg.y0))
	theta := pade22Invert(seg, eta)
	x := seg.x0.Add(seg.x1.Sub(seg.x0).Mul(theta))
	if !grad {
		return x, nil
	}
	deriv := pade22Deriv(seg, theta)
	return x, tensor.Ones[T, B](deriv.Shape(), deriv.Backend()).Div(deriv)
}

func pade22Value[T tensor.Float, B tensor.Backend](
	seg segments[T, B], theta *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	oneMinus := theta.MulScalar(T(-1)).AddScalar(T(1))
	c := seg.d1.Add(seg.d0).Sub(seg.m.MulScalar(T(2)))

	num := theta.Mul(seg.m.Mul(theta).Add(seg.d0.Mul(oneMinus)))
	denom := seg.m.Add(c.Mul(theta).Mul(oneMinus))
	return seg.y0.Add(seg.y1.Sub(seg.y0).Mul(num).Div(denom))
}

// pade22Deriv evaluates dy/dx at theta:
//
//	m^2 * (d0 + 2*(m - d0)*theta + (d1 + d0 - 2m)*theta^2)
//	    / (m + (d1 + d0 - 2m) * theta * (1-theta))^2
func pade22Deriv[T tensor.Float, B tensor.Backend](
	seg segments[T, B], theta *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	oneMinus := theta.MulScalar(T(-1)).AddScalar(T(1))
	c := seg.d1.Add(seg.d0).Sub(seg.m.MulScalar(T(2)))

	num := seg.d0.
		Add(seg.m.Sub(seg.d0).MulScalar(T(2)).Mul(theta)).
		Add(c.Mul(theta).Mul(theta))
	denom := seg.m.Add(c.Mul(theta).Mul(oneMinus))
	return seg.m.Mul(seg.m).Mul(num).Div(denom.Mul(denom))
}

// pade22Invert solves the segment quadratic
//
//	a2*theta^2 + a1*theta + a0 = 0
//	a2 = (2m - d1 - d0)*eta + d0 - m
//	a1 = -a2 - m
//	a0 = m*eta
//
// for theta in [0, 1]. The discriminant is non-negative for monotone
// segment data, since a1^2 = (a2 + m)^2 >= 4*a2*m >= 4*a2*a0 when
// 0 <= eta <= 1 and m > 0. When a2 is zero the equation is linear.
func pade22Invert[T tensor.Float, B tensor.Backend](
	seg segments[T, B], eta *tensor.Tensor[T, B],
) *tensor.Tensor[T, B] {
	a2 := seg.m.MulScalar(T(2)).Sub(seg.d1).Sub(seg.d0).Mul(eta).Add(seg.d0).Sub(seg.m)
	a1 := a2.MulScalar(T(-1)).Sub(seg.m)
	a0 := seg.m.Mul(eta)

	delta := a1.Mul(a1).Sub(a0.Mul(a2).MulScalar(T(4))).Sqrt()

	linear := a0.MulScalar(T(-1)).Div(a1)
	quadratic := a1.MulScalar(T(-1)).Sub(delta).Div(a2.MulScalar(T(2)))

	zero := tensor.Zeros[T, B](a2.Shape(), a2.Backend())
	return tensor.Where(a2.Equal(zero), linear, quadratic)
}
