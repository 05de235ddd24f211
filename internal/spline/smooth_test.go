package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowspline-ml/flowspline/internal/backend/cpu"
	"github.com/flowspline-ml/flowspline/internal/tensor"
)

type cpuTensor = tensor.Tensor[float64, *cpu.CPUBackend]

func fromSlice(t *testing.T, backend *cpu.CPUBackend, data []float64, shape tensor.Shape) *cpuTensor {
	t.Helper()
	tt, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return tt
}

func assertTensor(t *testing.T, got *cpuTensor, want []float64, delta float64) {
	t.Helper()
	data := got.Data()
	require.Len(t, data, len(want))
	for i := range want {
		assert.InDelta(t, want[i], data[i], delta, "element %d", i)
	}
}

func TestAveragedSlopeDerivatives(t *testing.T) {
	backend := cpu.New()
	// Segment slopes: 1, 2, 3.
	x := fromSlice(t, backend, []float64{0, 1, 2, 3}, tensor.Shape{1, 4})
	y := fromSlice(t, backend, []float64{0, 1, 3, 6}, tensor.Shape{1, 4})

	d := averagedSlopeDerivatives(x, y, 1, false)
	assertTensor(t, d, []float64{1, 1.5, 2.5, 3}, 1e-12)
}

func TestAveragedSlopeDerivativesUnitBoundary(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, []float64{0, 1, 2, 3}, tensor.Shape{1, 4})
	y := fromSlice(t, backend, []float64{0, 1, 3, 6}, tensor.Shape{1, 4})

	d := averagedSlopeDerivatives(x, y, 1, true)
	assertTensor(t, d, []float64{1, 1.5, 2.5, 1}, 1e-12)
}

func TestAveragedSlopeDerivativesSingleSegment(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, []float64{0, 2}, tensor.Shape{1, 2})
	y := fromSlice(t, backend, []float64{0, 1}, tensor.Shape{1, 2})

	d := averagedSlopeDerivatives(x, y, 1, false)
	assertTensor(t, d, []float64{0.5, 0.5}, 1e-12)
}

func TestAveragedSlopeDerivativesBatched(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, []float64{
		0, 1, 2,
		0, 2, 4,
	}, tensor.Shape{2, 3})
	y := fromSlice(t, backend, []float64{
		0, 2, 3,
		0, 2, 8,
	}, tensor.Shape{2, 3})

	d := averagedSlopeDerivatives(x, y, 1, false)
	assertTensor(t, d, []float64{
		2, 1.5, 1,
		1, 2, 3,
	}, 1e-12)
}

func TestAlternatingProductDerivatives(t *testing.T) {
	backend := cpu.New()
	// Segment slopes: 1, 2, 3. Seed 1, then d[k+1] = m[k]^2 / d[k].
	x := fromSlice(t, backend, []float64{0, 1, 2, 3}, tensor.Shape{1, 4})
	y := fromSlice(t, backend, []float64{0, 1, 3, 6}, tensor.Shape{1, 4})

	d := alternatingProductDerivatives(x, y, 1)
	assertTensor(t, d, []float64{1, 1, 4, 2.25}, 1e-12)
}

func TestAlternatingProductDerivativesRecurrence(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, []float64{0, 0.5, 1.25, 2, 3}, tensor.Shape{1, 5})
	y := fromSlice(t, backend, []float64{0, 1, 2.75, 3.5, 5}, tensor.Shape{1, 5})

	m := segmentSlopes(x, y, 1).Data()
	d := alternatingProductDerivatives(x, y, 1).Data()

	require.Len(t, d, 5)
	assert.Equal(t, 1.0, d[0])
	for k := 0; k < 4; k++ {
		assert.InDelta(t, m[k]*m[k]/d[k], d[k+1], 1e-12, "knot %d", k+1)
	}
}
