package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianKernelNormalized(t *testing.T) {
	k := NewGaussianKernel(21, 2.0, 1.0)
	sum := 0.0
	for _, c := range k.cs {
		sum += c
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	// Symmetry about the center.
	for i := 0; i < len(k.cs)/2; i++ {
		assert.InDelta(t, k.cs[i], k.cs[len(k.cs)-1-i], 1e-12)
	}
}

func TestGaussianConvolvePreservesConstant(t *testing.T) {
	k := NewGaussianKernel(11, 1.5, 1.0)
	xs := make([]float64, 40)
	for i := range xs {
		xs[i] = 3.5
	}
	out := k.Convolve(xs, Extension)
	for i := range out {
		assert.InDelta(t, 3.5, out[i], 1e-12, "index %d", i)
	}
}

func TestGaussianConvolvePreservesSum(t *testing.T) {
	// With zero padding and a signal far from the edges, smoothing
	// redistributes but does not create or destroy flux.
	k := NewGaussianKernel(9, 1.0, 1.0)
	xs := make([]float64, 50)
	xs[25] = 10.0
	out := k.Convolve(xs, ZeroPad)

	sumIn, sumOut := 0.0, 0.0
	for i := range xs {
		sumIn += xs[i]
		sumOut += out[i]
	}
	assert.InDelta(t, sumIn, sumOut, 1e-9)
}

func TestTophatKernel(t *testing.T) {
	k := NewTophatKernel(3)
	out := k.Convolve([]float64{0, 3, 0, 3, 0}, Extension)
	assert.InDelta(t, 1.0, out[1], 1e-12)
	assert.InDelta(t, 2.0, out[2], 1e-12)
}

func TestEvenKernelWidthPanics(t *testing.T) {
	assert.Panics(t, func() { NewGaussianKernel(4, 1, 1) })
	assert.Panics(t, func() { NewTophatKernel(2) })
}
