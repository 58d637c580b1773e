package interpolate

import (
	"math"
)

// Kernel is a 1D smoothing kernel corresponding to some smoothing
// strategy and window width. Sky maps are smoothed by convolving each
// axis with a Gaussian kernel in turn.
type Kernel struct {
	cs     []float64
	center int
}

// BoundaryCondition is the rule applied when the smoothing window
// extends outside the data range.
type BoundaryCondition int

const (
	Extension BoundaryCondition = iota
	ZeroPad
	Reflection
)

func (b BoundaryCondition) get(xs []float64, i int) float64 {
	switch {
	case i < 0:
		switch b {
		case Extension:
			return xs[0]
		case ZeroPad:
			return 0
		case Reflection:
			return xs[-(i + 1)]
		}
		panic("Impossible")
	case i >= len(xs):
		switch b {
		case Extension:
			return xs[len(xs)-1]
		case ZeroPad:
			return 0
		case Reflection:
			return xs[2*len(xs)-1-i]
		}
		panic("Impossible")
	default:
		return xs[i]
	}
}

// Width returns the window width of the kernel.
func (k *Kernel) Width() int { return len(k.cs) }

// Convolve convolves a 1D data set with k under the boundary condition
// b.
//
// Make sure that xs corresponds to a uniformly-spaced sequence.
func (k *Kernel) Convolve(xs []float64, b BoundaryCondition) []float64 {
	out := make([]float64, len(xs))
	k.ConvolveAt(xs, b, out)
	return out
}

// ConvolveAt convolves a 1D data set with k under the boundary
// condition b, writing the result to out. out must not alias xs.
func (k *Kernel) ConvolveAt(xs []float64, b BoundaryCondition, out []float64) {
	n := len(xs)
	nl, nr := k.center, len(k.cs)-1-k.center

	for i := 0; i < n; i++ {
		if i >= nl && i < n-nr {
			// Window fully inside.
			sum := 0.0
			for j, c := range k.cs {
				sum += xs[i+j-k.center] * c
			}
			out[i] = sum
		} else {
			sum := 0.0
			for j, c := range k.cs {
				sum += b.get(xs, i+j-k.center) * c
			}
			out[i] = sum
		}
	}
}

func (k *Kernel) normalize() {
	sum := 0.0
	for _, c := range k.cs {
		sum += c
	}
	for i := range k.cs {
		k.cs[i] /= sum
	}
}

// NewGaussianKernel creates a normalized Gaussian kernel,
// exp(-x^2 / (2 sigma^2)), with the given window width and point
// separation dx.
func NewGaussianKernel(width int, sigma, dx float64) *Kernel {
	if width%2 != 1 {
		panic("Kernel width must be odd.")
	}

	k := &Kernel{cs: make([]float64, width), center: width / 2}
	for i := 0; i <= k.center; i++ {
		x := float64(i-k.center) * dx
		k.cs[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	// Gaussians are symmetric: no need to compute again.
	for i := k.center + 1; i < len(k.cs); i++ {
		k.cs[i] = k.cs[len(k.cs)-1-i]
	}

	k.normalize()
	return k
}

// NewTophatKernel creates a constant smoothing kernel of the given
// width.
func NewTophatKernel(width int) *Kernel {
	if width%2 != 1 {
		panic("Kernel width must be odd.")
	}

	k := &Kernel{cs: make([]float64, width), center: width / 2}
	for i := range k.cs {
		k.cs[i] = 1
	}

	k.normalize()
	return k
}
