package interpolate

import (
	"fmt"
)

// searcher finds the interval containing a query point in a strictly
// increasing sequence. Sampling grids are log-spaced, so the initial
// uniform-spacing guess usually misses, but it is cheap and the
// fallback bisection is O(log n).
type searcher struct {
	xs     []float64
	x0, dx float64
	lim    float64
}

func (s *searcher) init(xs []float64) {
	if len(xs) < 2 {
		panic(fmt.Sprintf("Sequence of length %d cannot be searched.",
			len(xs)))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			panic("Sequence given to searcher is not strictly increasing.")
		}
	}
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
}

// search returns the largest index i such that xs[i] <= x and
// i < len(xs) - 1.
func (s *searcher) search(x float64) int {
	if x < s.x0 || x > s.lim {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g].", x, s.x0, s.lim,
		))
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		s.xs[guess] <= x && s.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(s.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
