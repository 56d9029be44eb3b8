package bezier3d

import (
	"math"
	"sort"
)

// Root finding for the hodograph of a cubic curve. The derivative of a
// cubic Bézier component is a quadratic, so only quadratics are needed.

// SolveQuadratic finds the real roots of a·x² + b·x + c = 0 in ascending order.
//
// A vanishing or non-finite leading coefficient degrades to the linear
// equation b·x + c = 0. If every coefficient is zero the single root 0 is
// returned so callers always get a representative parameter.
func SolveQuadratic(a, b, c float64) []float64 {
	p := b / a
	q := c / a
	if !isFinite(p) || !isFinite(q) {
		return solveLinear(b, c)
	}

	disc := p*p - 4*q
	switch {
	case !isFinite(disc):
		// p² overflowed; x² + p·x ≈ 0 gives one root, Vieta gives the other.
		return sortedPair(-p, q/-p)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * p}
	}

	// Avoid cancellation between -p and sqrt(disc).
	r1 := -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	return sortedPair(r1, q/r1)
}

func solveLinear(b, c float64) []float64 {
	if x := -c / b; isFinite(x) {
		return []float64{x}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveQuadraticInUnitInterval returns the roots of a·x² + b·x + c = 0 that
// lie in [0, 1], the parameter domain of a Bézier curve.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return unitIntervalRoots(SolveQuadratic(a, b, c))
}

// unitIntervalRoots keeps the roots inside [0, 1], snapping values within
// rounding distance of the boundary onto it.
func unitIntervalRoots(roots []float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range roots {
		if r < -eps || r > 1+eps {
			continue
		}
		out = append(out, math.Min(math.Max(r, 0), 1))
	}
	sort.Float64s(out)
	return out
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
