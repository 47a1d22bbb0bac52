// Package fraction approximates floating point values as ratios of
// 32-bit integers, using the continued fractions expansion method:
// http://mathforum.org/dr.math/faq/faq.fractions.html#decfrac
package fraction

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFinite is returned when the input is NaN or infinite.
	ErrNonFinite = errors.New("the value is not a finite number")

	// ErrOverflow is returned when the input magnitude does not fit
	// into a signed 32-bit integer.
	ErrOverflow = errors.New("the value does not fit into int32")

	// ErrDegenerate is returned when the expansion ends with a zero
	// denominator.
	ErrDegenerate = errors.New("the resulting denominator is zero")
)

// Approximate returns the best ratio num/den of two signed 32-bit
// integers approximating value, or an error if no safe representation
// exists. The sign is carried by the numerator; the denominator is
// always positive.
//
// The returned pair is not guaranteed to be in lowest terms: the
// convergents are reduced opportunistically mid-expansion (to delay
// overflow), so the exact pair depends on when those reductions apply.
func Approximate(value float64) (int32, int32, error) {
	const (
		maxIterations = 30
		maxError      = 1.0e-20
		// 1/epsilon > math.MaxInt32
		epsilon = 1.0e-10
	)

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, fmt.Errorf("unable to approximate %v: %w", value, ErrNonFinite)
	}

	negative := value < 0
	q := math.Abs(value)

	if q > math.MaxInt32 {
		return 0, 0, fmt.Errorf("unable to approximate %v: %w", value, ErrOverflow)
	}

	var (
		n0, d0 uint32 = 0, 1
		n1, d1 uint32 = 1, 0
	)

	for i := 0; i < maxIterations; i++ {
		whole := math.Floor(q)
		f := q - whole
		if whole > math.MaxInt32 {
			// The convergent would overflow anyway; keep the
			// previous one.
			break
		}
		a := uint32(whole)

		// The next convergent is a*n1+n0 / a*d1+d0; stop (keeping the
		// current one) if it would not fit into int32. The products
		// are widened to uint64, so the check itself cannot overflow.
		if a != 0 &&
			(uint64(a)*uint64(n1)+uint64(n0) > math.MaxInt32 ||
				uint64(a)*uint64(d1)+uint64(d0) > math.MaxInt32) {
			break
		}

		n := a*n1 + n0
		d := a*d1 + d0

		n0, d0 = n1, d1
		n1, d1 = n, d

		// Prevent division by ~0.
		if f < epsilon {
			break
		}
		r := 1 / f

		// Reduce here instead of at the end: it allows getting closer
		// to the target value before the overflow check fires.
		if g := GCD(n1, d1); g != 0 {
			n1 /= g
			d1 /= g
		}

		if math.Abs(float64(n)/float64(d)-value) < maxError {
			break
		}

		q = r
	}

	if d1 == 0 {
		return 0, 0, fmt.Errorf("unable to approximate %v: %w", value, ErrDegenerate)
	}

	if negative {
		return -int32(n1), int32(d1), nil
	}
	return int32(n1), int32(d1), nil
}
