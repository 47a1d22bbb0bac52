package types

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/xaionaro-go/rgb2grey/fraction"
)

// Rational is a fraction of two 32-bit integers, the sign is carried
// by the numerator. It is the representation video frame rates (and
// other exact ratios) are negotiated in.
type Rational struct {
	Num int32
	Den int32
}

func (r Rational) Reverse() Rational {
	return Rational{
		Num: r.Den,
		Den: r.Num,
	}
}

// Mul multiplies two rationals. If the exact product does not fit into
// int32 pairs even after reduction, the closest representable rational
// is returned instead; and if there is no sane representation at all,
// the (invalid) zero Rational is returned.
func (r Rational) Mul(other Rational) Rational {
	return rationalFromInt64(
		int64(r.Num)*int64(other.Num),
		int64(r.Den)*int64(other.Den),
	)
}

// Div divides two rationals; see the overflow notes on Mul.
func (r Rational) Div(other Rational) Rational {
	return rationalFromInt64(
		int64(r.Num)*int64(other.Den),
		int64(r.Den)*int64(other.Num),
	)
}

func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func rationalFromInt64(num, den int64) Rational {
	if fitsInt32(num) && fitsInt32(den) {
		return Rational{Num: int32(num), Den: int32(den)}
	}

	gcd := big.NewInt(0).GCD(nil, nil,
		big.NewInt(0).Abs(big.NewInt(num)),
		big.NewInt(0).Abs(big.NewInt(den)),
	).Int64()
	if gcd > 1 {
		num /= gcd
		den /= gcd
	}
	if fitsInt32(num) && fitsInt32(den) {
		return Rational{Num: int32(num), Den: int32(den)}
	}

	r, err := RationalFromFloat64(float64(num) / float64(den))
	if err != nil {
		return Rational{}
	}
	return *r
}

func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func isInt32(f float64) bool {
	return math.Abs(f) <= math.MaxInt32 && float64(int32(f)) == f
}

func newNTSCRationalFromFloat64(f float64) *big.Rat {
	if !(f > 0 && f < math.MaxInt32/1000) {
		return nil
	}
	den := 1001 // common denominator for NTSC frame rates
	num := math.Ceil(f) * 1000
	r := big.NewRat(int64(num), int64(den))
	confirmValue, _ := r.Float64()
	if math.Abs(f-confirmValue) < 1e-2 {
		return r
	}
	return nil
}

// RationalFromFloat64 converts value into the exact continued-fractions
// convergent (see package fraction).
func RationalFromFloat64(value float64) (*Rational, error) {
	if isInt32(value) {
		return &Rational{Num: int32(value), Den: 1}, nil
	}
	num, den, err := fraction.Approximate(value)
	if err != nil {
		return nil, err
	}
	return &Rational{Num: num, Den: den}, nil
}

// RationalFromApproxFloat64 is the same as RationalFromFloat64, but it
// snaps values close to an NTSC frame rate onto the x*1000/1001 grid
// first (e.g. 29.97 becomes 30000/1001 instead of 2997/100).
func RationalFromApproxFloat64(value float64) (*Rational, error) {
	if isInt32(value) {
		return &Rational{Num: int32(value), Den: 1}, nil
	}

	if rat := newNTSCRationalFromFloat64(value); rat != nil {
		return &Rational{
			Num: int32(rat.Num().Int64()),
			Den: int32(rat.Denom().Int64()),
		}, nil
	}

	return RationalFromFloat64(value)
}

func RationalFromString(s string) (*Rational, error) {
	var (
		r   *Rational
		err error
	)
	switch {
	case len(s) == 0:
		return nil, fmt.Errorf("unable to parse Rational from empty string")
	case strings.Contains(s, "/"):
		r = &Rational{}
		if _, err := fmt.Sscanf(s, "%d/%d", &r.Num, &r.Den); err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
	case s[0] == '~':
		value, parseErr := strconv.ParseFloat(s[1:], 64)
		if parseErr != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, parseErr)
		}
		r, err = RationalFromApproxFloat64(value)
	default:
		value, parseErr := strconv.ParseFloat(s, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, parseErr)
		}
		r, err = RationalFromFloat64(value)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to convert %q to a Rational: %w", s, err)
	}
	if r.Den == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return r, nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unable to unmarshal Rational from JSON '%s': %w", b, err)
	}
	v, err := RationalFromString(s)
	if err != nil {
		return fmt.Errorf("unable to unmarshal Rational from string %q: %w", s, err)
	}
	*r = *v
	return nil
}

func (r *Rational) UnmarshalYAML(b []byte) error {
	return r.UnmarshalJSON(b)
}

func (r Rational) MarshalYAML() ([]byte, error) {
	return r.MarshalJSON()
}
