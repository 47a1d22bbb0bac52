package fraction

import (
	"math"
	"testing"

	dectofrac "github.com/av-elier/go-decimal-to-rational"
	"github.com/stretchr/testify/require"
)

func TestApproximate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   float64
		wantNum int32
		wantDen int32
	}{
		{name: "integer", input: 2.0, wantNum: 2, wantDen: 1},
		{name: "half step", input: 2.5, wantNum: 5, wantDen: 2},
		{name: "negative half step", input: -2.5, wantNum: -5, wantDen: 2},
		{name: "NTSC-ish framerate", input: 29.97, wantNum: 2997, wantDen: 100},
		{name: "long expansion", input: 0.127659574, wantNum: 29013539, wantDen: 227272723},
		{name: "zero", input: 0, wantNum: 0, wantDen: 1},
		{name: "unit", input: 1, wantNum: 1, wantDen: 1},
		{name: "third-ish", input: 0.33, wantNum: 33, wantDen: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			num, den, err := Approximate(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantNum, num)
			require.Equal(t, tt.wantDen, den)
		})
	}
}

func TestApproximateSign(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0.5, 1, 23.976, 29.97, 1234.5678} {
		posNum, posDen, err := Approximate(v)
		require.NoError(t, err)
		negNum, negDen, err := Approximate(-v)
		require.NoError(t, err)

		require.Equal(t, posNum, -negNum)
		require.Equal(t, posDen, negDen)
		require.Positive(t, posDen)
	}
}

func TestApproximateError(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{
		0.000001, 0.127659574, 0.5, 1, 1.5, 23.976, 24, 25, 29.97,
		30, 59.94, 60, 1000.001, 12345.6789,
	} {
		num, den, err := Approximate(v)
		require.NoError(t, err, "value %v", v)
		require.Positive(t, den)

		got := float64(num) / float64(den)
		require.InDelta(t, v, got, 1e-6*math.Max(v, 1), "value %v => %d/%d", v, num, den)
	}
}

func TestApproximateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   float64
		wantErr error
	}{
		{name: "too large", input: float64(math.MaxInt32) * 2, wantErr: ErrOverflow},
		{name: "too large negative", input: -float64(math.MaxInt32) * 2, wantErr: ErrOverflow},
		{name: "NaN", input: math.NaN(), wantErr: ErrNonFinite},
		{name: "+Inf", input: math.Inf(1), wantErr: ErrNonFinite},
		{name: "-Inf", input: math.Inf(-1), wantErr: ErrNonFinite},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Approximate(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// the results should be at least as precise as the ones of
// github.com/av-elier/go-decimal-to-rational (which is what we used
// for this job previously).
func TestApproximateAgainstDecToFrac(t *testing.T) {
	t.Parallel()

	const prec = 1e-6
	for _, v := range []float64{0.127659574, 0.2, 0.33333, 3.14159265, 23.976, 29.97} {
		alt := dectofrac.NewRatP(v, prec)
		altValue, _ := alt.Float64()

		num, den, err := Approximate(v)
		require.NoError(t, err)
		got := float64(num) / float64(den)

		require.InDelta(t, v, altValue, prec)
		require.InDelta(t, v, got, prec)
		require.LessOrEqual(t, math.Abs(got-v), math.Abs(altValue-v)+prec)
	}
}
