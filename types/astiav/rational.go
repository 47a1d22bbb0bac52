// Package astiav converts our types into the representations of the
// libav wrappers (and back).
package astiav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/rgb2grey/types"
)

func RationalToAstiav(r types.Rational) astiav.Rational {
	return astiav.NewRational(int(r.Num), int(r.Den))
}

func RationalFromAstiav(r astiav.Rational) types.Rational {
	return types.Rational{
		Num: int32(r.Num()),
		Den: int32(r.Den()),
	}
}
