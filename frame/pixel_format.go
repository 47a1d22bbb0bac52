package frame

import (
	"fmt"
	"strings"
)

type PixelFormat string

func (pf PixelFormat) String() string {
	return string(pf)
}

const (
	PixelFormatUnknown PixelFormat = "unknown"
	PixelFormatBGRx    PixelFormat = "bgrx"
	PixelFormatGray8   PixelFormat = "gray8"
)

// BytesPerPixel returns the size of one pixel in bytes, or 0 for an
// unknown format.
func (pf PixelFormat) BytesPerPixel() uint32 {
	switch pf {
	case PixelFormatBGRx:
		return 4
	case PixelFormatGray8:
		return 1
	}
	return 0
}

func PixelFormatFromString(s string) (PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bgrx":
		return PixelFormatBGRx, nil
	case "gray8", "grey8":
		return PixelFormatGray8, nil
	}
	return PixelFormatUnknown, fmt.Errorf("unsupported pixel format '%s'", s)
}
