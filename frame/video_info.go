// Package frame provides the raw video frame model the transform
// kernels operate on.
package frame

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/rgb2grey/types"
)

// VideoInfo describes the layout of raw video frames in one
// negotiated stream.
type VideoInfo struct {
	PixelFormat PixelFormat    `yaml:"pixel_format"`
	Width       uint32         `yaml:"width"`
	Height      uint32         `yaml:"height"`
	Stride      uint32         `yaml:"stride"`
	FrameRate   types.Rational `yaml:"frame_rate"`
}

func (i VideoInfo) String() string {
	return fmt.Sprintf("%s:%dx%d@%s", i.PixelFormat, i.Width, i.Height, i.FrameRate)
}

// MaxPlaneSize is the highest amount of bytes one frame is allowed to
// occupy.
const MaxPlaneSize = math.MaxInt32

// LineBytes returns the amount of bytes occupied by the pixels of one
// row (the stride may add padding on top of that). It is computed in
// 64 bits, so it does not wrap around even for insane widths.
func (i VideoInfo) LineBytes() uint64 {
	return uint64(i.Width) * uint64(i.PixelFormat.BytesPerPixel())
}

// PlaneSize returns the amount of bytes one frame occupies. It is
// computed in 64 bits, so it does not wrap around even for insane
// strides/heights.
func (i VideoInfo) PlaneSize() uint64 {
	return uint64(i.Stride) * uint64(i.Height)
}

func (i VideoInfo) Validate() error {
	if i.PixelFormat.BytesPerPixel() == 0 {
		return fmt.Errorf("unsupported pixel format '%s'", i.PixelFormat)
	}
	if i.Width == 0 || i.Height == 0 {
		return fmt.Errorf("invalid resolution %dx%d", i.Width, i.Height)
	}
	if uint64(i.Stride) < i.LineBytes() {
		return fmt.Errorf("stride %d is smaller than one row of pixels (%d bytes)", i.Stride, i.LineBytes())
	}
	if i.PlaneSize() > MaxPlaneSize {
		return fmt.Errorf("the frame is too big: %d bytes > %d", i.PlaneSize(), MaxPlaneSize)
	}
	return nil
}
