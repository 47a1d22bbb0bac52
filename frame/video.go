package frame

import (
	"fmt"
)

// Video is a single raw video frame.
type Video struct {
	Info VideoInfo
	Data []byte
}

func NewVideo(info VideoInfo) *Video {
	return &Video{
		Info: info,
		Data: make([]byte, info.PlaneSize()),
	}
}

func (f *Video) String() string {
	return fmt.Sprintf("Video(%s)", f.Info)
}

// Row returns the pixel bytes (without the stride padding) of row y.
func (f *Video) Row(y uint32) []byte {
	offset := uint64(y) * uint64(f.Info.Stride)
	return f.Data[offset : offset+f.Info.LineBytes()]
}

func (f *Video) Validate() error {
	if err := f.Info.Validate(); err != nil {
		return err
	}
	if uint64(len(f.Data)) < f.Info.PlaneSize() {
		return fmt.Errorf("the buffer is too small: %d < %d", len(f.Data), f.Info.PlaneSize())
	}
	return nil
}
