package kernel

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/rgb2grey/frame"
)

// Direction says which way a pixel format travels through an element
// during negotiation.
type Direction int

const (
	DirectionUndefined Direction = iota
	// DirectionSink: the format is offered on the input side.
	DirectionSink
	// DirectionSource: the format is offered on the output side.
	DirectionSource
)

func (d Direction) String() string {
	switch d {
	case DirectionSink:
		return "sink"
	case DirectionSource:
		return "source"
	}
	return "undefined"
}

// Abstract is a synchronous raw video transform element.
type Abstract interface {
	fmt.Stringer

	// TransformPixelFormats returns the pixel formats the opposite
	// side may use, given the format offered on side dir.
	TransformPixelFormats(ctx context.Context, dir Direction, pf frame.PixelFormat) []frame.PixelFormat

	// SetVideoInfo fixates the negotiated input and output layouts.
	SetVideoInfo(ctx context.Context, in, out frame.VideoInfo) error

	// Transform converts one input frame into the output frame.
	Transform(ctx context.Context, in, out *frame.Video) error

	// Reset drops the negotiated state.
	Reset(ctx context.Context)
}
