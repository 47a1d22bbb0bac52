package kernel

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"

	"github.com/xaionaro-go/rgb2grey/frame"
	"github.com/xaionaro-go/rgb2grey/logger"
)

const (
	MinSteps     = 1
	MaxSteps     = 256
	DefaultSteps = 256
)

// BT.601 luma weights in 16.16 fixed point,
// see https://en.wikipedia.org/wiki/YUV#SDTV_with_BT.601
const (
	lumaWeightR = 19595 // 0.299 * 65536
	lumaWeightG = 38470 // 0.587 * 65536
	lumaWeightB = 7471  // 0.114 * 65536
)

// ErrNotNegotiated is returned by Transform until SetVideoInfo
// succeeded.
var ErrNotNegotiated = errors.New("the video info was not negotiated, yet")

type negotiatedVideoInfo struct {
	In  frame.VideoInfo
	Out frame.VideoInfo
}

// Rgb2Grey converts BGRx frames into greyscale (either greyscale BGRx
// or Gray8).
type Rgb2Grey struct {
	// Steps is the amount of shades of grey to use (1..256); with
	// fewer than 256 the output is quantized. Use SetSteps instead of
	// storing directly to get clamping.
	Steps atomic.Uint32

	Locker    xsync.Mutex
	videoInfo *negotiatedVideoInfo
}

var _ Abstract = (*Rgb2Grey)(nil)

func NewRgb2Grey() *Rgb2Grey {
	k := &Rgb2Grey{}
	k.Steps.Store(DefaultSteps)
	return k
}

func (k *Rgb2Grey) String() string {
	return fmt.Sprintf("Rgb2Grey(steps: %d)", k.Steps.Load())
}

func (k *Rgb2Grey) SetSteps(
	ctx context.Context,
	steps uint32,
) {
	clamped := min(max(steps, MinSteps), MaxSteps)
	if clamped != steps {
		logger.Warnf(ctx, "steps value %d is out of range, clamping to %d", steps, clamped)
	}
	logger.Debugf(ctx, "SetSteps: %d", clamped)
	k.Steps.Store(clamped)
}

func (k *Rgb2Grey) TransformPixelFormats(
	ctx context.Context,
	dir Direction,
	pf frame.PixelFormat,
) []frame.PixelFormat {
	logger.Tracef(ctx, "TransformPixelFormats: %s, %s", dir, pf)
	switch dir {
	case DirectionSink:
		if pf != frame.PixelFormatBGRx {
			return nil
		}
		return []frame.PixelFormat{frame.PixelFormatGray8, frame.PixelFormatBGRx}
	case DirectionSource:
		switch pf {
		case frame.PixelFormatBGRx, frame.PixelFormatGray8:
			return []frame.PixelFormat{frame.PixelFormatBGRx}
		}
	}
	return nil
}

func (k *Rgb2Grey) SetVideoInfo(
	ctx context.Context,
	in frame.VideoInfo,
	out frame.VideoInfo,
) error {
	return xsync.DoA3R1(ctx, &k.Locker, k.setVideoInfo, ctx, in, out)
}

func (k *Rgb2Grey) setVideoInfo(
	ctx context.Context,
	in frame.VideoInfo,
	out frame.VideoInfo,
) (_err error) {
	logger.Debugf(ctx, "SetVideoInfo: %s -> %s", in, out)
	defer func() { logger.Debugf(ctx, "/SetVideoInfo: %v", _err) }()

	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid input info: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid output info: %w", err)
	}
	if in.PixelFormat != frame.PixelFormatBGRx {
		return fmt.Errorf("the input must be %s, got '%s'", frame.PixelFormatBGRx, in.PixelFormat)
	}
	switch out.PixelFormat {
	case frame.PixelFormatBGRx, frame.PixelFormatGray8:
	default:
		return fmt.Errorf("the output must be %s or %s, got '%s'", frame.PixelFormatBGRx, frame.PixelFormatGray8, out.PixelFormat)
	}
	if in.Width != out.Width || in.Height != out.Height {
		return fmt.Errorf("the resolution must not change: %dx%d -> %dx%d", in.Width, in.Height, out.Width, out.Height)
	}

	k.videoInfo = &negotiatedVideoInfo{In: in, Out: out}
	return nil
}

// VideoInfo returns the negotiated input and output layouts (or nils).
func (k *Rgb2Grey) VideoInfo(ctx context.Context) (in, out *frame.VideoInfo) {
	k.Locker.Do(ctx, func() {
		if k.videoInfo == nil {
			return
		}
		in, out = &k.videoInfo.In, &k.videoInfo.Out
	})
	return
}

func (k *Rgb2Grey) Reset(ctx context.Context) {
	k.Locker.Do(ctx, func() {
		logger.Debugf(ctx, "Reset")
		k.videoInfo = nil
	})
}

func (k *Rgb2Grey) Transform(
	ctx context.Context,
	in *frame.Video,
	out *frame.Video,
) error {
	return xsync.DoA3R1(ctx, &k.Locker, k.transform, ctx, in, out)
}

func (k *Rgb2Grey) transform(
	ctx context.Context,
	in *frame.Video,
	out *frame.Video,
) (_err error) {
	logger.Tracef(ctx, "Transform")
	defer func() { logger.Tracef(ctx, "/Transform: %v", _err) }()

	if k.videoInfo == nil {
		return ErrNotNegotiated
	}
	if in.Info != k.videoInfo.In {
		return fmt.Errorf("the input frame layout %s does not match the negotiated one %s", in.Info, k.videoInfo.In)
	}
	if out.Info != k.videoInfo.Out {
		return fmt.Errorf("the output frame layout %s does not match the negotiated one %s", out.Info, k.videoInfo.Out)
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid input frame: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid output frame: %w", err)
	}
	assert(ctx, len(in.Data)%4 == 0)

	steps := k.Steps.Load()
	width := int(in.Info.Width)
	height := int(in.Info.Height)

	switch out.Info.PixelFormat {
	case frame.PixelFormatBGRx:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				inRow, outRow := in.Row(uint32(y)), out.Row(uint32(y))
				for x := 0; x < width; x++ {
					grey := greyFromBGRx(inRow[x*4:x*4+4], steps)
					outPx := outRow[x*4 : x*4+4]
					outPx[0], outPx[1], outPx[2], outPx[3] = grey, grey, grey, 0
				}
			}
		})
	case frame.PixelFormatGray8:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				inRow, outRow := in.Row(uint32(y)), out.Row(uint32(y))
				for x := 0; x < width; x++ {
					outRow[x] = greyFromBGRx(inRow[x*4:x*4+4], steps)
				}
			}
		})
	default:
		// unreachable: setVideoInfo does not let other formats through
		return fmt.Errorf("unsupported output pixel format '%s'", out.Info.PixelFormat)
	}

	return nil
}

func greyFromBGRx(pixel []byte, steps uint32) byte {
	b := uint32(pixel[0])
	g := uint32(pixel[1])
	r := uint32(pixel[2])
	grey := (r*lumaWeightR + g*lumaWeightG + b*lumaWeightB) / 65536
	return byte(quantize(grey, steps))
}

// quantize maps grey onto a scale of `steps` evenly spread shades.
func quantize(grey uint32, steps uint32) uint32 {
	switch {
	case steps >= MaxSteps:
		return grey
	case steps <= 1:
		return 0
	}
	level := grey * steps / 256
	return level * 255 / (steps - 1)
}
