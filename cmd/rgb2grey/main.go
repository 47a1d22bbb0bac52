package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"

	"github.com/xaionaro-go/rgb2grey/frame"
	"github.com/xaionaro-go/rgb2grey/kernel"
	"github.com/xaionaro-go/rgb2grey/types"
	typesastiav "github.com/xaionaro-go/rgb2grey/types/astiav"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <raw-BGRx-file-from> <raw-file-to>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	width := pflag.Uint32("width", 0, "frame width in pixels")
	height := pflag.Uint32("height", 0, "frame height in pixels")
	steps := pflag.Uint32("steps", kernel.DefaultSteps, "amount of shades of grey to use (1..256)")
	frameRateString := pflag.String("framerate", "~30", "frame rate, e.g. '30000/1001', '29.97' or '~29.97'")
	outputFormatString := pflag.String("output-format", "gray8", "output pixel format: 'bgrx' or 'gray8'")
	pflag.Parse()
	if len(pflag.Args()) != 2 || *width == 0 || *height == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	frameRate, err := types.RationalFromString(*frameRateString)
	if err != nil {
		l.Fatalf("invalid frame rate: %v", err)
	}
	l.Debugf("frame rate: %s (libav: %v)", frameRate, typesastiav.RationalToAstiav(*frameRate))

	outputFormat, err := frame.PixelFormatFromString(*outputFormatString)
	if err != nil {
		l.Fatalf("%v", err)
	}

	inInfo := frame.VideoInfo{
		PixelFormat: frame.PixelFormatBGRx,
		Width:       *width,
		Height:      *height,
		Stride:      *width * frame.PixelFormatBGRx.BytesPerPixel(),
		FrameRate:   *frameRate,
	}
	outInfo := frame.VideoInfo{
		PixelFormat: outputFormat,
		Width:       *width,
		Height:      *height,
		Stride:      *width * outputFormat.BytesPerPixel(),
		FrameRate:   *frameRate,
	}

	k := kernel.NewRgb2Grey()
	k.SetSteps(ctx, *steps)
	if err := k.SetVideoInfo(ctx, inInfo, outInfo); err != nil {
		l.Fatalf("unable to negotiate the video info: %v", err)
	}
	l.Infof("%s: %s -> %s", k, inInfo, outInfo)

	input, err := os.Open(pflag.Arg(0))
	if err != nil {
		l.Fatalf("unable to open the input: %v", err)
	}
	defer input.Close()

	output, err := os.Create(pflag.Arg(1))
	if err != nil {
		l.Fatalf("unable to open the output: %v", err)
	}
	defer func() {
		if err := output.Close(); err != nil {
			l.Errorf("unable to close the output: %v", err)
		}
	}()

	inFrame := frame.NewVideo(inInfo)
	outFrame := frame.NewVideo(outInfo)

	count := 0
	for {
		_, err := io.ReadFull(input, inFrame.Data)
		switch {
		case errors.Is(err, io.EOF):
			l.Infof("converted %d frame(s)", count)
			return
		case errors.Is(err, io.ErrUnexpectedEOF):
			l.Fatalf("the input ends with a truncated frame (after %d full frames)", count)
		case err != nil:
			l.Fatalf("unable to read frame #%d: %v", count, err)
		}

		if err := k.Transform(ctx, inFrame, outFrame); err != nil {
			l.Fatalf("unable to convert frame #%d: %v", count, err)
		}

		if _, err := output.Write(outFrame.Data); err != nil {
			l.Fatalf("unable to write frame #%d: %v", count, err)
		}
		count++
		l.Tracef("converted frame #%d", count)
	}
}
