package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/rgb2grey/types"
)

func TestVideoInfoValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    VideoInfo
		wantErr bool
	}{
		{
			name: "bgrx",
			info: VideoInfo{PixelFormat: PixelFormatBGRx, Width: 320, Height: 240, Stride: 1280},
		},
		{
			name: "gray8 padded stride",
			info: VideoInfo{PixelFormat: PixelFormatGray8, Width: 321, Height: 240, Stride: 384},
		},
		{
			name:    "stride too small",
			info:    VideoInfo{PixelFormat: PixelFormatBGRx, Width: 320, Height: 240, Stride: 320},
			wantErr: true,
		},
		{
			name:    "zero height",
			info:    VideoInfo{PixelFormat: PixelFormatBGRx, Width: 320, Height: 0, Stride: 1280},
			wantErr: true,
		},
		{
			name:    "unknown format",
			info:    VideoInfo{PixelFormat: PixelFormatUnknown, Width: 320, Height: 240, Stride: 1280},
			wantErr: true,
		},
		{
			name:    "plane size overflows uint32",
			info:    VideoInfo{PixelFormat: PixelFormatBGRx, Width: 1 << 15, Height: 1 << 17, Stride: 1 << 17},
			wantErr: true,
		},
		{
			name:    "line bytes overflow uint32",
			info:    VideoInfo{PixelFormat: PixelFormatBGRx, Width: 1 << 30, Height: 1, Stride: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.info.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVideoInfoPlaneSizeDoesNotWrapAround(t *testing.T) {
	t.Parallel()

	info := VideoInfo{
		PixelFormat: PixelFormatBGRx,
		Width:       1 << 15,
		Height:      1 << 17,
		Stride:      1 << 17,
	}
	require.Equal(t, uint64(1)<<34, info.PlaneSize())
	require.Error(t, info.Validate())
	require.Error(t, (&Video{Info: info}).Validate(), "an empty buffer must not cover a huge frame")
}

func TestVideoRow(t *testing.T) {
	t.Parallel()

	info := VideoInfo{
		PixelFormat: PixelFormatGray8,
		Width:       3,
		Height:      2,
		Stride:      4,
		FrameRate:   types.Rational{Num: 30, Den: 1},
	}
	f := NewVideo(info)
	require.NoError(t, f.Validate())
	require.Len(t, f.Data, 8)

	copy(f.Data, []byte{1, 2, 3, 0xff, 4, 5, 6, 0xff})
	require.Equal(t, []byte{1, 2, 3}, f.Row(0))
	require.Equal(t, []byte{4, 5, 6}, f.Row(1))
}

func TestPixelFormatFromString(t *testing.T) {
	t.Parallel()

	pf, err := PixelFormatFromString(" BGRx ")
	require.NoError(t, err)
	require.Equal(t, PixelFormatBGRx, pf)

	pf, err = PixelFormatFromString("grey8")
	require.NoError(t, err)
	require.Equal(t, PixelFormatGray8, pf)

	_, err = PixelFormatFromString("yuv420p")
	require.Error(t, err)
}
