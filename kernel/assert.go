package kernel

import (
	"context"

	"github.com/xaionaro-go/rgb2grey/logger"
)

func assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	args := append([]any{"assertion failed"}, extraArgs...)
	logger.Panic(ctx, args...)
}
