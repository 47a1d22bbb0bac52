package kernel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssert(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		assert(ctx, true, "should not be reported")
	})
	require.Panics(t, func() {
		assert(ctx, false, "in_data length", 5)
	})
}
