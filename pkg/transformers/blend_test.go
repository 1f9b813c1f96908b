package transformers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	// (13 + 37) * 13 - 37
	require.Equal(t, int64(613), Blend[int64](13, 37))
	require.Equal(t, 613, Blend(13, 37))
}

func TestBlend_float64(t *testing.T) {
	require.InDelta(t, 613.0, Blend(13.0, 37.0), 1e-9)
	require.InDelta(t, (1.5+2.5)*1.5-2.5, Blend(1.5, 2.5), 1e-9)
}

func TestBlend_negativeOperands(t *testing.T) {
	require.Equal(t, int32((-3+5)*-3-5), Blend[int32](-3, 5))
}

func TestBlendNumeric(t *testing.T) {
	x := decimal.NewFromInt(13)
	y := decimal.NewFromInt(37)
	res := BlendNumeric(x, y)
	require.True(t, res.Equal(decimal.NewFromInt(613)))

	// Agrees with the generic float blend.
	xf := decimal.NewFromFloat(1.5)
	yf := decimal.NewFromFloat(2.5)
	f, _ := BlendNumeric(xf, yf).Float64()
	require.InDelta(t, Blend(1.5, 2.5), f, 1e-9)
}
