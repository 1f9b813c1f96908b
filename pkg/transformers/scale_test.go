package transformers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleTransformer_Transform(t *testing.T) {
	tr := NewScaleTransformer(7, "")
	count, magnitude, label := tr.Transform(10, 2.5, "narf")
	require.Equal(t, int64(70), count)
	require.InDelta(t, 2.5+math.Pi*70, magnitude, 1e-9)
	require.Equal(t, "blorpified_narf", label)
}

func TestScaleTransformer_Transform_customPrefix(t *testing.T) {
	tr := NewScaleTransformer(2, "x_")
	_, _, label := tr.Transform(1, 0, "zort")
	require.Equal(t, "x_zort", label)
}

func TestScaleTransformer_Transform_magnitudeUsesScaledCount(t *testing.T) {
	tr := NewScaleTransformer(3, "")
	count, magnitude, _ := tr.Transform(5, 1, "poit")
	require.Equal(t, int64(15), count)
	// The shift uses 15, not the original 5.
	require.InDelta(t, 1+math.Pi*15, magnitude, 1e-9)
}
