package transformers

import "math"

const (
	// DefaultLabelPrefix is prepended to the record label on every transform
	// pass. Repeated passes stack the prefix.
	DefaultLabelPrefix = "blorpified_"

	// MagnitudeShiftFactor multiplies the scaled count before it is added to
	// the magnitude.
	MagnitudeShiftFactor = math.Pi
)

// ScaleTransformer implements the per-record arithmetic of the batch
// transform: count is multiplied by the scale factor, the magnitude is
// shifted by MagnitudeShiftFactor times the updated count and the label
// receives the configured prefix.
type ScaleTransformer struct {
	scaleFactor int64
	labelPrefix string
}

// NewScaleTransformer creates a transformer with the provided scale factor.
// An empty labelPrefix falls back to DefaultLabelPrefix.
func NewScaleTransformer(scaleFactor int64, labelPrefix string) *ScaleTransformer {
	if labelPrefix == "" {
		labelPrefix = DefaultLabelPrefix
	}
	return &ScaleTransformer{
		scaleFactor: scaleFactor,
		labelPrefix: labelPrefix,
	}
}

func (st *ScaleTransformer) ScaleFactor() int64 {
	return st.scaleFactor
}

func (st *ScaleTransformer) LabelPrefix() string {
	return st.labelPrefix
}

// Transform applies the three transform steps to a single record's values.
// The magnitude shift uses the already scaled count, not the original one.
// Integer overflow wraps, it is not detected.
func (st *ScaleTransformer) Transform(count int64, magnitude float64, label string) (int64, float64, string) {
	count *= st.scaleFactor
	magnitude += MagnitudeShiftFactor * float64(count)
	label = st.labelPrefix + label
	return count, magnitude, label
}
