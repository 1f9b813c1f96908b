package transformers

const (
	// ScoreModulus bounds the score value.
	ScoreModulus = 42069
	// ScoreLowByteMask picks the low byte of the first operand into the mix.
	ScoreLowByteMask = 0xFF
	// ScoreShift spreads the biased xor before the low byte is merged in.
	ScoreShift = 2
)

// ComputeScore mixes two integers and a bias into a bounded score:
//
//	step = (a ^ b) + bias
//	mixed = (step << 2) | (a & 0xFF)
//	score = mixed % 42069
//
// The arithmetic is 32-bit two's complement and the modulo truncates toward
// zero, so a negative mixed value produces a negative score.
func ComputeScore(a, b, bias int32) int32 {
	step := (a ^ b) + bias
	mixed := (step << ScoreShift) | (a & ScoreLowByteMask)
	return mixed % ScoreModulus
}

// ScoreMixer binds ComputeScore to a configured bias.
type ScoreMixer struct {
	bias int32
}

func NewScoreMixer(bias int32) *ScoreMixer {
	return &ScoreMixer{bias: bias}
}

func (sm *ScoreMixer) Bias() int32 {
	return sm.bias
}

func (sm *ScoreMixer) Mix(a, b int32) int32 {
	return ComputeScore(a, b, sm.bias)
}
