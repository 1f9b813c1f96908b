package transformers

import "github.com/shopspring/decimal"

// BlendNumeric is the arbitrary precision counterpart of Blend.
func BlendNumeric(x, y decimal.Decimal) decimal.Decimal {
	return x.Add(y).Mul(x).Sub(y)
}
