// Package wad works with 1e18-scaled fixed-point fractions, the unit the
// Shares contracts express fee percentages in (1e18 = 100%).
package wad

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// One is 1e18, the wad representation of 100%.
var One = big.NewInt(1_000_000_000_000_000_000)

var oneDec = decimal.NewFromBigInt(One, 0)

// FromPercent converts a percentage to its wad fraction: FromPercent(4) is
// 4e16. Fractional percentages below 1e-16 truncate to zero.
func FromPercent(p decimal.Decimal) *big.Int {
	return p.Div(decimal.NewFromInt(100)).Mul(oneDec).BigInt()
}

// Percent is FromPercent for whole percentages.
func Percent(n int64) *big.Int {
	return FromPercent(decimal.NewFromInt(n))
}

// ToDecimal converts a wad fraction back to its plain decimal value, so 4e16
// becomes 0.04.
func ToDecimal(w *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(w, 0).Div(oneDec)
}

// Mul applies a wad fraction to an amount, truncating toward zero.
func Mul(amount, w *big.Int) *big.Int {
	out := new(big.Int).Mul(amount, w)
	return out.Quo(out, One)
}
