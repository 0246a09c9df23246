package models

import "github.com/shopspring/decimal"

// RoundPercent rounds a percentage to two decimal places using banker's
// rounding, so repeated recomputation of the same allocation is stable.
func RoundPercent(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

// RoundMoney rounds a monetary value to two decimal places.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
