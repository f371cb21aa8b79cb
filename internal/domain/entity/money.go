package entity

// decimalToCents converts a decimal amount to cents, rounding half away
// from zero.
func decimalToCents(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}
