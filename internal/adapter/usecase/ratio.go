package usecase

// ratio divides num by den and returns 0 when the denominator is zero.
// Every derived metric and summary figure goes through this helper so
// the zero-denominator policy is applied uniformly.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
