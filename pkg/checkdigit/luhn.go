package checkdigit

// luhnSum folds digits right to left, doubling every other position.
// doubleRightmost selects whether the rightmost digit is doubled.
func luhnSum(digits []int, doubleRightmost bool) int {
	sum := 0
	double := doubleRightmost
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// LuhnDigit returns the digit that makes the sequence checksum to 0 mod 10.
//
// When doubleRightmost is true the digits are a body without its check digit,
// so doubling starts at the rightmost position (the classic Luhn generator).
// When false the sequence already carries a placeholder in the check position
// and doubling starts one position further left.
func LuhnDigit(digits []int, doubleRightmost bool) int {
	return (10 - luhnSum(digits, doubleRightmost)%10) % 10
}

// LuhnValid reports whether a full sequence, check digit included, passes the
// Luhn check.
func LuhnValid(digits []int) bool {
	if len(digits) == 0 {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}
