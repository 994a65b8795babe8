package checkdigit

// verhoeffMultiplication is the Cayley table of the dihedral group D5.
var verhoeffMultiplication = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// verhoeffPermutation holds the eight powers of the position permutation.
var verhoeffPermutation = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 8, 7, 6, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

var verhoeffInverse = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// verhoeffFold runs the accumulator right to left. offset shifts the
// permutation index so a body can be folded as if a check digit followed it.
func verhoeffFold(digits []int, offset int) int {
	c := 0
	for i := 0; i < len(digits); i++ {
		n := digits[len(digits)-1-i]
		c = verhoeffMultiplication[c][verhoeffPermutation[(i+offset)%8][n]]
	}
	return c
}

// VerhoeffCheck reports whether the full sequence, including its trailing
// check digit, authenticates under the Verhoeff scheme.
func VerhoeffCheck(digits []int) bool {
	if len(digits) == 0 {
		return false
	}
	return verhoeffFold(digits, 0) == 0
}

// VerhoeffDigit returns the check digit to append to digits.
func VerhoeffDigit(digits []int) int {
	return verhoeffInverse[verhoeffFold(digits, 1)]
}
