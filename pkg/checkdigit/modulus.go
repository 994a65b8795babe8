package checkdigit

import "fmt"

// WeightedModulusDigit computes sum(digits[i]*weights[i]) mod divider.
//
// With modulusOnly the remainder is returned as is; otherwise the complement
// divider-remainder is returned, which lies in 1..divider. Interpreting
// results of 10 or more (invalid, wrapped, replaced by a letter) is left to
// the caller.
//
// Panics if weights is shorter than digits or divider is not positive.
func WeightedModulusDigit(digits, weights []int, divider int, modulusOnly bool) int {
	if divider <= 0 {
		panic(fmt.Sprintf("checkdigit: divider must be positive, got %d", divider))
	}
	if len(weights) < len(digits) {
		panic(fmt.Sprintf("checkdigit: %d weights cannot cover %d digits", len(weights), len(digits)))
	}
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	modulus := sum % divider
	if modulusOnly {
		return modulus
	}
	return divider - modulus
}

// MNModulusDigit runs the ISO 7064 hybrid system MOD m,n (for example
// MOD 11,10 with m=10, n=11) and returns n minus the final running product.
// The result lies in 1..n-1.
func MNModulusDigit(digits []int, m, n int) int {
	product := m
	for _, d := range digits {
		s := (d + product) % m
		if s == 0 {
			s = m
		}
		product = (2 * s) % n
	}
	return n - product
}

// ModulusOverflowMod10 keeps only the units digit of results of 10 or more.
func ModulusOverflowMod10(x int) int {
	if x >= 10 {
		return x % 10
	}
	return x
}

// ISO7064Mod11_2 computes the ISO 7064 pure system MOD 11-2 check value.
// The result lies in 0..10; 10 is conventionally written as "X".
func ISO7064Mod11_2(digits []int) int {
	p := 0
	for _, d := range digits {
		p = ((p + d) * 2) % 11
	}
	return (12 - p) % 11
}

// AlphabetDigit reduces the decimal number spelled by digits modulo
// len(alphabet) and returns the character at that index.
//
// Panics on an empty alphabet.
func AlphabetDigit(digits []int, alphabet string) byte {
	n := len(alphabet)
	if n == 0 {
		panic("checkdigit: empty alphabet")
	}
	r := 0
	for _, d := range digits {
		r = (r*10 + d) % n
	}
	return alphabet[r]
}
