package checkdigit

// EAN13Digit returns the GTIN/EAN-13 check digit for a body.
// Weights alternate 3 and 1 starting with 3 at the rightmost body digit, which
// for a 12-digit body is the familiar 1,3,1,3... from the left.
func EAN13Digit(digits []int) int {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10
}
