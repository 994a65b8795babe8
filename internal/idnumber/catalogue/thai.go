package catalogue

import "fmt"

// thaiDistrictCounts holds the highest district code of each province.
// District 00 and the catch-all 99 are valid in every province.
var thaiDistrictCounts = map[int]int{
	10: 50, 11: 6, 12: 6, 13: 7, 14: 46, 15: 7, 16: 11, 17: 9, 18: 8, 19: 12,
	20: 11, 21: 8, 22: 10, 23: 7, 24: 11, 25: 9, 26: 4, 27: 9,
	30: 32, 31: 23, 32: 17, 33: 22, 34: 25, 35: 9, 36: 16, 37: 6, 38: 8, 39: 6,
	40: 26, 41: 25, 42: 14, 43: 9, 44: 13, 45: 20, 46: 18, 47: 18, 48: 12, 49: 7,
	50: 25, 51: 8, 52: 12, 53: 9, 54: 16, 55: 15, 56: 9, 57: 18, 58: 7,
	60: 15, 61: 8, 62: 11, 63: 9, 64: 9, 65: 22, 66: 13, 67: 13,
	70: 10, 71: 13, 72: 10, 73: 7, 74: 3, 75: 3, 76: 7, 77: 8,
	80: 23, 81: 8, 82: 8, 83: 3, 84: 19, 85: 4, 86: 8,
	90: 16, 91: 7, 92: 10, 93: 11, 94: 11, 95: 8, 96: 13,
}

// thaiExtraDistricts are codes issued outside the contiguous range.
var thaiExtraDistricts = map[int][]int{
	44: {95},
}

var thaiDistricts = buildThaiDistricts()

func buildThaiDistricts() map[string][]string {
	out := make(map[string][]string, len(thaiDistrictCounts))
	for province, max := range thaiDistrictCounts {
		codes := make([]string, 0, max+3)
		for d := 0; d <= max; d++ {
			codes = append(codes, fmt.Sprintf("%02d", d))
		}
		for _, d := range thaiExtraDistricts[province] {
			codes = append(codes, fmt.Sprintf("%02d", d))
		}
		codes = append(codes, "99")
		out[fmt.Sprintf("%02d", province)] = codes
	}
	return out
}
