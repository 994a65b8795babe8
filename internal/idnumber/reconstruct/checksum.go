package reconstruct

import (
	"strings"

	"idnumbers/internal/idnumber/extract"
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
	"idnumbers/pkg/checkdigit"
)

// Compute returns the check character spec's algorithm produces for the
// captured fields, regardless of what the input carries. It reports false
// when the source is not numeric after letter expansion or the algorithm
// has no valid check character for it.
//
// Weight vectors shorter than the source are a descriptor bug and panic.
func Compute(f extract.Fields, spec format.ChecksumSpec) (models.CheckDigit, bool) {
	digits, ok := sourceDigits(f, spec)
	if !ok || len(digits) == 0 {
		return 0, false
	}

	switch a := spec.Algorithm.(type) {
	case format.Luhn:
		return models.DigitOf(checkdigit.LuhnDigit(digits, a.DoubleRightmost)), true
	case format.Verhoeff:
		return models.DigitOf(checkdigit.VerhoeffDigit(digits)), true
	case format.WeightedModulus:
		v := checkdigit.WeightedModulusDigit(digits, a.Weights, a.Divider, a.ModulusOnly)
		if v >= 10 && len(a.Fallback) > 0 {
			v = checkdigit.WeightedModulusDigit(digits, a.Fallback, a.Divider, a.ModulusOnly)
		}
		return applyOverflow(v, a.Divider, a.Overflow)
	case format.MNModulus:
		return applyOverflow(checkdigit.MNModulusDigit(digits, a.M, a.N), a.N, a.Overflow)
	case format.EAN13:
		return models.DigitOf(checkdigit.EAN13Digit(digits)), true
	case format.ISO7064:
		return applyOverflow(checkdigit.ISO7064Mod11_2(digits), 11, a.Overflow)
	case format.Alphabet:
		return models.CheckDigit(checkdigit.AlphabetDigit(digits, a.Table)), true
	}
	return 0, false
}

// Verify reports whether the check field of spec matches the source.
func Verify(f extract.Fields, spec format.ChecksumSpec) bool {
	check, ok := f.Get(spec.Check)
	if !ok || len(check) != 1 {
		return false
	}

	if _, isVerhoeff := spec.Algorithm.(format.Verhoeff); isVerhoeff {
		digits, ok := sourceDigits(f, spec)
		if !ok || check[0] < '0' || check[0] > '9' {
			return false
		}
		return checkdigit.VerhoeffCheck(append(digits, int(check[0]-'0')))
	}

	want, ok := Compute(f, spec)
	return ok && byte(want) == check[0]
}

// VerifyAll runs every checksum the descriptor declares.
func VerifyAll(f extract.Fields, d format.Descriptor) bool {
	for _, spec := range d.Checksums {
		if !Verify(f, spec) {
			return false
		}
	}
	return true
}

func sourceDigits(f extract.Fields, spec format.ChecksumSpec) ([]int, bool) {
	src := f.Concat(spec.Source...)
	if len(spec.Letters) > 0 {
		var b strings.Builder
		for i := 0; i < len(src); i++ {
			if repl, ok := spec.Letters[src[i]]; ok {
				b.WriteString(repl)
			} else {
				b.WriteByte(src[i])
			}
		}
		src = b.String()
	}
	return extract.DigitsOf(src)
}

func applyOverflow(v, divider int, o format.Overflow) (models.CheckDigit, bool) {
	if v >= 0 && v < 10 {
		return models.DigitOf(v), true
	}
	switch o.Mode {
	case format.OverflowUnits:
		return models.DigitOf(checkdigit.ModulusOverflowMod10(v)), true
	case format.OverflowWrap:
		if v == divider {
			return models.DigitOf(0), true
		}
	case format.OverflowReplace:
		return models.CheckDigit(o.Char), true
	}
	return 0, false
}
