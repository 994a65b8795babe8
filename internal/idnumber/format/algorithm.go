package format

// Kind names a checksum algorithm family.
type Kind string

const (
	KindLuhn            Kind = "luhn"
	KindVerhoeff        Kind = "verhoeff"
	KindWeightedModulus Kind = "weighted_modulus"
	KindMNModulus       Kind = "mn_modulus"
	KindEAN13           Kind = "ean13"
	KindISO7064         Kind = "iso7064_mod11_2"
	KindAlphabet        Kind = "alphabet"
)

// Algorithm selects a check digit algorithm and carries its parameters.
// The set of implementations is closed.
type Algorithm interface {
	Kind() Kind
	isAlgorithm()
}

// Luhn is the Luhn mod 10 scheme. DoubleRightmost is the generator form:
// the source holds the body only and doubling starts at its last digit.
type Luhn struct {
	DoubleRightmost bool
}

// Verhoeff authenticates source followed by the check digit in one pass.
type Verhoeff struct{}

// WeightedModulus is sum(d[i]*w[i]) mod Divider, complemented unless
// ModulusOnly. When the result is 10 or more and Fallback is set the sum is
// recomputed with Fallback before Overflow applies.
type WeightedModulus struct {
	Weights     []int
	Fallback    []int
	Divider     int
	ModulusOnly bool
	Overflow    Overflow
}

// MNModulus is the ISO 7064 hybrid MOD M,N system.
type MNModulus struct {
	M, N     int
	Overflow Overflow
}

// EAN13 is the retail barcode check digit.
type EAN13 struct{}

// ISO7064 is the pure MOD 11-2 system; a result of 10 goes through Overflow.
type ISO7064 struct {
	Overflow Overflow
}

// Alphabet maps the source number modulo len(Table) to a character.
type Alphabet struct {
	Table string
}

func (Luhn) Kind() Kind            { return KindLuhn }
func (Verhoeff) Kind() Kind        { return KindVerhoeff }
func (WeightedModulus) Kind() Kind { return KindWeightedModulus }
func (MNModulus) Kind() Kind       { return KindMNModulus }
func (EAN13) Kind() Kind           { return KindEAN13 }
func (ISO7064) Kind() Kind         { return KindISO7064 }
func (Alphabet) Kind() Kind        { return KindAlphabet }

func (Luhn) isAlgorithm()            {}
func (Verhoeff) isAlgorithm()        {}
func (WeightedModulus) isAlgorithm() {}
func (MNModulus) isAlgorithm()       {}
func (EAN13) isAlgorithm()           {}
func (ISO7064) isAlgorithm()         {}
func (Alphabet) isAlgorithm()        {}

// OverflowMode says what to do with an algorithm result of 10 or more.
type OverflowMode int

const (
	// OverflowReject means no check digit exists for the input.
	OverflowReject OverflowMode = iota
	// OverflowUnits keeps the units digit.
	OverflowUnits
	// OverflowWrap maps a result equal to the divider to 0 and rejects the rest.
	OverflowWrap
	// OverflowReplace substitutes a fixed character.
	OverflowReplace
)

// Overflow is the policy for results of 10 or more. The zero value rejects.
type Overflow struct {
	Mode OverflowMode
	Char byte
}

var (
	Reject = Overflow{Mode: OverflowReject}
	Units  = Overflow{Mode: OverflowUnits}
	Wrap   = Overflow{Mode: OverflowWrap}
)

// OverflowAs replaces any result of 10 or more with c.
func OverflowAs(c byte) Overflow {
	return Overflow{Mode: OverflowReplace, Char: c}
}

// ChecksumSpec binds an algorithm to the capture groups it reads.
//
// Source groups are concatenated in order. Letters expands single characters
// of the source into digit strings before the algorithm runs (a leading
// region letter, a replacement prefix). Check names the group holding the
// check character.
type ChecksumSpec struct {
	Algorithm Algorithm
	Source    []string
	Letters   map[byte]string
	Check     string
}
