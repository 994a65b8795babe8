// Package models holds the result types shared by the ID number pipeline.
package models

import (
	"fmt"
)

// Gender is the gender classification encoded by some formats.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
)

// Citizenship is the residency classification encoded by some formats.
type Citizenship string

const (
	CitizenshipCitizen  Citizenship = "citizen"
	CitizenshipResident Citizenship = "resident"
	CitizenshipForeign  Citizenship = "foreign"
)

// CheckDigit is one check character: a decimal digit or, for a few formats,
// an upper-case letter.
type CheckDigit byte

// DigitOf converts 0..9 to its check digit.
func DigitOf(n int) CheckDigit {
	if n < 0 || n > 9 {
		panic(fmt.Sprintf("models: %d is not a decimal digit", n))
	}
	return CheckDigit('0' + n)
}

func (c CheckDigit) String() string {
	return string(rune(c))
}

// IsDigit reports whether the check character is 0..9.
func (c CheckDigit) IsDigit() bool {
	return c >= '0' && c <= '9'
}

// MarshalText renders the check digit as a one-character string.
func (c CheckDigit) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// State is the terminal state of one run of the pipeline.
// States are ordered: a later state implies every earlier stage passed.
type State int

const (
	StateUnmatched State = iota
	StateChecksumFailed
	StateSemanticallyInvalid
	StateValid
)

var stateNames = [...]string{
	StateUnmatched:           "unmatched",
	StateChecksumFailed:      "checksum_failed",
	StateSemanticallyInvalid: "semantically_invalid",
	StateValid:               "valid",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText renders the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	st, ok := ParseState(string(text))
	if !ok {
		return fmt.Errorf("models: unknown state %q", text)
	}
	*s = st
	return nil
}

// ParseState is the inverse of State.String.
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return StateUnmatched, false
}

// Location is a registration location: a region code and, for nested
// schemes, a district within it.
type Location struct {
	Region   string `json:"region"`
	District string `json:"district,omitempty"`
}

// Evaluation is the outcome of running one input through the pipeline.
// Result is set only for parsable formats in StateValid.
type Evaluation struct {
	State  State
	Result *ParseResult
}

// Valid reports whether the pipeline reached StateValid.
func (e Evaluation) Valid() bool {
	return e.State == StateValid
}
