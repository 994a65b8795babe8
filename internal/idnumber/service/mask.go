package service

import "strings"

// Mask hides all but the last three characters of an ID number, for logs.
//
//	Mask("44051401458") == "********458"
func Mask(number string) string {
	r := []rune(number)
	if len(r) <= 3 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-3) + string(r[len(r)-3:])
}
