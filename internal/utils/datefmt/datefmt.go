// Package datefmt normalizes slash-delimited date strings such as "1/2/2005"
// so that day and month components are always two digits wide.
//
// Nothing here checks that a value is a real calendar date. The function works
// on text only:
//
//	Normalize("1/2/2005")  == "01/02/2005"
//	Normalize("15/3/2004") == "15/03/2004"
package datefmt

import "strings"

// Separator splits the components of a date string.
const Separator = "/"

// Normalize rewrites every component of a slash-delimited date.
//
// Per component, in order:
//
//	length 0 or 1 → "0" + token + "/"
//	length 2      → token + "/"
//	length > 2    → token (no separator appended)
//
// A component longer than two characters is written without a trailing
// separator, so when it is not the last component it runs straight into the
// next one ("2005/1/2" → "200501/02/"). Callers rely on that exact output.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input) + 4)

	for _, token := range tokens(input) {
		switch n := len(token); {
		case n < 2:
			b.WriteString("0")
			b.WriteString(token)
			b.WriteString(Separator)
		case n == 2:
			b.WriteString(token)
			b.WriteString(Separator)
		default:
			b.WriteString(token)
		}
	}

	return b.String()
}

// tokens splits input the way a line reader does: an empty input has no
// components and a trailing separator does not open a final empty one.
func tokens(input string) []string {
	if input == "" {
		return nil
	}

	parts := strings.Split(input, Separator)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
