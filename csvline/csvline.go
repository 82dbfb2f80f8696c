// Package csvline splits a single line of the SF film locations data set
// into its fields.
//
// The data set is close to, but not quite, RFC 4180: fields may be
// wrapped in typographic quotes as well as ASCII ones, and quote
// characters are never escaped, only toggled. encoding/csv rejects
// such lines, so they are split here by hand.
package csvline

import (
	"strings"
	"unicode"
)

func isQuote(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

// Split returns the fields of line.
//
// Any quote character toggles quoted mode and is dropped. Outside quotes,
// a comma ends the current field and whitespace between fields is
// skipped. Inside a field or quotes, commas and whitespace are kept.
// A trailing empty field is dropped, and the last field is trimmed.
func Split(line string) []string {
	var (
		fields   []string
		sb       strings.Builder
		inQuotes bool
		inField  bool
	)

	for _, r := range line {
		switch {
		case isQuote(r):
			inQuotes = !inQuotes
			inField = inQuotes
		case unicode.IsSpace(r):
			if inQuotes || inField {
				sb.WriteRune(r)
			}
		case r == ',':
			if inQuotes {
				sb.WriteRune(r)
				continue
			}
			inField = false
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
			inField = true
		}
	}

	if sb.Len() > 0 {
		fields = append(fields, strings.TrimSpace(sb.String()))
	}

	return fields
}
