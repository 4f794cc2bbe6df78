package utils

import (
	"regexp"
	"strings"
)

var (
	phoneNote     = regexp.MustCompile(`\s*\(([^)]+)\)\s*$`)
	phoneNonDigit = regexp.MustCompile(`\D`)
)

// Phone is a display-ready phone number.
type Phone struct {
	Display string // number without the trailing note
	Tel     string // digits only, for a tel: link
	Note    string // text of a trailing "(...)", if any
}

// FormatPhone splits "+7 (3452) 00-00-00 (бухгалтерия)" style strings into parts.
// Only a parenthesized group at the very end counts as a note.
func FormatPhone(raw string) Phone {
	var p Phone
	if m := phoneNote.FindStringSubmatchIndex(raw); m != nil {
		p.Note = raw[m[2]:m[3]]
		raw = raw[:m[0]]
	}
	p.Display = strings.TrimSpace(raw)
	p.Tel = phoneNonDigit.ReplaceAllString(p.Display, "")
	return p
}
