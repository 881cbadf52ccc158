package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-. ]?|\b\d{1,3}[-. ]?)?(?:\(\d{3}\)|\b\d{3})[-. ]?\d{3}[-. ]?\d{4}\b`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// Contact finds email addresses and phone numbers. Phones are reduced to
// their digits.
func Contact(text string) types.ContactInfo {
	emails := make(map[string]struct{})
	for _, e := range emailPattern.FindAllString(text, -1) {
		emails[e] = struct{}{}
	}

	phones := make(map[string]struct{})
	for _, p := range phonePattern.FindAllString(text, -1) {
		digits := nonDigit.ReplaceAllString(p, "")
		if len(digits) >= 10 {
			phones[digits] = struct{}{}
		}
	}

	var info types.ContactInfo
	if len(emails) > 0 {
		info.Emails = sortedKeys(emails)
	}
	if len(phones) > 0 {
		info.Phones = sortedKeys(phones)
	}
	return info
}

// ContactPtr returns nil when nothing was found.
func ContactPtr(text string) *types.ContactInfo {
	info := Contact(strings.TrimSpace(text))
	if info.IsEmpty() {
		return nil
	}
	return &info
}
