// Package patterns holds the compiled regular-expression rules used for
// pattern-based extraction of emails, organization names, and person names.
package patterns

import "regexp"

// namePart matches one capitalized name word. Umlaut classes are kept for
// raw-text callers; normalized text is ASCII-only and matches the same way.
const namePart = `[A-Z][a-zäöüß]+`

// nameSeq matches a capitalized name sequence, allowing "&" joins
// ("Mustermann & Partner Rechtsanwalte").
const nameSeq = namePart + `(?:(?:\s+&)?\s+` + namePart + `)*`

// emailPattern is an RFC-light email matcher.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// organizationPatterns match German legal-entity names. Declaration order
// is significant: matches are returned pattern-first, then in text order.
var organizationPatterns = []*regexp.Regexp{
	regexp.MustCompile(namePart + `(?:\s+` + namePart + `){0,2}\s+(?:GmbH|AG|PartG mbB|PartGmbB|GbR|mbH|OHG|KG|e\.V\.)`),
	regexp.MustCompile(`Kanzlei\s+` + nameSeq),
	regexp.MustCompile(`Rechtsanwaltskanzlei\s+` + nameSeq),
}

// personPatterns match person names anchored on titles and honorifics.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Herr|Frau)\s+` + nameSeq),
	regexp.MustCompile(`(?:Dr\.|Prof\.)\s+` + nameSeq),
}

// Library is the fixed compiled rule set. Safe for concurrent use.
type Library struct {
	email         *regexp.Regexp
	organizations []*regexp.Regexp
	persons       []*regexp.Regexp
}

// NewLibrary returns the library of compiled extraction rules.
func NewLibrary() *Library {
	return &Library{
		email:         emailPattern,
		organizations: organizationPatterns,
		persons:       personPatterns,
	}
}

// Emails returns all email matches in text order.
func (l *Library) Emails(text string) []string {
	return l.email.FindAllString(text, -1)
}

// Organizations returns all organization-name matches, ordered by pattern
// declaration, then match order within each pattern.
func (l *Library) Organizations(text string) []string {
	return matchAll(l.organizations, text)
}

// Persons returns all person-name matches, ordered by pattern declaration,
// then match order within each pattern.
func (l *Library) Persons(text string) []string {
	return matchAll(l.persons, text)
}

// matchAll runs each pattern in order and concatenates the matches.
func matchAll(rules []*regexp.Regexp, text string) []string {
	var matches []string
	for _, rule := range rules {
		matches = append(matches, rule.FindAllString(text, -1)...)
	}
	return matches
}
