package rules

import "strings"

// Rule is one entry of an ordered keyword-matching table. A rule fires
// when any of its keywords appears as a case-insensitive substring of
// the message.
type Rule struct {
	Name     string
	Keywords []string
}

// Matches reports whether the message triggers this rule
func (r Rule) Matches(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range r.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Set is an ordered list of rules evaluated in priority order
type Set struct {
	rules []Rule
}

// NewSet builds a rule set. Order matters: the first matching rule wins.
func NewSet(rules ...Rule) *Set {
	return &Set{rules: rules}
}

// First returns the first rule matching the message
func (s *Set) First(message string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Matches(message) {
			return r, true
		}
	}
	return Rule{}, false
}
