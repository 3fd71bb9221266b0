package models

// Persona is a labeled cluster of keywords used to group and color-code
// the suggested keyword chips. Personas are process-wide constants and
// carry no behavior beyond presentation and "which persona is active".
type Persona struct {
	Key   string   `json:"key"`
	Style string   `json:"style"`
	Tags  []string `json:"tags"`
}

// HasTag reports whether the keyword belongs to this persona's cluster
func (p *Persona) HasTag(keyword string) bool {
	for _, tag := range p.Tags {
		if tag == keyword {
			return true
		}
	}
	return false
}

// KeywordSuggestion pairs a suggested keyword with the persona bucket it
// was drawn from.
type KeywordSuggestion struct {
	Keyword string `json:"keyword"`
	Persona string `json:"persona"`
}
