// pkg/patterns/schema.go
package patterns

// Set is the complete collection of matching tables the engine runs on.
// Every table is plain data so product can tune phrasing without touching
// the matching code. Order matters where noted.
type Set struct {
	Version string `json:"version,omitempty" yaml:"version"`

	// Intents drives the classifier. Each entry carries exact phrases plus
	// weighted keyword lists.
	Intents []IntentPattern `json:"intents,omitempty" yaml:"intents"`

	// BusinessTypes is checked in slice order, first match wins. The cafe
	// set must precede the restaurant set: cafe vocabulary is a strict
	// subset of food-service vocabulary and would otherwise never match.
	BusinessTypes []KeywordSet `json:"businessTypes,omitempty" yaml:"businessTypes"`

	// BusinessNouns feed the business-name capture regexes.
	BusinessNouns []string `json:"businessNouns,omitempty" yaml:"businessNouns"`

	// BudgetTight and BudgetFlexible are the keyword fallbacks used when
	// no numeric budget is present in the utterance.
	BudgetTight    []string `json:"budgetTight,omitempty" yaml:"budgetTight"`
	BudgetFlexible []string `json:"budgetFlexible,omitempty" yaml:"budgetFlexible"`

	// Timelines is checked in slice order (urgent, soon, flexible,
	// exploring), first match wins.
	Timelines []KeywordSet `json:"timelines,omitempty" yaml:"timelines"`

	// Features and PainPoints are non-exclusive; every matching set
	// contributes its tag.
	Features   []KeywordSet `json:"features,omitempty" yaml:"features"`
	PainPoints []KeywordSet `json:"painPoints,omitempty" yaml:"painPoints"`

	// DecisionRoles is checked in slice order (owner, needs_approval,
	// influencer), first match wins.
	DecisionRoles []KeywordSet `json:"decisionRoles,omitempty" yaml:"decisionRoles"`

	// Sentiment word lists feed the confidence-nudge layer.
	SentimentPositive []string `json:"sentimentPositive,omitempty" yaml:"sentimentPositive"`
	SentimentNegative []string `json:"sentimentNegative,omitempty" yaml:"sentimentNegative"`

	// StatePriorities maps a conversation state to the intents it
	// disambiguates toward (classifier layer five).
	StatePriorities map[string][]string `json:"statePriorities,omitempty" yaml:"statePriorities"`
}

// KeywordSet binds an output tag to the phrases that trigger it. Matching
// is case-insensitive substring containment on the raw utterance.
type KeywordSet struct {
	Tag      string   `json:"tag,omitempty" yaml:"tag"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords"`
}

// IntentPattern is the per-intent matching table. Primary keywords score
// +10, secondary +5, negative -15; exact phrases short-circuit at
// confidence 1.0 and also feed the n-gram layer.
type IntentPattern struct {
	Name         string   `json:"name,omitempty" yaml:"name"`
	ExactPhrases []string `json:"exactPhrases,omitempty" yaml:"exactPhrases"`
	Primary      []string `json:"primary,omitempty" yaml:"primary"`
	Secondary    []string `json:"secondary,omitempty" yaml:"secondary"`
	Negative     []string `json:"negative,omitempty" yaml:"negative"`
}

// Lookup returns the intent pattern with the given name, or nil.
func (s *Set) Lookup(name string) *IntentPattern {
	for i := range s.Intents {
		if s.Intents[i].Name == name {
			return &s.Intents[i]
		}
	}
	return nil
}
