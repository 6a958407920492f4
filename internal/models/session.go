// internal/models/session.go
package models

import "time"

// ConversationState is the current phase of the scripted sales dialogue.
type ConversationState string

const (
	StateWelcome           ConversationState = "welcome"
	StateDiscovery         ConversationState = "discovery"
	StateBusinessProfiling ConversationState = "business_profiling"
	StateNeedsAssessment   ConversationState = "needs_assessment"
	StateBudgetDiscussion  ConversationState = "budget_discussion"
	StateTimelineAssessment ConversationState = "timeline_assessment"
	StateRecommendation    ConversationState = "recommendation"
	StatePackageDetails    ConversationState = "package_details"
	StateObjectionHandling ConversationState = "objection_handling"
	StateClosing           ConversationState = "closing"
	StateSupport           ConversationState = "support"
	StateExit              ConversationState = "exit"
)

// AllStates lists every valid state label, used for totality checks.
var AllStates = []ConversationState{
	StateWelcome, StateDiscovery, StateBusinessProfiling, StateNeedsAssessment,
	StateBudgetDiscussion, StateTimelineAssessment, StateRecommendation,
	StatePackageDetails, StateObjectionHandling, StateClosing, StateSupport,
	StateExit,
}

// Valid reports whether s is one of the twelve state labels.
func (s ConversationState) Valid() bool {
	for _, v := range AllStates {
		if s == v {
			return true
		}
	}
	return false
}

const (
	// MaxIntentHistory bounds the per-session intent record.
	MaxIntentHistory = 10
	// MaxStateHistory bounds the visited-state record used for
	// stagnation detection.
	MaxStateHistory = 20
)

// AskedFlags tracks which discovery questions have already been put to the
// visitor, so the same fact is never solicited twice.
type AskedFlags struct {
	BusinessType bool `json:"businessType,omitempty"`
	Needs        bool `json:"needs,omitempty"`
	Budget       bool `json:"budget,omitempty"`
	Timeline     bool `json:"timeline,omitempty"`
	Decision     bool `json:"decision,omitempty"`
}

// Session is the complete per-visitor conversation record. It is owned by
// exactly one logical writer per turn; the engine takes a session value in
// and returns an updated copy.
type Session struct {
	ID            string              `json:"id"`
	Profile       ConversationProfile `json:"profile"`
	State         ConversationState   `json:"state"`
	StateHistory  []ConversationState `json:"stateHistory,omitempty"`
	Intents       []IntentRecord      `json:"intents,omitempty"`
	MessageCount  int                 `json:"messageCount"`
	Asked         AskedFlags          `json:"asked"`
	LeadScore     LeadScoreResult     `json:"leadScore"`
	Recommendation *Recommendation    `json:"recommendation,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewSession returns an empty session in the welcome state.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           id,
		State:        StateWelcome,
		StateHistory: []ConversationState{StateWelcome},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecordIntent appends to the bounded intent history.
func (s *Session) RecordIntent(in Intent, at time.Time) {
	s.Intents = append(s.Intents, IntentRecord{
		Name:       in.Name,
		Confidence: in.Confidence,
		Layer:      in.SourceLayer,
		At:         at,
	})
	if len(s.Intents) > MaxIntentHistory {
		s.Intents = s.Intents[len(s.Intents)-MaxIntentHistory:]
	}
}

// RecordState appends to the bounded state history.
func (s *Session) RecordState(st ConversationState) {
	s.StateHistory = append(s.StateHistory, st)
	if len(s.StateHistory) > MaxStateHistory {
		s.StateHistory = s.StateHistory[len(s.StateHistory)-MaxStateHistory:]
	}
}

// RecentIntentNames returns up to n most recent intent names, newest last.
func (s *Session) RecentIntentNames(n int) []IntentName {
	if n > len(s.Intents) {
		n = len(s.Intents)
	}
	out := make([]IntentName, 0, n)
	for _, rec := range s.Intents[len(s.Intents)-n:] {
		out = append(out, rec.Name)
	}
	return out
}
