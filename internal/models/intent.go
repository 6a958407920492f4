// internal/models/intent.go
package models

import "time"

// IntentName is the closed set of utterance intents the classifier can emit.
type IntentName string

const (
	IntentGreeting            IntentName = "greeting"
	IntentBusinessInfo        IntentName = "business_info"
	IntentWebsiteNeed         IntentName = "website_need"
	IntentFeatureInquiry      IntentName = "feature_inquiry"
	IntentPricingInquiry      IntentName = "pricing_inquiry"
	IntentQuoteRequest        IntentName = "quote_request"
	IntentBudgetInfo          IntentName = "budget_info"
	IntentBudgetConcern       IntentName = "budget_concern"
	IntentBudgetTight         IntentName = "budget_tight"
	IntentTimelineInfo        IntentName = "timeline_info"
	IntentDecisionAuthority   IntentName = "decision_authority"
	IntentEssentialDetails    IntentName = "essential_details"
	IntentProfessionalDetails IntentName = "professional_details"
	IntentPremiumDetails      IntentName = "premium_details"
	IntentComparisonRequest   IntentName = "comparison_request"
	IntentReadyToStart        IntentName = "ready_to_start"
	IntentNotInterested       IntentName = "not_interested"
	IntentGoodbye             IntentName = "goodbye"
	IntentSupportInquiry      IntentName = "support_inquiry"
	IntentThanks              IntentName = "thanks"

	// Reserved intents; never produced by the matching layers themselves.
	IntentUnknown      IntentName = "unknown"
	IntentInvalidInput IntentName = "invalid_input"
)

// IsPackageDetails reports whether the intent asks about a specific package.
func (n IntentName) IsPackageDetails() bool {
	switch n {
	case IntentEssentialDetails, IntentProfessionalDetails, IntentPremiumDetails:
		return true
	}
	return false
}

// IsBuying reports whether the intent signals purchase interest. Used by the
// lead qualifier's intent-quality component and the form-CTA gate.
func (n IntentName) IsBuying() bool {
	switch n {
	case IntentReadyToStart, IntentQuoteRequest, IntentPricingInquiry,
		IntentComparisonRequest, IntentEssentialDetails,
		IntentProfessionalDetails, IntentPremiumDetails:
		return true
	}
	return false
}

// IsLowValue reports whether the intent signals disengagement.
func (n IntentName) IsLowValue() bool {
	switch n {
	case IntentNotInterested, IntentGoodbye, IntentUnknown:
		return true
	}
	return false
}

// MatchLayer identifies which classifier layer produced an intent.
type MatchLayer string

const (
	LayerExact    MatchLayer = "exact"
	LayerKeyword  MatchLayer = "keyword"
	LayerNGram    MatchLayer = "ngram"
	LayerFallback MatchLayer = "fallback"
)

// ConfidenceLevel buckets a confidence score for the response strategy.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Intent is the classifier's output for one utterance.
type Intent struct {
	Name        IntentName `json:"name"`
	Confidence  float64    `json:"confidence"`
	SourceLayer MatchLayer `json:"sourceLayer"`
}

// Level buckets the confidence: >=0.85 high, >=0.60 medium, else low.
func (i Intent) Level() ConfidenceLevel {
	switch {
	case i.Confidence >= 0.85:
		return ConfidenceHigh
	case i.Confidence >= 0.60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IntentRecord is one entry of the bounded per-session intent history.
type IntentRecord struct {
	Name       IntentName `json:"name"`
	Confidence float64    `json:"confidence"`
	Layer      MatchLayer `json:"layer"`
	At         time.Time  `json:"at"`
}
