// internal/models/recommendation.go
package models

// PackageTier is one of the three fixed service tiers.
type PackageTier string

const (
	PackageEssential    PackageTier = "essential"
	PackageProfessional PackageTier = "professional"
	PackagePremium      PackageTier = "premium"
)

// PackagePrice returns the one-time price of a tier in USD.
func PackagePrice(p PackageTier) int {
	switch p {
	case PackageEssential:
		return 1997
	case PackagePremium:
		return 9997
	default:
		return 4997
	}
}

// ROIEstimate is the static return-on-investment projection attached to a
// recommendation. Values come from per-industry tables, not live data.
type ROIEstimate struct {
	MonthlyRevenue int     `json:"monthlyRevenue"`
	PaybackMonths  int     `json:"paybackMonths"`
	FirstYearROI   int     `json:"firstYearRoiPct"`
	Multiple       float64 `json:"multiple"`
}

// Recommendation is the engine's package pick for a session. Confidence
// reflects how complete the profile was, not how certain the matched rule is.
type Recommendation struct {
	Package    PackageTier `json:"package"`
	Confidence float64     `json:"confidence"`
	Reasoning  string      `json:"reasoning"`
	ROI        ROIEstimate `json:"roi"`
}

// LeadLevel is the four-tier label derived from the lead score.
type LeadLevel string

const (
	LeadCold      LeadLevel = "cold"
	LeadWarm      LeadLevel = "warm"
	LeadHot       LeadLevel = "hot"
	LeadQualified LeadLevel = "qualified"
)

// LeadScoreResult is a pure function of the current profile and session
// metadata, recomputed in full every turn.
type LeadScoreResult struct {
	Score            int            `json:"score"`
	Level            LeadLevel      `json:"level"`
	Breakdown        map[string]int `json:"breakdown"`
	Disqualified     bool           `json:"disqualified,omitempty"`
	DisqualifyReason string         `json:"disqualifyReason,omitempty"`
}
