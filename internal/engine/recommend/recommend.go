// internal/engine/recommend/recommend.go

// Package recommend maps an accumulated conversation profile and lead
// score onto one of the three fixed packages. The decision tree is order
// sensitive: rules are evaluated top to bottom and the first match wins.
package recommend

import "pegrio-chatbot/internal/models"

// Confidence reflects profile completeness, not rule certainty.
const (
	confidenceBase         = 0.5
	confidenceBusinessType = 0.1
	confidenceBudget       = 0.15
	confidenceFeatures     = 0.1
	confidenceTimeline     = 0.1
	confidencePainPoints   = 0.05

	professionalScoreFloor = 70
	multiFeatureFloor      = 2
	multiPainPointFloor    = 3
)

// rule is one node of the decision tree. Order in the rules slice is the
// priority order; do not reorder without pinning the change in tests.
type rule struct {
	reason  string
	pkg     models.PackageTier
	matches func(p models.ConversationProfile, leadScore int) bool
}

var rules = []rule{
	{
		reason: "tight or essential budget fits the essential package",
		pkg:    models.PackageEssential,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.BudgetRange == models.BudgetTight || p.BudgetRange == models.BudgetEssential
		},
	},
	{
		reason: "premium or flexible budget unlocks the premium package",
		pkg:    models.PackagePremium,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.BudgetRange == models.BudgetPremium || p.BudgetRange == models.BudgetFlexible
		},
	},
	{
		reason: "combined ordering and booking needs require the premium build",
		pkg:    models.PackagePremium,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.HasFeature(models.FeatureOrdering) && p.HasFeature(models.FeatureBooking)
		},
	},
	{
		reason: "e-commerce requires the premium build",
		pkg:    models.PackagePremium,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.HasFeature(models.FeatureEcommerce)
		},
	},
	{
		reason: "restaurant with ordering or AI needs fits professional",
		pkg:    models.PackageProfessional,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.BusinessType == models.BusinessRestaurant &&
				(p.HasFeature(models.FeatureOrdering) || p.HasFeature(models.FeatureAI))
		},
	},
	{
		reason: "salon with booking needs fits premium",
		pkg:    models.PackagePremium,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.BusinessType == models.BusinessSalon && p.HasFeature(models.FeatureBooking)
		},
	},
	{
		reason: "fitness business with feature needs fits professional",
		pkg:    models.PackageProfessional,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.BusinessType == models.BusinessFitness && len(p.FeaturesNeeded) > 0
		},
	},
	{
		reason: "urgent timeline with a professional budget fits professional",
		pkg:    models.PackageProfessional,
		matches: func(p models.ConversationProfile, _ int) bool {
			return p.TimelineUrgency == models.TimelineUrgent &&
				p.BudgetRange == models.BudgetProfessional
		},
	},
	{
		reason: "high lead score indicates a serious buyer",
		pkg:    models.PackageProfessional,
		matches: func(_ models.ConversationProfile, leadScore int) bool {
			return leadScore >= professionalScoreFloor
		},
	},
	{
		reason: "multiple feature needs fit professional",
		pkg:    models.PackageProfessional,
		matches: func(p models.ConversationProfile, _ int) bool {
			return len(p.FeaturesNeeded) >= multiFeatureFloor
		},
	},
	{
		reason: "multiple pain points fit professional",
		pkg:    models.PackageProfessional,
		matches: func(p models.ConversationProfile, _ int) bool {
			return len(p.PainPoints) >= multiPainPointFloor
		},
	},
	{
		reason: "professional is the default recommendation",
		pkg:    models.PackageProfessional,
		matches: func(models.ConversationProfile, int) bool {
			return true
		},
	},
}

// Recommend walks the decision tree and returns the first matching
// package with its confidence and ROI projection. The default rule
// guarantees a result for any input.
func Recommend(profile models.ConversationProfile, leadScore int) models.Recommendation {
	for _, r := range rules {
		if !r.matches(profile, leadScore) {
			continue
		}
		return models.Recommendation{
			Package:    r.pkg,
			Confidence: confidence(profile),
			Reasoning:  r.reason,
			ROI:        EstimateROI(profile.BusinessType, r.pkg),
		}
	}
	// Unreachable; the last rule always matches.
	return models.Recommendation{Package: models.PackageProfessional}
}

func confidence(p models.ConversationProfile) float64 {
	c := confidenceBase
	if p.BusinessType != "" {
		c += confidenceBusinessType
	}
	if p.BudgetRange != "" {
		c += confidenceBudget
	}
	if len(p.FeaturesNeeded) > 0 {
		c += confidenceFeatures
	}
	if p.TimelineUrgency != "" {
		c += confidenceTimeline
	}
	if len(p.PainPoints) > 0 {
		c += confidencePainPoints
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}
