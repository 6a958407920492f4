// internal/engine/qualifier/qualifier_test.go

package qualifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pegrio-chatbot/internal/models"
)

// ==========================================
// Score Composition Tests
// ==========================================

func TestScore_EmptyProfileBaseline(t *testing.T) {
	result := Score(Input{MessageCount: 1})

	// Unknown budget 5, unknown timeline 5, unknown decision 10,
	// engagement 5, everything else 0.
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, models.LeadCold, result.Level)
	assert.False(t, result.Disqualified)
	assert.Equal(t, 0, result.Breakdown["business_type"])
	assert.Equal(t, 10, result.Breakdown["decision_role"])
}

func TestScore_FullyQualifiedRestaurant(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			BusinessType:    models.BusinessRestaurant,
			BudgetRange:     models.BudgetProfessional,
			TimelineUrgency: models.TimelineUrgent,
			DecisionRole:    models.DecisionOwner,
			PainPoints:      []models.PainPointTag{models.PainNoOrdering, models.PainLosingCustomers},
			FeaturesNeeded:  []models.FeatureTag{models.FeatureOrdering, models.FeatureBooking},
		},
		MessageCount: 7,
		RecentIntents: []models.IntentName{
			models.IntentBusinessInfo,
			models.IntentPricingInquiry,
			models.IntentQuoteRequest,
		},
	}

	result := Score(in)

	// 20+25+20+20+4+6+13+7 exceeds 100 and clamps.
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, models.LeadQualified, result.Level)
	assert.Equal(t, 20, result.Breakdown["business_type"])
	assert.Equal(t, 6, result.Breakdown["features"])
	assert.Equal(t, 7, result.Breakdown["intent_quality"])
	assert.False(t, result.Disqualified)
}

func TestScore_WarmCafeLead(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			BusinessType: models.BusinessCafe,
			BudgetRange:  models.BudgetEssential,
			PainPoints:   []models.PainPointTag{models.PainOutdated},
		},
		MessageCount:  3,
		RecentIntents: []models.IntentName{models.IntentBusinessInfo},
	}

	result := Score(in)

	// 16+15+5+10+2+0+10+1 = 59.
	assert.Equal(t, 59, result.Score)
	assert.Equal(t, models.LeadWarm, result.Level)
}

func TestScore_HotSalonLead(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			BusinessType:    models.BusinessSalon,
			BudgetRange:     models.BudgetPremium,
			TimelineUrgency: models.TimelineExploring,
			FeaturesNeeded:  []models.FeatureTag{models.FeatureBooking},
		},
		MessageCount: 4,
	}

	result := Score(in)

	// 18+30+5+10+0+3+10+0 = 76.
	assert.Equal(t, 76, result.Score)
	assert.Equal(t, models.LeadHot, result.Level)
}

// ==========================================
// Component Cap Tests
// ==========================================

func TestScore_FeatureCap(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			FeaturesNeeded: []models.FeatureTag{
				models.FeatureOrdering, models.FeatureBooking,
				models.FeatureAI, models.FeatureEcommerce,
			},
		},
		MessageCount: 1,
	}
	assert.Equal(t, 10, Score(in).Breakdown["features"])
}

func TestScore_FeatureMixedWeights(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			FeaturesNeeded: []models.FeatureTag{
				models.FeatureOrdering, // high value
				models.FeatureSEO,      // standard
			},
		},
		MessageCount: 1,
	}
	assert.Equal(t, 4, Score(in).Breakdown["features"])
}

func TestScore_PainPointCap(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			PainPoints: []models.PainPointTag{
				models.PainNoWebsite, models.PainOutdated, models.PainNoOrdering,
				models.PainNoBooking, models.PainLosingCustomers, models.PainNotOnGoogle,
			},
		},
		MessageCount: 1,
	}
	assert.Equal(t, 10, Score(in).Breakdown["pain_points"])
}

func TestScore_IntentQualityClampsAtZero(t *testing.T) {
	in := Input{
		MessageCount: 2,
		RecentIntents: []models.IntentName{
			models.IntentUnknown, models.IntentGoodbye, models.IntentNotInterested,
		},
	}
	assert.Equal(t, 0, Score(in).Breakdown["intent_quality"])
}

func TestEngagementScore_Steps(t *testing.T) {
	tests := []struct {
		messages int
		want     int
	}{
		{0, 5}, {2, 5}, {3, 10}, {5, 10}, {6, 13}, {10, 13}, {11, 15}, {40, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engagementScore(tt.messages), "messages=%d", tt.messages)
	}
}

// ==========================================
// Level Threshold Tests
// ==========================================

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.LeadLevel
	}{
		{0, models.LeadCold},
		{30, models.LeadCold},
		{31, models.LeadWarm},
		{60, models.LeadWarm},
		{61, models.LeadHot},
		{85, models.LeadHot},
		{86, models.LeadQualified},
		{100, models.LeadQualified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.score), "score=%d", tt.score)
	}
}

// ==========================================
// Disqualification Tests
// ==========================================

func TestScore_ExplicitDeclineDisqualifies(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			BusinessType: models.BusinessRestaurant,
			BudgetRange:  models.BudgetPremium,
		},
		MessageCount:  6,
		RecentIntents: []models.IntentName{models.IntentNotInterested},
	}

	result := Score(in)

	assert.True(t, result.Disqualified)
	assert.Equal(t, "explicit decline", result.DisqualifyReason)
}

func TestScore_EngagedTightBudgetLeadIsNotDisqualified(t *testing.T) {
	in := Input{
		Profile: models.ConversationProfile{
			BusinessType:    models.BusinessRestaurant,
			BudgetRange:     models.BudgetTight,
			TimelineUrgency: models.TimelineUrgent,
			FeaturesNeeded:  []models.FeatureTag{models.FeatureOrdering},
		},
		MessageCount:  8,
		RecentIntents: []models.IntentName{models.IntentPricingInquiry},
	}

	result := Score(in)

	assert.False(t, result.Disqualified)
	assert.GreaterOrEqual(t, result.Score, 60)
}

// ==========================================
// Property Tests
// ==========================================

func TestScore_AlwaysWithinBounds(t *testing.T) {
	profiles := []models.ConversationProfile{
		{},
		{BusinessType: models.BusinessOther},
		{
			BusinessType:    models.BusinessRestaurant,
			BudgetRange:     models.BudgetFlexible,
			TimelineUrgency: models.TimelineUrgent,
			DecisionRole:    models.DecisionOwner,
			PainPoints: []models.PainPointTag{
				models.PainNoWebsite, models.PainOutdated, models.PainNoOrdering,
				models.PainNoBooking, models.PainLosingCustomers, models.PainNotOnGoogle,
				models.PainUnprofessional, models.PainNoMobile, models.PainCantUpdate,
			},
			FeaturesNeeded: []models.FeatureTag{
				models.FeatureAI, models.FeatureOrdering, models.FeatureBooking,
				models.FeatureEcommerce, models.FeatureSEO, models.FeatureCustomDesign,
				models.FeaturePayments, models.FeatureEmail,
			},
		},
	}
	counts := []int{0, 1, 5, 12, 100}
	intents := [][]models.IntentName{
		nil,
		{models.IntentUnknown, models.IntentUnknown, models.IntentUnknown},
		{
			models.IntentQuoteRequest, models.IntentReadyToStart,
			models.IntentPricingInquiry, models.IntentComparisonRequest,
		},
	}

	for _, p := range profiles {
		for _, c := range counts {
			for _, rec := range intents {
				result := Score(Input{Profile: p, MessageCount: c, RecentIntents: rec})
				assert.GreaterOrEqual(t, result.Score, 0)
				assert.LessOrEqual(t, result.Score, 100)
				assert.NotEmpty(t, result.Level)
			}
		}
	}
}
