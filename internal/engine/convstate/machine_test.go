// internal/engine/convstate/machine_test.go

package convstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pegrio-chatbot/internal/models"
)

// ==========================================
// Global Override Tests
// ==========================================

func TestNext_GlobalOverrides(t *testing.T) {
	ctx := Context{MessageCount: 3}

	tests := []struct {
		name   string
		state  models.ConversationState
		intent models.IntentName
		ctx    Context
		want   models.ConversationState
	}{
		{"not interested exits from discovery", models.StateDiscovery, models.IntentNotInterested, ctx, models.StateExit},
		{"goodbye exits from closing", models.StateClosing, models.IntentGoodbye, ctx, models.StateExit},
		{"support inquiry redirects from budget", models.StateBudgetDiscussion, models.IntentSupportInquiry, ctx, models.StateSupport},
		{"budget concern triggers objection handling", models.StateRecommendation, models.IntentBudgetConcern, ctx, models.StateObjectionHandling},
		{"budget tight triggers objection handling", models.StateNeedsAssessment, models.IntentBudgetTight, ctx, models.StateObjectionHandling},
		{"package details intent jumps to package details", models.StateDiscovery, models.IntentProfessionalDetails, ctx, models.StatePackageDetails},
		{
			"ready to start with recommendation closes",
			models.StateRecommendation, models.IntentReadyToStart,
			Context{MessageCount: 6, HasRecommendation: true},
			models.StateClosing,
		},
		{
			"quote request with recommendation closes from profiling",
			models.StateBusinessProfiling, models.IntentQuoteRequest,
			Context{MessageCount: 6, HasRecommendation: true},
			models.StateClosing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.state, tt.intent, tt.ctx))
		})
	}
}

func TestNext_ReadyToStartWithoutRecommendationDoesNotClose(t *testing.T) {
	got := Next(models.StateDiscovery, models.IntentReadyToStart, Context{MessageCount: 2})
	assert.NotEqual(t, models.StateClosing, got)
}

// ==========================================
// Exit Terminal Tests
// ==========================================

func TestNext_ExitIsTerminalForEveryIntent(t *testing.T) {
	intents := []models.IntentName{
		models.IntentGreeting, models.IntentBusinessInfo, models.IntentWebsiteNeed,
		models.IntentPricingInquiry, models.IntentQuoteRequest, models.IntentBudgetInfo,
		models.IntentReadyToStart, models.IntentSupportInquiry, models.IntentBudgetConcern,
		models.IntentProfessionalDetails, models.IntentUnknown,
	}
	for _, intent := range intents {
		got := Next(models.StateExit, intent, Context{MessageCount: 10, HasRecommendation: true})
		assert.Equal(t, models.StateExit, got, "intent %s escaped exit", intent)
	}
}

// ==========================================
// Totality Tests
// ==========================================

func TestNext_TotalOverAllStates(t *testing.T) {
	intents := []models.IntentName{
		models.IntentGreeting, models.IntentBusinessInfo, models.IntentPricingInquiry,
		models.IntentUnknown, models.IntentThanks,
	}
	for _, state := range models.AllStates {
		for _, intent := range intents {
			next := Next(state, intent, Context{MessageCount: 1})
			assert.True(t, next.Valid(), "Next(%s, %s) produced invalid state %q", state, intent, next)
		}
	}
}

// ==========================================
// Forward Progression Tests
// ==========================================

func TestNext_WelcomeToProfilingOnBusinessInfo(t *testing.T) {
	got := Next(models.StateWelcome, models.IntentBusinessInfo, Context{MessageCount: 1})
	assert.Equal(t, models.StateBusinessProfiling, got)
}

func TestNext_WelcomeAdvancesOnMessageFloor(t *testing.T) {
	stay := Next(models.StateWelcome, models.IntentGreeting, Context{MessageCount: 1})
	assert.Equal(t, models.StateWelcome, stay)

	advance := Next(models.StateWelcome, models.IntentGreeting, Context{MessageCount: 2})
	assert.Equal(t, models.StateDiscovery, advance)
}

func TestNext_NeedsToBudgetOnPricingInquiry(t *testing.T) {
	ctx := Context{
		Profile:      models.ConversationProfile{BusinessType: models.BusinessRestaurant},
		MessageCount: 3,
	}
	got := Next(models.StateNeedsAssessment, models.IntentPricingInquiry, ctx)
	assert.Equal(t, models.StateBudgetDiscussion, got)
}

func TestNext_TimelineToRecommendationWhenReady(t *testing.T) {
	ctx := Context{
		Profile: models.ConversationProfile{
			BusinessType:   models.BusinessSalon,
			BudgetRange:    models.BudgetProfessional,
			FeaturesNeeded: []models.FeatureTag{models.FeatureBooking},
		},
		MessageCount: 5,
	}
	got := Next(models.StateTimelineAssessment, models.IntentTimelineInfo, ctx)
	assert.Equal(t, models.StateRecommendation, got)
}

func TestNext_TimelineCirclesBackWhenBusinessTypeMissing(t *testing.T) {
	ctx := Context{
		Profile:      models.ConversationProfile{TimelineUrgency: models.TimelineSoon},
		MessageCount: 6,
	}
	got := Next(models.StateTimelineAssessment, models.IntentTimelineInfo, ctx)
	assert.Equal(t, models.StateBusinessProfiling, got)
}

func TestNext_ObjectionRecoversOnBudgetInfo(t *testing.T) {
	ctx := Context{
		Profile:      models.ConversationProfile{BudgetRange: models.BudgetEssential},
		MessageCount: 6,
	}
	got := Next(models.StateObjectionHandling, models.IntentBudgetInfo, ctx)
	assert.Equal(t, models.StateRecommendation, got)
}

func TestNext_SupportReturnsToDiscoveryOnWebsiteNeed(t *testing.T) {
	got := Next(models.StateSupport, models.IntentWebsiteNeed, Context{MessageCount: 4})
	assert.Equal(t, models.StateDiscovery, got)
}

// ==========================================
// Stagnation Tests
// ==========================================

func TestIsStuck(t *testing.T) {
	tests := []struct {
		name    string
		history []models.ConversationState
		want    bool
	}{
		{"empty history", nil, false},
		{"short history", []models.ConversationState{models.StateDiscovery, models.StateDiscovery, models.StateDiscovery}, false},
		{
			"four identical trailing states",
			[]models.ConversationState{models.StateWelcome, models.StateDiscovery, models.StateDiscovery, models.StateDiscovery, models.StateDiscovery},
			true,
		},
		{
			"four mixed trailing states",
			[]models.ConversationState{models.StateDiscovery, models.StateDiscovery, models.StateBusinessProfiling, models.StateDiscovery},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStuck(tt.history))
		})
	}
}

func TestUnstuck_ForcesProgressionForEveryState(t *testing.T) {
	for _, state := range models.AllStates {
		next := Unstuck(state)
		assert.True(t, next.Valid(), "Unstuck(%s) produced invalid state %q", state, next)
		if state != models.StateClosing && state != models.StateExit {
			assert.NotEqual(t, state, next, "Unstuck(%s) did not advance", state)
		}
	}
}

func TestUnstuck_ObjectionHandlingReturnsToRecommendation(t *testing.T) {
	assert.Equal(t, models.StateRecommendation, Unstuck(models.StateObjectionHandling))
}

// Scenario: a user answering vaguely in discovery for four turns gets
// force-advanced into business profiling.
func TestStagnationScenario(t *testing.T) {
	history := []models.ConversationState{
		models.StateWelcome,
		models.StateDiscovery,
		models.StateDiscovery,
		models.StateDiscovery,
		models.StateDiscovery,
	}
	assert.True(t, IsStuck(history))
	assert.Equal(t, models.StateBusinessProfiling, Unstuck(models.StateDiscovery))
}

// ==========================================
// Gating Helper Tests
// ==========================================

func TestShouldRecommend(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want bool
	}{
		{
			"no business type",
			Context{Profile: models.ConversationProfile{BudgetRange: models.BudgetPremium}, MessageCount: 8},
			false,
		},
		{
			"business type but no signals",
			Context{Profile: models.ConversationProfile{BusinessType: models.BusinessCafe}, MessageCount: 8},
			false,
		},
		{
			"too few messages",
			Context{
				Profile: models.ConversationProfile{
					BusinessType: models.BusinessCafe,
					BudgetRange:  models.BudgetEssential,
				},
				MessageCount: 2,
			},
			false,
		},
		{
			"business type plus budget",
			Context{
				Profile: models.ConversationProfile{
					BusinessType: models.BusinessCafe,
					BudgetRange:  models.BudgetEssential,
				},
				MessageCount: 3,
			},
			true,
		},
		{
			"business type plus pain points",
			Context{
				Profile: models.ConversationProfile{
					BusinessType: models.BusinessRestaurant,
					PainPoints:   []models.PainPointTag{models.PainNoOrdering},
				},
				MessageCount: 4,
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRecommend(tt.ctx))
		})
	}
}

func TestShouldShowFormCTA(t *testing.T) {
	warm := Context{HasRecommendation: true, MessageCount: 6, LeadScore: 55}

	t.Run("requires recommendation", func(t *testing.T) {
		ctx := warm
		ctx.HasRecommendation = false
		assert.False(t, ShouldShowFormCTA(ctx, models.StateClosing, nil))
	})

	t.Run("requires lead score", func(t *testing.T) {
		ctx := warm
		ctx.LeadScore = 39
		assert.False(t, ShouldShowFormCTA(ctx, models.StateClosing, nil))
	})

	t.Run("closing state is sufficient", func(t *testing.T) {
		assert.True(t, ShouldShowFormCTA(warm, models.StateClosing, nil))
	})

	t.Run("recent buying intent is sufficient", func(t *testing.T) {
		recent := []models.IntentName{models.IntentBusinessInfo, models.IntentPricingInquiry}
		assert.True(t, ShouldShowFormCTA(warm, models.StateRecommendation, recent))
	})

	t.Run("buying intent outside the window is ignored", func(t *testing.T) {
		recent := []models.IntentName{
			models.IntentQuoteRequest,
			models.IntentBusinessInfo,
			models.IntentThanks,
			models.IntentUnknown,
		}
		assert.False(t, ShouldShowFormCTA(warm, models.StateRecommendation, recent))
	})

	t.Run("no buying evidence", func(t *testing.T) {
		recent := []models.IntentName{models.IntentThanks, models.IntentUnknown}
		assert.False(t, ShouldShowFormCTA(warm, models.StateRecommendation, recent))
	})
}

func TestNextQuestion_PriorityOrder(t *testing.T) {
	var asked models.AskedFlags

	t.Run("business type first", func(t *testing.T) {
		got := NextQuestion(Context{}, asked)
		assert.Equal(t, QuestionBusinessType, got)
	})

	t.Run("needs after business type", func(t *testing.T) {
		ctx := Context{Profile: models.ConversationProfile{BusinessType: models.BusinessBar}}
		assert.Equal(t, QuestionNeeds, NextQuestion(ctx, asked))
	})

	t.Run("asked flags skip a question", func(t *testing.T) {
		ctx := Context{Profile: models.ConversationProfile{BusinessType: models.BusinessBar}}
		assert.Equal(t, QuestionBudget, NextQuestion(ctx, models.AskedFlags{Needs: true}))
	})

	t.Run("everything known yields none", func(t *testing.T) {
		ctx := Context{Profile: models.ConversationProfile{
			BusinessType:    models.BusinessBar,
			BudgetRange:     models.BudgetPremium,
			TimelineUrgency: models.TimelineSoon,
			DecisionRole:    models.DecisionOwner,
			FeaturesNeeded:  []models.FeatureTag{models.FeatureBooking},
		}}
		assert.Equal(t, QuestionNone, NextQuestion(ctx, asked))
	})
}
