// internal/engine/convstate/machine.go

// Package convstate owns the deterministic conversation flow: the
// transition table over the twelve dialogue states, stagnation detection
// and the gating helpers other components consult. Transitions are total:
// every (state, intent) pair resolves to a valid state label.
package convstate

import "pegrio-chatbot/internal/models"

// Context is the slice of session data the transition function reads.
type Context struct {
	Profile           models.ConversationProfile
	MessageCount      int
	HasRecommendation bool
	LeadScore         int
}

// Message-count floors before a state advances without concrete signals.
const (
	welcomeFloor   = 2
	discoveryFloor = 3
	profilingFloor = 3
	needsFloor     = 4
	budgetFloor    = 5
	timelineFloor  = 6

	// stuckWindow is how many identical trailing states mark a
	// conversation as stagnant.
	stuckWindow = 4

	// recommendMinMessages is the floor before a recommendation is due.
	recommendMinMessages = 3

	// Form-CTA gates.
	ctaMinMessages = 5
	ctaMinScore    = 40
	ctaRecentSpan  = 3
)

// Next computes the state transition for one classified turn. Global
// overrides are checked first and win from any state; exit is terminal.
func Next(state models.ConversationState, intent models.IntentName, ctx Context) models.ConversationState {
	if state == models.StateExit {
		return models.StateExit
	}

	if next, ok := globalOverride(intent, ctx); ok {
		return next
	}

	switch state {
	case models.StateWelcome:
		return nextFromWelcome(intent, ctx)
	case models.StateDiscovery:
		return nextFromDiscovery(intent, ctx)
	case models.StateBusinessProfiling:
		return nextFromProfiling(intent, ctx)
	case models.StateNeedsAssessment:
		return nextFromNeeds(intent, ctx)
	case models.StateBudgetDiscussion:
		return nextFromBudget(intent, ctx)
	case models.StateTimelineAssessment:
		return nextFromTimeline(intent, ctx)
	case models.StateRecommendation:
		return nextFromRecommendation(intent, ctx)
	case models.StatePackageDetails:
		return nextFromPackageDetails(intent, ctx)
	case models.StateObjectionHandling:
		return nextFromObjection(intent, ctx)
	case models.StateClosing:
		return models.StateClosing
	case models.StateSupport:
		return nextFromSupport(intent, ctx)
	default:
		return models.StateWelcome
	}
}

// globalOverride handles the intents that redirect the conversation
// regardless of where it currently is.
func globalOverride(intent models.IntentName, ctx Context) (models.ConversationState, bool) {
	switch {
	case intent == models.IntentNotInterested || intent == models.IntentGoodbye:
		return models.StateExit, true
	case intent == models.IntentSupportInquiry:
		return models.StateSupport, true
	case (intent == models.IntentReadyToStart || intent == models.IntentQuoteRequest) && ctx.HasRecommendation:
		return models.StateClosing, true
	case intent == models.IntentBudgetConcern || intent == models.IntentBudgetTight:
		return models.StateObjectionHandling, true
	case intent.IsPackageDetails():
		return models.StatePackageDetails, true
	}
	return "", false
}

func nextFromWelcome(intent models.IntentName, ctx Context) models.ConversationState {
	if ctx.Profile.BusinessType != "" || intent == models.IntentBusinessInfo {
		return models.StateBusinessProfiling
	}
	if intent == models.IntentWebsiteNeed || ctx.MessageCount >= welcomeFloor {
		return models.StateDiscovery
	}
	return models.StateWelcome
}

func nextFromDiscovery(intent models.IntentName, ctx Context) models.ConversationState {
	if ctx.Profile.BusinessType != "" || intent == models.IntentBusinessInfo {
		return models.StateBusinessProfiling
	}
	if ctx.MessageCount >= discoveryFloor {
		return models.StateBusinessProfiling
	}
	return models.StateDiscovery
}

func nextFromProfiling(intent models.IntentName, ctx Context) models.ConversationState {
	hasSignals := len(ctx.Profile.FeaturesNeeded) > 0 || len(ctx.Profile.PainPoints) > 0
	if intent == models.IntentFeatureInquiry || hasSignals {
		return models.StateNeedsAssessment
	}
	if ctx.Profile.BusinessType != "" && ctx.MessageCount >= profilingFloor {
		return models.StateNeedsAssessment
	}
	return models.StateBusinessProfiling
}

// nextFromNeeds advances once needs are concrete, or after enough
// back-and-forth that waiting longer will not improve the picture.
func nextFromNeeds(intent models.IntentName, ctx Context) models.ConversationState {
	if ctx.Profile.BudgetRange != "" || intent == models.IntentBudgetInfo || intent == models.IntentPricingInquiry {
		return models.StateBudgetDiscussion
	}
	hasSignals := len(ctx.Profile.FeaturesNeeded) > 0 || len(ctx.Profile.PainPoints) > 0
	if hasSignals || ctx.MessageCount >= needsFloor {
		return models.StateBudgetDiscussion
	}
	return models.StateNeedsAssessment
}

func nextFromBudget(intent models.IntentName, ctx Context) models.ConversationState {
	if ctx.Profile.BudgetRange != "" || intent == models.IntentTimelineInfo {
		return models.StateTimelineAssessment
	}
	if ctx.MessageCount >= budgetFloor {
		return models.StateTimelineAssessment
	}
	return models.StateBudgetDiscussion
}

func nextFromTimeline(intent models.IntentName, ctx Context) models.ConversationState {
	if ShouldRecommend(ctx) {
		return models.StateRecommendation
	}
	if ctx.Profile.TimelineUrgency != "" || ctx.MessageCount >= timelineFloor {
		// Enough asked; circle back for the missing profile basics.
		if ctx.Profile.BusinessType == "" {
			return models.StateBusinessProfiling
		}
		return models.StateNeedsAssessment
	}
	return models.StateTimelineAssessment
}

func nextFromRecommendation(intent models.IntentName, ctx Context) models.ConversationState {
	if intent == models.IntentComparisonRequest {
		return models.StatePackageDetails
	}
	if intent == models.IntentReadyToStart || intent == models.IntentQuoteRequest {
		return models.StateClosing
	}
	return models.StateRecommendation
}

func nextFromPackageDetails(intent models.IntentName, ctx Context) models.ConversationState {
	if intent == models.IntentReadyToStart || intent == models.IntentQuoteRequest {
		return models.StateClosing
	}
	return models.StatePackageDetails
}

func nextFromObjection(intent models.IntentName, ctx Context) models.ConversationState {
	if intent == models.IntentReadyToStart {
		return models.StateClosing
	}
	if intent == models.IntentBudgetInfo || ctx.Profile.BudgetRange != "" {
		return models.StateRecommendation
	}
	return models.StateObjectionHandling
}

func nextFromSupport(intent models.IntentName, ctx Context) models.ConversationState {
	if intent == models.IntentWebsiteNeed || intent == models.IntentBusinessInfo {
		return models.StateDiscovery
	}
	return models.StateSupport
}

// IsStuck reports whether the last four recorded states are identical.
// The window deliberately looks at states only, not intents; a session
// collecting several distinct facts inside one state still counts as
// stuck. Callers invoke this themselves; Next never does.
func IsStuck(history []models.ConversationState) bool {
	if len(history) < stuckWindow {
		return false
	}
	tail := history[len(history)-stuckWindow:]
	for _, s := range tail[1:] {
		if s != tail[0] {
			return false
		}
	}
	return true
}

// progression is the fixed forced-advance map used to unstick a stalled
// conversation.
var progression = map[models.ConversationState]models.ConversationState{
	models.StateWelcome:            models.StateDiscovery,
	models.StateDiscovery:          models.StateBusinessProfiling,
	models.StateBusinessProfiling:  models.StateNeedsAssessment,
	models.StateNeedsAssessment:    models.StateBudgetDiscussion,
	models.StateBudgetDiscussion:   models.StateTimelineAssessment,
	models.StateTimelineAssessment: models.StateRecommendation,
	models.StateRecommendation:     models.StatePackageDetails,
	models.StatePackageDetails:     models.StateClosing,
	models.StateObjectionHandling:  models.StateRecommendation,
	models.StateClosing:            models.StateClosing,
	models.StateSupport:            models.StateDiscovery,
	models.StateExit:               models.StateExit,
}

// Unstuck force-advances a stagnant conversation regardless of intent.
func Unstuck(state models.ConversationState) models.ConversationState {
	if next, ok := progression[state]; ok {
		return next
	}
	return models.StateDiscovery
}

// ShouldRecommend gates the recommendation engine: the business type is a
// hard requirement, plus at least one needs signal and a minimum amount
// of conversation.
func ShouldRecommend(ctx Context) bool {
	if ctx.Profile.BusinessType == "" {
		return false
	}
	hasSignal := ctx.Profile.BudgetRange != "" ||
		len(ctx.Profile.FeaturesNeeded) > 0 ||
		len(ctx.Profile.PainPoints) > 0
	return hasSignal && ctx.MessageCount >= recommendMinMessages
}

// ShouldShowFormCTA decides whether the shell may surface the contact
// form: a recommendation must exist, the conversation must be warm enough
// and there must be recent buying evidence (or the closing state itself).
func ShouldShowFormCTA(ctx Context, state models.ConversationState, recentIntents []models.IntentName) bool {
	if !ctx.HasRecommendation || ctx.MessageCount < ctaMinMessages || ctx.LeadScore < ctaMinScore {
		return false
	}
	if state == models.StateClosing {
		return true
	}
	span := recentIntents
	if len(span) > ctaRecentSpan {
		span = span[len(span)-ctaRecentSpan:]
	}
	for _, name := range span {
		if name.IsBuying() {
			return true
		}
	}
	return false
}

// Question identifies the single fact the shell should solicit next.
type Question string

const (
	QuestionBusinessType Question = "business_type"
	QuestionNeeds        Question = "needs"
	QuestionBudget       Question = "budget"
	QuestionTimeline     Question = "timeline"
	QuestionDecision     Question = "decision_maker"
	QuestionNone         Question = ""
)

// NextQuestion walks the solicitation priority order, skipping facts
// already known or already asked about.
func NextQuestion(ctx Context, asked models.AskedFlags) Question {
	if ctx.Profile.BusinessType == "" && !asked.BusinessType {
		return QuestionBusinessType
	}
	if len(ctx.Profile.FeaturesNeeded) == 0 && len(ctx.Profile.PainPoints) == 0 && !asked.Needs {
		return QuestionNeeds
	}
	if ctx.Profile.BudgetRange == "" && !asked.Budget {
		return QuestionBudget
	}
	if ctx.Profile.TimelineUrgency == "" && !asked.Timeline {
		return QuestionTimeline
	}
	if ctx.Profile.DecisionRole == "" && !asked.Decision {
		return QuestionDecision
	}
	return QuestionNone
}
