// internal/engine/qualifier/qualifier.go

// Package qualifier scores a conversation profile into a 0-100 lead
// score across eight weighted components and maps the score onto a lead
// temperature level.
package qualifier

import "pegrio-chatbot/internal/models"

// Component score tables. Unknown values score low but rarely zero so an
// early conversation is not written off before it opens up.
var businessTypeScores = map[models.BusinessType]int{
	models.BusinessRestaurant: 20,
	models.BusinessSalon:      18,
	models.BusinessFitness:    18,
	models.BusinessCafe:       16,
	models.BusinessRetail:     16,
	models.BusinessBar:        14,
	models.BusinessOther:      10,
}

var budgetScores = map[models.BudgetRange]int{
	models.BudgetTight:        10,
	models.BudgetEssential:    15,
	models.BudgetProfessional: 25,
	models.BudgetPremium:      30,
	models.BudgetFlexible:     30,
}

var timelineScores = map[models.TimelineUrgency]int{
	models.TimelineUrgent:    20,
	models.TimelineSoon:      15,
	models.TimelineFlexible:  10,
	models.TimelineExploring: 5,
}

var decisionScores = map[models.DecisionRole]int{
	models.DecisionOwner:         20,
	models.DecisionInfluencer:    12,
	models.DecisionNeedsApproval: 5,
}

const (
	unknownBudgetScore   = 5
	unknownTimelineScore = 5
	// An unstated role is likelier owner than not for a small business.
	unknownDecisionScore = 10

	painPointWeight = 2
	painPointCap    = 10

	highValueFeatureWeight = 3
	featureWeight          = 1
	featureCap             = 10

	intentQualityCap = 10

	levelQualified = 86
	levelHot       = 61
	levelWarm      = 31

	disqualifyScoreFloor      = 15
	disqualifyEngagementFloor = 12
)

// highValueFeatures are the features that correlate with larger builds.
var highValueFeatures = map[models.FeatureTag]struct{}{
	models.FeatureOrdering:  {},
	models.FeatureBooking:   {},
	models.FeatureAI:        {},
	models.FeatureEcommerce: {},
}

// Input is everything the scorer reads from a session.
type Input struct {
	Profile       models.ConversationProfile
	MessageCount  int
	RecentIntents []models.IntentName
}

// Score computes the lead score, its component breakdown, the lead level
// and the disqualification verdict for one conversation snapshot.
func Score(in Input) models.LeadScoreResult {
	breakdown := map[string]int{
		"business_type":  businessTypeScores[in.Profile.BusinessType],
		"budget":         budgetScore(in.Profile.BudgetRange),
		"timeline":       timelineScore(in.Profile.TimelineUrgency),
		"decision_role":  decisionScore(in.Profile.DecisionRole),
		"pain_points":    capInt(painPointWeight*len(in.Profile.PainPoints), painPointCap),
		"features":       featureScore(in.Profile.FeaturesNeeded),
		"engagement":     engagementScore(in.MessageCount),
		"intent_quality": intentQualityScore(in.RecentIntents),
	}

	total := 0
	for _, v := range breakdown {
		total += v
	}
	total = clampInt(total, 0, 100)

	result := models.LeadScoreResult{
		Score:     total,
		Level:     levelFor(total),
		Breakdown: breakdown,
	}

	if reason, ok := disqualify(in, total, breakdown["engagement"]); ok {
		result.Disqualified = true
		result.DisqualifyReason = reason
	}
	return result
}

func budgetScore(b models.BudgetRange) int {
	if s, ok := budgetScores[b]; ok {
		return s
	}
	return unknownBudgetScore
}

func timelineScore(tl models.TimelineUrgency) int {
	if s, ok := timelineScores[tl]; ok {
		return s
	}
	return unknownTimelineScore
}

func decisionScore(r models.DecisionRole) int {
	if s, ok := decisionScores[r]; ok {
		return s
	}
	return unknownDecisionScore
}

func featureScore(features []models.FeatureTag) int {
	score := 0
	for _, f := range features {
		if _, ok := highValueFeatures[f]; ok {
			score += highValueFeatureWeight
		} else {
			score += featureWeight
		}
	}
	return capInt(score, featureCap)
}

// engagementScore rewards sustained conversation in coarse steps.
func engagementScore(messageCount int) int {
	switch {
	case messageCount <= 2:
		return 5
	case messageCount <= 5:
		return 10
	case messageCount <= 10:
		return 13
	default:
		return 15
	}
}

// intentQualityScore tallies the recent intent history: buying intents
// add, throwaway intents subtract, everything else counts a little.
func intentQualityScore(recent []models.IntentName) int {
	score := 0
	for _, name := range recent {
		switch {
		case name.IsBuying():
			score += 3
		case name.IsLowValue():
			score--
		default:
			score++
		}
	}
	return clampInt(score, 0, intentQualityCap)
}

func levelFor(score int) models.LeadLevel {
	switch {
	case score >= levelQualified:
		return models.LeadQualified
	case score >= levelHot:
		return models.LeadHot
	case score >= levelWarm:
		return models.LeadWarm
	default:
		return models.LeadCold
	}
}

// disqualify flags leads that are not worth a sales follow-up: an
// explicit decline, a tight budget with nothing else going for it, or a
// long conversation that still scores near zero.
func disqualify(in Input, score, engagement int) (string, bool) {
	for _, name := range in.RecentIntents {
		if name == models.IntentNotInterested {
			return "explicit decline", true
		}
	}
	if in.Profile.BudgetRange == models.BudgetTight && score < disqualifyScoreFloor {
		return "tight budget with weak signals", true
	}
	if score < disqualifyScoreFloor && engagement >= disqualifyEngagementFloor {
		return "long conversation without qualifying signals", true
	}
	return "", false
}

func capInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
