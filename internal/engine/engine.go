// internal/engine/engine.go

// Package engine wires the per-turn pipeline: normalize and classify the
// utterance, extract entities, merge them into the session profile, run
// the state machine, rescore the lead and recommend a package when the
// conversation is ready for one.
package engine

import (
	"time"

	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/common/metrics"
	"pegrio-chatbot/internal/engine/convstate"
	"pegrio-chatbot/internal/engine/entity"
	"pegrio-chatbot/internal/engine/intent"
	"pegrio-chatbot/internal/engine/qualifier"
	"pegrio-chatbot/internal/engine/recommend"
	"pegrio-chatbot/internal/models"
	"pegrio-chatbot/pkg/patterns"
)

// TurnResult is everything the hosting shell needs to render one turn.
type TurnResult struct {
	Session     *models.Session
	Intent      models.Intent
	AskNext     convstate.Question
	ShowFormCTA bool
	Stuck       bool
}

// Engine is the synchronous conversation pipeline. It is stateless
// between calls; all conversation state lives in the session value.
type Engine struct {
	classifier *intent.Classifier
	extractor  *entity.Extractor
	log        logger.Logger
}

// New builds an engine over one pattern set. The same engine serves every
// session concurrently because it holds no per-session state.
func New(set *patterns.Set, log logger.Logger) *Engine {
	return &Engine{
		classifier: intent.New(set, log),
		extractor:  entity.New(set),
		log:        log.WithFields(map[string]interface{}{"component": "engine"}),
	}
}

// ProcessTurn runs one utterance through the full pipeline and mutates
// the session in place. Invalid input short-circuits: the turn is
// classified but extracts nothing, transitions nothing and does not
// count toward engagement.
func (e *Engine) ProcessTurn(sess *models.Session, text string) TurnResult {
	start := time.Now()
	now := start.UTC()

	classified := e.classifier.Process(text, sess.State)
	metrics.IntentsClassified.WithLabelValues(
		string(classified.Intent.Name), string(classified.Intent.SourceLayer),
	).Inc()

	if classified.Intent.Name == models.IntentInvalidInput {
		sess.RecordIntent(classified.Intent, now)
		sess.UpdatedAt = now
		return TurnResult{Session: sess, Intent: classified.Intent}
	}

	entities := e.extractor.ExtractAll(text)
	mergeEntities(&sess.Profile, entities)

	sess.MessageCount++
	sess.RecordIntent(classified.Intent, now)

	ctx := convstate.Context{
		Profile:           sess.Profile,
		MessageCount:      sess.MessageCount,
		HasRecommendation: sess.Recommendation != nil,
		LeadScore:         sess.LeadScore.Score,
	}
	next := convstate.Next(sess.State, classified.Intent.Name, ctx)
	sess.State = next
	sess.RecordState(next)

	recent := sess.RecentIntentNames(models.MaxIntentHistory)
	sess.LeadScore = qualifier.Score(qualifier.Input{
		Profile:       sess.Profile,
		MessageCount:  sess.MessageCount,
		RecentIntents: recent,
	})
	metrics.LeadLevels.WithLabelValues(string(sess.LeadScore.Level)).Inc()

	ctx.LeadScore = sess.LeadScore.Score
	if next == models.StateRecommendation && convstate.ShouldRecommend(ctx) {
		rec := recommend.Recommend(sess.Profile, sess.LeadScore.Score)
		if sess.Recommendation == nil || sess.Recommendation.Package != rec.Package {
			metrics.Recommendations.WithLabelValues(string(rec.Package)).Inc()
			e.log.Info("recommendation issued", map[string]interface{}{
				"session_id": sess.ID,
				"package":    string(rec.Package),
				"lead_score": sess.LeadScore.Score,
			})
		}
		sess.Recommendation = &rec
		ctx.HasRecommendation = true
	}

	ask := convstate.NextQuestion(ctx, sess.Asked)
	markAsked(&sess.Asked, ask)

	result := TurnResult{
		Session:     sess,
		Intent:      classified.Intent,
		AskNext:     ask,
		ShowFormCTA: convstate.ShouldShowFormCTA(ctx, next, recent),
		Stuck:       convstate.IsStuck(sess.StateHistory),
	}

	sess.UpdatedAt = now
	metrics.TurnsProcessed.WithLabelValues(string(next)).Inc()
	metrics.TurnDuration.Observe(time.Since(start).Seconds())
	return result
}

// Unstick force-advances a stagnant session along the fixed progression
// map. The caller decides when; ProcessTurn only reports stagnation.
func (e *Engine) Unstick(sess *models.Session) models.ConversationState {
	next := convstate.Unstuck(sess.State)
	if next != sess.State {
		e.log.Info("conversation force-advanced", map[string]interface{}{
			"session_id": sess.ID,
			"from":       string(sess.State),
			"to":         string(next),
		})
		sess.State = next
		sess.RecordState(next)
		sess.UpdatedAt = time.Now().UTC()
	}
	return next
}

// mergeEntities folds one turn's extraction into the accumulated profile.
// Scalars overwrite only when the new value is present; the feature and
// pain point sets grow monotonically and never shrink.
func mergeEntities(p *models.ConversationProfile, e models.ExtractedEntities) {
	if e.BusinessType != "" {
		p.BusinessType = e.BusinessType
	}
	if e.BusinessName != "" {
		p.BusinessName = e.BusinessName
	}
	if e.BudgetRange != "" {
		p.BudgetRange = e.BudgetRange
	}
	if e.TimelineUrgency != "" {
		p.TimelineUrgency = e.TimelineUrgency
	}
	if e.DecisionRole != "" {
		p.DecisionRole = e.DecisionRole
	}
	if e.Email != "" {
		p.Email = e.Email
	}
	if e.Phone != "" {
		p.Phone = e.Phone
	}
	for _, f := range e.FeaturesNeeded {
		if !p.HasFeature(f) {
			p.FeaturesNeeded = append(p.FeaturesNeeded, f)
		}
	}
	for _, pp := range e.PainPoints {
		if !p.HasPainPoint(pp) {
			p.PainPoints = append(p.PainPoints, pp)
		}
	}
}

// markAsked flips the flag for the question the shell is about to ask.
func markAsked(flags *models.AskedFlags, q convstate.Question) {
	switch q {
	case convstate.QuestionBusinessType:
		flags.BusinessType = true
	case convstate.QuestionNeeds:
		flags.Needs = true
	case convstate.QuestionBudget:
		flags.Budget = true
	case convstate.QuestionTimeline:
		flags.Timeline = true
	case convstate.QuestionDecision:
		flags.Decision = true
	}
}
