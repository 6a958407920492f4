// internal/engine/intent/classifier.go

// Package intent assigns one intent label with a confidence score to each
// visitor utterance. Matching runs through layered strategies: exact
// phrase, weighted keywords, n-gram overlap, a sentiment nudge and
// state-aware disambiguation. Later layers only refine what earlier
// layers produced; nothing here ever returns an error.
package intent

import (
	"strings"

	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/engine/textutil"
	"pegrio-chatbot/internal/models"

	"pegrio-chatbot/pkg/patterns"
)

const (
	// MinInputLength is the shortest utterance worth classifying.
	MinInputLength = 2

	primaryWeight   = 10
	secondaryWeight = 5
	negativeWeight  = -15

	// keywordNormalizer divides the raw keyword score into a confidence.
	keywordNormalizer = 30.0
	// ngramNormalizer divides the raw n-gram score into a confidence.
	ngramNormalizer = 10.0
	// ngramMinMatches is the minimum number of n-gram hits before the
	// layer is allowed to produce a candidate.
	ngramMinMatches = 2

	sentimentBoost = 1.1
	contextBoost   = 1.2
)

// Sentiment is the coarse polarity of an utterance.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Result carries the winning intent plus the evidence behind it.
type Result struct {
	Intent     models.Intent
	Candidates []models.Intent
	Sentiment  Sentiment
	Tokens     []string
}

// Classifier matches utterances against a pattern set.
type Classifier struct {
	set *patterns.Set
	log logger.Logger
}

// New returns a classifier over the given pattern set.
func New(set *patterns.Set, log logger.Logger) *Classifier {
	return &Classifier{
		set: set,
		log: log.WithFields(map[string]interface{}{"component": "intent-classifier"}),
	}
}

// Process classifies one utterance given the current conversation state.
// Text shorter than two characters is the reserved invalid_input intent at
// full confidence; no matching layer runs.
func (c *Classifier) Process(text string, state models.ConversationState) Result {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinInputLength {
		return Result{
			Intent: models.Intent{
				Name:        models.IntentInvalidInput,
				Confidence:  1.0,
				SourceLayer: models.LayerFallback,
			},
			Sentiment: SentimentNeutral,
		}
	}

	lowered := strings.ToLower(trimmed)
	tokens := textutil.Tokenize(trimmed)

	// Layer 1: literal phrase equality short-circuits everything.
	if name, ok := c.exactMatch(lowered); ok {
		return Result{
			Intent: models.Intent{
				Name:        name,
				Confidence:  1.0,
				SourceLayer: models.LayerExact,
			},
			Sentiment: c.sentiment(tokens),
			Tokens:    tokens,
		}
	}

	// Layer 2: weighted keyword scoring across all intents.
	candidates := c.keywordCandidates(tokens)

	// Layer 3: n-gram overlap, consulted when keywords found nothing.
	if len(candidates) == 0 {
		candidates = c.ngramCandidates(tokens)
	}

	sentiment := c.sentiment(tokens)

	if len(candidates) == 0 {
		c.log.Debug("no intent matched", map[string]interface{}{"tokens": tokens})
		return Result{
			Intent: models.Intent{
				Name:        models.IntentUnknown,
				Confidence:  0.0,
				SourceLayer: models.LayerFallback,
			},
			Sentiment: sentiment,
			Tokens:    tokens,
		}
	}

	// Layer 4: sentiment nudges the confidence of purchase-adjacent and
	// objection-adjacent intents; it never selects an intent on its own.
	applySentiment(candidates, sentiment)

	// Layer 5: the current state's priority set wins ties.
	winner := c.disambiguate(candidates, state)

	return Result{
		Intent:     winner,
		Candidates: candidates,
		Sentiment:  sentiment,
		Tokens:     tokens,
	}
}

func (c *Classifier) exactMatch(lowered string) (models.IntentName, bool) {
	for i := range c.set.Intents {
		for _, phrase := range c.set.Intents[i].ExactPhrases {
			if lowered == phrase {
				return models.IntentName(c.set.Intents[i].Name), true
			}
		}
	}
	return "", false
}

// keywordCandidates scores every intent: +10 per primary hit, +5 per
// secondary hit, -15 per negative hit. Intents with a positive score
// become candidates at confidence min(score/30, 1).
func (c *Classifier) keywordCandidates(tokens []string) []models.Intent {
	lowered := strings.Join(tokens, " ")
	var out []models.Intent
	for i := range c.set.Intents {
		p := &c.set.Intents[i]
		score := 0
		for _, kw := range p.Primary {
			if phraseIn(lowered, tokens, kw) {
				score += primaryWeight
			}
		}
		for _, kw := range p.Secondary {
			if phraseIn(lowered, tokens, kw) {
				score += secondaryWeight
			}
		}
		for _, kw := range p.Negative {
			if phraseIn(lowered, tokens, kw) {
				score += negativeWeight
			}
		}
		if score > 0 {
			out = append(out, models.Intent{
				Name:        models.IntentName(p.Name),
				Confidence:  capConfidence(float64(score) / keywordNormalizer),
				SourceLayer: models.LayerKeyword,
			})
		}
	}
	return out
}

// ngramCandidates checks input bigrams (+2) and trigrams (+3) for
// containment inside each intent's exact phrases. An intent needs at
// least two hits to qualify; confidence is min(score/10, 1).
func (c *Classifier) ngramCandidates(tokens []string) []models.Intent {
	bigrams := textutil.NGrams(tokens, 2)
	trigrams := textutil.NGrams(tokens, 3)
	if len(bigrams) == 0 && len(trigrams) == 0 {
		return nil
	}

	var out []models.Intent
	for i := range c.set.Intents {
		p := &c.set.Intents[i]
		score := 0
		matches := 0
		for _, phrase := range p.ExactPhrases {
			for _, bg := range bigrams {
				if strings.Contains(phrase, bg) {
					score += 2
					matches++
				}
			}
			for _, tg := range trigrams {
				if strings.Contains(phrase, tg) {
					score += 3
					matches++
				}
			}
		}
		if matches >= ngramMinMatches {
			out = append(out, models.Intent{
				Name:        models.IntentName(p.Name),
				Confidence:  capConfidence(float64(score) / ngramNormalizer),
				SourceLayer: models.LayerNGram,
			})
		}
	}
	return out
}

// sentiment tallies positive and negative words over the token list.
func (c *Classifier) sentiment(tokens []string) Sentiment {
	joined := strings.Join(tokens, " ")
	pos, neg := 0, 0
	for _, w := range c.set.SentimentPositive {
		if phraseIn(joined, tokens, w) {
			pos++
		}
	}
	for _, w := range c.set.SentimentNegative {
		if phraseIn(joined, tokens, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// applySentiment boosts purchase intents on positive polarity and
// objection intents on negative polarity. Confidence stays capped at 1.
func applySentiment(candidates []models.Intent, s Sentiment) {
	for i := range candidates {
		switch s {
		case SentimentPositive:
			if candidates[i].Name == models.IntentReadyToStart ||
				candidates[i].Name == models.IntentQuoteRequest {
				candidates[i].Confidence = capConfidence(candidates[i].Confidence * sentimentBoost)
			}
		case SentimentNegative:
			if candidates[i].Name == models.IntentBudgetConcern ||
				candidates[i].Name == models.IntentNotInterested {
				candidates[i].Confidence = capConfidence(candidates[i].Confidence * sentimentBoost)
			}
		}
	}
}

// disambiguate returns the best candidate. If the current state carries a
// priority intent set, the strongest candidate inside it gets a 1.2x boost
// and wins immediately; otherwise the highest-confidence candidate wins.
func (c *Classifier) disambiguate(candidates []models.Intent, state models.ConversationState) models.Intent {
	sortByConfidence(candidates)

	if priorities, ok := c.set.StatePriorities[string(state)]; ok {
		for i := range candidates {
			if inList(string(candidates[i].Name), priorities) {
				boosted := candidates[i]
				boosted.Confidence = capConfidence(boosted.Confidence * contextBoost)
				return boosted
			}
		}
	}
	return candidates[0]
}

// phraseIn matches a single-word keyword against the token list and a
// multi-word keyword against the joined token string.
func phraseIn(joined string, tokens []string, keyword string) bool {
	if strings.ContainsRune(keyword, ' ') {
		return strings.Contains(joined, keyword)
	}
	for _, t := range tokens {
		if t == keyword {
			return true
		}
	}
	return false
}

func sortByConfidence(intents []models.Intent) {
	for i := 1; i < len(intents); i++ {
		for j := i; j > 0 && intents[j].Confidence > intents[j-1].Confidence; j-- {
			intents[j], intents[j-1] = intents[j-1], intents[j]
		}
	}
}

func inList(s string, list []string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func capConfidence(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
