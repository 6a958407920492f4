// internal/engine/intent/classifier_test.go
package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/models"
	"pegrio-chatbot/pkg/patterns"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(patterns.Defaults(), logger.NewNoOpLogger())
}

func TestProcess_InvalidInput(t *testing.T) {
	c := newTestClassifier(t)

	for _, input := range []string{"", "a", " ", "  x  "} {
		got := c.Process(input, models.StateWelcome)
		assert.Equal(t, models.IntentInvalidInput, got.Intent.Name, "input %q", input)
		assert.Equal(t, 1.0, got.Intent.Confidence)
		assert.Equal(t, models.LayerFallback, got.Intent.SourceLayer)
	}
}

func TestProcess_ExactMatchShortCircuits(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		input    string
		expected models.IntentName
	}{
		{"how much", models.IntentPricingInquiry},
		{"  What Are Your Prices  ", models.IntentPricingInquiry},
		{"hi", models.IntentGreeting},
		{"not interested", models.IntentNotInterested},
		{"let's do it", models.IntentReadyToStart},
	}

	for _, tt := range tests {
		got := c.Process(tt.input, models.StateWelcome)
		assert.Equal(t, tt.expected, got.Intent.Name, "input %q", tt.input)
	}
}

func TestProcess_KeywordScoring(t *testing.T) {
	c := newTestClassifier(t)

	// "price" is a primary keyword (+10) and "what" a secondary (+5) for
	// pricing_inquiry: confidence = 15/30 = 0.5. The timeline state has no
	// priority on pricing, so the plain keyword ranking decides.
	got := c.Process("what is the price of a website", models.StateTimelineAssessment)

	require.Equal(t, models.IntentPricingInquiry, got.Intent.Name)
	assert.Equal(t, models.LayerKeyword, got.Intent.SourceLayer)
	assert.InDelta(t, 0.5, got.Intent.Confidence, 0.001)

	// website_need scored too, just lower.
	names := make([]models.IntentName, 0, len(got.Candidates))
	for _, cand := range got.Candidates {
		names = append(names, cand.Name)
	}
	assert.Contains(t, names, models.IntentWebsiteNeed)
}

func TestProcess_NegativeKeywordsSuppress(t *testing.T) {
	c := newTestClassifier(t)

	// "too expensive" is a negative keyword for pricing_inquiry, keeping
	// it out of the ring entirely; budget_concern wins on "expensive"
	// (+10) and "too" (+5), then the negative sentiment nudge applies.
	got := c.Process("this is way too expensive for me", models.StateWelcome)

	require.Equal(t, models.IntentBudgetConcern, got.Intent.Name)
	assert.Equal(t, SentimentNegative, got.Sentiment)
	assert.InDelta(t, 0.55, got.Intent.Confidence, 0.001)
	for _, cand := range got.Candidates {
		assert.NotEqual(t, models.IntentPricingInquiry, cand.Name,
			"negative keywords must keep pricing_inquiry out")
	}
}

func TestProcess_NGramLayer(t *testing.T) {
	set := &patterns.Set{
		Intents: []patterns.IntentPattern{
			{
				Name:         "reserve",
				ExactPhrases: []string{"book a table for dinner tonight"},
			},
		},
	}
	c := New(set, logger.NewNoOpLogger())

	// No keywords defined at all, so only the n-gram layer can fire:
	// bigrams "book a" (+2) and "a table" (+2) plus trigram
	// "book a table" (+3) give score 7 over three matches.
	got := c.Process("book a table please", models.StateWelcome)

	require.Equal(t, models.IntentName("reserve"), got.Intent.Name)
	assert.Equal(t, models.LayerNGram, got.Intent.SourceLayer)
	assert.InDelta(t, 0.7, got.Intent.Confidence, 0.001)
}

func TestProcess_NGramRequiresTwoMatches(t *testing.T) {
	set := &patterns.Set{
		Intents: []patterns.IntentPattern{
			{
				Name:         "reserve",
				ExactPhrases: []string{"book a table for dinner tonight"},
			},
		},
	}
	c := New(set, logger.NewNoOpLogger())

	// Only the bigram "dinner tonight" overlaps: one match is below the
	// qualification floor, so the classifier falls through to unknown.
	got := c.Process("great dinner tonight everyone", models.StateWelcome)
	assert.Equal(t, models.IntentUnknown, got.Intent.Name)
}

func TestProcess_UnknownFallback(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Process("qwertyuiop zxcvbnm", models.StateDiscovery)
	assert.Equal(t, models.IntentUnknown, got.Intent.Name)
	assert.Equal(t, 0.0, got.Intent.Confidence)
	assert.Equal(t, models.LayerFallback, got.Intent.SourceLayer)
}

func TestProcess_PositiveSentimentBoost(t *testing.T) {
	c := newTestClassifier(t)

	// ready (+10) and begin (+5) put ready_to_start at 0.5; "great" makes
	// the sentiment positive, multiplying by 1.1.
	got := c.Process("ready to begin, sounds great", models.StateDiscovery)

	require.Equal(t, models.IntentReadyToStart, got.Intent.Name)
	assert.Equal(t, SentimentPositive, got.Sentiment)
	assert.InDelta(t, 0.55, got.Intent.Confidence, 0.001)
}

func TestProcess_StatePriorityBoost(t *testing.T) {
	c := newTestClassifier(t)

	// spend (+10) and around (+5) put budget_info at 0.5; the budget
	// discussion state prioritizes budget intents, multiplying by 1.2.
	got := c.Process("i can spend around 2000", models.StateBudgetDiscussion)

	require.Equal(t, models.IntentBudgetInfo, got.Intent.Name)
	assert.Equal(t, models.LayerKeyword, got.Intent.SourceLayer)
	assert.InDelta(t, 0.6, got.Intent.Confidence, 0.001)
}

func TestIntentLevelBuckets(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   models.ConfidenceLevel
	}{
		{1.0, models.ConfidenceHigh},
		{0.85, models.ConfidenceHigh},
		{0.84, models.ConfidenceMedium},
		{0.60, models.ConfidenceMedium},
		{0.59, models.ConfidenceLow},
		{0.0, models.ConfidenceLow},
	}
	for _, tt := range tests {
		in := models.Intent{Confidence: tt.confidence}
		assert.Equal(t, tt.expected, in.Level(), "confidence %v", tt.confidence)
	}
}
