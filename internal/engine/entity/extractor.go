// internal/engine/entity/extractor.go

// Package entity pulls structured facts out of raw visitor text. Nine
// independent sub-extractors run per utterance; each returns nothing when
// its signal is absent. Extraction never fails.
package entity

import (
	"regexp"
	"strconv"
	"strings"

	"pegrio-chatbot/internal/models"

	"pegrio-chatbot/pkg/patterns"
)

var (
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRE = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

	dollarRE = regexp.MustCompile(`\$\s?(\d[\d,]*(?:\.\d+)?)`)
	kRE      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s?k\b`)
	aroundRE = regexp.MustCompile(`(?:around|about|spend|budget(?:\s+(?:is|of))?)\s+\$?(\d[\d,]*)`)
)

// Extractor runs the keyword and regex heuristics defined by a pattern set.
type Extractor struct {
	set     *patterns.Set
	nameREs []*regexp.Regexp
}

// New compiles the business-name capture patterns for the given set.
func New(set *patterns.Set) *Extractor {
	nouns := strings.Join(escapeAll(set.BusinessNouns), "|")
	return &Extractor{
		set: set,
		// Priority order: "called/named X", "own/run/operate X <noun>",
		// then a bare "X <noun>" prefix.
		nameREs: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:called|named)\s+([a-z0-9&'\- ]{2,40}?)(?:\s+(?:and|which|that|so|but)\b|\s*[.,!?]|\s*$)`),
			regexp.MustCompile(`(?i)(?:own|run|operate)\s+(?:a\s+)?([a-z0-9&'\- ]{2,40}?)\s+(?:` + nouns + `)\b`),
			regexp.MustCompile(`(?i)^([a-z0-9&'\- ]{2,40}?)\s+(?:` + nouns + `)\b`),
		},
	}
}

// ExtractAll runs every sub-extractor over the utterance and returns
// whatever was found. It never returns an error; an utterance with no
// signal yields the zero value.
func (e *Extractor) ExtractAll(text string) models.ExtractedEntities {
	lowered := strings.ToLower(text)

	out := models.ExtractedEntities{
		BusinessType:    e.businessType(lowered),
		BusinessName:    e.businessName(text),
		TimelineUrgency: e.timeline(lowered),
		FeaturesNeeded:  e.features(lowered),
		PainPoints:      e.painPoints(lowered),
		DecisionRole:    e.decisionRole(lowered),
		Email:           emailRE.FindString(text),
		Phone:           phoneRE.FindString(text),
	}
	out.BudgetRange, out.BudgetAmount = e.budget(lowered)
	return out
}

// businessType walks the ordered keyword sets; first match wins. The set
// order encodes specificity (cafe before restaurant).
func (e *Extractor) businessType(lowered string) models.BusinessType {
	for _, ks := range e.set.BusinessTypes {
		for _, kw := range ks.Keywords {
			if strings.Contains(lowered, kw) {
				return models.BusinessType(ks.Tag)
			}
		}
	}
	return ""
}

func (e *Extractor) businessName(text string) string {
	for _, re := range e.nameREs {
		if m := re.FindStringSubmatch(text); m != nil {
			name := trimLeadingArticles(strings.TrimSpace(m[1]))
			if name != "" && !isNoiseName(name) && !e.isCompoundNounPrefix(name) {
				return capitalizeWords(name)
			}
		}
	}
	return ""
}

// trimLeadingArticles drops determiners so "the rusty anchor" keeps its
// name while a pure fragment still fails the noise check.
func trimLeadingArticles(name string) string {
	words := strings.Fields(name)
	for len(words) > 0 {
		switch strings.ToLower(words[0]) {
		case "the", "a", "an", "my", "our":
			words = words[1:]
		default:
			return strings.Join(words, " ")
		}
	}
	return ""
}

// noiseWords are capture tokens that mark a grammatical fragment rather
// than an actual business name ("I own a restaurant" must not yield the
// name "I Own A").
var noiseWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "my": {}, "our": {}, "your": {}, "this": {},
	"that": {}, "i": {}, "we": {}, "you": {}, "i'm": {}, "own": {}, "run": {},
	"operate": {}, "have": {}, "has": {}, "need": {}, "want": {}, "small": {},
	"local": {}, "new": {}, "little": {}, "great": {},
}

// isCompoundNounPrefix rejects captures like "coffee" from "coffee shop",
// where the "name" is really the first half of a compound business noun.
func (e *Extractor) isCompoundNounPrefix(name string) bool {
	low := strings.ToLower(name)
	for _, noun := range e.set.BusinessNouns {
		if strings.HasPrefix(noun, low+" ") {
			return true
		}
	}
	return false
}

func isNoiseName(name string) bool {
	for _, w := range strings.Fields(strings.ToLower(name)) {
		if _, ok := noiseWords[w]; ok {
			return true
		}
	}
	return false
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// budget scans the numeric patterns first, takes the maximum amount found
// and buckets it; keyword phrasing is the fallback when no number appears.
func (e *Extractor) budget(lowered string) (models.BudgetRange, int) {
	max := 0
	for _, m := range dollarRE.FindAllStringSubmatch(lowered, -1) {
		if v := parseAmount(m[1]); v > max {
			max = v
		}
	}
	for _, m := range kRE.FindAllStringSubmatch(lowered, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			if amt := int(v * 1000); amt > max {
				max = amt
			}
		}
	}
	for _, m := range aroundRE.FindAllStringSubmatch(lowered, -1) {
		if v := parseAmount(m[1]); v > max {
			max = v
		}
	}

	if max > 0 {
		return bucketAmount(max), max
	}

	for _, kw := range e.set.BudgetTight {
		if strings.Contains(lowered, kw) {
			return models.BudgetTight, 0
		}
	}
	for _, kw := range e.set.BudgetFlexible {
		if strings.Contains(lowered, kw) {
			return models.BudgetFlexible, 0
		}
	}
	return "", 0
}

func parseAmount(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func bucketAmount(amount int) models.BudgetRange {
	switch {
	case amount < 2000:
		return models.BudgetTight
	case amount < 2500:
		return models.BudgetEssential
	case amount < 6000:
		return models.BudgetProfessional
	default:
		return models.BudgetPremium
	}
}

// timeline walks the ordered urgency sets; first match wins.
func (e *Extractor) timeline(lowered string) models.TimelineUrgency {
	for _, ks := range e.set.Timelines {
		for _, kw := range ks.Keywords {
			if strings.Contains(lowered, kw) {
				return models.TimelineUrgency(ks.Tag)
			}
		}
	}
	return ""
}

// features checks every set independently and unions the matches.
func (e *Extractor) features(lowered string) []models.FeatureTag {
	var out []models.FeatureTag
	for _, ks := range e.set.Features {
		for _, kw := range ks.Keywords {
			if containsWord(lowered, kw) {
				out = append(out, models.FeatureTag(ks.Tag))
				break
			}
		}
	}
	return out
}

func (e *Extractor) painPoints(lowered string) []models.PainPointTag {
	var out []models.PainPointTag
	for _, ks := range e.set.PainPoints {
		for _, kw := range ks.Keywords {
			if strings.Contains(lowered, kw) {
				out = append(out, models.PainPointTag(ks.Tag))
				break
			}
		}
	}
	return out
}

// decisionRole walks the ordered role sets; first match wins, nothing
// matched leaves the role unknown.
func (e *Extractor) decisionRole(lowered string) models.DecisionRole {
	for _, ks := range e.set.DecisionRoles {
		for _, kw := range ks.Keywords {
			if strings.Contains(lowered, kw) {
				return models.DecisionRole(ks.Tag)
			}
		}
	}
	return ""
}

// containsWord is substring containment with word boundaries for short
// keywords, so "ai" does not fire inside "maintain".
func containsWord(haystack, needle string) bool {
	if strings.ContainsRune(needle, ' ') || len(needle) > 3 {
		return strings.Contains(haystack, needle)
	}
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		beforeOK := start == 0 || !isWordByte(haystack[start-1])
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func escapeAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = regexp.QuoteMeta(w)
	}
	return out
}
