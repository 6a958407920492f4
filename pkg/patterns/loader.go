// pkg/patterns/loader.go
package patterns

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// overrideSchema validates the shape of a pattern-override document before
// it is merged over the defaults. A malformed file fails startup rather
// than silently degrading matching quality.
const overrideSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"version": {"type": "string"},
		"intents": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"exactPhrases": {"type": "array", "items": {"type": "string"}},
					"primary": {"type": "array", "items": {"type": "string"}},
					"secondary": {"type": "array", "items": {"type": "string"}},
					"negative": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"businessTypes": {"$ref": "#/definitions/keywordSets"},
		"businessNouns": {"type": "array", "items": {"type": "string"}},
		"budgetTight": {"type": "array", "items": {"type": "string"}},
		"budgetFlexible": {"type": "array", "items": {"type": "string"}},
		"timelines": {"$ref": "#/definitions/keywordSets"},
		"features": {"$ref": "#/definitions/keywordSets"},
		"painPoints": {"$ref": "#/definitions/keywordSets"},
		"decisionRoles": {"$ref": "#/definitions/keywordSets"},
		"sentimentPositive": {"type": "array", "items": {"type": "string"}},
		"sentimentNegative": {"type": "array", "items": {"type": "string"}},
		"statePriorities": {
			"type": "object",
			"additionalProperties": {"type": "array", "items": {"type": "string"}}
		}
	},
	"definitions": {
		"keywordSets": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["tag", "keywords"],
				"additionalProperties": false,
				"properties": {
					"tag": {"type": "string", "minLength": 1},
					"keywords": {"type": "array", "items": {"type": "string"}, "minItems": 1}
				}
			}
		}
	}
}`

// Load returns the defaults merged with the YAML override file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (*Set, error) {
	set := Defaults()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern overrides: %w", err)
	}

	// Validate the raw document, not the typed struct: unmarshaling into
	// Set would silently drop unknown keys before the schema sees them.
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pattern overrides: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode pattern overrides: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var override Set
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("decode pattern overrides: %w", err)
	}

	merge(set, &override)
	return set, nil
}

// validateOverride checks a typed set against the override schema, using
// the same JSON field names an override file would carry.
func validateOverride(o *Set) error {
	doc, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode pattern overrides: %w", err)
	}
	return validateDocument(doc)
}

// validateDocument runs one JSON document through the override schema.
func validateDocument(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(overrideSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate pattern overrides: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid pattern overrides: %v", msgs)
	}
	return nil
}

// merge applies the override on top of the base set. Intents merge by
// name (replace existing, append new); every other non-empty category
// replaces the base category wholesale, preserving the override's order.
func merge(base, override *Set) {
	if override.Version != "" {
		base.Version = override.Version
	}
	for _, in := range override.Intents {
		if existing := base.Lookup(in.Name); existing != nil {
			*existing = in
			continue
		}
		base.Intents = append(base.Intents, in)
	}
	if len(override.BusinessTypes) > 0 {
		base.BusinessTypes = override.BusinessTypes
	}
	if len(override.BusinessNouns) > 0 {
		base.BusinessNouns = override.BusinessNouns
	}
	if len(override.BudgetTight) > 0 {
		base.BudgetTight = override.BudgetTight
	}
	if len(override.BudgetFlexible) > 0 {
		base.BudgetFlexible = override.BudgetFlexible
	}
	if len(override.Timelines) > 0 {
		base.Timelines = override.Timelines
	}
	if len(override.Features) > 0 {
		base.Features = override.Features
	}
	if len(override.PainPoints) > 0 {
		base.PainPoints = override.PainPoints
	}
	if len(override.DecisionRoles) > 0 {
		base.DecisionRoles = override.DecisionRoles
	}
	if len(override.SentimentPositive) > 0 {
		base.SentimentPositive = override.SentimentPositive
	}
	if len(override.SentimentNegative) > 0 {
		base.SentimentNegative = override.SentimentNegative
	}
	for state, intents := range override.StatePriorities {
		if base.StatePriorities == nil {
			base.StatePriorities = map[string][]string{}
		}
		base.StatePriorities[state] = intents
	}
}
