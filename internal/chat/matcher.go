package chat

import (
	"fmt"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// MaxSuggestions is the largest suggestion list a rule may carry
const MaxSuggestions = 4

// Matcher maps an utterance to the payload of the first rule whose keyword
// set has a member contained in the lowercased utterance. It is read-only
// after construction and safe for concurrent use.
type Matcher struct {
	rules    []Rule
	fallback Rule
}

var defaultMatcher = mustMatcher(defaultRules, defaultRule)

// Default returns the matcher built from the built-in rule table
func Default() *Matcher {
	return defaultMatcher
}

// NewMatcher builds a matcher from an ordered rule table and a fallback.
// Keywords are normalized to lowercase; the rules are copied.
func NewMatcher(rules []Rule, fallback Rule) (*Matcher, error) {
	if err := validateRule(fallback, false); err != nil {
		return nil, fmt.Errorf("invalid fallback rule: %w", err)
	}

	table := make([]Rule, 0, len(rules))
	for i, r := range rules {
		if err := validateRule(r, true); err != nil {
			return nil, fmt.Errorf("invalid rule %d (%s): %w", i, r.Name, err)
		}
		table = append(table, normalizeRule(r))
	}

	return &Matcher{
		rules:    table,
		fallback: normalizeRule(fallback),
	}, nil
}

func mustMatcher(rules []Rule, fallback Rule) *Matcher {
	m, err := NewMatcher(rules, fallback)
	if err != nil {
		panic(err)
	}
	return m
}

// Respond returns the reply and suggestions for an utterance.
// Empty utterances are rejected by callers before reaching here; if one
// does arrive it gets the fallback payload.
func (m *Matcher) Respond(utterance string) model.ChatReply {
	return payload(m.Match(utterance))
}

// Match returns the rule that answers the utterance
func (m *Matcher) Match(utterance string) Rule {
	normalized := strings.ToLower(utterance)
	for _, r := range m.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(normalized, kw) {
				return r
			}
		}
	}
	return m.fallback
}

// Rules returns a copy of the ordered rule table
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	for i, r := range m.rules {
		out[i] = normalizeRule(r)
	}
	return out
}

// Fallback returns the payload used when no rule matches
func (m *Matcher) Fallback() Rule {
	return normalizeRule(m.fallback)
}

func payload(r Rule) model.ChatReply {
	suggestions := make([]string, len(r.Suggestions))
	copy(suggestions, r.Suggestions)
	return model.ChatReply{
		Rule:        r.Name,
		Reply:       r.Reply,
		Suggestions: suggestions,
	}
}

func validateRule(r Rule, needsKeywords bool) error {
	if strings.TrimSpace(r.Reply) == "" {
		return fmt.Errorf("reply is required")
	}
	if len(r.Suggestions) > MaxSuggestions {
		return fmt.Errorf("at most %d suggestions allowed, got %d", MaxSuggestions, len(r.Suggestions))
	}
	if needsKeywords && len(r.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	for _, kw := range r.Keywords {
		if kw == "" {
			return fmt.Errorf("empty keyword")
		}
	}
	return nil
}

func normalizeRule(r Rule) Rule {
	keywords := make([]string, len(r.Keywords))
	for i, kw := range r.Keywords {
		keywords[i] = strings.ToLower(kw)
	}
	suggestions := make([]string, len(r.Suggestions))
	copy(suggestions, r.Suggestions)
	return Rule{
		Name:        r.Name,
		Keywords:    keywords,
		Reply:       r.Reply,
		Suggestions: suggestions,
	}
}
