package chat

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Respond(t *testing.T) {
	m := Default()

	tests := []struct {
		utterance string
		rule      string
	}{
		{"I'm stressed about my exam", "stress"},
		{"I feel anxious", "stress"},
		{"so WORRIED right now", "stress"},
		{"I can't sleep", "sleep"},
		{"I'm tired and sad", "sleep"},
		{"I feel so unmotivated", "motivation"},
		{"I've been feeling down lately", "mood"},
		{"Can you help me breathe?", "breathing"},
		{"I have an exam tomorrow", "study"},
		{"I feel lonely", "social"},
		{"thanks for the music", "gratitude"},
		{"play some music", "music"},
		{"I want to do yoga", "exercise"},
		{"Hello there", "greeting"},
		{"HEY", "greeting"},
		{"this is fine", "greeting"},
		{"purple elephants", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.utterance, func(t *testing.T) {
			reply := m.Respond(tc.utterance)
			assert.Equal(t, tc.rule, reply.Rule)
			assert.NotEmpty(t, reply.Reply)
			assert.Len(t, reply.Suggestions, 4)
		})
	}
}

func TestMatcher_DefaultPayload(t *testing.T) {
	reply := Default().Respond("purple elephants")

	assert.Equal(t, defaultRule.Reply, reply.Reply)
	assert.Equal(t, []string{
		"Help with stress management",
		"I need study support",
		"Show me relaxation techniques",
		"I want to improve my mood",
	}, reply.Suggestions)
}

func TestMatcher_TableOrder(t *testing.T) {
	names := make([]string, 0, len(defaultRules))
	for _, r := range Default().Rules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{
		"stress", "sleep", "motivation", "mood", "breathing", "study",
		"social", "gratitude", "music", "exercise", "greeting",
	}, names)
}

// A keyword of rule i can only be answered by rule i or an earlier rule.
func TestMatcher_FirstMatchWins(t *testing.T) {
	m := Default()
	rules := m.Rules()

	position := make(map[string]int, len(rules))
	for i, r := range rules {
		position[r.Name] = i
	}

	for i, r := range rules {
		for _, kw := range r.Keywords {
			got := m.Match(kw)
			require.Contains(t, position, got.Name, "keyword %q matched no rule", kw)
			assert.LessOrEqual(t, position[got.Name], i, "keyword %q of rule %s matched later rule %s", kw, r.Name, got.Name)
		}
	}
}

func TestMatcher_SuggestionsAreCopies(t *testing.T) {
	m := Default()
	first := m.Respond("hello")
	first.Suggestions[0] = "mutated"

	second := m.Respond("hello")
	assert.Equal(t, "I'm feeling stressed", second.Suggestions[0])
}

func TestNewMatcher_Validation(t *testing.T) {
	fallback := Rule{Name: "default", Reply: "ok"}

	_, err := NewMatcher([]Rule{{Name: "empty", Reply: "x"}}, fallback)
	assert.Error(t, err)

	_, err = NewMatcher([]Rule{{Name: "noreply", Keywords: []string{"a"}}}, fallback)
	assert.Error(t, err)

	_, err = NewMatcher([]Rule{{Name: "many", Keywords: []string{"a"}, Reply: "x", Suggestions: []string{"1", "2", "3", "4", "5"}}}, fallback)
	assert.Error(t, err)

	_, err = NewMatcher(nil, Rule{Name: "default"})
	assert.Error(t, err)

	m, err := NewMatcher([]Rule{{Name: "upper", Keywords: []string{"CALM"}, Reply: "calm"}}, fallback)
	require.NoError(t, err)
	assert.Equal(t, "upper", m.Respond("so calm today").Rule)
	assert.Equal(t, "default", m.Respond("nothing here").Rule)
}

func TestProperty_MatcherIsTotalAndCaseInsensitive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)
	m := Default()

	properties.Property("every utterance gets a non-empty reply", prop.ForAll(
		func(utterance string) bool {
			reply := m.Respond(utterance)
			return reply.Reply != "" && len(reply.Suggestions) <= MaxSuggestions
		},
		gen.AnyString(),
	))

	properties.Property("matching ignores case", prop.ForAll(
		func(utterance string) bool {
			return m.Respond(utterance).Rule == m.Respond(strings.ToUpper(utterance)).Rule
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
