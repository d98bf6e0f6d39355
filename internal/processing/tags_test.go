package processing

import (
	"strings"
	"testing"

	"bm_discord_relay/internal/app"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResolveLabels(t *testing.T) {
	tests := []struct {
		name     string
		reason   string
		expected []Label
	}{
		{
			name:     "SingleKeyword",
			reason:   "cheating",
			expected: []Label{LabelCheating},
		},
		{
			name:     "CaseInsensitive",
			reason:   "CHEATING with aimbot",
			expected: []Label{LabelCheating},
		},
		{
			name:     "MultipleKeywordsInRuleOrder",
			reason:   "teamkilling and cheating",
			expected: []Label{LabelTeamkilling, LabelCheating},
		},
		{
			name:     "RuleOrderNotInputOrder",
			reason:   "cheater kept teamkilling",
			expected: []Label{LabelTeamkilling, LabelCheating},
		},
		{
			name:     "SubstringMatch",
			reason:   "permanently banned for toxicity",
			expected: []Label{LabelBanned, LabelToxic},
		},
		{
			name:     "WrongMob",
			reason:   "killed the wrong mob again",
			expected: []Label{LabelWrongMob},
		},
		{
			name:     "Kamikazi",
			reason:   "kamikazi runs into the base",
			expected: []Label{LabelKamikazi},
		},
		{
			name:     "NoMatchYieldsNoLabels",
			reason:   "spamming voice chat",
			expected: nil,
		},
		{
			name:     "EmptyReason",
			reason:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveLabels(tt.reason)

			if len(result) != len(tt.expected) {
				t.Fatalf("ResolveLabels(%q) = %v, expected %v", tt.reason, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("ResolveLabels(%q)[%d] = %v, expected %v", tt.reason, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestResolveLabelsProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: any reason containing "cheat" resolves to a set including CHEATING
	properties.Property("cheat always yields CHEATING", prop.ForAll(
		func(prefix, suffix string) bool {
			labels := ResolveLabels(prefix + "ChEaT" + suffix)
			for _, label := range labels {
				if label == LabelCheating {
					return true
				}
			}
			return false
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Property: resolution is case-insensitive
	properties.Property("case does not change the result", prop.ForAll(
		func(reason string) bool {
			lower := ResolveLabels(strings.ToLower(reason))
			upper := ResolveLabels(strings.ToUpper(reason))
			if len(lower) != len(upper) {
				return false
			}
			for i := range lower {
				if lower[i] != upper[i] {
					return false
				}
			}
			return true
		},
		gen.OneConstOf("banned", "teamkill", "Cheating and Toxic", "sorted out", "kamikazi", "no keywords here"),
	))

	// Property: no duplicate labels regardless of input
	properties.Property("no duplicates", prop.ForAll(
		func(reason string) bool {
			labels := ResolveLabels(reason)
			seen := make(map[Label]bool)
			for _, label := range labels {
				if seen[label] {
					return false
				}
				seen[label] = true
			}
			return true
		},
		gen.OneConstOf("ban ban ban", "cheat cheating cheater", "teamkilling team", "toxic toxic"),
	))

	properties.TestingRun(t)
}

func TestTagSetIDs(t *testing.T) {
	tags := NewTagSet(app.TagConfig{
		Cheating:    "tag-cheat",
		Teamkilling: "tag-tk",
	})

	t.Run("ConfiguredLabels", func(t *testing.T) {
		ids := tags.IDs([]Label{LabelTeamkilling, LabelCheating})

		if len(ids) != 2 || ids[0] != "tag-tk" || ids[1] != "tag-cheat" {
			t.Errorf("Expected [tag-tk tag-cheat], got %v", ids)
		}
	})

	t.Run("UnconfiguredLabelsDropped", func(t *testing.T) {
		ids := tags.IDs([]Label{LabelBanned, LabelCheating, LabelToxic})

		if len(ids) != 1 || ids[0] != "tag-cheat" {
			t.Errorf("Expected [tag-cheat], got %v", ids)
		}
	})

	t.Run("NoLabels", func(t *testing.T) {
		if ids := tags.IDs(nil); len(ids) != 0 {
			t.Errorf("Expected no IDs, got %v", ids)
		}
	})
}
