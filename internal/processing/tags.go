package processing

import "strings"

// Label is a presentation label derived from a ban reason
type Label string

const (
	LabelBanned      Label = "BANNED"
	LabelSorted      Label = "SORTED"
	LabelKicked      Label = "KICKED"
	LabelTeamkilling Label = "TEAMKILLING"
	LabelWrongMob    Label = "WRONG_MOB"
	LabelCheating    Label = "CHEATING"
	LabelToxic       Label = "TOXIC"
	LabelKamikazi    Label = "KAMIKAZI"
)

// noMatchPolicy fixes what happens when zero keyword rules match a reason.
type noMatchPolicy int

const (
	// noMatchNoLabels leaves the ban unlabeled. This is the chosen policy.
	noMatchNoLabels noMatchPolicy = iota
	// noMatchFallbackBanned would apply LabelBanned instead.
	noMatchFallbackBanned
)

const activeNoMatchPolicy = noMatchNoLabels

// tagRule maps a reason keyword to a label. Rules are evaluated in order and
// every match contributes, so a single reason can carry several labels.
type tagRule struct {
	keyword string
	label   Label
}

var tagRules = []tagRule{
	{"ban", LabelBanned},
	{"sorted", LabelSorted},
	{"kick", LabelKicked},
	{"team", LabelTeamkilling},
	{"mob", LabelWrongMob},
	{"cheat", LabelCheating},
	{"toxic", LabelToxic},
	{"kamikazi", LabelKamikazi},
}

// ResolveLabels maps a free-text ban reason to its labels. Matching is
// case-insensitive substring containment; results come back in rule order
// with no duplicates. Pure function.
func ResolveLabels(reason string) []Label {
	lowered := strings.ToLower(reason)

	var labels []Label
	seen := make(map[Label]bool)
	for _, rule := range tagRules {
		if seen[rule.label] {
			continue
		}
		if strings.Contains(lowered, rule.keyword) {
			labels = append(labels, rule.label)
			seen[rule.label] = true
		}
	}

	if len(labels) == 0 && activeNoMatchPolicy == noMatchFallbackBanned {
		labels = append(labels, LabelBanned)
	}

	return labels
}
