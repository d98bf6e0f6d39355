package processing

import "bm_discord_relay/internal/app"

// TagSet maps labels to the Discord forum tag IDs configured for the target
// forum. Labels whose TAG_* variable is unset are dropped at resolution time.
type TagSet struct {
	ids map[Label]string
}

// NewTagSet builds a TagSet from the configured forum tag IDs
func NewTagSet(tags app.TagConfig) TagSet {
	ids := map[Label]string{
		LabelBanned:      tags.Banned,
		LabelSorted:      tags.Sorted,
		LabelKicked:      tags.Kicked,
		LabelTeamkilling: tags.Teamkilling,
		LabelWrongMob:    tags.WrongMob,
		LabelCheating:    tags.Cheating,
		LabelToxic:       tags.Toxic,
		LabelKamikazi:    tags.Kamikazi,
	}

	for label, id := range ids {
		if id == "" {
			delete(ids, label)
		}
	}

	return TagSet{ids: ids}
}

// IDs resolves labels to configured tag IDs, preserving label order and
// skipping unconfigured labels
func (t TagSet) IDs(labels []Label) []string {
	var out []string
	for _, label := range labels {
		if id, ok := t.ids[label]; ok {
			out = append(out, id)
		}
	}
	return out
}
