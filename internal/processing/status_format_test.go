package processing

import (
	"strings"
	"testing"

	"bm_discord_relay/internal/app"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFormatStatusName(t *testing.T) {
	tests := []struct {
		name       string
		state      app.ServerState
		players    int
		maxPlayers int
		expected   string
	}{
		{
			name:       "Online",
			state:      app.ServerOnline,
			players:    5,
			maxPlayers: 20,
			expected:   "🟢 SERVER ONLINE (5/20)",
		},
		{
			name:       "OnlineEmpty",
			state:      app.ServerOnline,
			players:    0,
			maxPlayers: 24,
			expected:   "🟢 SERVER ONLINE (0/24)",
		},
		{
			name:       "OfflineForcesZeroPlayers",
			state:      app.ServerOffline,
			players:    17,
			maxPlayers: 24,
			expected:   "🔴 SERVER OFFLINE (0/24)",
		},
		{
			name:       "OfflineZeroCapacity",
			state:      app.ServerOffline,
			players:    0,
			maxPlayers: 0,
			expected:   "🔴 SERVER OFFLINE (0/0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatStatusName(tt.state, tt.players, tt.maxPlayers)
			if result != tt.expected {
				t.Errorf("FormatStatusName(%v, %d, %d) = %q, expected %q",
					tt.state, tt.players, tt.maxPlayers, result, tt.expected)
			}
		})
	}
}

func TestFormatStatusNameProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: offline always reports zero players regardless of upstream count
	properties.Property("offline forces zero players", prop.ForAll(
		func(players, maxPlayers int) bool {
			name := FormatStatusName(app.ServerOffline, players, maxPlayers)
			return strings.Contains(name, "(0/")
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 500),
	))

	// Property: online passes the player count through untouched
	properties.Property("online passes count through", prop.ForAll(
		func(players, maxPlayers int) bool {
			name := FormatStatusName(app.ServerOnline, players, maxPlayers)
			return strings.HasPrefix(name, "🟢 SERVER ONLINE (")
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}
