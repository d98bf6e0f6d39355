package processing

import (
	"fmt"

	"bm_discord_relay/internal/app"
)

// FormatStatusName renders the category display name for a status snapshot.
// An offline server reports no live players, so the count is forced to zero
// regardless of what upstream claims. Pure, total function.
func FormatStatusName(state app.ServerState, players, maxPlayers int) string {
	if state == app.ServerOnline {
		return fmt.Sprintf("🟢 SERVER ONLINE (%d/%d)", players, maxPlayers)
	}
	return fmt.Sprintf("🔴 SERVER OFFLINE (0/%d)", maxPlayers)
}
