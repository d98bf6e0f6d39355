package processing

import (
	"bm_discord_relay/internal/battlemetrics"
	"bm_discord_relay/internal/discord"
	"bm_discord_relay/internal/export"
	"bm_discord_relay/internal/sheets"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ MetricsClient  = (*battlemetrics.Client)(nil)
	_ ChatClient     = (*discord.Client)(nil)
	_ BanArchive     = (*sheets.BanArchive)(nil)
	_ StatusExporter = (*export.StatusPublisher)(nil)
)
