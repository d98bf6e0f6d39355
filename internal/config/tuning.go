package config

import "time"

// Polling and request tuning constants
const (
	// StatusPollInterval is deliberately short: the category name is the
	// visible state indicator and should track the server closely.
	StatusPollInterval = 30 * time.Second

	// BanPollInterval is long: bans are rare and the BattleMetrics API is
	// rate-limited.
	BanPollInterval = 10 * time.Minute

	// HTTPRequestTimeout bounds every outbound call so a stalled request
	// cannot wedge a future tick.
	HTTPRequestTimeout = 10 * time.Second

	// BanPageSize is the "most recent N" window fetched per ban tick. A ban
	// that repeatedly fails to post and then falls off this window is lost;
	// raise the page size for stronger delivery.
	BanPageSize = 10

	// ForumAutoArchiveMinutes is the auto-archive duration applied to ban
	// threads (7 days, the Discord maximum).
	ForumAutoArchiveMinutes = 10080

	// Liveness HTTP server timeouts
	ServerReadTimeout     = 5 * time.Second
	ServerWriteTimeout    = 10 * time.Second
	ServerIdleTimeout     = 60 * time.Second
	ServerShutdownTimeout = 5 * time.Second
)
