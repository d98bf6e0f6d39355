package battlemetrics

import (
	"context"

	"bm_discord_relay/internal/app"
)

// BattleMetricsAPI defines the interface for interacting with the
// BattleMetrics API. This separates infrastructure concerns from the pollers.
type BattleMetricsAPI interface {
	GetServerStatus(ctx context.Context) (*app.ServerStatus, error)
	ListRecentBans(ctx context.Context, pageSize int) ([]app.BanRecord, error)

	// API call tracking
	GetAPICallCount() int64
	IncrementAPICall()
	ResetAPICallCount()
}
