package processing

import (
	"context"

	"bm_discord_relay/internal/app"
)

// MetricsClient defines the BattleMetrics methods used by the pollers
type MetricsClient interface {
	GetServerStatus(ctx context.Context) (*app.ServerStatus, error)
	ListRecentBans(ctx context.Context, pageSize int) ([]app.BanRecord, error)
}

// ChatClient defines the Discord methods used by the pollers
type ChatClient interface {
	GetChannel(ctx context.Context, channelID string) (*app.DiscordChannel, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	CreateForumThread(ctx context.Context, channelID, title, content string, appliedTags []string) error
}

// BanArchive defines the optional archive sink for posted bans
type BanArchive interface {
	AppendBan(ctx context.Context, ban app.BanRecord, labels []string) error
}

// StatusExporter defines the optional status artifact publisher
type StatusExporter interface {
	Publish(ctx context.Context, status *app.ServerStatus, displayName string) error
}
