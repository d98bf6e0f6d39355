package discord

import (
	"context"

	"bm_discord_relay/internal/app"
)

// DiscordAPI defines the interface for interacting with the Discord REST API.
// This separates infrastructure concerns from the pollers.
type DiscordAPI interface {
	Me(ctx context.Context) (*app.DiscordUser, error)
	GetChannel(ctx context.Context, channelID string) (*app.DiscordChannel, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	CreateForumThread(ctx context.Context, channelID, title, content string, appliedTags []string) error

	// API call tracking
	GetAPICallCount() int64
	IncrementAPICall()
}
