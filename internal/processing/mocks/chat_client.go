package mocks

import (
	"context"

	"bm_discord_relay/internal/app"
)

// ChatClient interface defines the methods the pollers use from the
// discord.Client
type ChatClient interface {
	GetChannel(ctx context.Context, channelID string) (*app.DiscordChannel, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	CreateForumThread(ctx context.Context, channelID, title, content string, appliedTags []string) error
}

// RenameCall records one RenameChannel invocation
type RenameCall struct {
	ChannelID string
	Name      string
}

// ThreadCall records one CreateForumThread invocation
type ThreadCall struct {
	ChannelID   string
	Title       string
	Content     string
	AppliedTags []string
}

// MockChatClient is a test double for the discord.Client
type MockChatClient struct {
	// Responses to return
	Channel *app.DiscordChannel

	// Errors to return
	ChannelError      error
	RenameError       error
	CreateThreadError error

	// CreateThreadErrorByTitle fails only threads with a matching title,
	// for per-record failure tests
	CreateThreadErrorByTitle map[string]error

	// Call tracking
	GetChannelCalls []string
	RenameCalls     []RenameCall
	ThreadCalls     []ThreadCall
}

// NewMockChatClient creates a new mock chat client
func NewMockChatClient() *MockChatClient {
	return &MockChatClient{}
}

func (m *MockChatClient) GetChannel(ctx context.Context, channelID string) (*app.DiscordChannel, error) {
	m.GetChannelCalls = append(m.GetChannelCalls, channelID)
	return m.Channel, m.ChannelError
}

func (m *MockChatClient) RenameChannel(ctx context.Context, channelID, name string) error {
	m.RenameCalls = append(m.RenameCalls, RenameCall{ChannelID: channelID, Name: name})
	return m.RenameError
}

func (m *MockChatClient) CreateForumThread(ctx context.Context, channelID, title, content string, appliedTags []string) error {
	m.ThreadCalls = append(m.ThreadCalls, ThreadCall{
		ChannelID:   channelID,
		Title:       title,
		Content:     content,
		AppliedTags: appliedTags,
	})

	if err, ok := m.CreateThreadErrorByTitle[title]; ok {
		return err
	}
	return m.CreateThreadError
}
