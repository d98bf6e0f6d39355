package mocks

import (
	"context"

	"bm_discord_relay/internal/app"
)

// MetricsClient interface defines the methods the pollers use from the
// BattleMetrics client
type MetricsClient interface {
	GetServerStatus(ctx context.Context) (*app.ServerStatus, error)
	ListRecentBans(ctx context.Context, pageSize int) ([]app.BanRecord, error)
}

// MockMetricsClient is a test double for the battlemetrics.Client
type MockMetricsClient struct {
	// Responses to return
	StatusResponse *app.ServerStatus
	BansResponse   []app.BanRecord

	// Errors to return
	StatusError error
	BansError   error

	// Call tracking
	GetServerStatusCalls    int
	ListRecentBansCalls     int
	ListRecentBansPageSizes []int
}

// NewMockMetricsClient creates a new mock metrics client
func NewMockMetricsClient() *MockMetricsClient {
	return &MockMetricsClient{}
}

func (m *MockMetricsClient) GetServerStatus(ctx context.Context) (*app.ServerStatus, error) {
	m.GetServerStatusCalls++
	return m.StatusResponse, m.StatusError
}

func (m *MockMetricsClient) ListRecentBans(ctx context.Context, pageSize int) ([]app.BanRecord, error) {
	m.ListRecentBansCalls++
	m.ListRecentBansPageSizes = append(m.ListRecentBansPageSizes, pageSize)
	return m.BansResponse, m.BansError
}
