package mocks

import (
	"context"

	"bm_discord_relay/internal/app"
)

// ArchiveCall records one AppendBan invocation
type ArchiveCall struct {
	Ban    app.BanRecord
	Labels []string
}

// MockBanArchive is a test double for the sheets ban archive
type MockBanArchive struct {
	AppendError error
	AppendCalls []ArchiveCall
}

func NewMockBanArchive() *MockBanArchive {
	return &MockBanArchive{}
}

func (m *MockBanArchive) AppendBan(ctx context.Context, ban app.BanRecord, labels []string) error {
	m.AppendCalls = append(m.AppendCalls, ArchiveCall{Ban: ban, Labels: labels})
	return m.AppendError
}

// PublishCall records one Publish invocation
type PublishCall struct {
	Status      app.ServerStatus
	DisplayName string
}

// MockStatusExporter is a test double for the status artifact publisher
type MockStatusExporter struct {
	PublishError error
	PublishCalls []PublishCall
}

func NewMockStatusExporter() *MockStatusExporter {
	return &MockStatusExporter{}
}

func (m *MockStatusExporter) Publish(ctx context.Context, status *app.ServerStatus, displayName string) error {
	m.PublishCalls = append(m.PublishCalls, PublishCall{Status: *status, DisplayName: displayName})
	return m.PublishError
}
