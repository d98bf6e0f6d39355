package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bm_discord_relay/internal/app"

	"github.com/rs/zerolog/log"
)

// StatusDocument is the JSON artifact published after each status poll, for
// consumption by an external status page
type StatusDocument struct {
	ServerID    string `json:"server_id"`
	State       string `json:"state"`
	Players     int    `json:"players"`
	MaxPlayers  int    `json:"max_players"`
	DisplayName string `json:"display_name"`
	Updated     string `json:"updated"`
	Interval    int    `json:"interval"`
}

// Deployer ships a local file to a remote host
type Deployer interface {
	DeployFile(localPath, filename string) error
}

// StatusPublisher renders status snapshots to a local JSON file and
// optionally ships the file to a web host. Failures here never affect the
// Discord side; the artifact is fire-and-forget.
type StatusPublisher struct {
	serverID   string
	exportPath string
	interval   time.Duration
	deployer   Deployer
	now        func() time.Time
}

// NewStatusPublisher creates a StatusPublisher. deployer may be nil, in which
// case the artifact is only written locally.
func NewStatusPublisher(serverID, exportPath string, interval time.Duration, deployer Deployer) *StatusPublisher {
	if exportPath == "" {
		exportPath = "status.json"
	}

	return &StatusPublisher{
		serverID:   serverID,
		exportPath: exportPath,
		interval:   interval,
		deployer:   deployer,
		now:        time.Now,
	}
}

// BuildDocument converts a snapshot to the export format
func (p *StatusPublisher) BuildDocument(status *app.ServerStatus, displayName string) StatusDocument {
	return StatusDocument{
		ServerID:    p.serverID,
		State:       string(status.State),
		Players:     status.Players,
		MaxPlayers:  status.MaxPlayers,
		DisplayName: displayName,
		Updated:     p.now().UTC().Format(time.RFC3339),
		Interval:    int(p.interval.Seconds()),
	}
}

// Publish writes the artifact and ships it if a deployer is configured
func (p *StatusPublisher) Publish(ctx context.Context, status *app.ServerStatus, displayName string) error {
	doc := p.BuildDocument(status, displayName)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status document: %w", err)
	}

	if err := os.WriteFile(p.exportPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	log.Debug().
		Str("path", p.exportPath).
		Str("state", doc.State).
		Msg("Wrote status artifact")

	if p.deployer != nil {
		if err := p.deployer.DeployFile(p.exportPath, filepath.Base(p.exportPath)); err != nil {
			return fmt.Errorf("failed to deploy status file: %w", err)
		}
	}

	return nil
}
