package processing

import (
	"context"
	"errors"
	"fmt"

	"bm_discord_relay/internal/app"

	"github.com/rs/zerolog/log"
)

// StatusPoller reflects the server's online/offline state and player count
// into the name of a Discord category. Renames only happen when the rendered
// name differs from the last one successfully applied; Discord rate-limits
// channel renames hard, so redundant calls are the thing to avoid.
type StatusPoller struct {
	metrics    MetricsClient
	chat       ChatClient
	store      *DedupStore
	categoryID string
	exporter   StatusExporter

	targetChecked bool
	targetOK      bool
}

// NewStatusPoller creates a StatusPoller. exporter may be nil.
func NewStatusPoller(metrics MetricsClient, chat ChatClient, store *DedupStore, categoryID string, exporter StatusExporter) *StatusPoller {
	return &StatusPoller{
		metrics:    metrics,
		chat:       chat,
		store:      store,
		categoryID: categoryID,
		exporter:   exporter,
	}
}

// Tick runs one status poll: fetch, format, rename if changed. The last
// applied name is only updated after a successful rename, so a failed rename
// is retried on the next tick. The first tick after startup always renames.
func (p *StatusPoller) Tick(ctx context.Context) error {
	status, err := p.metrics.GetServerStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch server status: %w", err)
	}

	newName := FormatStatusName(status.State, status.Players, status.MaxPlayers)

	if last, ok := p.store.LastDisplayName(); ok && last == newName {
		log.Debug().
			Str("name", newName).
			Msg("Status unchanged, skipping rename")
	} else {
		if err := p.applyRename(ctx, newName); err != nil {
			return err
		}
	}

	if p.exporter != nil {
		if err := p.exporter.Publish(ctx, status, newName); err != nil {
			log.Warn().Err(err).Msg("Failed to publish status artifact")
		}
	}

	return nil
}

func (p *StatusPoller) applyRename(ctx context.Context, newName string) error {
	if err := p.ensureTarget(ctx); err != nil {
		return err
	}
	if !p.targetOK {
		log.Debug().
			Str("category_id", p.categoryID).
			Msg("Status target unusable, skipping rename")
		return nil
	}

	if err := p.chat.RenameChannel(ctx, p.categoryID, newName); err != nil {
		return fmt.Errorf("failed to rename status category: %w", err)
	}

	p.store.SetLastDisplayName(newName)

	log.Info().
		Str("name", newName).
		Msg("Updated server status display")

	return nil
}

// ensureTarget verifies once per process that the configured target exists
// and is a renamable kind (category or text channel). A missing or
// wrong-kind target turns every subsequent tick into a logged no-op rather
// than a fatal error.
func (p *StatusPoller) ensureTarget(ctx context.Context) error {
	if p.targetChecked {
		return nil
	}

	channel, err := p.chat.GetChannel(ctx, p.categoryID)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			log.Warn().
				Str("category_id", p.categoryID).
				Msg("Status category not found, status updates disabled")
			p.targetChecked = true
			p.targetOK = false
			return nil
		}
		return fmt.Errorf("failed to fetch status category: %w", err)
	}

	p.targetChecked = true
	p.targetOK = channel.Type == app.ChannelTypeGuildCategory || channel.Type == app.ChannelTypeGuildText
	if !p.targetOK {
		log.Warn().
			Str("category_id", p.categoryID).
			Int("channel_type", channel.Type).
			Msg("Status target is not a category or text channel, status updates disabled")
	}

	return nil
}
