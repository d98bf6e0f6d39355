package processing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bm_discord_relay/internal/app"

	"github.com/rs/zerolog/log"
)

// banTimeLayout is the timestamp format used in ban thread bodies
const banTimeLayout = "2006-01-02 15:04:05"

// BanPoller posts each new ban from the metrics service as one forum thread.
// Bans are marked seen only after a successful post, so a failed post is
// retried on the next tick for as long as the ban stays within the fetched
// page. A ban that falls off the page before a successful post is lost;
// that trade is deliberate.
type BanPoller struct {
	metrics   MetricsClient
	chat      ChatClient
	store     *DedupStore
	tags      TagSet
	channelID string
	pageSize  int
	archive   BanArchive

	forumChecked bool
	forumOK      bool
}

// NewBanPoller creates a BanPoller. archive may be nil.
func NewBanPoller(metrics MetricsClient, chat ChatClient, store *DedupStore, tags TagSet, channelID string, pageSize int, archive BanArchive) *BanPoller {
	return &BanPoller{
		metrics:   metrics,
		chat:      chat,
		store:     store,
		tags:      tags,
		channelID: channelID,
		pageSize:  pageSize,
		archive:   archive,
	}
}

// Tick runs one ban poll: fetch the most recent page, walk it oldest-first
// so multiple new bans land in chronological order, and post each unseen one.
// One failing record does not abort the batch.
func (p *BanPoller) Tick(ctx context.Context) error {
	if err := p.ensureForum(ctx); err != nil {
		return err
	}
	if !p.forumOK {
		log.Debug().
			Str("channel_id", p.channelID).
			Msg("Ban log target unusable, skipping tick")
		return nil
	}

	bans, err := p.metrics.ListRecentBans(ctx, p.pageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch recent bans: %w", err)
	}

	var posted, skipped, failed int

	// The API returns newest-first; walk backwards for oldest-first posting
	for i := len(bans) - 1; i >= 0; i-- {
		ban := bans[i]

		if p.store.HasSeenBan(ban.ID) {
			skipped++
			continue
		}

		labels := ResolveLabels(ban.Reason)

		if err := p.postBan(ctx, ban, labels); err != nil {
			failed++
			log.Error().
				Err(err).
				Str("ban_id", ban.ID).
				Str("player", ban.PlayerName).
				Msg("Failed to post ban, will retry next tick")
			continue
		}

		p.store.MarkBanSeen(ban.ID)
		posted++

		if p.archive != nil {
			if err := p.archiveBan(ctx, ban, labels); err != nil {
				log.Warn().
					Err(err).
					Str("ban_id", ban.ID).
					Msg("Failed to archive ban")
			}
		}
	}

	log.Info().
		Int("fetched", len(bans)).
		Int("posted", posted).
		Int("already_seen", skipped).
		Int("failed", failed).
		Int("total_seen", p.store.SeenBanCount()).
		Msg("Completed ban poll")

	return nil
}

func (p *BanPoller) postBan(ctx context.Context, ban app.BanRecord, labels []Label) error {
	title := "Ban | " + ban.PlayerName
	content := FormatBanContent(ban)

	return p.chat.CreateForumThread(ctx, p.channelID, title, content, p.tags.IDs(labels))
}

func (p *BanPoller) archiveBan(ctx context.Context, ban app.BanRecord, labels []Label) error {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, string(label))
	}
	return p.archive.AppendBan(ctx, ban, names)
}

// FormatBanContent renders the starter message for a ban thread
func FormatBanContent(ban app.BanRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "time and date : %s\n", ban.CreatedAt.UTC().Format(banTimeLayout))
	fmt.Fprintf(&b, "players name : %s\n", ban.PlayerName)
	fmt.Fprintf(&b, "players id  : %s\n", playerIDOrUnknown(ban.PlayerID))
	fmt.Fprintf(&b, "reason : %s\n", ban.Reason)
	if ban.AdminName != "" {
		fmt.Fprintf(&b, "admin : %s\n", ban.AdminName)
	}
	b.WriteString("ticket link :\n")
	fmt.Fprintf(&b, "result      : %s", ban.Result())

	return b.String()
}

func playerIDOrUnknown(id string) string {
	if id == "" {
		return "Unknown"
	}
	return id
}

// ensureForum verifies once per process that the configured ban log channel
// exists and is a forum. A missing or wrong-kind channel turns every
// subsequent tick into a logged no-op.
func (p *BanPoller) ensureForum(ctx context.Context) error {
	if p.forumChecked {
		return nil
	}

	channel, err := p.chat.GetChannel(ctx, p.channelID)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			log.Warn().
				Str("channel_id", p.channelID).
				Msg("Ban log channel not found, ban posts disabled")
			p.forumChecked = true
			p.forumOK = false
			return nil
		}
		return fmt.Errorf("failed to fetch ban log channel: %w", err)
	}

	p.forumChecked = true
	p.forumOK = channel.Type == app.ChannelTypeGuildForum
	if !p.forumOK {
		log.Warn().
			Str("channel_id", p.channelID).
			Int("channel_type", channel.Type).
			Msg("Ban log channel is not a forum, ban posts disabled")
	}

	return nil
}
