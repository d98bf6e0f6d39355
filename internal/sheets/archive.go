package sheets

import (
	"context"
	"fmt"
	"strings"

	"bm_discord_relay/internal/app"

	"github.com/rs/zerolog/log"
)

const (
	banLogSheetName = "Ban Log"
	banLogRange     = banLogSheetName + "!A:H"
	banTimeLayout   = "2006-01-02 15:04:05"
)

var banLogHeader = []interface{}{
	"Time (UTC)", "Ban ID", "Player", "Player ID", "Reason", "Admin", "Result", "Labels",
}

// BanArchive appends one spreadsheet row per successfully posted ban. The
// Discord post is the system of record; the archive is best-effort.
type BanArchive struct {
	client        SheetsAPI
	spreadsheetID string
	ensured       bool
}

// NewBanArchive creates a BanArchive writing to the given spreadsheet
func NewBanArchive(client SheetsAPI, spreadsheetID string) *BanArchive {
	return &BanArchive{
		client:        client,
		spreadsheetID: spreadsheetID,
	}
}

// AppendBan writes one archive row for a posted ban
func (a *BanArchive) AppendBan(ctx context.Context, ban app.BanRecord, labels []string) error {
	if err := a.ensureSheet(ctx); err != nil {
		return err
	}

	row := []interface{}{
		ban.CreatedAt.UTC().Format(banTimeLayout),
		ban.ID,
		ban.PlayerName,
		ban.PlayerID,
		ban.Reason,
		ban.AdminName,
		ban.Result(),
		strings.Join(labels, ", "),
	}

	if err := a.client.AppendRows(ctx, a.spreadsheetID, banLogRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("failed to append ban row: %w", err)
	}

	log.Debug().
		Str("ban_id", ban.ID).
		Str("player", ban.PlayerName).
		Msg("Archived ban to spreadsheet")

	return nil
}

// ensureSheet creates the archive tab with its header row on first use
func (a *BanArchive) ensureSheet(ctx context.Context) error {
	if a.ensured {
		return nil
	}

	exists, err := a.client.SheetExists(ctx, a.spreadsheetID, banLogSheetName)
	if err != nil {
		return fmt.Errorf("failed to check archive sheet: %w", err)
	}

	if !exists {
		if err := a.client.CreateSheet(ctx, a.spreadsheetID, banLogSheetName); err != nil {
			return fmt.Errorf("failed to create archive sheet: %w", err)
		}
		if err := a.client.AppendRows(ctx, a.spreadsheetID, banLogRange, [][]interface{}{banLogHeader}); err != nil {
			return fmt.Errorf("failed to write archive header: %w", err)
		}

		log.Info().
			Str("sheet", banLogSheetName).
			Msg("Created ban archive sheet")
	}

	a.ensured = true
	return nil
}
