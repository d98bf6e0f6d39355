package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"bm_discord_relay/internal/app"
)

// fakeSheetsClient is a test double for the Google Sheets client
type fakeSheetsClient struct {
	existing      map[string]bool
	existsError   error
	createError   error
	appendError   error
	createdSheets []string
	appendedRows  [][]interface{}
}

func newFakeSheetsClient() *fakeSheetsClient {
	return &fakeSheetsClient{existing: make(map[string]bool)}
}

func (f *fakeSheetsClient) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	return f.existing[sheetName], f.existsError
}

func (f *fakeSheetsClient) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	if f.createError != nil {
		return f.createError
	}
	f.existing[sheetName] = true
	f.createdSheets = append(f.createdSheets, sheetName)
	return nil
}

func (f *fakeSheetsClient) AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) error {
	if f.appendError != nil {
		return f.appendError
	}
	f.appendedRows = append(f.appendedRows, rows...)
	return nil
}

func testBan() app.BanRecord {
	return app.BanRecord{
		ID:         "b1",
		PlayerName: "Griefer99",
		PlayerID:   "p-42",
		Reason:     "cheating",
		CreatedAt:  time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC),
		Permanent:  true,
		AdminName:  "ModAlice",
	}
}

func TestBanArchiveCreatesSheetOnFirstAppend(t *testing.T) {
	client := newFakeSheetsClient()
	archive := NewBanArchive(client, "sheet-1")

	if err := archive.AppendBan(context.Background(), testBan(), []string{"CHEATING"}); err != nil {
		t.Fatalf("AppendBan failed: %v", err)
	}

	if len(client.createdSheets) != 1 || client.createdSheets[0] != banLogSheetName {
		t.Errorf("Expected %q to be created, got %v", banLogSheetName, client.createdSheets)
	}

	// Header row plus one ban row
	if len(client.appendedRows) != 2 {
		t.Fatalf("Expected header + ban row, got %d rows", len(client.appendedRows))
	}

	banRow := client.appendedRows[1]
	if banRow[0] != "2026-08-28 12:30:00" {
		t.Errorf("Expected formatted time, got %v", banRow[0])
	}
	if banRow[1] != "b1" || banRow[2] != "Griefer99" || banRow[3] != "p-42" {
		t.Errorf("Unexpected identity columns: %v", banRow)
	}
	if banRow[6] != "Permanently banned" {
		t.Errorf("Expected result column 'Permanently banned', got %v", banRow[6])
	}
	if banRow[7] != "CHEATING" {
		t.Errorf("Expected labels column 'CHEATING', got %v", banRow[7])
	}
}

func TestBanArchiveSkipsCreationWhenSheetExists(t *testing.T) {
	client := newFakeSheetsClient()
	client.existing[banLogSheetName] = true
	archive := NewBanArchive(client, "sheet-1")

	if err := archive.AppendBan(context.Background(), testBan(), nil); err != nil {
		t.Fatalf("AppendBan failed: %v", err)
	}

	if len(client.createdSheets) != 0 {
		t.Errorf("Expected no sheet creation, got %v", client.createdSheets)
	}
	if len(client.appendedRows) != 1 {
		t.Errorf("Expected only the ban row, got %d rows", len(client.appendedRows))
	}
}

func TestBanArchiveEnsuresOnlyOnce(t *testing.T) {
	client := newFakeSheetsClient()
	archive := NewBanArchive(client, "sheet-1")

	for i := 0; i < 3; i++ {
		if err := archive.AppendBan(context.Background(), testBan(), nil); err != nil {
			t.Fatalf("AppendBan %d failed: %v", i, err)
		}
	}

	if len(client.createdSheets) != 1 {
		t.Errorf("Expected one sheet creation across appends, got %d", len(client.createdSheets))
	}
}

func TestBanArchiveAppendError(t *testing.T) {
	client := newFakeSheetsClient()
	client.existing[banLogSheetName] = true
	client.appendError = errors.New("quota exceeded")
	archive := NewBanArchive(client, "sheet-1")

	if err := archive.AppendBan(context.Background(), testBan(), nil); err == nil {
		t.Fatal("Expected append error to surface")
	}
}
