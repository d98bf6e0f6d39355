package sheets

import "context"

// SheetsAPI defines the sheet operations the ban archive uses, so tests can
// substitute a double for the real Google Sheets client
type SheetsAPI interface {
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error
	AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) error
}
