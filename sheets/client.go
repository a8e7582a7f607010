package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrNotFound reports that no row matched the lookup.
var ErrNotFound = errors.New("sheets: record not found")

const maxAttempts = 3

// Client wraps the Sheets API for a single spreadsheet. Worksheets are
// addressed by title; title to sheet-ID resolution is cached.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// NewClient authenticates with a service-account credentials file and
// binds to the given spreadsheet.
func NewClient(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	authJSON, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(authJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// isRetryable classifies an API error: rate limits and server errors are
// retried, everything else is permanent.
func isRetryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == 429 || gerr.Code >= 500
	}
	return false
}

// withRetry runs op up to maxAttempts times with exponential backoff,
// retrying only rate-limit and server errors.
func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1), ctx)
	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isRetryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// sheetID resolves a worksheet title to its numeric sheet ID.
func (c *Client) sheetID(ctx context.Context, title string) (int64, error) {
	c.mu.Lock()
	if id, ok := c.sheetIDs[title]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	var spreadsheet *sheets.Spreadsheet
	err := withRetry(ctx, func() error {
		var err error
		spreadsheet, err = c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch spreadsheet metadata: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			c.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}
	id, ok := c.sheetIDs[title]
	if !ok {
		return 0, fmt.Errorf("worksheet %q not found in spreadsheet", title)
	}
	return id, nil
}

func quoteTitle(title string) string {
	return "'" + title + "'"
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// ReadRange fetches a range of cells as strings.
func (c *Client) ReadRange(ctx context.Context, title, cellRange string) ([][]string, error) {
	var resp *sheets.ValueRange
	err := withRetry(ctx, func() error {
		var err error
		resp, err = c.svc.Spreadsheets.Values.
			Get(c.spreadsheetID, quoteTitle(title)+"!"+cellRange).
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s!%s: %w", title, cellRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadColumn fetches a whole column as strings, one entry per row.
func (c *Client) ReadColumn(ctx context.Context, title, column string) ([]string, error) {
	rows, err := c.ReadRange(ctx, title, column+":"+column)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			values[i] = row[0]
		}
	}
	return values, nil
}

// ReadRow fetches a single row (1-based) as strings.
func (c *Client) ReadRow(ctx context.Context, title string, row int64) ([]string, error) {
	rows, err := c.ReadRange(ctx, title, fmt.Sprintf("%d:%d", row, row))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// InsertRow inserts values as a new row at the given 1-based index,
// shifting existing rows down. Audit-style sheets insert at row 2 so the
// newest record sits right below the header.
func (c *Client) InsertRow(ctx context.Context, title string, row int64, values []string) error {
	id, err := c.sheetID(ctx, title)
	if err != nil {
		return err
	}

	insert := &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    id,
				Dimension:  "ROWS",
				StartIndex: row - 1,
				EndIndex:   row,
			},
			InheritFromBefore: false,
		},
	}
	err = withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{insert},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert row %d in %s: %w", row, title, err)
	}

	return c.writeRow(ctx, title, row, values)
}

func (c *Client) writeRow(ctx context.Context, title string, row int64, values []string) error {
	raw := make([]interface{}, len(values))
	for i, v := range values {
		raw[i] = v
	}
	err := withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.Values.
			Update(c.spreadsheetID, fmt.Sprintf("%s!A%d", quoteTitle(title), row), &sheets.ValueRange{
				Values: [][]interface{}{raw},
			}).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write row %d in %s: %w", row, title, err)
	}
	return nil
}

// DeleteRow removes the given 1-based row.
func (c *Client) DeleteRow(ctx context.Context, title string, row int64) error {
	id, err := c.sheetID(ctx, title)
	if err != nil {
		return err
	}

	err = withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    id,
						Dimension:  "ROWS",
						StartIndex: row - 1,
						EndIndex:   row,
					},
				},
			}},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete row %d in %s: %w", row, title, err)
	}
	return nil
}

