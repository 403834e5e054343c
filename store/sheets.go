package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// recordRange covers the 8 columns of the reminder table.
const recordRange = "A:H"

var headerCells = []string{
	"Текст",             // A
	"Дата",              // B (ДД.ММ)
	"Время",             // C (ЧЧ:ММ)
	"Повторение",        // D
	"Кто добавил",       // E
	"Когда добавлено",   // F
	"Время напоминания", // G (ДД.ММ.ГГГГ ЧЧ:ММ)
	"Статус отправки",   // H
}

// Sheets stores reminders on the first sheet of a Google spreadsheet.
// Row 1 is the header; record position N lives in sheet row N+1.
type Sheets struct {
	svc *sheets.Service
	id  string
}

// NewSheets authorizes with the service-account credentials JSON and
// provisions the header row when it is absent or short.
func NewSheets(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Sheets, error) {
	creds, err := normalizeCredentials(credentialsJSON)
	if err != nil {
		return nil, errors.Wrap(err, "bad service account credentials")
	}

	cfg, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "bad service account credentials")
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "failed creating sheets client")
	}

	s := &Sheets{svc: svc, id: spreadsheetID}
	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sheets) Append(ctx context.Context, row Row) (int, error) {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(row.cells())}}
	_, err := s.svc.Spreadsheets.Values.Append(s.id, recordRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, errors.Wrap(err, "failed appending row")
	}

	n, err := s.recordCount(ctx)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Sheets) ReadAll(ctx context.Context) ([]Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.id, recordRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed reading rows")
	}

	if len(resp.Values) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		rows = append(rows, rowFromCells(toStrings(cells)))
	}
	return rows, nil
}

func (s *Sheets) Clear(ctx context.Context, pos int) error {
	if err := s.checkRange(ctx, pos); err != nil {
		return err
	}

	r := pos + 1
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(Row{}.cells())}}
	_, err := s.svc.Spreadsheets.Values.Update(s.id, fmt.Sprintf("A%d:H%d", r, r), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return errors.Wrap(err, "failed clearing row")
}

func (s *Sheets) SetStatus(ctx context.Context, pos int, status Status) error {
	if err := s.checkRange(ctx, pos); err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{{status.String()}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.id, fmt.Sprintf("H%d", pos+1), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return errors.Wrap(err, "failed updating status")
}

func (s *Sheets) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.id, "A1:H1").Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "failed reading header")
	}

	if len(resp.Values) > 0 && len(resp.Values[0]) >= len(headerCells) {
		return nil
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(headerCells)}}
	_, err = s.svc.Spreadsheets.Values.Update(s.id, "A1:H1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return errors.Wrap(err, "failed writing header")
}

func (s *Sheets) recordCount(ctx context.Context) (int, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.id, recordRange).Context(ctx).Do()
	if err != nil {
		return 0, errors.Wrap(err, "failed counting rows")
	}
	if len(resp.Values) == 0 {
		return 0, nil
	}
	return len(resp.Values) - 1, nil
}

func (s *Sheets) checkRange(ctx context.Context, pos int) error {
	n, err := s.recordCount(ctx)
	if err != nil {
		return err
	}
	if pos < 1 || pos > n {
		return ErrOutOfRange
	}
	return nil
}

// normalizeCredentials undoes the escaping the private key tends to pick
// up when the JSON travels through an environment variable.
func normalizeCredentials(raw []byte) ([]byte, error) {
	var creds map[string]interface{}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, err
	}

	if pk, ok := creds["private_key"].(string); ok {
		creds["private_key"] = strings.ReplaceAll(pk, `\n`, "\n")
	}

	return json.Marshal(creds)
}

func toInterfaces(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func toStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c == nil {
			continue
		}
		out[i] = fmt.Sprint(c)
	}
	return out
}
