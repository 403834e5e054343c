// Package store persists reminders as rows of an 8-column table.
//
// Rows are addressed by a 1-based position among all records (the header,
// where the backend has one, is excluded). Clearing blanks a row in place
// rather than removing it, so positions of later rows never shift.
package store

import (
	"context"

	"github.com/pkg/errors"
)

// ErrOutOfRange reports a position below 1 or beyond the stored row count.
var ErrOutOfRange = errors.New("row position is out of range")

// Status is the delivery state of a reminder.
type Status int

const (
	StatusNotSent Status = iota
	StatusSent
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "✅ Отправлено"
	default:
		return "❌ Не отправлено"
	}
}

// Row is one reminder record. Column order is fixed across all backends.
type Row struct {
	Text    string // A: reminder text
	Date    string // B: DD.MM
	Time    string // C: HH:MM
	Repeat  string // D: repeat option label
	Author  string // E: who added it
	Created string // F: DD.MM.YYYY HH:MM of submission
	Due     string // G: DD.MM.YYYY HH:MM the reminder is due
	Status  string // H: delivery status
}

// Empty reports whether the row has been blanked by a clear.
func (r Row) Empty() bool {
	return r == Row{}
}

func (r Row) cells() []string {
	return []string{r.Text, r.Date, r.Time, r.Repeat, r.Author, r.Created, r.Due, r.Status}
}

func rowFromCells(cells []string) Row {
	var padded [8]string
	copy(padded[:], cells)
	return Row{
		Text:    padded[0],
		Date:    padded[1],
		Time:    padded[2],
		Repeat:  padded[3],
		Author:  padded[4],
		Created: padded[5],
		Due:     padded[6],
		Status:  padded[7],
	}
}

// Store is the record store contract. Any call may block on network I/O
// and fail; callers must treat failures as user-visible, not fatal.
type Store interface {
	// Append adds a row and returns its 1-based position.
	Append(ctx context.Context, row Row) (int, error)
	// ReadAll returns every stored row in order, blanked ones included.
	ReadAll(ctx context.Context) ([]Row, error)
	// Clear blanks the row at pos in place. Clearing an already blank
	// row is a no-op; an out-of-range pos is ErrOutOfRange.
	Clear(ctx context.Context, pos int) error
	// SetStatus updates the delivery status of the row at pos.
	SetStatus(ctx context.Context, pos int, status Status) error
}
