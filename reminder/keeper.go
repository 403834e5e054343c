// Package reminder owns the lifecycle of a reminder record: a completed
// intake becomes a stored row, addressable by its position for listing
// and clearing. Delivery of due reminders is out of scope.
package reminder

import (
	"context"

	"go.uber.org/zap"

	"napominator/dates"
	"napominator/dialog"
	"napominator/store"
)

// AuthorUnknown is stored when the submitter has neither a username nor
// a first name.
const AuthorUnknown = "Неизвестно"

type Keeper struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewKeeper(s store.Store, l *zap.SugaredLogger) *Keeper {
	return &Keeper{store: s, logger: l}
}

// Create persists a completed intake and returns the 1-based position of
// the new record. The due instant is derived with the same roll-forward
// rule the dialog validated with; when derivation fails the literal
// "DD.MM.YYYY HH:MM" text is stored instead and the record has no
// absolute due time.
func (k *Keeper) Create(ctx context.Context, d dialog.Draft, rep dialog.Repeat, author string) (int, error) {
	if author == "" {
		author = AuthorUnknown
	}

	now := dates.Now()

	due := dates.Literal(d.Date, d.Time, now.Year())
	if at, _, err := dates.DueAt(d.Date, d.Time, now); err == nil {
		due = at.Format(dates.StampLayout)
	} else {
		k.logger.Warnw("storing reminder without an absolute due time", "date", d.Date, "time", d.Time, "err", err)
	}

	pos, err := k.store.Append(ctx, store.Row{
		Text:    d.Text,
		Date:    d.Date,
		Time:    d.Time,
		Repeat:  rep.Label(),
		Author:  author,
		Created: now.Format(dates.StampLayout),
		Due:     due,
		Status:  store.StatusNotSent.String(),
	})
	if err != nil {
		return 0, err
	}

	k.logger.Infow("reminder saved", "pos", pos, "author", author)
	return pos, nil
}

// List returns every stored record in creation order. Cleared records
// come back as blank placeholders so positions keep lining up with what
// Clear expects.
func (k *Keeper) List(ctx context.Context) ([]store.Row, error) {
	return k.store.ReadAll(ctx)
}

// Clear blanks the record at pos. store.ErrOutOfRange means there is no
// such record.
func (k *Keeper) Clear(ctx context.Context, pos int) error {
	return k.store.Clear(ctx, pos)
}

// MarkSent flips the record's delivery status. Nothing in the intake path
// calls it; it exists for whatever delivers reminders one day.
func (k *Keeper) MarkSent(ctx context.Context, pos int) error {
	return k.store.SetStatus(ctx, pos, store.StatusSent)
}
