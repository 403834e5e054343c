package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

/**
DB table:
- reminders:
	- pos: int - 1-based record position, primary key, never renumbered
	- body: text - reminder text
	- due_date: text - ДД.ММ
	- due_time: text - ЧЧ:ММ
	- repeat_label: text - selected repeat option label
	- author: text - who added the reminder
	- created_at: text - ДД.ММ.ГГГГ ЧЧ:ММ of submission
	- due_at: text - ДД.ММ.ГГГГ ЧЧ:ММ the reminder is due
	- status: text - delivery status label

A cleared reminder keeps its row with every column blanked, so positions
of the remaining rows stay valid.
*/

// PgxIface is the slice of pgxpool.Pool the store uses; pgxmock implements
// it for the tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Pg stores reminders in a Postgres table with the same positional
// contract as the spreadsheet backend.
type Pg struct {
	pool PgxIface
}

func NewPg(ctx context.Context, connStr string) (*Pg, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed connecting to database")
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "failed pinging database")
	}
	return &Pg{pool: pool}, nil
}

// NewPgFromPool wraps an existing pool (or a mock of one).
func NewPgFromPool(pool PgxIface) *Pg {
	return &Pg{pool: pool}
}

func (p *Pg) Append(ctx context.Context, row Row) (int, error) {
	var pos int
	err := p.pool.QueryRow(ctx, `INSERT INTO reminders(pos, body, due_date, due_time, repeat_label, author, created_at, due_at, status)
SELECT COALESCE(MAX(pos), 0)+1, $1, $2, $3, $4, $5, $6, $7, $8 FROM reminders
RETURNING pos`,
		row.Text, row.Date, row.Time, row.Repeat, row.Author, row.Created, row.Due, row.Status).Scan(&pos)
	if err != nil {
		return 0, errors.Wrap(err, "failed appending row")
	}
	return pos, nil
}

func (p *Pg) ReadAll(ctx context.Context) ([]Row, error) {
	rows, err := p.pool.Query(ctx, `SELECT body, due_date, due_time, repeat_label, author, created_at, due_at, status
FROM reminders ORDER BY pos`)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading rows")
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Text, &r.Date, &r.Time, &r.Repeat, &r.Author, &r.Created, &r.Due, &r.Status); err != nil {
			return nil, errors.Wrap(err, "failed scanning row")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "failed reading rows")
}

func (p *Pg) Clear(ctx context.Context, pos int) error {
	tag, err := p.pool.Exec(ctx, `UPDATE reminders
SET body='', due_date='', due_time='', repeat_label='', author='', created_at='', due_at='', status=''
WHERE pos=$1`, pos)
	if err != nil {
		return errors.Wrap(err, "failed clearing row")
	}
	if tag.RowsAffected() == 0 {
		return ErrOutOfRange
	}
	return nil
}

func (p *Pg) SetStatus(ctx context.Context, pos int, status Status) error {
	tag, err := p.pool.Exec(ctx, `UPDATE reminders SET status=$2 WHERE pos=$1`, pos, status.String())
	if err != nil {
		return errors.Wrap(err, "failed updating status")
	}
	if tag.RowsAffected() == 0 {
		return ErrOutOfRange
	}
	return nil
}

// Close releases the underlying pool.
func (p *Pg) Close() {
	p.pool.Close()
}
