package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"napominator/dates"
	"napominator/dialog"
	"napominator/store"
)

func newKeeper() (*Keeper, *store.Memory) {
	mem := store.NewMemory()
	return NewKeeper(mem, zap.NewNop().Sugar()), mem
}

// futureDraft builds a draft two days out, so it never trips the
// past-due roll regardless of when the test runs.
func futureDraft(text string) dialog.Draft {
	at := dates.Now().Add(48 * time.Hour)
	return dialog.Draft{
		Text: text,
		Date: at.Format(dates.DateLayout),
		Time: at.Format(dates.TimeLayout),
	}
}

func TestCreateStoresRow(t *testing.T) {
	k, _ := newKeeper()
	d := futureDraft("Совещание")

	pos, err := k.Create(context.Background(), d, dialog.RepeatWeekly, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	rows, err := k.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, d.Text, r.Text)
	assert.Equal(t, d.Date, r.Date)
	assert.Equal(t, d.Time, r.Time)
	assert.Equal(t, dialog.RepeatWeekly.Label(), r.Repeat)
	assert.Equal(t, "alice", r.Author)
	assert.Equal(t, store.StatusNotSent.String(), r.Status)

	want, _, err := dates.DueAt(d.Date, d.Time, dates.Now())
	require.NoError(t, err)
	assert.Equal(t, want.Format(dates.StampLayout), r.Due)

	_, err = time.ParseInLocation(dates.StampLayout, r.Created, dates.Zone)
	assert.NoError(t, err)
}

func TestCreateAuthorFallback(t *testing.T) {
	k, _ := newKeeper()

	_, err := k.Create(context.Background(), futureDraft("x"), dialog.RepeatNone, "")
	require.NoError(t, err)

	rows, _ := k.List(context.Background())
	assert.Equal(t, AuthorUnknown, rows[0].Author)
}

func TestCreateUnparseableDateStoresLiteral(t *testing.T) {
	k, _ := newKeeper()
	d := dialog.Draft{Text: "x", Date: "99.99", Time: "14:30"}

	_, err := k.Create(context.Background(), d, dialog.RepeatNone, "bob")
	require.NoError(t, err)

	rows, _ := k.List(context.Background())
	assert.Equal(t, fmt.Sprintf("99.99.%d 14:30", dates.Now().Year()), rows[0].Due)
}

func TestQuickAndDialogProduceIdenticalRows(t *testing.T) {
	// The two intake paths hand the lifecycle the same draft, so the
	// stored rows must match except for the submission timestamp.
	k, _ := newKeeper()
	d := futureDraft("Совещание")

	_, err := k.Create(context.Background(), d, dialog.RepeatYearly, "alice")
	require.NoError(t, err)
	_, err = k.Create(context.Background(), d, dialog.RepeatYearly, "alice")
	require.NoError(t, err)

	rows, _ := k.List(context.Background())
	require.Len(t, rows, 2)
	a, b := rows[0], rows[1]
	a.Created, b.Created = "", ""
	assert.Equal(t, a, b)
}

func TestEveryRepeatOptionStoresItsLabel(t *testing.T) {
	k, _ := newKeeper()
	labels := dialog.RepeatLabels()

	for i := range labels {
		rep, ok := dialog.RepeatFromIndex(i)
		require.True(t, ok)
		_, err := k.Create(context.Background(), futureDraft("x"), rep, "alice")
		require.NoError(t, err)
	}

	rows, _ := k.List(context.Background())
	require.Len(t, rows, len(labels))
	for i, r := range rows {
		assert.Equal(t, labels[i], r.Repeat, "option %d", i)
	}
}

func TestListAfterClears(t *testing.T) {
	k, _ := newKeeper()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		_, err := k.Create(ctx, futureDraft(fmt.Sprintf("дело %d", i)), dialog.RepeatNone, "alice")
		require.NoError(t, err)
	}

	require.NoError(t, k.Clear(ctx, 1))
	require.NoError(t, k.Clear(ctx, 3))

	rows, err := k.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.True(t, rows[0].Empty())
	assert.Equal(t, "дело 2", rows[1].Text)
	assert.True(t, rows[2].Empty())
	assert.Equal(t, "дело 4", rows[3].Text)

	assert.ErrorIs(t, k.Clear(ctx, 5), store.ErrOutOfRange)
}

func TestMarkSent(t *testing.T) {
	k, _ := newKeeper()
	ctx := context.Background()

	_, err := k.Create(ctx, futureDraft("x"), dialog.RepeatNone, "alice")
	require.NoError(t, err)

	require.NoError(t, k.MarkSent(ctx, 1))

	rows, _ := k.List(ctx)
	assert.Equal(t, store.StatusSent.String(), rows[0].Status)
}
