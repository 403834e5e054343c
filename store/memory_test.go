package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(i int) Row {
	return Row{
		Text:    fmt.Sprintf("напоминание %d", i),
		Date:    "25.12",
		Time:    "14:30",
		Repeat:  "❌ Не повторять",
		Author:  "tester",
		Created: "15.06.2026 12:00",
		Due:     "25.12.2026 14:30",
		Status:  StatusNotSent.String(),
	}
}

func TestMemoryAppendPositions(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for i := 1; i <= 3; i++ {
		pos, err := m.Append(ctx, testRow(i))
		require.NoError(t, err)
		assert.Equal(t, i, pos)
	}
}

func TestMemoryClearKeepsOtherPositions(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for i := 1; i <= 4; i++ {
		m.Append(ctx, testRow(i))
	}

	require.NoError(t, m.Clear(ctx, 2))

	rows, err := m.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, testRow(1), rows[0])
	assert.True(t, rows[1].Empty())
	assert.Equal(t, testRow(3), rows[2])
	assert.Equal(t, testRow(4), rows[3])

	// Clearing the same position again changes nothing.
	require.NoError(t, m.Clear(ctx, 2))
	rows, _ = m.ReadAll(ctx)
	assert.True(t, rows[1].Empty())
	assert.Equal(t, testRow(3), rows[2])

	// New appends still land after the blank.
	pos, err := m.Append(ctx, testRow(5))
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
}

func TestMemoryClearOutOfRange(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Append(ctx, testRow(1))

	assert.ErrorIs(t, m.Clear(ctx, 0), ErrOutOfRange)
	assert.ErrorIs(t, m.Clear(ctx, 2), ErrOutOfRange)
	assert.ErrorIs(t, m.SetStatus(ctx, 5, StatusSent), ErrOutOfRange)
}

func TestMemorySetStatus(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Append(ctx, testRow(1))

	require.NoError(t, m.SetStatus(ctx, 1, StatusSent))

	rows, err := m.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusSent.String(), rows[0].Status)
	assert.Equal(t, testRow(1).Text, rows[0].Text)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "❌ Не отправлено", StatusNotSent.String())
	assert.Equal(t, "✅ Отправлено", StatusSent.String())
}
