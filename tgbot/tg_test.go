package tgbot

import (
	"fmt"
	"strings"
	"testing"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"napominator/dialog"
	"napominator/reminder"
)

func TestRepeatKeyboard(t *testing.T) {
	kb := repeatKeyboard()
	labels := dialog.RepeatLabels()

	var buttons []tg.InlineKeyboardButton
	for _, row := range kb.InlineKeyboard {
		assert.LessOrEqual(t, len(row), 2)
		buttons = append(buttons, row...)
	}

	require.Len(t, buttons, len(labels))
	for i, btn := range buttons {
		assert.Equal(t, labels[i], btn.Text)
		require.NotNil(t, btn.CallbackData)
		assert.Equal(t, fmt.Sprintf("repeat_%d", i), *btn.CallbackData)
	}
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 4000))

	long := strings.Repeat("я", 4001)
	parts := splitMessage(long, 4000)
	require.Len(t, parts, 2)
	assert.Len(t, []rune(parts[0]), 4000)
	assert.Len(t, []rune(parts[1]), 1)
	assert.Equal(t, long, strings.Join(parts, ""))
}

func TestUserName(t *testing.T) {
	assert.Equal(t, "alice", userName(&tg.User{UserName: "alice", FirstName: "Alice"}))
	assert.Equal(t, "Alice", userName(&tg.User{FirstName: "Alice"}))
	assert.Equal(t, reminder.AuthorUnknown, userName(&tg.User{}))
	assert.Equal(t, reminder.AuthorUnknown, userName(nil))
}
