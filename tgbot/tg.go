// Package tgbot wires the reminder intake to Telegram: commands and plain
// messages drive the dialog, the designated group gets mention parsing,
// and repeat choices arrive as callback queries.
package tgbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"napominator/dates"
	"napominator/dialog"
	"napominator/intent"
	"napominator/reminder"
	"napominator/store"
)

const (
	cmdStart  = "start"
	cmdHelp   = "help"
	cmdAdd    = "add"
	cmdList   = "list"
	cmdDel    = "del"
	cmdTest   = "test"
	cmdCancel = "cancel"
)

// cbqRepeatPrefix prefixes the option index in repeat keyboard callbacks.
const cbqRepeatPrefix = "repeat_"

// maxMessageLen is where long list replies get split.
const maxMessageLen = 4000

type TBot struct {
	Bot            *tg.BotAPI
	Keeper         *reminder.Keeper
	Dialogs        *dialog.Manager
	Logger         *zap.SugaredLogger
	GroupChatID    int64
	SpreadsheetURL string
	RetryDelay     time.Duration
	RetryAttempts  int
}

func NewTBot(token string, k *reminder.Keeper, d *dialog.Manager, groupID int64, sheetURL string, l *zap.SugaredLogger) (*TBot, error) {
	b, err := tg.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Telegram Bot")
	}

	b.Debug = false

	l.Infof("authorized on account %q (%q, %d)", b.Self.FirstName, b.Self.UserName, b.Self.ID)

	return &TBot{
		Bot:            b,
		Keeper:         k,
		Dialogs:        d,
		Logger:         l,
		GroupChatID:    groupID,
		SpreadsheetURL: sheetURL,
		RetryAttempts:  3,
		RetryDelay:     1 * time.Second,
	}, nil
}

// Run handles updates one at a time until the channel closes.
func (b *TBot) Run() {
	u := tg.NewUpdate(0)
	u.Timeout = 60

	for upd := range b.Bot.GetUpdatesChan(u) {
		b.handleUpdate(upd)
	}
}

// handleUpdate contains any per-interaction fault: whatever goes wrong,
// the process keeps serving the next update.
func (b *TBot) handleUpdate(upd tg.Update) {
	var chat int64
	if upd.Message != nil {
		chat = upd.Message.Chat.ID
	} else if upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil {
		chat = upd.CallbackQuery.Message.Chat.ID
	}

	defer func() {
		if r := recover(); r != nil {
			b.Logger.Errorw("recovered from panic while handling update", "panic", r)
			if chat != 0 {
				b.SendMessage(chat, txtInternalError, -1, nil)
			}
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.HandleCallback(upd.CallbackQuery)
	case upd.Message != nil && upd.Message.IsCommand():
		b.HandleCommand(upd.Message)
	case upd.Message != nil && upd.Message.Text != "":
		b.HandleMessage(upd.Message)
	}
}

func (b *TBot) HandleCommand(msg *tg.Message) {
	key := dialog.Key{Chat: msg.Chat.ID, User: msg.From.ID}
	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case cmdStart:
		b.SendMessage(msg.Chat.ID, fmt.Sprintf(fmtWelcome, b.SpreadsheetURL, b.GroupChatID), -1, nil)
		if err := b.SendMessage(b.GroupChatID, txtGroupHello, -1, nil); err != nil {
			b.Logger.Errorw("failed greeting the group", "err", err)
		}

	case cmdHelp:
		b.SendMessage(msg.Chat.ID, txtHelpMessage, -1, nil)

	case cmdAdd:
		if in, ok := intent.ParseQuickArgs(args); ok {
			b.quickAdd(msg.Chat.ID, key, in, fmtQuickAddSummary)
			return
		}
		b.Dialogs.Begin(key)
		b.SendMessage(msg.Chat.ID, txtAskText, -1, nil)

	case cmdList:
		b.sendList(msg.Chat.ID)

	case cmdDel:
		b.clearReminder(msg.Chat.ID, msg.MessageID, args)

	case cmdTest:
		txt := fmt.Sprintf(fmtTestMessage, dates.Now().Format(dates.StampLayout), userName(msg.From))
		if err := b.SendMessage(b.GroupChatID, txt, -1, nil); err != nil {
			b.SendMessage(msg.Chat.ID, txtTestFailed, msg.MessageID, nil)
			return
		}
		b.SendMessage(msg.Chat.ID, txtTestSent, -1, nil)

	case cmdCancel:
		b.Dialogs.Cancel(key)
		b.SendMessage(msg.Chat.ID, txtCanceled, -1, nil)

	default:
		b.SendMessage(msg.Chat.ID, txtUnknownCommand, msg.MessageID, nil)
	}
}

// HandleMessage routes plain text: an active dialog consumes it wherever
// it happens; otherwise only the designated group is listened to, for
// messages addressed to the bot.
func (b *TBot) HandleMessage(msg *tg.Message) {
	key := dialog.Key{Chat: msg.Chat.ID, User: msg.From.ID}

	if b.Dialogs.Active(key) {
		b.advanceDialog(msg.Chat.ID, key, msg.Text)
		return
	}

	if msg.Chat.ID == b.GroupChatID {
		b.handleMention(msg, key)
	}
}

func (b *TBot) advanceDialog(chat int64, key dialog.Key, text string) {
	prompt, err := b.Dialogs.Input(key, text, dates.Now())
	if err != nil {
		switch {
		case errors.Is(err, dialog.ErrDateFormat):
			b.SendMessage(chat, txtBadDate, -1, nil)
		case errors.Is(err, dialog.ErrTimeFormat):
			b.SendMessage(chat, txtBadTime, -1, nil)
		case errors.Is(err, dialog.ErrPastDue):
			b.SendMessage(chat, txtPastDue, -1, nil)
		}
		return
	}

	switch prompt {
	case dialog.PromptDate:
		b.SendMessage(chat, txtAskDate, -1, nil)
	case dialog.PromptTime:
		b.SendMessage(chat, txtAskTime, -1, nil)
	case dialog.PromptRepeat:
		d, _ := b.Dialogs.Draft(key)
		txt := fmt.Sprintf(fmtDialogSummary, d.Text, d.Date, d.Time)
		b.SendMessage(chat, txt, -1, repeatKeyboard())
	}
}

func (b *TBot) handleMention(msg *tg.Message, key dialog.Key) {
	in := intent.ParseMention(msg.Text)

	switch in.Kind {
	case intent.KindNone:
		// Not addressed to the bot.

	case intent.KindHelp:
		b.SendMessage(msg.Chat.ID, txtHelpMessage, -1, nil)

	case intent.KindList:
		b.sendList(msg.Chat.ID)

	case intent.KindAddPrompt:
		b.SendMessage(msg.Chat.ID, txtQuickAddUsage, -1, nil)

	case intent.KindQuickAdd:
		b.quickAdd(msg.Chat.ID, key, in, fmtMentionSummary)

	case intent.KindQuickAddMalformed:
		b.SendMessage(msg.Chat.ID, txtQuickAddMalformed, -1, nil)

	case intent.KindUnknown:
		b.SendMessage(msg.Chat.ID, fmt.Sprintf(fmtUnknownMention, in.Command), -1, nil)
	}
}

// quickAdd validates an inline triple and, on success, shows the repeat
// keyboard with the session already waiting on the choice.
func (b *TBot) quickAdd(chat int64, key dialog.Key, in intent.Intent, summary string) {
	d := dialog.Draft{Text: in.Text, Date: in.Date, Time: in.Time}

	err := b.Dialogs.BeginQuick(key, d, dates.Now())
	switch {
	case errors.Is(err, dialog.ErrDateFormat):
		b.SendMessage(chat, txtBadDateQuick, -1, nil)
		return
	case errors.Is(err, dialog.ErrTimeFormat):
		b.SendMessage(chat, txtBadTimeQuick, -1, nil)
		return
	case errors.Is(err, dialog.ErrPastDue):
		b.SendMessage(chat, txtPastDue, -1, nil)
		return
	case err != nil:
		b.Logger.Errorw("failed starting quick add", "err", err)
		b.SendMessage(chat, txtInternalError, -1, nil)
		return
	}

	txt := fmt.Sprintf(summary, d.Text, d.Date, d.Time)
	b.SendMessage(chat, txt, -1, repeatKeyboard())
}

func (b *TBot) HandleCallback(cbq *tg.CallbackQuery) {
	// Telegram keeps showing a spinner until the query is answered.
	if _, err := b.Bot.Request(tg.NewCallback(cbq.ID, "")); err != nil {
		b.Logger.Errorw("failed answering callback query", "err", err)
	}

	if cbq.Message == nil || !strings.HasPrefix(cbq.Data, cbqRepeatPrefix) {
		return
	}

	idx, err := strconv.Atoi(strings.TrimPrefix(cbq.Data, cbqRepeatPrefix))
	if err != nil {
		b.Logger.Errorw("malformed repeat callback", "data", cbq.Data)
		return
	}

	key := dialog.Key{Chat: cbq.Message.Chat.ID, User: cbq.From.ID}
	d, rep, err := b.Dialogs.Choose(key, idx)
	if err != nil {
		// A stale keyboard from a canceled or finished session.
		b.Logger.Debugw("ignoring repeat choice without a session", "err", err)
		return
	}

	author := userName(cbq.From)
	pos, err := b.Keeper.Create(context.Background(), d, rep, author)
	if err != nil {
		b.Logger.Errorw("failed saving reminder", "err", err)
		b.ReplaceMessage(cbq.Message.Chat.ID, txtSaveFailed, cbq.Message.MessageID)
		return
	}

	txt := fmt.Sprintf(fmtSaved, d.Text, d.Date, d.Time, rep.Label(), author, pos)
	b.ReplaceMessage(cbq.Message.Chat.ID, txt, cbq.Message.MessageID)
}

func (b *TBot) sendList(chat int64) {
	rows, err := b.Keeper.List(context.Background())
	if err != nil {
		b.Logger.Errorw("failed listing reminders", "err", err)
		b.SendMessage(chat, txtStoreUnavailable, -1, nil)
		return
	}

	if len(rows) == 0 {
		b.SendMessage(chat, txtNoReminders, -1, nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(txtListHeader)
	for i, r := range rows {
		// Cleared rows are listed too, as empty placeholders, so the
		// numbering stays usable with /del.
		sb.WriteString(fmt.Sprintf(fmtListEntry, i+1, r.Text, r.Date, r.Time, r.Repeat, r.Author, r.Created))
	}

	for _, part := range splitMessage(sb.String(), maxMessageLen) {
		b.SendMessage(chat, part, -1, nil)
	}
}

func (b *TBot) clearReminder(chat int64, replyID int, args []string) {
	if len(args) == 0 {
		b.SendMessage(chat, txtDelUsage, replyID, nil)
		return
	}

	pos, err := strconv.Atoi(args[0])
	if err != nil {
		b.SendMessage(chat, txtDelBadNumber, replyID, nil)
		return
	}
	if pos < 1 {
		b.SendMessage(chat, txtDelNotPositive, replyID, nil)
		return
	}

	switch err := b.Keeper.Clear(context.Background(), pos); {
	case errors.Is(err, store.ErrOutOfRange):
		b.SendMessage(chat, fmt.Sprintf(fmtDelNotFound, pos), replyID, nil)
	case err != nil:
		b.Logger.Errorw("failed clearing reminder", "pos", pos, "err", err)
		b.SendMessage(chat, txtDelFailed, replyID, nil)
	default:
		b.SendMessage(chat, fmt.Sprintf(fmtDelDone, pos), -1, nil)
	}
}

func (b *TBot) SendMessage(chat int64, txt string, replyTo int, kbMarkup *tg.InlineKeyboardMarkup) error {
	m := tg.NewMessage(chat, txt)
	if replyTo >= 0 {
		m.ReplyToMessageID = replyTo
	}
	m.DisableWebPagePreview = true
	if kbMarkup != nil {
		m.BaseChat.ReplyMarkup = kbMarkup
	}

	var err error
	robustExecute(b.RetryAttempts, b.RetryDelay, func() bool {
		_, err = b.Bot.Request(m)
		return err == nil
	})
	if err != nil {
		b.Logger.Errorw("failed sending message", "err", err)
	}
	return err
}

func (b *TBot) ReplaceMessage(chat int64, txt string, msgID int) bool {
	upd := tg.EditMessageTextConfig{
		BaseEdit: tg.BaseEdit{
			ChatID:    chat,
			MessageID: msgID,
		},
		DisableWebPagePreview: true,
		Text:                  txt,
	}

	var err error
	ok := robustExecute(b.RetryAttempts, b.RetryDelay, func() bool {
		_, err = b.Bot.Request(upd)
		if err != nil && strings.HasPrefix(err.Error(), "Bad Request: message is not modified") {
			err = nil
		}
		return err == nil
	})
	if !ok {
		b.Logger.Errorw("failed updating message text", "err", err)
	}

	return ok
}

// repeatKeyboard lays the repeat options out two per row, in selection
// order; the callback data carries the option index.
func repeatKeyboard() *tg.InlineKeyboardMarkup {
	labels := dialog.RepeatLabels()

	var rows [][]tg.InlineKeyboardButton
	for i := 0; i < len(labels); i += 2 {
		row := []tg.InlineKeyboardButton{
			tg.NewInlineKeyboardButtonData(labels[i], fmt.Sprintf("%s%d", cbqRepeatPrefix, i)),
		}
		if i+1 < len(labels) {
			row = append(row, tg.NewInlineKeyboardButtonData(labels[i+1], fmt.Sprintf("%s%d", cbqRepeatPrefix, i+1)))
		}
		rows = append(rows, row)
	}

	kb := tg.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func splitMessage(s string, limit int) []string {
	runes := []rune(s)
	var parts []string
	for len(runes) > limit {
		parts = append(parts, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(parts, string(runes))
}

func userName(u *tg.User) string {
	if u == nil {
		return reminder.AuthorUnknown
	}
	if u.UserName != "" {
		return u.UserName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return reminder.AuthorUnknown
}

func robustExecute(n int, d time.Duration, f func() bool) bool {
	for i := 0; i < n; i++ {
		if f() {
			return true
		}
		time.Sleep(d)
	}
	return false
}
