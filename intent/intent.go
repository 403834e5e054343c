// Package intent classifies free-form group messages addressed to the bot.
//
// Classification is pure: handlers decide what to do with the result.
package intent

import (
	"strings"
	"unicode"
)

// mention is the leading token that addresses the bot in the group.
const mention = "бот"

const keywordReminder = "напоминание"

type Kind int

const (
	// KindNone means the message wasn't addressed to the bot and must be
	// ignored silently.
	KindNone Kind = iota
	KindHelp
	KindList
	// KindAddPrompt asks for the quick-add usage hint.
	KindAddPrompt
	// KindQuickAdd carries an inline text/date/time triple.
	KindQuickAdd
	// KindQuickAddMalformed is a quick-add with fewer than three fields.
	KindQuickAddMalformed
	// KindUnknown is an addressed message that matched no known command.
	KindUnknown
)

type Intent struct {
	Kind Kind

	// Command is the normalized remainder after the mention token, used in
	// "didn't understand" replies.
	Command string

	// Quick-add fields, taken verbatim from the message. Only the first
	// whitespace-delimited token becomes the text: multi-word reminder
	// text is not supported on this surface.
	Text string
	Date string
	Time string
}

// ParseMention classifies a group message. Matching is done on lower-cased,
// punctuation-stripped tokens, so "Бот, список!" and "бот список" are the
// same command, while quick-add fields keep their original spelling. The
// first matching pattern wins; a message without the leading mention token
// never matches.
func ParseMention(text string) Intent {
	raw := strings.Fields(text)

	// Normalize per token; tokens that were pure punctuation vanish.
	var norm, orig []string
	for _, tok := range raw {
		n := stripPunctuation(strings.ToLower(tok))
		if n == "" {
			continue
		}
		norm = append(norm, n)
		orig = append(orig, tok)
	}

	if len(norm) < 2 || norm[0] != mention {
		return Intent{Kind: KindNone}
	}
	command := strings.Join(norm[1:], " ")

	switch command {
	case "помощь", "help":
		return Intent{Kind: KindHelp, Command: command}
	case "список", "list":
		return Intent{Kind: KindList, Command: command}
	case keywordReminder, "добавить", "add":
		return Intent{Kind: KindAddPrompt, Command: command}
	}

	if strings.Contains(command, keywordReminder) {
		return parseQuickAdd(command, norm[1:], orig[1:])
	}

	return Intent{Kind: KindUnknown, Command: command}
}

// ParseQuickArgs interprets the inline arguments of the /add command:
// text, date and time, whitespace-delimited.
func ParseQuickArgs(args []string) (Intent, bool) {
	if len(args) < 3 {
		return Intent{}, false
	}
	return Intent{Kind: KindQuickAdd, Text: args[0], Date: args[1], Time: args[2]}, true
}

// parseQuickAdd splits "напоминание <text> <date> <time>" positionally. The
// keyword itself may sit anywhere among the tokens; everything else is
// taken in order from the original spelling.
func parseQuickAdd(command string, norm, orig []string) Intent {
	var parts []string
	for i, n := range norm {
		if strings.Contains(n, keywordReminder) {
			continue
		}
		parts = append(parts, orig[i])
	}

	if len(parts) < 3 {
		return Intent{Kind: KindQuickAddMalformed, Command: command}
	}
	return Intent{
		Kind:    KindQuickAdd,
		Command: command,
		Text:    parts[0],
		Date:    parts[1],
		Time:    parts[2],
	}
}

// stripPunctuation drops everything except letters, digits and underscore.
func stripPunctuation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
