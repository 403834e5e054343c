// Package dialog drives the multi-turn reminder intake: text, then date,
// then time, then a repeat choice. A quick-add with all three values known
// up front enters directly at the repeat choice.
package dialog

import (
	"time"

	"github.com/pkg/errors"

	"napominator/dates"
)

// Validation failures. All of them are recoverable: the caller re-prompts
// and the session stays alive.
var (
	ErrDateFormat = errors.New("date must look like DD.MM")
	ErrTimeFormat = errors.New("time must look like HH:MM")
	ErrPastDue    = errors.New("that date and time have already passed")
	ErrNoSession  = errors.New("no active session")
	ErrBadChoice  = errors.New("unknown repeat option")
)

// Key identifies one session: dialogs are independent per chat and user.
type Key struct {
	Chat int64
	User int64
}

// Prompt tells the caller which question to ask next.
type Prompt int

const (
	// PromptNone means there is nothing to say (input was ignored).
	PromptNone Prompt = iota
	PromptText
	PromptDate
	PromptTime
	PromptRepeat
)

// Draft is a completed text/date/time triple awaiting a repeat choice.
type Draft struct {
	Text string
	Date string
	Time string
}

// Session states. Each state carries exactly the fields collected so far,
// so a not-yet-collected field cannot be read.
type state interface{ sessionState() }

type awaitingText struct{}
type awaitingDate struct{ text string }
type awaitingTime struct {
	text string
	date string
}
type awaitingRepeat struct{ draft Draft }

func (awaitingText) sessionState()   {}
func (awaitingDate) sessionState()   {}
func (awaitingTime) sessionState()   {}
func (awaitingRepeat) sessionState() {}

// Manager keeps the live sessions. The host delivers updates one at a
// time, so access is not synchronized.
type Manager struct {
	sessions map[Key]state
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[Key]state)}
}

// Begin opens a fresh step-by-step session, replacing any previous one.
func (m *Manager) Begin(k Key) Prompt {
	m.sessions[k] = awaitingText{}
	return PromptText
}

// BeginQuick validates an inline triple and, on success, opens a session
// already at the repeat choice. The date check mirrors Input: a lexical
// failure or a past-due instant rejects the triple and opens nothing.
// An unparseable-but-well-formed value (e.g. 99.99) is accepted; the
// lifecycle stores its literal form.
func (m *Manager) BeginQuick(k Key, d Draft, now time.Time) error {
	if !dates.ValidDate(d.Date) {
		return ErrDateFormat
	}
	if !dates.ValidTime(d.Time) {
		return ErrTimeFormat
	}
	if _, rolled, err := dates.DueAt(d.Date, d.Time, now); err == nil && rolled {
		return ErrPastDue
	}

	m.sessions[k] = awaitingRepeat{draft: d}
	return nil
}

// Active reports whether k has a session in flight.
func (m *Manager) Active(k Key) bool {
	_, ok := m.sessions[k]
	return ok
}

// Draft returns the collected triple once the session is waiting for the
// repeat choice.
func (m *Manager) Draft(k Key) (Draft, bool) {
	if st, ok := m.sessions[k].(awaitingRepeat); ok {
		return st.draft, true
	}
	return Draft{}, false
}

// Cancel discards the session and everything collected in it.
func (m *Manager) Cancel(k Key) bool {
	_, ok := m.sessions[k]
	delete(m.sessions, k)
	return ok
}

// Input feeds one message of user text into the session and returns the
// next question to ask. On a validation error the returned prompt is the
// question to repeat; previously accepted fields are kept. Past-due time
// input sends the user back to the date question, since the time itself
// may be fine for a later date.
func (m *Manager) Input(k Key, text string, now time.Time) (Prompt, error) {
	s, ok := m.sessions[k]
	if !ok {
		return PromptNone, ErrNoSession
	}

	switch st := s.(type) {
	case awaitingText:
		m.sessions[k] = awaitingDate{text: text}
		return PromptDate, nil

	case awaitingDate:
		if !dates.ValidDate(text) {
			return PromptDate, ErrDateFormat
		}
		m.sessions[k] = awaitingTime{text: st.text, date: text}
		return PromptTime, nil

	case awaitingTime:
		if !dates.ValidTime(text) {
			return PromptTime, ErrTimeFormat
		}
		if _, rolled, err := dates.DueAt(st.date, text, now); err == nil && rolled {
			m.sessions[k] = awaitingDate{text: st.text}
			return PromptDate, ErrPastDue
		}
		m.sessions[k] = awaitingRepeat{draft: Draft{Text: st.text, Date: st.date, Time: text}}
		return PromptRepeat, nil

	case awaitingRepeat:
		// Only the keyboard advances this state; stray text is ignored.
		return PromptNone, nil
	}

	return PromptNone, ErrNoSession
}

// Choose completes the session with the repeat option at index i and
// returns the draft. The session is closed on success.
func (m *Manager) Choose(k Key, i int) (Draft, Repeat, error) {
	s, ok := m.sessions[k]
	if !ok {
		return Draft{}, 0, ErrNoSession
	}

	st, ok := s.(awaitingRepeat)
	if !ok {
		return Draft{}, 0, ErrNoSession
	}

	rep, ok := RepeatFromIndex(i)
	if !ok {
		return Draft{}, 0, ErrBadChoice
	}

	delete(m.sessions, k)
	return st.draft, rep, nil
}
