package dialog

// Repeat is the recurrence rule attached to a reminder. The stored value is
// the label, selected by index from the inline keyboard, so the order of
// this list is part of the storage contract: never reorder it.
type Repeat int

const (
	RepeatNone Repeat = iota
	RepeatDaily
	RepeatWeekly
	RepeatYearly
	RepeatDayBefore
	RepeatThreeDaysBefore
	RepeatWeekBefore
	RepeatMonday
	RepeatTuesday
	RepeatWednesday
	RepeatThursday
	RepeatFriday
	RepeatSaturday
	RepeatSunday

	repeatCount
)

var repeatLabels = [repeatCount]string{
	RepeatNone:            "❌ Не повторять",
	RepeatDaily:           "🔄 Каждый день",
	RepeatWeekly:          "📅 Каждую неделю",
	RepeatYearly:          "🎄 Каждый год",
	RepeatDayBefore:       "⏰ За день до",
	RepeatThreeDaysBefore: "📝 За 3 дня до",
	RepeatWeekBefore:      "🗓️ За неделю до",
	RepeatMonday:          "📆 Понедельник",
	RepeatTuesday:         "📆 Вторник",
	RepeatWednesday:       "📆 Среда",
	RepeatThursday:        "📆 Четверг",
	RepeatFriday:          "📆 Пятница",
	RepeatSaturday:        "📆 Суббота",
	RepeatSunday:          "📆 Воскресенье",
}

// Label is the user-visible and stored form of the option.
func (r Repeat) Label() string {
	if r < 0 || r >= repeatCount {
		return ""
	}
	return repeatLabels[r]
}

// RepeatFromIndex maps a keyboard selection back to an option.
func RepeatFromIndex(i int) (Repeat, bool) {
	if i < 0 || i >= int(repeatCount) {
		return 0, false
	}
	return Repeat(i), true
}

// RepeatLabels returns the option labels in selection order.
func RepeatLabels() []string {
	return repeatLabels[:]
}
