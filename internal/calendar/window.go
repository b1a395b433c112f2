package calendar

import (
	"errors"

	"alcyxob/training-client/internal/domain"
)

// ExtendWeeks is how many weeks every extension adds at either end.
const ExtendWeeks = 2

// ReseekIndex is the day index the viewport must jump to (non-animated) after
// ExtendBackward, so the user keeps looking at the same week.
const ReseekIndex = ExtendWeeks * DaysPerWeek

// WeekWindow is the contiguous run of days backing the scrollable calendar.
// Its length is always a multiple of seven. Operations return a new window and
// never modify the receiver, so a window can be shared with readers freely.
type WeekWindow struct {
	days []domain.DayBucket
}

// InitialWindow builds the single week containing anchor, aligned to the source's
// current locale.
func InitialWindow(anchor domain.DayBucket, src LocaleSource) WeekWindow {
	return WeekWindow{days: WeekOf(anchor, src.CurrentLocale().FirstWeekday)}
}

// CenteredWindow builds the anchor's week padded with ExtendWeeks weeks on both sides,
// so the anchor week starts at ReseekIndex and both ends have room before any extension.
func CenteredWindow(anchor domain.DayBucket, src LocaleSource) WeekWindow {
	return InitialWindow(anchor, src).ExtendBackward().ExtendForward()
}

// ExtendForward appends two weeks after the last day.
func (w WeekWindow) ExtendForward() WeekWindow {
	if len(w.days) == 0 {
		return w
	}
	next := DaysFrom(w.days[len(w.days)-1].AddDays(1), ReseekIndex)
	days := make([]domain.DayBucket, 0, len(w.days)+len(next))
	days = append(days, w.days...)
	days = append(days, next...)
	return WeekWindow{days: days}
}

// ExtendBackward prepends two weeks before the first day.
func (w WeekWindow) ExtendBackward() WeekWindow {
	if len(w.days) == 0 {
		return w
	}
	prev := DaysFrom(w.days[0].AddDays(-ReseekIndex), ReseekIndex)
	days := make([]domain.DayBucket, 0, len(w.days)+len(prev))
	days = append(days, prev...)
	days = append(days, w.days...)
	return WeekWindow{days: days}
}

func (w WeekWindow) Len() int { return len(w.days) }

// Weeks is the number of seven-day pages in the window.
func (w WeekWindow) Weeks() int { return len(w.days) / DaysPerWeek }

// Day returns the day at index i.
func (w WeekWindow) Day(i int) (domain.DayBucket, bool) {
	if i < 0 || i >= len(w.days) {
		return domain.DayBucket{}, false
	}
	return w.days[i], true
}

func (w WeekWindow) First() domain.DayBucket { return w.days[0] }
func (w WeekWindow) Last() domain.DayBucket  { return w.days[len(w.days)-1] }

// Page returns the seven days of page p (0-based), or nil when p is out of range.
func (w WeekWindow) Page(p int) []domain.DayBucket {
	if p < 0 || p >= w.Weeks() {
		return nil
	}
	out := make([]domain.DayBucket, DaysPerWeek)
	copy(out, w.days[p*DaysPerWeek:(p+1)*DaysPerWeek])
	return out
}

// IndexOf returns the index of d in the window, or -1.
func (w WeekWindow) IndexOf(d domain.DayBucket) int {
	if len(w.days) == 0 {
		return -1
	}
	i := w.days[0].DaysUntil(d)
	if i < 0 || i >= len(w.days) {
		return -1
	}
	return i
}

// Days returns a copy of the backing days.
func (w WeekWindow) Days() []domain.DayBucket {
	out := make([]domain.DayBucket, len(w.days))
	copy(out, w.days)
	return out
}

var (
	errWindowLength = errors.New("window length is not a multiple of 7")
	errWindowGap    = errors.New("window days are not contiguous")
)

// Validate checks the window invariants.
func (w WeekWindow) Validate() error {
	if len(w.days)%DaysPerWeek != 0 {
		return errWindowLength
	}
	for i := 1; i < len(w.days); i++ {
		if w.days[i-1].AddDays(1) != w.days[i] {
			return errWindowGap
		}
	}
	return nil
}
