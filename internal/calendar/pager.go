package calendar

import (
	"errors"
	"sync"
	"time"

	"alcyxob/training-client/internal/domain"
)

var (
	ErrPointerBlocked = errors.New("calendar interaction is disabled while the coach is blocked")
	ErrInvalidLayout  = errors.New("page width must be positive")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
)

// PagerState is the scroll state of the horizontal week pager.
type PagerState int

const (
	Idle PagerState = iota
	Scrolling
	SettlingForward
	SettlingBackward
)

func (s PagerState) String() string {
	switch s {
	case Scrolling:
		return "scrolling"
	case SettlingForward:
		return "settling_forward"
	case SettlingBackward:
		return "settling_backward"
	default:
		return "idle"
	}
}

// Direction tells which end of the window an operation grew.
type Direction int

const (
	NoExtension Direction = iota
	Forward
	Backward
)

// Selection is the tapped day plus the month shown in the header. DisplayedMonth only
// changes when a scroll settles or on explicit navigation.
type Selection struct {
	SelectedDate   domain.DayBucket `json:"selectedDate"`
	DisplayedMonth domain.MonthKey  `json:"displayedMonth"`
}

// ScrollEvent is a horizontal scroll measurement reported by the UI.
type ScrollEvent struct {
	Offset    float64 `json:"offset"`    // content offset from the first day, in points
	PageWidth float64 `json:"pageWidth"` // viewport width; one page shows one week
}

// Update describes what a pager transition did, so the UI can mirror it.
type Update struct {
	Extended         Direction
	Reseek           bool // jump without animation to ReseekTo
	ReseekTo         int
	Settle           PagerState // settling state passed through on momentum end
	Page             int
	SelectionChanged bool
	Selection        Selection
}

// Clock supplies "today".
type Clock interface {
	Today() domain.DayBucket
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() domain.DayBucket { return domain.DayOf(time.Now()) }

// Pager is the calendar pager state machine. It owns the WeekWindow and the Selection;
// both change only through its methods. Safe for concurrent use.
type Pager struct {
	mu      sync.Mutex
	locales LocaleSource
	clock   Clock

	window     WeekWindow
	sel        Selection
	state      PagerState
	page       int
	pageWidth  float64
	lastOffset float64
	blocked    bool
}

// NewPager starts with the single week containing anchor.
func NewPager(anchor domain.DayBucket, locales LocaleSource, clock Clock) *Pager {
	return &Pager{
		locales: locales,
		clock:   clock,
		window:  InitialWindow(anchor, locales),
		sel:     Selection{SelectedDate: anchor, DisplayedMonth: anchor.MonthKey()},
	}
}

// Reset returns the pager to its initial single-week state around anchor.
func (p *Pager) Reset(anchor domain.DayBucket) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.window = InitialWindow(anchor, p.locales)
	p.sel = Selection{SelectedDate: anchor, DisplayedMonth: anchor.MonthKey()}
	p.state = Idle
	p.page = 0
	p.lastOffset = 0
	p.blocked = false
}

// SetBlocked enables or disables pointer-driven transitions.
func (p *Pager) SetBlocked(blocked bool) {
	p.mu.Lock()
	p.blocked = blocked
	p.mu.Unlock()
}

// OnScroll handles an intermediate scroll frame. Scrolling forward to within one page of
// the trailing edge appends two weeks without moving the viewport.
func (p *Pager) OnScroll(ev ScrollEvent) (Update, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blocked {
		return Update{}, ErrPointerBlocked
	}
	if ev.PageWidth <= 0 {
		return Update{}, ErrInvalidLayout
	}
	p.pageWidth = ev.PageWidth
	forward := ev.Offset > p.lastOffset
	p.lastOffset = ev.Offset
	p.state = Scrolling

	up := p.update()
	contentWidth := float64(p.window.Weeks()) * ev.PageWidth
	if forward && contentWidth-(ev.Offset+ev.PageWidth) <= ev.PageWidth {
		p.window = p.window.ExtendForward()
		up.Extended = Forward
	}
	return up, nil
}

// OnEndReached appends two weeks; the UI calls it when its list nears the trailing edge.
func (p *Pager) OnEndReached() (Update, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blocked {
		return Update{}, ErrPointerBlocked
	}
	p.window = p.window.ExtendForward()
	up := p.update()
	up.Extended = Forward
	return up, nil
}

// OnMomentumScrollEnd settles a scroll gesture. Settling within the first page prepends
// two weeks and asks for a non-animated re-seek to ReseekIndex. The header month is taken
// from the last day of the settled week, and the selected date follows the scroll only
// when the settled week lies in another year.
func (p *Pager) OnMomentumScrollEnd(ev ScrollEvent) (Update, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blocked {
		return Update{}, ErrPointerBlocked
	}
	if ev.PageWidth <= 0 {
		return Update{}, ErrInvalidLayout
	}
	p.pageWidth = ev.PageWidth

	var up Update
	offset := ev.Offset
	if offset < ev.PageWidth {
		p.state = SettlingBackward
		p.window = p.window.ExtendBackward()
		offset += float64(ExtendWeeks) * ev.PageWidth
		up.Extended = Backward
		up.Reseek = true
		up.ReseekTo = ReseekIndex
	} else {
		p.state = SettlingForward
	}
	up.Settle = p.state

	page := int(offset/ev.PageWidth + 0.5)
	last, ok := p.window.Day(page*DaysPerWeek + DaysPerWeek - 1)
	if !ok {
		p.state = Idle
		up.Page = p.page
		up.Selection = p.sel
		return up, nil
	}
	first, _ := p.window.Day(page * DaysPerWeek)

	p.page = page
	p.lastOffset = float64(page) * ev.PageWidth
	p.sel.DisplayedMonth = last.MonthKey()
	if first.Year != p.sel.SelectedDate.Year {
		p.sel.SelectedDate = last
		up.SelectionChanged = true
	}
	p.state = Idle

	up.Page = p.page
	up.Selection = p.sel
	return up, nil
}

// SelectDate handles a tap on a day. Taps outside the window recentre it.
func (p *Pager) SelectDate(d domain.DayBucket) (Update, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blocked {
		return Update{}, ErrPointerBlocked
	}
	if p.window.IndexOf(d) < 0 {
		return p.recenter(d), nil
	}
	up := p.update()
	if d != p.sel.SelectedDate {
		p.sel.SelectedDate = d
		up.SelectionChanged = true
		up.Selection = p.sel
	}
	return up, nil
}

// NavigateMonth handles the header month carousel. It applies even while blocked.
// Picking the month already displayed without an explicit date changes nothing.
func (p *Pager) NavigateMonth(month time.Month, explicit *domain.DayBucket) (Update, error) {
	if month < time.January || month > time.December {
		return Update{}, ErrInvalidMonth
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if explicit == nil && month == p.sel.DisplayedMonth.Month {
		return p.update(), nil
	}
	target := MonthTarget(month, explicit, p.sel.SelectedDate, p.clock.Today())
	return p.recenter(target), nil
}

// JumpTo recentres on an arbitrary date (year picker). It applies even while blocked.
func (p *Pager) JumpTo(d domain.DayBucket) Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recenter(d)
}

func (p *Pager) recenter(target domain.DayBucket) Update {
	changed := target != p.sel.SelectedDate
	p.window = CenteredWindow(target, p.locales)
	p.page = ReseekIndex / DaysPerWeek
	p.lastOffset = float64(p.page) * p.pageWidth
	p.sel = Selection{SelectedDate: target, DisplayedMonth: target.MonthKey()}
	p.state = Idle

	up := p.update()
	up.Reseek = true
	up.ReseekTo = ReseekIndex
	up.SelectionChanged = changed
	return up
}

func (p *Pager) update() Update {
	return Update{Page: p.page, Selection: p.sel}
}

// View is a read-only snapshot of the pager for rendering.
type View struct {
	Selection     Selection          `json:"selection"`
	State         string             `json:"state"`
	Page          int                `json:"page"`
	Blocked       bool               `json:"blocked"`
	WindowLength  int                `json:"windowLength"`
	Visible       []domain.DayBucket `json:"visible"`
	WeekdayLabels []string           `json:"weekdayLabels"`
	MonthLabel    string             `json:"monthLabel"`
}

func (p *Pager) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	loc := p.locales.CurrentLocale()
	visible := p.window.Page(p.page)
	first := loc.FirstWeekday
	if len(visible) > 0 {
		first = visible[0].Weekday()
	}
	return View{
		Selection:     p.sel,
		State:         p.state.String(),
		Page:          p.page,
		Blocked:       p.blocked,
		WindowLength:  p.window.Len(),
		Visible:       visible,
		WeekdayLabels: loc.WeekdayLabelsFrom(first),
		MonthLabel:    loc.MonthLabel(p.sel.DisplayedMonth.Month),
	}
}

// Selection returns the current selection.
func (p *Pager) Selection() Selection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sel
}

// Window returns the current window; windows are immutable so the value is safe to keep.
func (p *Pager) Window() WeekWindow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.window
}

func (p *Pager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
