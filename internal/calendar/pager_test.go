package calendar

import (
	"errors"
	"testing"
	"time"

	"alcyxob/training-client/internal/domain"
)

const pageWidth = 350.0

type fixedClock struct{ today domain.DayBucket }

func (c fixedClock) Today() domain.DayBucket { return c.today }

func newTestPager(anchor domain.DayBucket) *Pager {
	return NewPager(anchor, NewLanguageSetting("en-US"), fixedClock{today: domain.NewDay(2024, time.March, 15)})
}

func TestPagerEndToEndScenario(t *testing.T) {
	anchor := domain.NewDay(2024, time.March, 15)
	p := newTestPager(anchor)
	if n := p.Window().Len(); n != 7 {
		t.Fatalf("initial window length = %d, want 7", n)
	}
	if p.Window().IndexOf(anchor) < 0 {
		t.Fatalf("initial window does not contain the anchor")
	}

	up, err := p.OnScroll(ScrollEvent{Offset: 12, PageWidth: pageWidth})
	if err != nil {
		t.Fatalf("OnScroll failed: %v", err)
	}
	if up.Extended != Forward {
		t.Fatalf("expected forward extension near the trailing edge")
	}
	if n := p.Window().Len(); n != 21 {
		t.Fatalf("window length after extendForward = %d, want 21", n)
	}
	if p.State() != Scrolling {
		t.Fatalf("state = %v, want scrolling", p.State())
	}

	up, err = p.OnMomentumScrollEnd(ScrollEvent{Offset: 0, PageWidth: pageWidth})
	if err != nil {
		t.Fatalf("OnMomentumScrollEnd failed: %v", err)
	}
	if up.Extended != Backward || up.Settle != SettlingBackward {
		t.Fatalf("expected backward settle, got %+v", up)
	}
	if n := p.Window().Len(); n != 35 {
		t.Fatalf("window length after extendBackward = %d, want 35", n)
	}
	if !up.Reseek || up.ReseekTo != 14 {
		t.Fatalf("expected non-animated re-seek to 14, got %+v", up)
	}
	if err := p.Window().Validate(); err != nil {
		t.Fatalf("window invariant broken: %v", err)
	}
	// the viewport still shows the week it showed before the prepend
	if day, _ := p.Window().Day(up.ReseekTo); day != WeekStart(anchor, time.Sunday) {
		t.Fatalf("re-seek lands on %v, want %v", day, WeekStart(anchor, time.Sunday))
	}
	if p.State() != Idle {
		t.Fatalf("state after settle = %v, want idle", p.State())
	}
}

func TestReseekIsAlways14(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	for i := 0; i < 5; i++ {
		up, err := p.OnMomentumScrollEnd(ScrollEvent{Offset: 0, PageWidth: pageWidth})
		if err != nil {
			t.Fatalf("OnMomentumScrollEnd failed: %v", err)
		}
		if !up.Reseek || up.ReseekTo != ReseekIndex || ReseekIndex != 14 {
			t.Fatalf("iteration %d: re-seek = %+v", i, up)
		}
	}
	if n := p.Window().Len(); n != 7+5*14 {
		t.Fatalf("window length = %d", n)
	}
}

func TestMomentumEndUpdatesDisplayedMonthFromLastDayOfWeek(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	p.JumpTo(domain.NewDay(2024, time.March, 27))
	// page 3 is the week after the anchor week: Mar 31 - Apr 6 for a sunday-first locale
	up, err := p.OnMomentumScrollEnd(ScrollEvent{Offset: 3 * pageWidth, PageWidth: pageWidth})
	if err != nil {
		t.Fatalf("OnMomentumScrollEnd failed: %v", err)
	}
	if up.Settle != SettlingForward {
		t.Fatalf("settle = %v", up.Settle)
	}
	if got := p.Selection().DisplayedMonth; got != (domain.MonthKey{Year: 2024, Month: time.April}) {
		t.Fatalf("displayed month = %v, want 2024-04", got)
	}
	if got := p.Selection().SelectedDate; got != domain.NewDay(2024, time.March, 27) {
		t.Fatalf("selected date moved within the same year: %v", got)
	}
}

func TestScrollFramesDoNotTouchDisplayedMonth(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	p.JumpTo(domain.NewDay(2024, time.March, 27))
	before := p.Selection()
	for _, off := range []float64{800, 900, 1000, 1100} {
		if _, err := p.OnScroll(ScrollEvent{Offset: off, PageWidth: pageWidth}); err != nil {
			t.Fatalf("OnScroll failed: %v", err)
		}
	}
	if p.Selection() != before {
		t.Fatalf("selection changed during intermediate frames: %+v -> %+v", before, p.Selection())
	}
}

func TestMomentumEndCrossYearAutoSelects(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	p.JumpTo(domain.NewDay(2024, time.December, 25))
	// page 3: Dec 29 2024 - Jan 4 2025 starts in 2024, no change
	if _, err := p.OnMomentumScrollEnd(ScrollEvent{Offset: 3 * pageWidth, PageWidth: pageWidth}); err != nil {
		t.Fatalf("OnMomentumScrollEnd failed: %v", err)
	}
	if got := p.Selection().SelectedDate; got != domain.NewDay(2024, time.December, 25) {
		t.Fatalf("selected date = %v", got)
	}
	// page 4: Jan 5 - Jan 11 2025
	up, err := p.OnMomentumScrollEnd(ScrollEvent{Offset: 4 * pageWidth, PageWidth: pageWidth})
	if err != nil {
		t.Fatalf("OnMomentumScrollEnd failed: %v", err)
	}
	if !up.SelectionChanged || up.Selection.SelectedDate != domain.NewDay(2025, time.January, 11) {
		t.Fatalf("expected auto-selection of 2025-01-11, got %+v", up)
	}
}

func TestNavigateMonthIdempotentForDisplayedMonth(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	beforeWindow := p.Window().Days()
	beforeSel := p.Selection()

	up, err := p.NavigateMonth(time.March, nil)
	if err != nil {
		t.Fatalf("NavigateMonth failed: %v", err)
	}
	if up.Reseek || up.SelectionChanged {
		t.Fatalf("expected no-op, got %+v", up)
	}
	if p.Selection() != beforeSel || len(p.Window().Days()) != len(beforeWindow) {
		t.Fatalf("state changed on idempotent navigation")
	}
}

func TestNavigateMonthRecentres(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	up, err := p.NavigateMonth(time.June, nil)
	if err != nil {
		t.Fatalf("NavigateMonth failed: %v", err)
	}
	want := domain.NewDay(2024, time.June, 1)
	if up.Selection.SelectedDate != want || p.Selection().DisplayedMonth != want.MonthKey() {
		t.Fatalf("selection = %+v, want %v", p.Selection(), want)
	}
	if !up.Reseek || up.ReseekTo != 14 {
		t.Fatalf("expected re-seek to 14, got %+v", up)
	}
	if day, _ := p.Window().Day(14); day != WeekStart(want, time.Sunday) {
		t.Fatalf("index 14 = %v, want the target week start", day)
	}
	if _, err := p.NavigateMonth(13, nil); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestBlockedPagerIgnoresPointerButNotNavigation(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	p.SetBlocked(true)
	before := p.Window().Len()

	if _, err := p.OnScroll(ScrollEvent{Offset: 10, PageWidth: pageWidth}); !errors.Is(err, ErrPointerBlocked) {
		t.Fatalf("OnScroll: expected ErrPointerBlocked, got %v", err)
	}
	if _, err := p.OnMomentumScrollEnd(ScrollEvent{Offset: 0, PageWidth: pageWidth}); !errors.Is(err, ErrPointerBlocked) {
		t.Fatalf("OnMomentumScrollEnd: expected ErrPointerBlocked, got %v", err)
	}
	if _, err := p.OnEndReached(); !errors.Is(err, ErrPointerBlocked) {
		t.Fatalf("OnEndReached: expected ErrPointerBlocked, got %v", err)
	}
	if _, err := p.SelectDate(domain.NewDay(2024, time.March, 14)); !errors.Is(err, ErrPointerBlocked) {
		t.Fatalf("SelectDate: expected ErrPointerBlocked, got %v", err)
	}
	if p.Window().Len() != before || p.State() != Idle {
		t.Fatalf("blocked pager changed state")
	}

	if _, err := p.NavigateMonth(time.May, nil); err != nil {
		t.Fatalf("NavigateMonth while blocked failed: %v", err)
	}
	if p.Selection().SelectedDate != domain.NewDay(2024, time.May, 1) {
		t.Fatalf("programmatic navigation did not apply while blocked")
	}
}

func TestSelectDate(t *testing.T) {
	p := newTestPager(domain.NewDay(2024, time.March, 15))
	up, err := p.SelectDate(domain.NewDay(2024, time.March, 13))
	if err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if !up.SelectionChanged || up.Reseek {
		t.Fatalf("unexpected update %+v", up)
	}
	up, _ = p.SelectDate(domain.NewDay(2024, time.March, 13))
	if up.SelectionChanged {
		t.Fatalf("tapping the selected day should not report a change")
	}
	// the header month does not follow taps
	up, _ = p.SelectDate(domain.NewDay(2024, time.August, 2))
	if !up.Reseek || p.Selection().DisplayedMonth.Month != time.August {
		t.Fatalf("tap outside the window should recentre: %+v", up)
	}
}
