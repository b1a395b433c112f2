package calendar

import (
	"math/rand"
	"testing"
	"time"

	"alcyxob/training-client/internal/domain"
)

func TestInitialWindowContainsAnchor(t *testing.T) {
	anchor := domain.NewDay(2024, time.March, 15)
	w := InitialWindow(anchor, NewLanguageSetting("en-US"))
	if w.Len() != 7 {
		t.Fatalf("expected 7 days, got %d", w.Len())
	}
	if w.IndexOf(anchor) < 0 {
		t.Fatalf("initial window %v does not contain %v", w.Days(), anchor)
	}
	if w.First().Weekday() != time.Sunday {
		t.Fatalf("expected sunday-aligned week, first day is %v", w.First().Weekday())
	}
}

func TestWindowInvariantUnderRandomExtensions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := InitialWindow(domain.NewDay(2023, time.December, 28), NewLanguageSetting("es"))
	for i := 0; i < 200; i++ {
		before := w
		if rng.Intn(2) == 0 {
			w = w.ExtendForward()
			if w.First() != before.First() || w.Last() != before.Last().AddDays(14) {
				t.Fatalf("step %d: ExtendForward moved the wrong end", i)
			}
		} else {
			w = w.ExtendBackward()
			if w.Last() != before.Last() || w.First() != before.First().AddDays(-14) {
				t.Fatalf("step %d: ExtendBackward moved the wrong end", i)
			}
		}
		if err := w.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if before.Len()+14 != w.Len() {
			t.Fatalf("step %d: expected length %d, got %d", i, before.Len()+14, w.Len())
		}
	}
}

func TestExtensionDoesNotMutateReceiver(t *testing.T) {
	w := InitialWindow(domain.NewDay(2024, time.March, 15), NewLanguageSetting("es"))
	_ = w.ExtendForward()
	_ = w.ExtendBackward()
	if w.Len() != 7 {
		t.Fatalf("receiver changed: len %d", w.Len())
	}
}

func TestCenteredWindowAnchorsAtReseekIndex(t *testing.T) {
	anchor := domain.NewDay(2024, time.March, 15)
	w := CenteredWindow(anchor, NewLanguageSetting("es"))
	if w.Len() != 35 {
		t.Fatalf("expected 35 days, got %d", w.Len())
	}
	week := w.Page(ReseekIndex / DaysPerWeek)
	found := false
	for _, d := range week {
		if d == anchor {
			found = true
		}
	}
	if !found {
		t.Fatalf("anchor %v not on the page at index %d: %v", anchor, ReseekIndex, week)
	}
}

func TestLanguageChangeKeepsExistingAlignment(t *testing.T) {
	lang := NewLanguageSetting("es")
	w := InitialWindow(domain.NewDay(2024, time.March, 15), lang)
	lang.Set("en-US")
	w = w.ExtendForward().ExtendBackward()
	if err := w.Validate(); err != nil {
		t.Fatalf("window invalid after language change: %v", err)
	}
	if w.First().Weekday() != time.Monday {
		t.Fatalf("existing weeks were realigned: first day %v", w.First().Weekday())
	}
	if got := InitialWindow(domain.NewDay(2024, time.March, 15), lang).First().Weekday(); got != time.Sunday {
		t.Fatalf("new windows should use the new alignment, got %v", got)
	}
}
