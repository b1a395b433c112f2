package state

import (
	"errors"
	"testing"
	"time"

	"alcyxob/training-client/internal/domain"
)

func samplePlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:   10,
			Date: domain.NewDay(2024, time.March, 15),
			Columns: []domain.PlanningColumn{
				{ID: 100, Name: "Warm-up"},
				{ID: 101, Name: "WOD", Records: []domain.Record{{ID: 7, IsFinish: true, Note: domain.String("done")}}},
			},
		},
	}
}

func TestStaleFetchResultIsDiscarded(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 1, Date: domain.NewDay(2024, time.March, 14)})
	s = Reduce(s, PlanningRequested{Seq: 2, Date: domain.NewDay(2024, time.March, 15)})

	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: []domain.Plan{{ID: 99}}})
	if len(s.Planning.Plans) != 0 || !s.Planning.IsLoading {
		t.Fatalf("stale result was committed: %+v", s.Planning)
	}

	s = Reduce(s, PlanningSucceeded{Seq: 2, Plans: samplePlans()})
	if len(s.Planning.Plans) != 1 || s.Planning.Plans[0].ID != 10 || s.Planning.IsLoading {
		t.Fatalf("latest result not committed: %+v", s.Planning)
	}

	s = Reduce(s, PlanningFailed{Seq: 1, Err: errors.New("late")})
	if s.Planning.LastError != nil {
		t.Fatalf("stale failure was recorded")
	}
}

func TestOlderRequestDoesNotRewindSequence(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 2, Date: domain.NewDay(2024, time.March, 15)})
	s = Reduce(s, PlanningRequested{Seq: 1, Date: domain.NewDay(2024, time.March, 14)})
	if s.Planning.Seq != 2 || s.Planning.Date != domain.NewDay(2024, time.March, 15) {
		t.Fatalf("older request rewound the state: %+v", s.Planning)
	}
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: samplePlans()})
	if len(s.Planning.Plans) != 0 {
		t.Fatalf("older result committed")
	}
}

func TestFailedFetchKeepsPlans(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 1})
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: samplePlans()})
	s = Reduce(s, PlanningRequested{Seq: 2})
	s = Reduce(s, PlanningFailed{Seq: 2, Err: errors.New("offline")})

	if len(s.Planning.Plans) != 1 {
		t.Fatalf("plans were dropped on failure")
	}
	if s.Planning.IsLoading || s.Planning.LastError == nil {
		t.Fatalf("unexpected planning state %+v", s.Planning)
	}
}

func TestFilterResetsWhenPlanCountChanges(t *testing.T) {
	var s State
	two := []domain.Plan{{ID: 1}, {ID: 2}}
	s = Reduce(s, PlanningRequested{Seq: 1})
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: two})
	s = Reduce(s, PlanFilterSelected{Index: 1})
	if s.Planning.Filter != 1 {
		t.Fatalf("filter = %d", s.Planning.Filter)
	}
	s = Reduce(s, PlanFilterSelected{Index: 5})
	if s.Planning.Filter != 1 {
		t.Fatalf("out of range filter was applied")
	}

	s = Reduce(s, PlanningRequested{Seq: 2})
	s = Reduce(s, PlanningSucceeded{Seq: 2, Plans: []domain.Plan{{ID: 3}, {ID: 4}}})
	if s.Planning.Filter != 1 {
		t.Fatalf("filter reset although the count did not change")
	}
	s = Reduce(s, PlanningRequested{Seq: 3})
	s = Reduce(s, PlanningSucceeded{Seq: 3, Plans: []domain.Plan{{ID: 3}}})
	if s.Planning.Filter != 0 {
		t.Fatalf("filter = %d, want 0", s.Planning.Filter)
	}
}

func TestRecordCommitIsCopyOnWrite(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 1})
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: samplePlans()})
	before := s

	key := ColumnKey{PlanID: 10, ColumnID: 100}
	s = Reduce(s, RecordCommitted{Key: key, RecordID: 8, Patch: domain.RecordPatch{IsFinish: domain.Bool(true)}, Created: true})

	col, ok := s.Planning.Column(key)
	if !ok || col.Record() == nil || col.Record().ID != 8 {
		t.Fatalf("record not attached: %+v", col)
	}
	if old, _ := before.Planning.Column(key); old.Record() != nil {
		t.Fatalf("previous state was mutated")
	}
	if other, _ := s.Planning.Column(ColumnKey{PlanID: 10, ColumnID: 101}); other.Record().ID != 7 {
		t.Fatalf("sibling column changed")
	}
}

func TestRecordUpdateMergesOnlyPatchedFields(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 1})
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: samplePlans()})

	key := ColumnKey{PlanID: 10, ColumnID: 101}
	s = Reduce(s, RecordCommitted{Key: key, RecordID: 7, Patch: domain.RecordPatch{Time: domain.String("12:30")}})

	col, _ := s.Planning.Column(key)
	rec := col.Record()
	if rec.ID != 7 || !rec.IsFinish || rec.Note == nil || *rec.Note != "done" {
		t.Fatalf("untouched fields changed: %+v", rec)
	}
	if rec.Time == nil || *rec.Time != "12:30" {
		t.Fatalf("time not merged: %+v", rec)
	}

	s = Reduce(s, RecordCommitted{Key: key, RecordID: 7, Patch: domain.RecordPatch{IsFinish: domain.Bool(false)}.Normalize()})
	col, _ = s.Planning.Column(key)
	if rec := col.Record(); rec.IsFinish || rec.Note == nil || *rec.Note != "" {
		t.Fatalf("un-finish did not clear the note: %+v", rec)
	}
}

func TestRecordCommitForStaleIdentityIsNoop(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 1})
	s = Reduce(s, PlanningSucceeded{Seq: 1, Plans: samplePlans()})

	for _, key := range []ColumnKey{{PlanID: 11, ColumnID: 100}, {PlanID: 10, ColumnID: 555}} {
		next := Reduce(s, RecordCommitted{Key: key, RecordID: 1, Created: true})
		if &next.Planning.Plans[0] != &s.Planning.Plans[0] {
			t.Fatalf("%+v: plans were rebuilt for a stale id", key)
		}
	}
}

func TestWriteFlagsAreTrackedPerColumn(t *testing.T) {
	var s State
	a := ColumnKey{PlanID: 1, ColumnID: 1}
	b := ColumnKey{PlanID: 1, ColumnID: 2}

	s = Reduce(s, RecordWriteStarted{Key: a})
	prev := s
	s = Reduce(s, RecordWriteStarted{Key: b})
	if !s.Planning.Writing[a] || !s.Planning.Writing[b] || !s.Planning.IsLoadingRecord() {
		t.Fatalf("writing = %v", s.Planning.Writing)
	}
	if prev.Planning.Writing[b] {
		t.Fatalf("previous writing map was mutated")
	}
	s = Reduce(s, RecordWriteFinished{Key: a})
	s = Reduce(s, RecordWriteFinished{Key: b})
	if s.Planning.IsLoadingRecord() {
		t.Fatalf("writes still in flight: %v", s.Planning.Writing)
	}
}

func TestCoachSelectionIsCopied(t *testing.T) {
	var s State
	coach := domain.Coach{ID: "1", Blocked: true}
	s = Reduce(s, CoachesSucceeded{Coaches: []domain.Coach{coach}})
	s = Reduce(s, CoachSelected{Coach: &coach})
	coach.Blocked = false
	if !s.Coaches.Roster.IsBlocked() {
		t.Fatalf("selection aliases the caller's value")
	}
	s = Reduce(s, CoachSelected{})
	if s.Coaches.Roster.Selected != nil {
		t.Fatalf("selection not cleared")
	}
}

func TestSessionClearedInvalidatesInFlightFetch(t *testing.T) {
	var s State
	s = Reduce(s, PlanningRequested{Seq: 4})
	s = Reduce(s, CoachesSucceeded{Coaches: []domain.Coach{{ID: "1"}}})
	s = Reduce(s, SessionCleared{})

	if len(s.Coaches.Roster.Coaches) != 0 || s.Planning.IsLoading {
		t.Fatalf("session state survived: %+v", s)
	}
	s = Reduce(s, PlanningSucceeded{Seq: 4, Plans: samplePlans()})
	if len(s.Planning.Plans) != 0 {
		t.Fatalf("fetch issued before logout was committed")
	}
}

func TestStoreNotifiesInDispatchOrder(t *testing.T) {
	st := NewStore()
	var seen []uint64
	unsubscribe := st.Subscribe(func(s State) { seen = append(seen, s.Planning.Seq) })

	st.Dispatch(PlanningRequested{Seq: 1})
	st.Dispatch(PlanningRequested{Seq: 2})
	unsubscribe()
	st.Dispatch(PlanningRequested{Seq: 3})

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("listener saw %v", seen)
	}
	if st.State().Planning.Seq != 3 {
		t.Fatalf("State() = %d", st.State().Planning.Seq)
	}
}

func TestStoreNotifiesListenersInSubscriptionOrder(t *testing.T) {
	st := NewStore()
	var order []int
	var unsubscribe []func()
	for i := 0; i < 8; i++ {
		i := i
		unsubscribe = append(unsubscribe, st.Subscribe(func(State) { order = append(order, i) }))
	}
	unsubscribe[3]()

	st.Dispatch(PlanningRequested{Seq: 1})

	want := []int{0, 1, 2, 4, 5, 6, 7}
	if len(order) != len(want) {
		t.Fatalf("listeners called %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("listeners called %v, want %v", order, want)
		}
	}
}
