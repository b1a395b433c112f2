package state

import "alcyxob/training-client/internal/domain"

// Event is a state transition request. Each variant carries a typed payload;
// the unexported marker keeps the set closed to this package.
type Event interface {
	event()
}

// PlanningRequested starts plan fetch number Seq.
type PlanningRequested struct {
	Seq     uint64
	Date    domain.DayBucket
	CoachID *int64
}

// PlanningSucceeded commits the plans of fetch Seq, unless a newer fetch was issued.
type PlanningSucceeded struct {
	Seq   uint64
	Plans []domain.Plan
}

// PlanningFailed ends fetch Seq without touching the last known plans.
type PlanningFailed struct {
	Seq uint64
	Err error
}

// PlanFilterSelected picks which of the date's plans is shown.
type PlanFilterSelected struct {
	Index int
}

// RecordWriteStarted marks a column as having a write in flight.
type RecordWriteStarted struct {
	Key ColumnKey
}

// RecordCommitted applies an acknowledged write to its column. Created writes replace the
// column's record; updates merge Patch over whatever record the column holds at commit time.
type RecordCommitted struct {
	Key      ColumnKey
	RecordID int64
	Patch    domain.RecordPatch
	Created  bool
}

// RecordWriteFinished clears the in-flight mark of a column, after success or failure.
type RecordWriteFinished struct {
	Key ColumnKey
}

type CoachesRequested struct{}

// CoachesSucceeded replaces the roster list.
type CoachesSucceeded struct {
	Coaches []domain.Coach
}

// CoachesUnchanged ends a roster refresh that produced the same roster.
type CoachesUnchanged struct{}

type CoachesFailed struct {
	Err error
}

// CoachSelected changes the selected coach; nil clears it.
type CoachSelected struct {
	Coach *domain.Coach
}

// SessionCleared drops everything tied to the signed-in user.
type SessionCleared struct{}

func (PlanningRequested) event() {}
func (PlanningSucceeded) event() {}
func (PlanningFailed) event() {}
func (PlanFilterSelected) event() {}
func (RecordWriteStarted) event() {}
func (RecordCommitted) event() {}
func (RecordWriteFinished) event() {}
func (CoachesRequested) event() {}
func (CoachesSucceeded) event() {}
func (CoachesUnchanged) event() {}
func (CoachesFailed) event() {}
func (CoachSelected) event() {}
func (SessionCleared) event() {}
