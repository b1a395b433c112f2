package state

import "alcyxob/training-client/internal/domain"

// ColumnKey identifies a planning column by the plan it belongs to.
type ColumnKey struct {
	PlanID   int64 `json:"planId"`
	ColumnID int64 `json:"columnId"`
}

// State is everything the orchestrator owns. A State value is never modified after it
// is published; reducers build a new one and share untouched slices.
type State struct {
	Planning PlanningState
	Coaches  CoachesState
}

type PlanningState struct {
	Plans     []domain.Plan
	Date      domain.DayBucket
	CoachID   *int64
	Seq       uint64 // sequence of the most recent fetch; older results are discarded
	IsLoading bool
	Filter    int
	Writing   map[ColumnKey]bool
	LastError error
}

// IsLoadingRecord reports whether any record write is in flight.
func (p PlanningState) IsLoadingRecord() bool {
	return len(p.Writing) > 0
}

// Column looks a column up by identity.
func (p PlanningState) Column(key ColumnKey) (domain.PlanningColumn, bool) {
	for _, plan := range p.Plans {
		if plan.ID != key.PlanID {
			continue
		}
		if i := plan.Column(key.ColumnID); i >= 0 {
			return plan.Columns[i], true
		}
		return domain.PlanningColumn{}, false
	}
	return domain.PlanningColumn{}, false
}

// Visible returns the plan selected by the filter, if any.
func (p PlanningState) Visible() (domain.Plan, bool) {
	if p.Filter < 0 || p.Filter >= len(p.Plans) {
		return domain.Plan{}, false
	}
	return p.Plans[p.Filter], true
}

type CoachesState struct {
	Roster    domain.CoachRoster
	IsLoading bool
	LastError error
}

// Reduce applies ev to s and returns the next state. It has no side effects.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case PlanningRequested:
		// requests may be dispatched out of order by concurrent callers
		if e.Seq < s.Planning.Seq {
			return s
		}
		s.Planning.Seq = e.Seq
		s.Planning.Date = e.Date
		s.Planning.CoachID = e.CoachID
		s.Planning.IsLoading = true
		s.Planning.LastError = nil

	case PlanningSucceeded:
		if e.Seq != s.Planning.Seq {
			return s
		}
		if len(e.Plans) != len(s.Planning.Plans) {
			s.Planning.Filter = 0
		}
		s.Planning.Plans = e.Plans
		s.Planning.IsLoading = false

	case PlanningFailed:
		if e.Seq != s.Planning.Seq {
			return s
		}
		s.Planning.IsLoading = false
		s.Planning.LastError = e.Err

	case PlanFilterSelected:
		if e.Index >= 0 && e.Index < len(s.Planning.Plans) {
			s.Planning.Filter = e.Index
		}

	case RecordWriteStarted:
		s.Planning.Writing = withKey(s.Planning.Writing, e.Key, true)

	case RecordWriteFinished:
		s.Planning.Writing = withKey(s.Planning.Writing, e.Key, false)

	case RecordCommitted:
		s.Planning.Plans = commitRecord(s.Planning.Plans, e)

	case CoachesRequested:
		s.Coaches.IsLoading = true
		s.Coaches.LastError = nil

	case CoachesSucceeded:
		s.Coaches.Roster.Coaches = e.Coaches
		s.Coaches.IsLoading = false

	case CoachesUnchanged:
		s.Coaches.IsLoading = false

	case CoachesFailed:
		s.Coaches.IsLoading = false
		s.Coaches.LastError = e.Err

	case CoachSelected:
		if e.Coach == nil {
			s.Coaches.Roster.Selected = nil
		} else {
			c := *e.Coach
			s.Coaches.Roster.Selected = &c
		}

	case SessionCleared:
		s = State{Planning: PlanningState{Seq: s.Planning.Seq + 1}}
	}
	return s
}

func withKey(m map[ColumnKey]bool, key ColumnKey, on bool) map[ColumnKey]bool {
	out := make(map[ColumnKey]bool, len(m)+1)
	for k := range m {
		out[k] = true
	}
	if on {
		out[key] = true
	} else {
		delete(out, key)
	}
	return out
}

// commitRecord returns a new plan list with the written record attached to its column. A stale
// plan or column id leaves the list as is.
func commitRecord(plans []domain.Plan, e RecordCommitted) []domain.Plan {
	pi := -1
	for i := range plans {
		if plans[i].ID == e.Key.PlanID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return plans
	}
	ci := plans[pi].Column(e.Key.ColumnID)
	if ci < 0 {
		return plans
	}

	col := plans[pi].Columns[ci]
	base := domain.Record{ID: e.RecordID}
	if current := col.Record(); current != nil && !e.Created {
		base = *current
	}
	col.Records = []domain.Record{e.Patch.ApplyTo(base)}

	columns := make([]domain.PlanningColumn, len(plans[pi].Columns))
	copy(columns, plans[pi].Columns)
	columns[ci] = col

	plan := plans[pi]
	plan.Columns = columns

	out := make([]domain.Plan, len(plans))
	copy(out, plans)
	out[pi] = plan
	return out
}
