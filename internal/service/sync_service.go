package service

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/training-client/internal/calendar"
	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/state"
)

var ErrPlanIndexOutOfRange = errors.New("plan index out of range")

// SyncDeps groups what the orchestrator is wired with.
type SyncDeps struct {
	Pager     *calendar.Pager
	Clock     calendar.Clock
	Store     *state.Store
	Plans     *PlanFetchCoordinator
	Roster    *CoachRosterReconciler
	Records   *RecordReconciler
	Session   repository.SessionStore
	Notifier  Notifier
	Navigator Navigator
}

// SyncOrchestrator ties the calendar pager to plan and roster synchronization. UI
// callbacks enter here; failures are turned into notifications or a session end.
type SyncOrchestrator struct {
	SyncDeps
	unsubscribe func()
}

func NewSyncOrchestrator(deps SyncDeps) *SyncOrchestrator {
	if deps.Clock == nil {
		deps.Clock = calendar.SystemClock{}
	}
	o := &SyncOrchestrator{SyncDeps: deps}
	// pointer input follows the selected coach's blocked flag
	o.unsubscribe = deps.Store.Subscribe(func(s state.State) {
		deps.Pager.SetBlocked(s.Coaches.Roster.IsBlocked())
	})
	return o
}

// Close detaches the orchestrator from the store.
func (o *SyncOrchestrator) Close() {
	if o.unsubscribe != nil {
		o.unsubscribe()
	}
}

// --- Calendar callbacks ---

// OnDateSelected handles a tap on a day and (re)loads its plans, also when the same day
// is tapped again.
func (o *SyncOrchestrator) OnDateSelected(ctx context.Context, d domain.DayBucket) (calendar.Update, error) {
	up, err := o.Pager.SelectDate(d)
	if err != nil {
		return up, err
	}
	_ = o.loadPlan(ctx, up.Selection.SelectedDate)
	return up, nil
}

// OnMonthChanged handles the month carousel, with an optional explicit date.
func (o *SyncOrchestrator) OnMonthChanged(ctx context.Context, month time.Month, fullDate *domain.DayBucket) (calendar.Update, error) {
	up, err := o.Pager.NavigateMonth(month, fullDate)
	if err != nil {
		return up, err
	}
	if up.SelectionChanged {
		_ = o.loadPlan(ctx, up.Selection.SelectedDate)
	}
	return up, nil
}

// OnFullDateChanged handles the year picker.
func (o *SyncOrchestrator) OnFullDateChanged(ctx context.Context, d domain.DayBucket) calendar.Update {
	up := o.Pager.JumpTo(d)
	if up.SelectionChanged {
		_ = o.loadPlan(ctx, up.Selection.SelectedDate)
	}
	return up
}

func (o *SyncOrchestrator) OnScroll(ev calendar.ScrollEvent) (calendar.Update, error) {
	return o.Pager.OnScroll(ev)
}

func (o *SyncOrchestrator) OnEndReached() (calendar.Update, error) {
	return o.Pager.OnEndReached()
}

// OnMomentumScrollEnd settles a scroll. A cross-year settle selects a new date, whose
// plans are loaded.
func (o *SyncOrchestrator) OnMomentumScrollEnd(ctx context.Context, ev calendar.ScrollEvent) (calendar.Update, error) {
	up, err := o.Pager.OnMomentumScrollEnd(ev)
	if err != nil {
		return up, err
	}
	if up.SelectionChanged {
		_ = o.loadPlan(ctx, up.Selection.SelectedDate)
	}
	return up, nil
}

// --- Plans and roster ---

// RefreshPlan reloads the plans of the selected date, then the roster.
func (o *SyncOrchestrator) RefreshPlan(ctx context.Context) error {
	return o.loadPlan(ctx, o.Pager.Selection().SelectedDate)
}

// RefreshRoster reloads the coach list on its own.
func (o *SyncOrchestrator) RefreshRoster(ctx context.Context) error {
	return o.refreshRoster(ctx)
}

// StartSession loads everything for a freshly signed-in user.
func (o *SyncOrchestrator) StartSession(ctx context.Context) error {
	return o.RefreshPlan(ctx)
}

func (o *SyncOrchestrator) loadPlan(ctx context.Context, date domain.DayBucket) error {
	coachID := o.Store.State().Coaches.Roster.SelectedCoachID()
	if _, err := o.Plans.Fetch(ctx, date, coachID); err != nil {
		o.handleError(ctx, err)
		return err
	}
	// a coach may have blocked the athlete since the last refresh
	return o.refreshRoster(ctx)
}

func (o *SyncOrchestrator) refreshRoster(ctx context.Context) error {
	before := o.Store.State().Coaches.Roster.SelectedCoachID()

	res, err := o.Roster.Refresh(ctx)
	if err != nil {
		o.handleError(ctx, err)
		return err
	}
	if res.PhotoErr != nil {
		o.handleError(ctx, res.PhotoErr)
	}

	after := res.Roster.SelectedCoachID()
	if res.SelectionChanged && !sameCoachID(before, after) {
		// plans are scoped by coach; the roster is already fresh so only the plan is fetched
		date := o.Pager.Selection().SelectedDate
		if _, err := o.Plans.Fetch(ctx, date, after); err != nil {
			o.handleError(ctx, err)
			return err
		}
	}
	return nil
}

// SelectCoach switches the selected coach and reloads the plans for it.
func (o *SyncOrchestrator) SelectCoach(ctx context.Context, coachID string) error {
	coach := o.Store.State().Coaches.Roster.Find(coachID)
	if coach == nil {
		return ErrCoachNotFound
	}
	o.Roster.Select(coach)

	date := o.Pager.Selection().SelectedDate
	if _, err := o.Plans.Fetch(ctx, date, o.Store.State().Coaches.Roster.SelectedCoachID()); err != nil {
		o.handleError(ctx, err)
		return err
	}
	return nil
}

// SelectPlanIndex picks which of the date's plans is shown.
func (o *SyncOrchestrator) SelectPlanIndex(i int) error {
	if i < 0 || i >= len(o.Store.State().Planning.Plans) {
		return ErrPlanIndexOutOfRange
	}
	o.Store.Dispatch(state.PlanFilterSelected{Index: i})
	return nil
}

// --- Records ---

// ApplyRecord writes patch to a column. onCommitted runs after the write is acknowledged.
func (o *SyncOrchestrator) ApplyRecord(ctx context.Context, key state.ColumnKey, patch domain.RecordPatch, onCommitted func(domain.Record)) (ApplyResult, error) {
	res, err := o.Records.Apply(ctx, key, patch, onCommitted)
	if err != nil {
		o.handleError(ctx, err)
	}
	return res, err
}

func (o *SyncOrchestrator) ToggleFinish(ctx context.Context, key state.ColumnKey, onCommitted func(domain.Record)) (ApplyResult, error) {
	res, err := o.Records.ToggleFinish(ctx, key, onCommitted)
	if err != nil {
		o.handleError(ctx, err)
	}
	return res, err
}

// SaveNote stores a note; the editor should close from onCommitted, never before.
func (o *SyncOrchestrator) SaveNote(ctx context.Context, key state.ColumnKey, note string, onCommitted func(domain.Record)) (ApplyResult, error) {
	return o.ApplyRecord(ctx, key, domain.RecordPatch{Note: domain.String(note)}, onCommitted)
}

// --- Session ---

// EndSession drops the token and every piece of user state, then sends the UI back to
// sign-in. Fetches still in flight are discarded when they land.
func (o *SyncOrchestrator) EndSession(ctx context.Context, reason string) {
	for _, key := range []string{repository.KeyBearerToken, repository.KeyUser} {
		if err := o.Session.Delete(ctx, key); err != nil {
			log.Printf("WARN: Failed to delete session key %s: %v", key, err)
		}
	}
	o.Store.Dispatch(state.SessionCleared{})
	o.Pager.Reset(o.Clock.Today())
	o.Navigator.Reset(domain.ScreenSignIn)
	if reason != "" {
		o.notify(LevelInfo, KindAuthExpired, reason)
	}
	log.Printf("INFO: Session ended (%s)", reasonOrLogout(reason))
}

func (o *SyncOrchestrator) handleError(ctx context.Context, err error) {
	kind := Classify(err)
	switch kind {
	case KindAuthExpired:
		log.Printf("WARN: Session expired: %v", err)
		o.EndSession(ctx, "Your session has expired, please sign in again")
	case KindNetworkFailure:
		o.notify(LevelError, kind, "Could not reach the server, please try again")
	case KindPartialRosterFailure, KindStaleIdentity:
		log.Printf("INFO: %s: %v", kind, err)
	}
}

func (o *SyncOrchestrator) notify(level Level, kind ErrorKind, message string) {
	if o.Notifier == nil {
		return
	}
	o.Notifier.Notify(Notification{Level: level, Kind: kind.String(), Message: message, At: time.Now()})
}

// --- Read views ---

type PlanningView struct {
	Date            domain.DayBucket `json:"date"`
	Plans           []domain.Plan    `json:"plans"`
	Filter          int              `json:"filter"`
	Visible         *domain.Plan     `json:"visible,omitempty"`
	IsLoading       bool             `json:"isLoading"`
	IsLoadingRecord bool             `json:"isLoadingRecord"`
	Error           string           `json:"error,omitempty"`
}

type RosterView struct {
	Coaches   []domain.Coach `json:"coaches"`
	Selected  *domain.Coach  `json:"selected,omitempty"`
	IsLoading bool           `json:"isLoading"`
	Blocked   bool           `json:"blocked"`
}

func (o *SyncOrchestrator) CalendarView() calendar.View {
	return o.Pager.View()
}

func (o *SyncOrchestrator) PlanningView() PlanningView {
	p := o.Store.State().Planning
	v := PlanningView{
		Date:            p.Date,
		Plans:           p.Plans,
		Filter:          p.Filter,
		IsLoading:       p.IsLoading,
		IsLoadingRecord: p.IsLoadingRecord(),
	}
	if plan, ok := p.Visible(); ok {
		v.Visible = &plan
	}
	if p.LastError != nil {
		v.Error = p.LastError.Error()
	}
	return v
}

func (o *SyncOrchestrator) RosterView() RosterView {
	c := o.Store.State().Coaches
	return RosterView{
		Coaches:   c.Roster.Coaches,
		Selected:  c.Roster.Selected,
		IsLoading: c.IsLoading,
		Blocked:   c.Roster.IsBlocked(),
	}
}

// CoachPhoto returns the cached photo of a coach, if one was loaded.
func (o *SyncOrchestrator) CoachPhoto(coachID string) (*domain.ProfilePhoto, bool) {
	coach := o.Store.State().Coaches.Roster.Find(coachID)
	if coach == nil || coach.Profile.Photo == nil {
		return nil, false
	}
	return coach.Profile.Photo, true
}

func sameCoachID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func reasonOrLogout(reason string) string {
	if reason == "" {
		return "logout"
	}
	return reason
}
