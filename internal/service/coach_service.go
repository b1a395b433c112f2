package service

import (
	"context"
	"log"
	"reflect"
	"sync"
	"time"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/state"

	"golang.org/x/sync/errgroup"
)

// RosterResult is the outcome of one reconciliation pass.
type RosterResult struct {
	Roster           domain.CoachRoster
	RosterChanged    bool
	SelectionChanged bool
	// PhotoErr is a *PartialRosterError when some photos could not be loaded. The
	// roster is still valid; those coaches simply carry no photo.
	PhotoErr error
}

// CoachRosterReconciler merges a freshly fetched coach list into the cached roster,
// reusing decoded photos whose descriptor did not change.
type CoachRosterReconciler struct {
	gateway     repository.CoachGateway
	photos      PhotoLoader
	store       *state.Store
	timeout     time.Duration
	concurrency int

	mu    sync.Mutex // one pass at a time, so each pass merges against the previous commit
	selMu sync.Mutex // guards read-then-commit of the selection
}

func NewCoachRosterReconciler(gateway repository.CoachGateway, photos PhotoLoader, store *state.Store, timeout time.Duration, concurrency int) *CoachRosterReconciler {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &CoachRosterReconciler{
		gateway:     gateway,
		photos:      photos,
		store:       store,
		timeout:     timeout,
		concurrency: concurrency,
	}
}

// Refresh fetches the coach list, reconciles it and commits the result in a single
// transition for the list and one for the selection, each only when it changed.
func (r *CoachRosterReconciler) Refresh(ctx context.Context) (RosterResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store.Dispatch(state.CoachesRequested{})

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	fresh, err := r.gateway.FetchCoaches(fetchCtx)
	cancel()
	if err != nil {
		log.Printf("ERROR: Failed to fetch coach list: %v", err)
		r.store.Dispatch(state.CoachesFailed{Err: err})
		return RosterResult{}, err
	}

	prev := r.store.State().Coaches.Roster
	res := r.Reconcile(ctx, prev, fresh)
	if res.PhotoErr != nil {
		log.Printf("WARN: Roster reconciled without some photos: %v", res.PhotoErr)
	}

	r.selMu.Lock()
	defer r.selMu.Unlock()

	// the user may have picked a coach while photos were loading
	if current := r.store.State().Coaches.Roster.Selected; !reflect.DeepEqual(current, prev.Selected) {
		res.Roster.Selected = current
		if len(res.Roster.Coaches) > 0 {
			res.Roster.Selected = resolveSelection(current, res.Roster.Coaches)
		}
		res.SelectionChanged = !reflect.DeepEqual(current, res.Roster.Selected)
	}

	if res.RosterChanged {
		r.store.Dispatch(state.CoachesSucceeded{Coaches: res.Roster.Coaches})
	} else {
		r.store.Dispatch(state.CoachesUnchanged{})
	}
	if res.SelectionChanged {
		r.store.Dispatch(state.CoachSelected{Coach: res.Roster.Selected})
	}
	return res, nil
}

// Select commits an explicit choice of coach. It does not wait for a running Refresh;
// the refresh resolves its selection against this choice when it commits.
func (r *CoachRosterReconciler) Select(coach *domain.Coach) {
	r.selMu.Lock()
	defer r.selMu.Unlock()
	r.store.Dispatch(state.CoachSelected{Coach: coach})
}

// Reconcile merges fresh over prev. Photos are fetched concurrently; a failed photo never
// aborts the pass.
func (r *CoachRosterReconciler) Reconcile(ctx context.Context, prev domain.CoachRoster, fresh []domain.Coach) RosterResult {
	previous := make(map[string]domain.Coach, len(prev.Coaches))
	for _, c := range prev.Coaches {
		previous[c.ID] = c
	}

	merged := make([]domain.Coach, len(fresh))
	var toFetch []int
	for i, f := range fresh {
		merged[i] = f
		merged[i].Profile.Photo = nil

		descriptor := f.Profile.ImageDescriptor
		if descriptor == "" {
			continue
		}
		if old, ok := previous[f.ID]; ok && old.Profile.ImageDescriptor == descriptor && old.Profile.Photo != nil {
			merged[i].Profile.Photo = old.Profile.Photo
			continue
		}
		toFetch = append(toFetch, i)
	}

	failed := r.fetchPhotos(ctx, merged, toFetch)

	res := RosterResult{Roster: domain.CoachRoster{Coaches: merged, Selected: prev.Selected}}
	if len(failed) > 0 {
		res.PhotoErr = &PartialRosterError{Failed: failed}
	}

	if len(merged) > 0 {
		res.Roster.Selected = resolveSelection(prev.Selected, merged)
	}

	res.RosterChanged = !sameCoaches(prev.Coaches, merged)
	res.SelectionChanged = !reflect.DeepEqual(prev.Selected, res.Roster.Selected)
	return res
}

func (r *CoachRosterReconciler) fetchPhotos(ctx context.Context, merged []domain.Coach, indexes []int) map[string]error {
	if len(indexes) == 0 || r.photos == nil {
		return nil
	}

	var (
		mu     sync.Mutex
		failed = make(map[string]error)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, i := range indexes {
		i := i
		g.Go(func() error {
			profile := merged[i].Profile
			photoCtx, cancel := context.WithTimeout(gctx, r.timeout)
			defer cancel()

			photo, err := r.photos.LoadPhoto(photoCtx, profile.ID, profile.ImageDescriptor)
			if err != nil {
				mu.Lock()
				failed[merged[i].ID] = err
				mu.Unlock()
				return nil
			}
			merged[i].Profile.Photo = photo
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

// resolveSelection keeps the selected coach when it is still in the list (taking its
// fresh data), otherwise falls back to the first coach.
func resolveSelection(selected *domain.Coach, merged []domain.Coach) *domain.Coach {
	if selected != nil {
		for i := range merged {
			if merged[i].ID == selected.ID {
				c := merged[i]
				return &c
			}
		}
	}
	c := merged[0]
	return &c
}

func sameCoaches(a, b []domain.Coach) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
