package service

import (
	"context"
	"log"
	"sync"
	"time"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/state"
)

// ApplyResult describes what a record write ended up doing.
type ApplyResult struct {
	Record  *domain.Record `json:"record,omitempty"`
	Created bool           `json:"created"`
	Stale   bool           `json:"stale"` // plan or column gone; nothing was committed locally
}

// RecordReconciler writes completion and note changes for plan columns. Writes for the
// same column never overlap; different columns may write concurrently.
type RecordReconciler struct {
	gateway repository.PlanGateway
	store   *state.Store
	timeout time.Duration

	mu       sync.Mutex
	inFlight map[state.ColumnKey]bool
}

func NewRecordReconciler(gateway repository.PlanGateway, store *state.Store, timeout time.Duration) *RecordReconciler {
	return &RecordReconciler{
		gateway:  gateway,
		store:    store,
		timeout:  timeout,
		inFlight: make(map[state.ColumnKey]bool),
	}
}

// Apply writes patch to the column's record, creating it on first completion.
// onCommitted runs only after the server acknowledged the write and the state holds the
// new record; it never runs on failure. A busy column is rejected with ErrWriteInFlight.
func (r *RecordReconciler) Apply(ctx context.Context, key state.ColumnKey, patch domain.RecordPatch, onCommitted func(domain.Record)) (ApplyResult, error) {
	return r.apply(ctx, key, func(*domain.Record) domain.RecordPatch { return patch }, onCommitted)
}

// apply holds the column for the whole write. The record is read and the patch derived
// only once the column is held, so create vs update is decided against the latest state.
func (r *RecordReconciler) apply(ctx context.Context, key state.ColumnKey, patchFor func(*domain.Record) domain.RecordPatch, onCommitted func(domain.Record)) (ApplyResult, error) {
	if !r.acquire(key) {
		return ApplyResult{}, ErrWriteInFlight
	}
	defer r.release(key)

	column, ok := r.store.State().Planning.Column(key)
	if !ok {
		log.Printf("INFO: Ignoring record write for stale column %d of plan %d", key.ColumnID, key.PlanID)
		return ApplyResult{Stale: true}, nil
	}
	existing := column.Record()
	patch := patchFor(existing).Normalize()
	if patch.IsEmpty() {
		return ApplyResult{Record: existing}, nil
	}

	r.store.Dispatch(state.RecordWriteStarted{Key: key})

	recordID, created, patch, err := r.write(ctx, key, existing, patch)
	if err != nil {
		r.store.Dispatch(state.RecordWriteFinished{Key: key})
		log.Printf("ERROR: Failed to write record of column %d (plan %d): %v", key.ColumnID, key.PlanID, err)
		return ApplyResult{}, err
	}

	next := r.store.Dispatch(state.RecordCommitted{Key: key, RecordID: recordID, Patch: patch, Created: created})
	r.store.Dispatch(state.RecordWriteFinished{Key: key})

	committed, ok := next.Planning.Column(key)
	if !ok {
		log.Printf("INFO: Plan %d was replaced while writing column %d; record %d not committed", key.PlanID, key.ColumnID, recordID)
		return ApplyResult{Stale: true, Created: created}, nil
	}
	record := committed.Record()
	if onCommitted != nil && record != nil {
		onCommitted(*record)
	}
	return ApplyResult{Record: record, Created: created}, nil
}

// write returns the record id, whether it was created, and the part of patch the server accepted.
func (r *RecordReconciler) write(ctx context.Context, key state.ColumnKey, existing *domain.Record, patch domain.RecordPatch) (int64, bool, domain.RecordPatch, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if existing != nil {
		err := r.gateway.UpdateRecord(ctx, repository.UpdateRecordRequest{
			RecordID: existing.ID,
			IsFinish: patch.IsFinish,
			Note:     patch.Note,
			Time:     patch.Time,
		})
		return existing.ID, false, patch, err
	}

	recordID, err := r.gateway.CreateRecord(ctx, repository.CreateRecordRequest{
		PlanningID:       key.PlanID,
		PlanningColumnID: key.ColumnID,
		IsFinish:         patch.IsFinish,
		Note:             patch.Note,
	})
	if err != nil {
		return 0, true, patch, err
	}
	// create-record does not take a time; send it as a follow-up update
	if patch.Time != nil {
		if err := r.gateway.UpdateRecord(ctx, repository.UpdateRecordRequest{RecordID: recordID, Time: patch.Time}); err != nil {
			log.Printf("WARN: Record %d created but its time was not saved: %v", recordID, err)
			patch.Time = nil
		}
	}
	return recordID, true, patch, nil
}

func (r *RecordReconciler) acquire(key state.ColumnKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[key] {
		return false
	}
	r.inFlight[key] = true
	return true
}

func (r *RecordReconciler) release(key state.ColumnKey) {
	r.mu.Lock()
	delete(r.inFlight, key)
	r.mu.Unlock()
}

// ToggleFinish flips the column's completion; a column without a record becomes finished.
func (r *RecordReconciler) ToggleFinish(ctx context.Context, key state.ColumnKey, onCommitted func(domain.Record)) (ApplyResult, error) {
	return r.apply(ctx, key, func(rec *domain.Record) domain.RecordPatch {
		finish := true
		if rec != nil {
			finish = !rec.IsFinish
		}
		return domain.RecordPatch{IsFinish: domain.Bool(finish)}
	}, onCommitted)
}
