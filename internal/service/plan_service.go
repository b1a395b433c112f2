package service

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/state"
)

// PlanFetchCoordinator fetches the plans of a date. A new fetch supersedes the previous
// one without cancelling it; whichever result arrives for an older sequence number is
// dropped by the reducer.
type PlanFetchCoordinator struct {
	gateway repository.PlanGateway
	store   *state.Store
	timeout time.Duration
	seq     atomic.Uint64
}

func NewPlanFetchCoordinator(gateway repository.PlanGateway, store *state.Store, timeout time.Duration) *PlanFetchCoordinator {
	return &PlanFetchCoordinator{gateway: gateway, store: store, timeout: timeout}
}

// Fetch loads the plans for date and commits them wholesale. On failure the last known
// plans stay in place. ErrSuperseded means a newer fetch was issued while this one ran.
func (c *PlanFetchCoordinator) Fetch(ctx context.Context, date domain.DayBucket, coachID *int64) ([]domain.Plan, error) {
	seq := c.nextSeq()
	c.store.Dispatch(state.PlanningRequested{Seq: seq, Date: date, CoachID: coachID})

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	plans, err := c.gateway.FetchPlans(fetchCtx, date, coachID)
	if err != nil {
		next := c.store.Dispatch(state.PlanningFailed{Seq: seq, Err: err})
		if next.Planning.Seq != seq {
			log.Printf("INFO: Dropping failure of superseded plan fetch #%d (%s): %v", seq, date, err)
			return nil, ErrSuperseded
		}
		log.Printf("ERROR: Failed to fetch plans for %s: %v", date, err)
		return nil, err
	}

	next := c.store.Dispatch(state.PlanningSucceeded{Seq: seq, Plans: plans})
	if next.Planning.Seq != seq {
		log.Printf("INFO: Dropping result of superseded plan fetch #%d (%s)", seq, date)
		return nil, ErrSuperseded
	}
	return plans, nil
}

// nextSeq stays ahead of the store, whose sequence is bumped when a session ends.
func (c *PlanFetchCoordinator) nextSeq() uint64 {
	for {
		cur := c.seq.Load()
		next := cur + 1
		if s := c.store.State().Planning.Seq; s >= next {
			next = s + 1
		}
		if c.seq.CompareAndSwap(cur, next) {
			return next
		}
	}
}
