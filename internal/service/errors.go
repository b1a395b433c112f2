package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"alcyxob/training-client/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSuperseded           = errors.New("plan fetch superseded by a newer request")
	ErrWriteInFlight        = errors.New("a write for this column is already in flight")
	ErrStaleIdentity        = errors.New("plan or column no longer present")
	ErrNoSession            = errors.New("no active session")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrCoachNotFound        = errors.New("coach not found in roster")
)

// ErrorKind is how a failure is handled: surfaced, silently dropped, or turned into a logout.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNetworkFailure
	KindAuthExpired
	KindStaleIdentity
	KindPartialRosterFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetworkFailure:
		return "network_failure"
	case KindAuthExpired:
		return "auth_expired"
	case KindStaleIdentity:
		return "stale_identity"
	case KindPartialRosterFailure:
		return "partial_roster_failure"
	default:
		return "none"
	}
}

// PartialRosterError lists the coaches whose photo could not be loaded during a
// reconciliation that otherwise succeeded.
type PartialRosterError struct {
	Failed map[string]error // by coach id
}

func (e *PartialRosterError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("photo fetch failed for coaches %s", strings.Join(ids, ", "))
}

// Classify maps an error onto the failure taxonomy.
func Classify(err error) ErrorKind {
	var partial *PartialRosterError
	switch {
	case err == nil, errors.Is(err, ErrSuperseded), errors.Is(err, ErrWriteInFlight):
		return KindNone
	case errors.Is(err, repository.ErrAuthExpired), errors.Is(err, ErrNoSession):
		return KindAuthExpired
	case errors.Is(err, ErrStaleIdentity):
		return KindStaleIdentity
	case errors.As(err, &partial):
		return KindPartialRosterFailure
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, repository.ErrNetwork):
		return KindNetworkFailure
	default:
		return KindNetworkFailure
	}
}
