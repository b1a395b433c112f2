package repository

import (
	"context"

	"alcyxob/training-client/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrNetwork      = RepositoryError("network failure")
	ErrAuthExpired  = RepositoryError("session expired")
	ErrUnauthorized = RepositoryError("unauthorized")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CreateRecordRequest is the body of a first completion of a column.
type CreateRecordRequest struct {
	PlanningID       int64   `json:"planningId"`
	PlanningColumnID int64   `json:"planningColumnId"`
	IsFinish         *bool   `json:"isFinish,omitempty"`
	Note             *string `json:"note,omitempty"`
}

// UpdateRecordRequest patches an existing record; nil fields are not sent.
type UpdateRecordRequest struct {
	RecordID int64   `json:"recordId"`
	IsFinish *bool   `json:"isFinish,omitempty"`
	Note     *string `json:"note,omitempty"`
	Time     *string `json:"time,omitempty"`
}

// SignInResult is what the backend answers to a successful sign-in.
type SignInResult struct {
	Token string
	User  domain.User
}

// PlanGateway is the remote side of plans and records.
//
//go:generate mockgen -source=repository.go -destination=../service/mock_repository_test.go -package=service
type PlanGateway interface {
	FetchPlans(ctx context.Context, date domain.DayBucket, coachID *int64) ([]domain.Plan, error)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (recordID int64, err error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) error
}

// CoachGateway lists the athlete's coaches. Photos are not included, only their descriptors.
type CoachGateway interface {
	FetchCoaches(ctx context.Context) ([]domain.Coach, error)
}

// AuthGateway covers sign-in and password change. Token refresh happens inside the
// remote client and is not part of this interface.
type AuthGateway interface {
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	ChangePassword(ctx context.Context, password string) error
}

// SessionStore is the key-value store for session data (bearer token, signed-in user).
// Get returns ErrNotFound for a missing key.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Session store keys
const (
	KeyBearerToken = "bearer_token"
	KeyUser        = "user"
)
