package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
)

// planGateway implements repository.PlanGateway over the planning endpoints.
type planGateway struct {
	client *Client
}

func NewPlanGateway(client *Client) repository.PlanGateway {
	return &planGateway{client: client}
}

// FetchPlans returns every plan of the athlete for date, optionally scoped to one coach.
func (g *planGateway) FetchPlans(ctx context.Context, date domain.DayBucket, coachID *int64) ([]domain.Plan, error) {
	query := url.Values{}
	query.Set("date", date.String())
	if coachID != nil {
		query.Set("coachId", strconv.FormatInt(*coachID, 10))
	}

	env, err := g.client.call(ctx, http.MethodGet, g.client.path("panel/planning/planning-by-athlete")+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var dtos []planDTO
	if err := decodeResult(env, &dtos); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(dtos))
	for _, p := range dtos {
		plans = append(plans, p.toDomain(date, coachID))
	}
	return plans, nil
}

// CreateRecord stores the first record of a column and returns the id the server assigned.
func (g *planGateway) CreateRecord(ctx context.Context, req repository.CreateRecordRequest) (int64, error) {
	env, err := g.client.call(ctx, http.MethodPost, g.client.path("planning/create-record"), req)
	if err != nil {
		return 0, err
	}
	var result struct {
		RecordID int64 `json:"recordId"`
	}
	if err := decodeResult(env, &result); err != nil {
		return 0, err
	}
	if result.RecordID == 0 {
		return 0, fmt.Errorf("%w: create-record answered without a record id", repository.ErrNetwork)
	}
	return result.RecordID, nil
}

func (g *planGateway) UpdateRecord(ctx context.Context, req repository.UpdateRecordRequest) error {
	_, err := g.client.call(ctx, http.MethodPut, g.client.path("planning/update-record"), req)
	return err
}
