package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"
)

// coachGateway implements repository.CoachGateway.
type coachGateway struct {
	client *Client
}

func NewCoachGateway(client *Client) repository.CoachGateway {
	return &coachGateway{client: client}
}

func (g *coachGateway) FetchCoaches(ctx context.Context) ([]domain.Coach, error) {
	env, err := g.client.call(ctx, http.MethodGet, g.client.path("user/coach-list"), nil)
	if err != nil {
		return nil, err
	}
	var dtos []coachDTO
	if err := decodeResult(env, &dtos); err != nil {
		return nil, err
	}
	coaches := make([]domain.Coach, 0, len(dtos))
	for _, c := range dtos {
		coaches = append(coaches, c.toDomain())
	}
	return coaches, nil
}

// FetchPhoto downloads the raw profile picture the descriptor points to.
// It returns the body and the Content-Type the backend declared.
func (c *Client) FetchPhoto(ctx context.Context, coachID int64, descriptor string) ([]byte, string, error) {
	query := url.Values{}
	query.Set("path", descriptor)
	path := c.path("user/coach/"+strconv.FormatInt(coachID, 10)+"/profile-picture") + "?" + query.Encode()

	r, err := c.authorized(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	if err := statusError(http.MethodGet, path, r); err != nil {
		return nil, "", err
	}
	return r.body, r.contentType, nil
}
