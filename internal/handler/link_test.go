package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler"
	"github.com/pkordes/planner/internal/handler/gen"
)

func TestCreateLink_201(t *testing.T) {
	linkID := uuid.New()
	svc := &mockLinkServicer{
		create: func(_ context.Context, _ uuid.UUID, title, rawURL string) (domain.Link, error) {
			assert.Equal(t, "Hotel booking", title)
			assert.Equal(t, "https://example.com/booking/42", rawURL)
			return domain.Link{ID: linkID}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Links: svc}), http.MethodPost,
		"/trips/"+uuid.NewString()+"/links",
		map[string]any{"title": "Hotel booking", "url": "https://example.com/booking/42"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp gen.LinkIdResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, linkID, resp.LinkId)
}

func TestCreateLink_422(t *testing.T) {
	svc := &mockLinkServicer{
		create: func(context.Context, uuid.UUID, string, string) (domain.Link, error) {
			return domain.Link{}, domain.Invalid("url must be an absolute http(s) URL")
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Links: svc}), http.MethodPost,
		"/trips/"+uuid.NewString()+"/links", map[string]any{"title": "Hotel booking", "url": "hotel"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "url must be an absolute http(s) URL", decodeError(t, rec).Message)
}

func TestListLinks_200_Paginated(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
			gotParams = p
			return domain.Page[domain.Link]{
				Items:  []domain.Link{{ID: uuid.New(), Title: "Hotel booking", URL: "https://example.com", CreatedAt: time.Now()}},
				Total:  3,
				Params: p,
			}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links?page=2&limit=500", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 100}, gotParams)

	var resp gen.LinkList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Hotel booking", resp.Data[0].Title)
	assert.Equal(t, gen.Pagination{Page: 2, Limit: 100, Total: 3}, resp.Pagination)
}

func TestListLinks_Defaults(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
			gotParams = p
			return domain.Page[domain.Link]{Items: []domain.Link{}, Params: p}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotParams)
}

func TestListLinks_400_NonNumericPage(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{Links: &mockLinkServicer{}}), http.MethodGet, "/trips/"+uuid.NewString()+"/links?page=two", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListLinks_404(t *testing.T) {
	svc := &mockLinkServicer{
		listByTrip: func(context.Context, uuid.UUID, domain.PaginationParams) (domain.Page[domain.Link], error) {
			return domain.Page[domain.Link]{}, domain.ErrTripNotFound
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Links: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/links", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
