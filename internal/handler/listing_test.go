package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/handler"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/service"
)

type canteenListing struct {
	Canteens   []domain.Canteen `json:"canteens"`
	TotalItems int              `json:"total_items"`
	Pagination *listing.Meta    `json:"pagination"`
	Username   string           `json:"username"`
	Visits     int              `json:"visits"`
}

func TestListCanteens_PageAndSessionMerged(t *testing.T) {
	var gotPage domain.PageRequest
	h := newTestServer(t, handler.Services{
		Canteens: &mockCanteens{
			list: func(_ context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
				gotPage = p
				return pageOf(25, p, domain.Canteen{ID: 11, Name: "North Hall"}), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/canteens?page=2", nil, asJSON, withCookie(userCookie))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PageRequest{Page: 2, Size: domain.DefaultPageSize}, gotPage)
	body := decodeBody[canteenListing](t, rec)
	assert.Len(t, body.Canteens, 1)
	assert.Equal(t, 25, body.TotalItems)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 2, body.Pagination.Current)
	assert.Equal(t, "alice", body.Username)
	assert.Equal(t, 4, body.Visits)
}

func TestListCanteens_EmptyHasNoPagination(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Canteens: &mockCanteens{
			list: func(_ context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
				return pageOf[domain.Canteen](0, p), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/canteens?format=json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.NotContains(t, body, "pagination")
	assert.Equal(t, []any{}, body["canteens"])
	assert.NotContains(t, body, "username", "anonymous sessions add nothing")
}

func TestListCanteens_BadPageRejectedBeforeQuery(t *testing.T) {
	called := false
	h := newTestServer(t, handler.Services{
		Canteens: &mockCanteens{
			list: func(_ context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
				called = true
				return pageOf[domain.Canteen](0, p), nil
			},
		},
	})

	for _, page := range []string{"abc", "0", "-3", "1.5"} {
		rec := do(t, h, http.MethodGet, "/canteens?page="+page, nil, asJSON)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "page=%s", page)
		assert.Equal(t, "bad_request", decodeBody[errorBody](t, rec).Error.Code)
	}
	assert.False(t, called)
}

func TestListCanteens_HTML(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Canteens: &mockCanteens{
			list: func(_ context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
				return pageOf(1, p, domain.Canteen{ID: 11, Name: "North Hall"}), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/canteens", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `href="/canteens/11/windows"`)
}

func TestListCanteens_ServiceErrorIs500(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Canteens: &mockCanteens{
			list: func(context.Context, domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
				return listing.PageResult[domain.Canteen]{}, errors.New("connection reset")
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/canteens", nil, asJSON)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "internal server error", body.Error.Message)
}

func TestListWindows_UnknownCanteenIs404(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Windows: &mockWindows{
			listByCanteen: func(context.Context, int64, domain.PageRequest) (domain.Canteen, listing.PageResult[domain.Window], error) {
				return domain.Canteen{}, listing.PageResult[domain.Window]{}, domain.ErrNotFound
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/canteens/99/windows", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestListWindows_NonNumericIDNeverRoutes(t *testing.T) {
	h := newTestServer(t, handler.Services{Windows: &mockWindows{}})

	rec := do(t, h, http.MethodGet, "/canteens/abc/windows", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDishes_Filters(t *testing.T) {
	var got domain.DishFilter
	h := newTestServer(t, handler.Services{
		Dishes: &mockDishes{
			list: func(_ context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error) {
				got = f
				return pageOf(1, p, domain.Dish{ID: 1, Name: "Rice"}), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/dishes?name=+ri+&window_id=3&tag_id=8", nil, asJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ri", got.NamePrefix)
	require.NotNil(t, got.WindowID)
	assert.Equal(t, int64(3), *got.WindowID)
	require.NotNil(t, got.TagID)
	assert.Equal(t, int64(8), *got.TagID)
	assert.Equal(t, "ri", decodeBody[map[string]any](t, rec)["name"])
}

func TestListDishes_BadFilterIs400(t *testing.T) {
	h := newTestServer(t, handler.Services{Dishes: &mockDishes{}})

	for _, q := range []string{"window_id=x", "tag_id=0"} {
		rec := do(t, h, http.MethodGet, "/dishes?"+q, nil, asJSON)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestListWindowDishes_PassesWindowAndName(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Dishes: &mockDishes{
			listByWindow: func(_ context.Context, windowID int64, name string, p domain.PageRequest) (domain.Window, listing.PageResult[domain.Dish], error) {
				assert.Equal(t, int64(5), windowID)
				assert.Equal(t, "no", name)
				return domain.Window{ID: 5, Name: "Noodles"}, pageOf(1, p, domain.Dish{ID: 2, WindowID: 5, Name: "Noodle soup"}), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/windows/5/dishes?name=no", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Noodle soup")
	assert.Contains(t, rec.Body.String(), "<h1>Noodles</h1>")
}

func TestDishDetail_CombinesDishAndRemarks(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Dishes: &mockDishes{
			detail: func(_ context.Context, id int64) (service.DishDetail, error) {
				return service.DishDetail{
					Dish:        domain.Dish{ID: id, WindowID: 5, Name: "Tofu", PriceCents: 850},
					Window:      domain.Window{ID: 5, Name: "Grill"},
					Rating:      4.5,
					RatingCount: 2,
				}, nil
			},
		},
		Remarks: &mockRemarks{
			listByDish: func(_ context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error) {
				return pageOf(2, p,
					domain.Remark{ID: 1, DishID: dishID, Username: "alice", Rating: 5, Content: "great"},
					domain.Remark{ID: 2, DishID: dishID, Username: "bob", Rating: 4},
				), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/dishes/7", nil, asJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Len(t, body["remarks"], 2)
	assert.InDelta(t, 4.5, body["rating"], 0.001)
	assert.EqualValues(t, 2, body["total_items"])

	rec = do(t, h, http.MethodGet, "/dishes/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "8.50")
	assert.Contains(t, html, "great")
	assert.Contains(t, html, "4.5")
}

func TestListTags_PrefixAndDishTags(t *testing.T) {
	h := newTestServer(t, handler.Services{
		Tags: &mockTags{
			list: func(_ context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
				assert.Equal(t, "sp", prefix)
				return pageOf(1, p, domain.Tag{ID: 1, Name: "spicy"}), nil
			},
			listByDish: func(_ context.Context, dishID int64, p domain.PageRequest) (domain.Dish, listing.PageResult[domain.Tag], error) {
				return domain.Dish{ID: dishID, Name: "Tofu"}, pageOf(1, p, domain.Tag{ID: 1, Name: "spicy"}), nil
			},
		},
	})

	rec := do(t, h, http.MethodGet, "/tags?name=sp", nil, asJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[map[string]any](t, rec)["tags"], 1)

	rec = do(t, h, http.MethodGet, "/dishes/3/tags", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tofu")
	assert.Contains(t, rec.Body.String(), "spicy")
}
