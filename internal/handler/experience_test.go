package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// ---- GET /api/experiences --------------------------------------------------

func TestListExperiences_200_ParsesQueryParams(t *testing.T) {
	experiences := &mockExperiences{
		recommend: func(interests []string, location string, limit int) []domain.Experience {
			assert.Equal(t, []string{"tea", "culture"}, interests)
			assert.Equal(t, "Hangzhou", location)
			assert.Equal(t, 2, limit)
			return []domain.Experience{{ID: 2, Title: "Longjing Tea Picking"}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/experiences?interests=tea,%20culture&location=Hangzhou&limit=2", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []domain.Experience
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Longjing Tea Picking", resp[0].Title)
}

func TestListExperiences_422_BadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/experiences?limit=lots", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, &mockExperiences{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "limit must be an integer", decodeError(t, rec.Body).Error.Message)
}

// ---- GET /api/experiences/search -------------------------------------------

func TestSearchExperiences_200(t *testing.T) {
	experiences := &mockExperiences{
		search: func(query, location string) []domain.Experience {
			assert.Equal(t, "silk", query)
			assert.Empty(t, location)
			return []domain.Experience{{ID: 4, Title: "Silk Weaving Workshop"}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/experiences/search?q=silk", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// ---- GET /api/experiences/{id} ---------------------------------------------

func TestGetExperience_200(t *testing.T) {
	experiences := &mockExperiences{
		getByID: func(id int) (domain.Experience, error) {
			assert.Equal(t, 3, id)
			return domain.Experience{ID: 3, Title: "Romance of the Song Dynasty Show"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/experiences/3", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetExperience_404(t *testing.T) {
	experiences := &mockExperiences{
		getByID: func(int) (domain.Experience, error) {
			return domain.Experience{}, fmt.Errorf("lookup: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/experiences/404", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "experience not found", resp.Error.Message)
}

func TestGetExperience_422_NonNumericID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/experiences/west-lake", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, &mockExperiences{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "experience id must be an integer", decodeError(t, rec.Body).Error.Message)
}

// ---- reviews ---------------------------------------------------------------

func TestListReviews_200(t *testing.T) {
	experiences := &mockExperiences{
		reviews: func(_ context.Context, experienceID int) ([]domain.ExperienceReview, error) {
			assert.Equal(t, 4, experienceID)
			return []domain.ExperienceReview{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/experiences/4/reviews", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSubmitReview_201_PathIDWins(t *testing.T) {
	experiences := &mockExperiences{
		submitReview: func(_ context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error) {
			assert.Equal(t, 4, r.ExperienceID, "path id overrides the body's id")
			r.ID = "r1"
			return r, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"experience_id": 999,
		"user_id":       7,
		"user_name":     "traveller",
		"rating":        5,
		"comment":       "Wonderful afternoon",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/experiences/4/reviews", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp domain.ExperienceReview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, 4, resp.ExperienceID)
}

func TestSubmitReview_422_ValidationError(t *testing.T) {
	experiences := &mockExperiences{
		submitReview: func(_ context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error) {
			return domain.ExperienceReview{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"rating": 9, "comment": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/experiences/1/reviews", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "rating must be between 1 and 5", decodeError(t, rec.Body).Error.Message)
}

// ---- bookings --------------------------------------------------------------

func TestCreateBooking_201(t *testing.T) {
	experiences := &mockExperiences{
		book: func(_ context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error) {
			b.ID = "b1"
			b.Status = domain.BookingConfirmed
			b.TotalPrice = 900
			return b, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"experience_id": 2,
		"user_id":       7,
		"date":          time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
		"participants":  3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp domain.ExperienceBooking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, domain.BookingConfirmed, resp.Status)
	assert.Equal(t, 900.0, resp.TotalPrice)
}

func TestCreateBooking_404_UnknownExperience(t *testing.T) {
	experiences := &mockExperiences{
		book: func(_ context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error) {
			return domain.ExperienceBooking{}, fmt.Errorf("book: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"experience_id": 404, "participants": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "experience not found", decodeError(t, rec.Body).Error.Message)
}

func TestListBookings_200(t *testing.T) {
	experiences := &mockExperiences{
		listBookings: func(_ context.Context, userID int) ([]domain.ExperienceBooking, error) {
			assert.Equal(t, 7, userID)
			return []domain.ExperienceBooking{{ID: "b1", UserID: 7}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?user_id=7", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, experiences).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []domain.ExperienceBooking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
}

func TestListBookings_422_MissingUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, &mockExperiences{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "user_id must be an integer", decodeError(t, rec.Body).Error.Message)
}
