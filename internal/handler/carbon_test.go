package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

func TestCalculateFootprint_200(t *testing.T) {
	carbon := &mockCarbon{
		calculate: func(trip domain.TripOption) domain.CarbonFootprint {
			assert.Equal(t, "abc", trip.ID)
			return domain.CarbonFootprint{
				TotalEmission: 156.06,
				Breakdown:     domain.CarbonBreakdown{Transport: 1.06, Accommodation: 150, Activities: 5},
				Equivalent:    "equivalent to planting 7 trees for a year, or driving 1301 km by car",
			}
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/carbon/footprint", jsonBody(t, tripOptionFixture("abc")))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, carbon, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.CarbonFootprint
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 156.06, resp.TotalEmission)
	assert.Equal(t, 1.06, resp.Breakdown.Transport)
}

func TestCalculateFootprint_422_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/carbon/footprint", strings.NewReader("nope"))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, &mockCarbon{}, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec.Body).Error.Code)
}

func TestCompareFootprints_200(t *testing.T) {
	carbon := &mockCarbon{
		compare: func(trips []domain.TripOption) []domain.CarbonFootprint {
			require.Len(t, trips, 2)
			return []domain.CarbonFootprint{
				{TotalEmission: 156.06},
				{TotalEmission: 155},
			}
		},
	}

	body := jsonBody(t, []domain.TripOption{tripOptionFixture("a"), tripOptionFixture("b")})
	req := httptest.NewRequest(http.MethodPost, "/api/carbon/compare", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, carbon, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []domain.CarbonFootprint
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 156.06, resp[0].TotalEmission)
}

func TestGetReductionTips_200(t *testing.T) {
	carbon := &mockCarbon{
		reductionTips: func() []domain.CarbonReductionTip {
			return []domain.CarbonReductionTip{
				{ID: 1, Title: "Take public transport", Reduction: 30, Difficulty: domain.TipEasy, Icon: "🚌"},
			}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/carbon/tips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, carbon, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []domain.CarbonReductionTip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Take public transport", resp[0].Title)
}
