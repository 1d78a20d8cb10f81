package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"monumentscout/internal/models/request_models"
	"monumentscout/internal/models/response_models"
	"monumentscout/pkg/utils"
)

type MockNearbyService struct {
	mock.Mock
}

func (m *MockNearbyService) SearchNearby(ctx context.Context, req request_models.NearbyRequest) ([]response_models.Place, error) {
	args := m.Called(ctx, req)
	places, _ := args.Get(0).([]response_models.Place)
	return places, args.Error(1)
}

type MockExplainService struct {
	mock.Mock
}

func (m *MockExplainService) Explain(ctx context.Context, req request_models.ExplainRequest) (response_models.Explanation, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(response_models.Explanation), args.Error(1)
}

func newRouter(nearby *MockNearbyService, explain *MockExplainService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/nearby", NewNearbyController(nearby).GetNearbyHandler)
	r.POST("/api/explain", NewExplainController(explain).ExplainHandler)
	r.GET("/healthz", NewHealthController().HealthHandler)
	return r
}

func TestNearbyController_GetNearbyHandler(t *testing.T) {
	nearby := new(MockNearbyService)
	nearby.On("SearchNearby", mock.Anything, request_models.NearbyRequest{Lat: "41.4", Lon: "2.17", Radius: "1000"}).
		Return([]response_models.Place{{
			Lat: 41.4036, Lon: 2.1744, DisplayName: "Sagrada Família", Name: "Sagrada Família",
			Type: "place_of_worship", Class: "amenity", Tags: map[string]string{"amenity": "place_of_worship"},
		}}, nil)

	w := httptest.NewRecorder()
	newRouter(nearby, new(MockExplainService)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nearby?lat=41.4&lon=2.17&radius=1000", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"lat":41.4036,"lon":2.1744,"display_name":"Sagrada Família","name":"Sagrada Família","type":"place_of_worship","class":"amenity","tags":{"amenity":"place_of_worship"}}]`, w.Body.String())
	nearby.AssertExpectations(t)
}

func TestNearbyController_EmptyResultIsArray(t *testing.T) {
	nearby := new(MockNearbyService)
	nearby.On("SearchNearby", mock.Anything, mock.Anything).Return([]response_models.Place{}, nil)

	w := httptest.NewRecorder()
	newRouter(nearby, new(MockExplainService)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nearby?lat=1&lon=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestNearbyController_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"missing coordinates", utils.ErrMissingCoordinates, http.StatusBadRequest, `{"error":"Missing latitude or longitude"}`},
		{"upstream failure", fmt.Errorf("%w: boom", utils.ErrLocationFetchFailed), http.StatusInternalServerError, `{"error":"Failed to fetch location data"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearby := new(MockNearbyService)
			nearby.On("SearchNearby", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			newRouter(nearby, new(MockExplainService)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nearby?lat=1", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestExplainController_ExplainHandler(t *testing.T) {
	explain := new(MockExplainService)
	explain.On("Explain", mock.Anything, mock.MatchedBy(func(req request_models.ExplainRequest) bool {
		return req.Name == "Colosseum" && req.Type == "monument" && req.Detailed && req.Language == "es" &&
			req.Lat != nil && *req.Lat == 41.89
	})).Return(response_models.Explanation{
		Name: "Colosseum", Type: "monument", Explanation: "Un anfiteatro.", Detailed: true,
	}, nil)

	body := `{"name":"Colosseum","type":"monument","lat":41.89,"lon":12.49,"detailed":true,"language":"es"}`
	req := httptest.NewRequest(http.MethodPost, "/api/explain", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(new(MockNearbyService), explain).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Colosseum","type":"monument","explanation":"Un anfiteatro.","detailed":true}`, w.Body.String())
	explain.AssertExpectations(t)
}

func TestExplainController_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{"missing name", `{"type":"museum"}`, `{"error":"Missing monument name"}`},
		{"empty name", `{"name":""}`, `{"error":"Missing monument name"}`},
		{"empty body", ``, `{"error":"Missing monument name"}`},
		{"malformed json", `{"name":`, `{"error":"Invalid request body"}`},
		{"wrong detailed type", `{"name":"X","detailed":"yes"}`, `{"error":"Invalid request body"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explain := new(MockExplainService)

			req := httptest.NewRequest(http.MethodPost, "/api/explain", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(new(MockNearbyService), explain).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			explain.AssertNotCalled(t, "Explain", mock.Anything, mock.Anything)
		})
	}
}

func TestExplainController_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{"not configured", &utils.NotConfiguredError{Credential: "OPENROUTER_API_KEY"},
			`{"error":"AI service not configured. Please add OPENROUTER_API_KEY to environment variables."}`},
		{"generation failed", fmt.Errorf("%w: %w", utils.ErrExplanationFailed, utils.ErrEmptyCompletion),
			`{"error":"Failed to generate explanation. Please try again later."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explain := new(MockExplainService)
			explain.On("Explain", mock.Anything, mock.Anything).Return(response_models.Explanation{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/explain", strings.NewReader(`{"name":"Colosseum"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(new(MockNearbyService), explain).ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHealthController(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(new(MockNearbyService), new(MockExplainService)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
