package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockSearchHandler is a mock implementation of SearchHandler.
type MockSearchHandler struct{}

func (h *MockSearchHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "matches"}`))
}

func (h *MockSearchHandler) GetBudgetTiers(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "budget tiers"}`))
}

func (h *MockSearchHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "categories"}`))
}

func (h *MockSearchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockSearchHandler := &MockSearchHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockSearchHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Search Outings",
			method:     "GET",
			path:       "/v1/outings/search",
			statusCode: http.StatusOK,
			response:   `{"message": "matches"}`,
		},
		{
			name:       "Budget Tiers",
			method:     "GET",
			path:       "/v1/outings/budget-tiers",
			statusCode: http.StatusOK,
			response:   `{"message": "budget tiers"}`,
		},
		{
			name:       "Categories",
			method:     "GET",
			path:       "/v1/outings/categories",
			statusCode: http.StatusOK,
			response:   `{"message": "categories"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/outings/search",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
