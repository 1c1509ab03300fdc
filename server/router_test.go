package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockMerchantHandler is a mock implementation of the merchant routes.
type MockMerchantHandler struct{}

func (h *MockMerchantHandler) GetMerchantsNearby(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "merchants nearby"}`))
}

func (h *MockMerchantHandler) GetMerchantStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "open"}`))
}

func (h *MockMerchantHandler) GetOpenCount(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"open_count": 1}`))
}

func (h *MockMerchantHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"visit_count": 1}`))
}

func (h *MockMerchantHandler) GetInfluenceZone(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"polygon": []}`))
}

func (h *MockMerchantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockHandler := &MockMerchantHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandler, router)
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
			name:       "Get Merchants Nearby",
			method:     "GET",
			path:       "/v1/merchants/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "merchants nearby"}`,
		},
		{
			name:       "Get Merchant Status",
			method:     "GET",
			path:       "/v1/merchants/m123/status",
			statusCode: http.StatusOK,
			response:   `{"status": "open"}`,
		},
		{
			name:       "Get Open Count",
			method:     "GET",
			path:       "/v1/merchants/open-count",
			statusCode: http.StatusOK,
			response:   `{"open_count": 1}`,
		},
		{
			name:       "Record Visit",
			method:     "POST",
			path:       "/v1/merchants/m123/visit",
			statusCode: http.StatusOK,
			response:   `{"visit_count": 1}`,
		},
		{
			name:       "Get Influence Zone",
			method:     "GET",
			path:       "/v1/merchants/zone",
			statusCode: http.StatusOK,
			response:   `{"polygon": []}`,
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
			name:       "Visit With Wrong Method",
			method:     "GET",
			path:       "/v1/merchants/m123/visit",
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
