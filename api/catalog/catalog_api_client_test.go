package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festa-server/api"
	"festa-server/models/merchant"
)

func TestGetMerchants_Success(t *testing.T) {
	// Arrange
	expected := []merchant.Merchant{
		{
			MerchantID:   "m1",
			MerchantName: "El Forn del Born",
			MerchantLat:  41.3847,
			MerchantLon:  2.1819,
			WeeklySchedule: merchant.WeeklySchedule{
				"monday": "08:00-14:00",
			},
		},
	}

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/festa-2026/merchants" {
			t.Errorf("Expected catalog endpoint, got '%s'", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(expected)
	}))
	defer mockServer.Close()

	client := NewCatalogApiClient(api.NewHTTPClient(mockServer.URL))

	// Act
	merchants, err := client.GetMerchants("festa-2026")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(merchants) != 1 {
		t.Fatalf("Expected 1 merchant, got %d", len(merchants))
	}
	if merchants[0].MerchantName != "El Forn del Born" {
		t.Errorf("Expected merchant name to round-trip, got %q", merchants[0].MerchantName)
	}
	if merchants[0].WeeklySchedule["monday"] != "08:00-14:00" {
		t.Errorf("Expected schedule to round-trip, got %q", merchants[0].WeeklySchedule["monday"])
	}
}

func TestGetMerchants_ServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewCatalogApiClient(api.NewHTTPClient(mockServer.URL))

	merchants, err := client.GetMerchants("festa-2026")
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
	if merchants != nil {
		t.Errorf("Expected nil merchants on error, got %v", merchants)
	}
}
