package redis

import (
	"context"
	"encoding/json"
	"testing"

	"festa-server/db"
	"festa-server/models/merchant"
)

func TestRedisMerchantDAO_UpsertMerchant_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	testMerchant := merchant.Merchant{
		MerchantID:   "merchant123",
		MerchantLat:  41.3851,
		MerchantLon:  2.1734,
		MerchantName: "Test Merchant",
		WeeklySchedule: merchant.WeeklySchedule{
			"monday": "09:00-13:00",
		},
	}

	// Act
	err := dao.UpsertMerchant(testMerchant)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "merchants_geo_place_v1:merchant123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	// Verify JSON content
	var stored merchant.Merchant
	if err := json.Unmarshal([]byte(storedValue), &stored); err != nil {
		t.Fatalf("Failed to unmarshal stored merchant data: %v", err)
	}

	if stored.MerchantID != testMerchant.MerchantID {
		t.Errorf("Expected MerchantID %s, got %s", testMerchant.MerchantID, stored.MerchantID)
	}
	if stored.WeeklySchedule["monday"] != "09:00-13:00" {
		t.Errorf("Expected schedule to round-trip, got %q", stored.WeeklySchedule["monday"])
	}
}

func TestRedisMerchantDAO_GetMerchant(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	_ = dao.UpsertMerchant(merchant.Merchant{MerchantID: "merchant123", MerchantName: "Test Merchant"})

	m, err := dao.GetMerchant("merchant123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.MerchantName != "Test Merchant" {
		t.Errorf("Expected stored merchant back, got %+v", m)
	}

	// A missing merchant is a nil, nil no-op.
	m, err = dao.GetMerchant("ghost")
	if err != nil {
		t.Fatalf("Expected no error for missing merchant, got %v", err)
	}
	if m != nil {
		t.Errorf("Expected nil for missing merchant, got %+v", m)
	}
}

func TestRedisMerchantDAO_GetNearbyMerchants_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	// Add test merchants
	testMerchant1 := merchant.Merchant{
		MerchantID:   "merchant123",
		MerchantLat:  41.3851,
		MerchantLon:  2.1734,
		MerchantName: "Test Merchant 1",
	}
	testMerchant2 := merchant.Merchant{
		MerchantID:   "merchant456",
		MerchantLat:  41.3860,
		MerchantLon:  2.1740,
		MerchantName: "Test Merchant 2",
	}
	_ = dao.UpsertMerchant(testMerchant1)
	_ = dao.UpsertMerchant(testMerchant2)

	// Act
	merchants, err := dao.GetNearbyMerchants(41.3851, 2.1734, 1000)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(merchants) != 2 {
		t.Errorf("Expected 2 merchants, got %d", len(merchants))
	}

	expectedIDs := map[string]bool{
		"merchant123": true,
		"merchant456": true,
	}
	for _, m := range merchants {
		if !expectedIDs[m.MerchantID] {
			t.Errorf("Unexpected merchant ID: %s", m.MerchantID)
		}
	}
}

func TestRedisMerchantDAO_GetNearbyMerchants_NoResults(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	merchants, err := dao.GetNearbyMerchants(41.3851, 2.1734, 1000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(merchants) != 0 {
		t.Errorf("Expected no merchants, got %d", len(merchants))
	}
}

func TestRedisMerchantDAO_VisitCounter(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	// Missing counter reads as zero.
	count, err := dao.GetVisitCount("merchant123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 visits, got %d", count)
	}

	for i := 1; i <= 3; i++ {
		count, err = dao.IncrVisitCount("merchant123")
		if err != nil {
			t.Fatalf("IncrVisitCount failed: %v", err)
		}
		if count != i {
			t.Errorf("Expected %d visits, got %d", i, count)
		}
	}

	count, _ = dao.GetVisitCount("merchant123")
	if count != 3 {
		t.Errorf("Expected persisted count 3, got %d", count)
	}
}

func TestRedisMerchantDAO_ListAllMerchantIDs(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisMerchantDAO(mockClient)

	_ = dao.UpsertMerchant(merchant.Merchant{MerchantID: "m1"})
	_ = dao.UpsertMerchant(merchant.Merchant{MerchantID: "m2"})

	ids, err := dao.ListAllMerchantIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 ids, got %d", len(ids))
	}
}
