package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/uuid"

	"festa-server/models/merchant"
)

// ReadMerchantsFromJSON loads the merchant catalog from JSON on disk.
// Fixture entries without an ID get a generated one.
func ReadMerchantsFromJSON(filePath string) ([]merchant.Merchant, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var merchants []merchant.Merchant
	if err := json.Unmarshal(data, &merchants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merchants: %w", err)
	}
	for i := range merchants {
		if merchants[i].MerchantID == "" {
			merchants[i].MerchantID = uuid.NewString()
		}
	}
	return merchants, nil
}

// ReadMerchantFromJSON loads a single Merchant from JSON on disk.
func ReadMerchantFromJSON(filePath string) (*merchant.Merchant, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var m merchant.Merchant
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Merchant: %w", err)
	}
	return &m, nil
}

// PrintMerchantsPartially prints key fields of a merchant catalog.
func PrintMerchantsPartially(merchants []merchant.Merchant) {
	fmt.Printf("Merchants loaded: %d\n", len(merchants))
	if len(merchants) > 0 {
		m := merchants[0]
		fmt.Printf("First merchant: %s at %s (%.6f, %.6f)\n",
			m.MerchantName, m.MerchantAddress, m.MerchantLat, m.MerchantLon)
	}
}
