package catalog

import (
	"fmt"

	"festa-server/config"
	"festa-server/models/merchant"
	"festa-server/util"
)

// CatalogApiClientMock embeds mocked logic for the catalog api client
type CatalogApiClientMock struct {
}

// NewCatalogApiClientMock creates a new instance of CatalogApiClientMock
func NewCatalogApiClientMock() *CatalogApiClientMock {
	return &CatalogApiClientMock{}
}

// GetMerchants retrieves the merchant catalog from the local fixture
func (c *CatalogApiClientMock) GetMerchants(eventID string) ([]merchant.Merchant, error) {
	merchants, err := util.ReadMerchantsFromJSON(config.GetResourcePath(config.MERCHANTS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read merchants catalog from json")
		return nil, err
	}
	return merchants, nil
}

// SetCredentials is a no-op for the mock
func (c *CatalogApiClientMock) SetCredentials(apiKey string) {
}
