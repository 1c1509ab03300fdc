package catalog

import (
	"festa-server/api"
	"festa-server/models/merchant"
)

// CatalogApiClient embeds the common HTTPClient
type CatalogApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewCatalogApiClient creates a new instance of CatalogApiClient
func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// GetMerchants retrieves the merchant catalog for an event
func (c *CatalogApiClient) GetMerchants(eventID string) ([]merchant.Merchant, error) {
	var response []merchant.Merchant
	err := c.Request("GET", "/events/"+eventID+"/merchants", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// SetCredentials stores the API key used for catalog requests
func (c *CatalogApiClient) SetCredentials(apiKey string) {
	c.SetAPIKey(apiKey)
}
