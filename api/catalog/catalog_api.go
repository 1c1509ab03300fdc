package catalog

import "festa-server/models/merchant"

// CatalogAPI defines the interface for fetching the event's merchant catalog
type CatalogAPI interface {
	GetMerchants(eventID string) ([]merchant.Merchant, error)
	SetCredentials(apiKey string)
}
