package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"festa-server/db"
	"festa-server/models/merchant"
)

const MERCHANTS_GEO_KEY_V1 = "merchants_geo_v1"
const MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1 = "merchants_geo_place_v1:%s"

// MERCHANT_VISITS_KEY_FORMAT holds the per-merchant visit counter that
// popularity tiers are derived from.
const MERCHANT_VISITS_KEY_FORMAT = "merchant_visits_v1:%s"

// RedisMerchantDAO handles merchant operations using Redis.
type RedisMerchantDAO struct {
	client db.RedisClient
}

// NewRedisMerchantDAO initializes a RedisMerchantDAO with the Redis client.
func NewRedisMerchantDAO(client db.RedisClient) *RedisMerchantDAO {
	return &RedisMerchantDAO{client: client}
}

// UpsertMerchant stores the merchant as a geolocation with the merchant's JSON data.
func (dao *RedisMerchantDAO) UpsertMerchant(m merchant.Merchant) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1, m.MerchantID)
	return dao.client.AddLocationWithJSON(ctx, MERCHANTS_GEO_KEY_V1, memberKey, m.MerchantLat, m.MerchantLon, m)
}

// GetMerchant retrieves a single merchant by its ID. A missing merchant is
// returned as nil without error so interactions racing a reload degrade
// silently.
func (dao *RedisMerchantDAO) GetMerchant(merchantID string) (*merchant.Merchant, error) {
	memberKey := fmt.Sprintf(MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1, merchantID)
	raw, err := dao.client.Get(memberKey)
	if err != nil {
		return nil, nil
	}
	var m merchant.Merchant
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merchant JSON: %v", err)
	}
	return &m, nil
}

// GetNearbyMerchants retrieves nearby merchants within a given radius (in km).
func (dao *RedisMerchantDAO) GetNearbyMerchants(lat, lon float64, radius float64) ([]merchant.Merchant, error) {
	merchantsJSON, err := dao.client.GetLocationsWithinRadius(MERCHANTS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisMerchantDAO] failed to get merchants: %v", err)
	}

	merchants := make([]merchant.Merchant, len(merchantsJSON))
	for i, merchantJSON := range merchantsJSON {
		if err := json.Unmarshal([]byte(merchantJSON), &merchants[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal merchant JSON: %v", err)
		}
	}
	return merchants, nil
}

// ListAllMerchantIDs returns all merchant IDs present in the geo index.
func (dao *RedisMerchantDAO) ListAllMerchantIDs() ([]string, error) {
	pattern := fmt.Sprintf(MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// IncrVisitCount bumps the merchant's visit counter and returns the new value.
func (dao *RedisMerchantDAO) IncrVisitCount(merchantID string) (int, error) {
	key := fmt.Sprintf(MERCHANT_VISITS_KEY_FORMAT, merchantID)
	count, err := dao.client.Incr(key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment visits for %s: %w", merchantID, err)
	}
	return int(count), nil
}

// GetVisitCount reads the merchant's visit counter. A missing counter reads
// as zero.
func (dao *RedisMerchantDAO) GetVisitCount(merchantID string) (int, error) {
	key := fmt.Sprintf(MERCHANT_VISITS_KEY_FORMAT, merchantID)
	raw, err := dao.client.Get(key)
	if err != nil {
		return 0, nil
	}
	var count int
	if _, err := fmt.Sscanf(raw, "%d", &count); err != nil {
		return 0, fmt.Errorf("visit counter for %s is not an integer: %w", merchantID, err)
	}
	return count, nil
}

// DeleteMerchant removes a merchant's JSON payload and visit counter.
func (dao *RedisMerchantDAO) DeleteMerchant(merchantID string) error {
	memberKey := fmt.Sprintf(MERCHANTS_GEO_PLACE_MEMBER_FORMAT_V1, merchantID)
	if err := dao.client.Del(memberKey); err != nil {
		return fmt.Errorf("failed to delete merchant key %s: %w", memberKey, err)
	}
	visitsKey := fmt.Sprintf(MERCHANT_VISITS_KEY_FORMAT, merchantID)
	if err := dao.client.Del(visitsKey); err != nil {
		return fmt.Errorf("failed to delete visits key %s: %w", visitsKey, err)
	}
	return nil
}
