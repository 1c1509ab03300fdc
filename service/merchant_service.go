package services

import (
	"fmt"

	"festa-server/dao/redis"
	"festa-server/geometry"
	"festa-server/mapwidget"
	"festa-server/models/merchant"
	"festa-server/status"
)

// INFLUENCE_ZONE_RADIUS_KM buffers each merchant point when building a
// group's influence zone.
const INFLUENCE_ZONE_RADIUS_KM = 0.25

type MerchantService struct {
	merchantDao *redis.RedisMerchantDAO
	geo         geometry.Geometry
}

// NewMerchantService constructs a new MerchantService with its dependencies.
func NewMerchantService(
	merchantDao *redis.RedisMerchantDAO,
	geo geometry.Geometry) *MerchantService {

	return &MerchantService{
		merchantDao: merchantDao,
		geo:         geo,
	}
}

func (ms *MerchantService) GetMerchantsNearby(lat, lon, radius float64) ([]merchant.Merchant, error) {
	return ms.merchantDao.GetNearbyMerchants(lat, lon, radius)
}

func (ms *MerchantService) GetMerchant(merchantID string) (*merchant.Merchant, error) {
	return ms.merchantDao.GetMerchant(merchantID)
}

// RecordVisit bumps the merchant's visit counter and returns the fresh
// popularity tier.
func (ms *MerchantService) RecordVisit(merchantID string) (int, merchant.Tier, error) {
	count, err := ms.merchantDao.IncrVisitCount(merchantID)
	if err != nil {
		return 0, merchant.TierNormal, err
	}
	return count, status.Popularity(count), nil
}

// InfluenceZone builds the buffered union polygon around all merchants of a
// group. Computed once per group, not per interaction.
func (ms *MerchantService) InfluenceZone(groupID string) (geometry.Polygon, error) {
	ids, err := ms.merchantDao.ListAllMerchantIDs()
	if err != nil {
		return nil, err
	}

	var points []mapwidget.GeoPoint
	for _, id := range ids {
		m, err := ms.merchantDao.GetMerchant(id)
		if err != nil || m == nil {
			continue
		}
		if groupID != "" && m.GroupID != groupID {
			continue
		}
		points = append(points, mapwidget.GeoPoint{Lat: m.MerchantLat, Lon: m.MerchantLon})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no merchants found for group %q", groupID)
	}

	return ms.geo.BufferAndUnion(points, INFLUENCE_ZONE_RADIUS_KM)
}
