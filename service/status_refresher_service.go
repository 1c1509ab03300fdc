package services

import (
	"log"
	"math/rand"
	"time"

	"festa-server/dao/redis"
	"festa-server/interaction"
	"festa-server/models/merchant"
	"festa-server/status"
)

// StatusRefresherService periodically re-evaluates merchant statuses so
// card labels and open counts track wall-clock time, and drives the slower
// randomized ambient pulse.
type StatusRefresherService struct {
	merchantDao *redis.RedisMerchantDAO
	engine      *status.Engine
	controller  *interaction.Controller

	// onAmbient receives the merchant picked for an ambient pulse.
	onAmbient func(merchantID string)
}

// NewStatusRefresherService constructs a new refresher with dependencies.
func NewStatusRefresherService(
	merchantDao *redis.RedisMerchantDAO,
	engine *status.Engine,
	controller *interaction.Controller,
) *StatusRefresherService {
	return &StatusRefresherService{
		merchantDao: merchantDao,
		engine:      engine,
		controller:  controller,
		onAmbient: func(merchantID string) {
			log.Printf("[StatusRefresherService] Ambient pulse for merchant %s", merchantID)
		},
	}
}

// SetAmbientCallback overrides the ambient pulse sink.
func (sr *StatusRefresherService) SetAmbientCallback(callback func(merchantID string)) {
	if callback != nil {
		sr.onAmbient = callback
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (sr *StatusRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *StatusRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := sr.RefreshStatuses(); err != nil {
			log.Printf("[StatusRefresherService] RefreshStatuses returned error: %v", err)
		}
	}
}

// StartAmbientPulseJob launches the randomized ambient pulse loop. Each tick
// picks one currently open merchant.
func (sr *StatusRefresherService) StartAmbientPulseJob(minInterval, maxInterval time.Duration) {
	go func() {
		for {
			wait := minInterval
			if maxInterval > minInterval {
				wait += time.Duration(rand.Int63n(int64(maxInterval - minInterval)))
			}
			time.Sleep(wait)
			sr.pulseRandomOpenMerchant()
		}
	}()
}

// RefreshStatuses re-classifies every stored merchant, logs the open count
// and refreshes any visible card so stale labels never survive a tick.
func (sr *StatusRefresherService) RefreshStatuses() error {
	merchants, err := sr.loadAllMerchants()
	if err != nil {
		return err
	}

	now := time.Now()
	openCount := sr.engine.CountOpen(merchants, now)
	log.Printf("[StatusRefresherService] %d/%d merchants open", openCount, len(merchants))

	if sr.controller != nil {
		sr.controller.RefreshCard()
	}
	return nil
}

func (sr *StatusRefresherService) pulseRandomOpenMerchant() {
	merchants, err := sr.loadAllMerchants()
	if err != nil {
		log.Printf("[StatusRefresherService] Ambient pulse skipped: %v", err)
		return
	}

	now := time.Now()
	var open []string
	for i := range merchants {
		result := sr.engine.Classify(&merchants[i], now)
		if result.Status == merchant.StatusOpen || result.Status == merchant.StatusClosingSoon {
			open = append(open, merchants[i].MerchantID)
		}
	}
	if len(open) == 0 {
		return
	}
	sr.onAmbient(open[rand.Intn(len(open))])
}

// loadAllMerchants reads every merchant from the geo index, hydrating visit
// counters so popularity tiers are current.
func (sr *StatusRefresherService) loadAllMerchants() ([]merchant.Merchant, error) {
	ids, err := sr.merchantDao.ListAllMerchantIDs()
	if err != nil {
		return nil, err
	}

	var merchants []merchant.Merchant
	for _, id := range ids {
		m, err := sr.merchantDao.GetMerchant(id)
		if err != nil || m == nil {
			continue
		}
		if visits, err := sr.merchantDao.GetVisitCount(id); err == nil && visits > m.VisitCount {
			m.VisitCount = visits
		}
		merchants = append(merchants, *m)
	}
	return merchants, nil
}
