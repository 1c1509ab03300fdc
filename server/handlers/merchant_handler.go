package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"festa-server/dao/redis"
	"festa-server/models/merchant"
	"festa-server/service"
	"festa-server/status"
)

const (
	LAT_QUERY_ARG     = "lat"
	LON_QUERY_ARG     = "lon"
	RADIUS_QUERY_ARG  = "radius"
	VERBOSE_QUERY_ARG = "verbose"
	GROUP_QUERY_ARG   = "group"
)

// MerchantWithStatus pairs a Merchant with its freshly computed status.
type MerchantWithStatus struct {
	Merchant merchant.Merchant     `json:"merchant"`
	Status   merchant.StatusResult `json:"status"`
	Visual   merchant.VisualState  `json:"visual"`
}

// MinifiedMerchant is the small form returned when verbose=false.
type MinifiedMerchant struct {
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
	StatusClass  string `json:"status_class"`
	PulseClass   string `json:"pulse_class"`
	Label        string `json:"label"`
	VisitCount   int    `json:"visit_count"`
}

type MerchantHandler struct {
	merchantDao     *redis.RedisMerchantDAO
	engine          *status.Engine
	merchantService *services.MerchantService
}

func NewMerchantHandler(
	merchantDao *redis.RedisMerchantDAO,
	engine *status.Engine,
	merchantService *services.MerchantService) *MerchantHandler {

	return &MerchantHandler{
		merchantDao:     merchantDao,
		engine:          engine,
		merchantService: merchantService,
	}
}

// GetMerchantsNearby handles GET /v1/merchants/nearby
func (h *MerchantHandler) GetMerchantsNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lon, radius, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed merchants
	merchants, err := h.merchantDao.GetNearbyMerchants(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby merchants:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Decorate with freshly computed status at request time
	decorated := h.decorate(merchants)

	// 4) Transform according to verbose flag
	result := h.transform(decorated, verbose)

	// 5) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetMerchantStatus handles GET /v1/merchants/{id}/status
func (h *MerchantHandler) GetMerchantStatus(w http.ResponseWriter, r *http.Request) {
	merchantID := mux.Vars(r)["id"]

	m, err := h.merchantDao.GetMerchant(merchantID)
	if err != nil {
		log.Println("Error loading merchant:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if m == nil {
		http.Error(w, "Merchant not found", http.StatusNotFound)
		return
	}
	h.hydrateVisits(m)

	now := time.Now()
	response := MerchantWithStatus{
		Merchant: *m,
		Status:   h.engine.Classify(m, now),
		Visual:   h.engine.VisualState(m, now),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GetOpenCount handles GET /v1/merchants/open-count
func (h *MerchantHandler) GetOpenCount(w http.ResponseWriter, r *http.Request) {
	ids, err := h.merchantDao.ListAllMerchantIDs()
	if err != nil {
		log.Println("Error listing merchants:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var merchants []merchant.Merchant
	for _, id := range ids {
		m, err := h.merchantDao.GetMerchant(id)
		if err != nil || m == nil {
			continue
		}
		merchants = append(merchants, *m)
	}

	count := h.engine.CountOpen(merchants, time.Now())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]int{"open_count": count, "total": len(merchants)})
}

// RecordVisit handles POST /v1/merchants/{id}/visit
func (h *MerchantHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	merchantID := mux.Vars(r)["id"]

	count, tier, err := h.merchantService.RecordVisit(merchantID)
	if err != nil {
		log.Println("Error recording visit:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"merchant_id": merchantID,
		"visit_count": count,
		"tier":        tier,
	})
}

// GetInfluenceZone handles GET /v1/merchants/zone?group={groupID}
func (h *MerchantHandler) GetInfluenceZone(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get(GROUP_QUERY_ARG)

	polygon, err := h.merchantService.InfluenceZone(groupID)
	if err != nil {
		log.Println("Error building influence zone:", err)
		http.Error(w, "No zone available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"group":   groupID,
		"polygon": polygon,
	})
}

func (h *MerchantHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, verbose bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// decorate computes status and visual state for each merchant at request
// time. Statuses are never reused from an earlier render.
func (h *MerchantHandler) decorate(merchants []merchant.Merchant) []MerchantWithStatus {
	now := time.Now()
	out := make([]MerchantWithStatus, 0, len(merchants))
	for i := range merchants {
		h.hydrateVisits(&merchants[i])
		out = append(out, MerchantWithStatus{
			Merchant: merchants[i],
			Status:   h.engine.Classify(&merchants[i], now),
			Visual:   h.engine.VisualState(&merchants[i], now),
		})
	}
	// sort by visit count desc so popular merchants list first
	sort.Slice(out, func(i, j int) bool {
		return out[i].Merchant.VisitCount > out[j].Merchant.VisitCount
	})
	return out
}

// hydrateVisits merges the live Redis visit counter into the merchant.
func (h *MerchantHandler) hydrateVisits(m *merchant.Merchant) {
	if visits, err := h.merchantDao.GetVisitCount(m.MerchantID); err == nil && visits > m.VisitCount {
		m.VisitCount = visits
	}
}

func (h *MerchantHandler) transform(decorated []MerchantWithStatus, verbose bool) interface{} {
	if verbose {
		return decorated
	}
	// minify
	min := make([]MinifiedMerchant, 0, len(decorated))
	for _, d := range decorated {
		min = append(min, MinifiedMerchant{
			MerchantID:   d.Merchant.MerchantID,
			MerchantName: d.Merchant.MerchantName,
			StatusClass:  d.Visual.StatusClass,
			PulseClass:   d.Visual.PulseClass,
			Label:        d.Status.Label,
			VisitCount:   d.Merchant.VisitCount,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *MerchantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
