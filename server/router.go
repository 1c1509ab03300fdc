package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MerchantRoutes is the handler surface the router binds.
type MerchantRoutes interface {
	GetMerchantsNearby(w http.ResponseWriter, r *http.Request)
	GetMerchantStatus(w http.ResponseWriter, r *http.Request)
	GetOpenCount(w http.ResponseWriter, r *http.Request)
	RecordVisit(w http.ResponseWriter, r *http.Request)
	GetInfluenceZone(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	merchantHandler MerchantRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	merchantHandler MerchantRoutes,
	router *mux.Router) *Router {
	return &Router{
		merchantHandler: merchantHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/merchants/nearby", r.merchantHandler.GetMerchantsNearby).Methods("GET")

	r.router.HandleFunc("/v1/merchants/open-count", r.merchantHandler.GetOpenCount).Methods("GET")
	r.router.HandleFunc("/v1/merchants/zone", r.merchantHandler.GetInfluenceZone).Methods("GET")
	r.router.HandleFunc("/v1/merchants/{id}/status", r.merchantHandler.GetMerchantStatus).Methods("GET")
	r.router.HandleFunc("/v1/merchants/{id}/visit", r.merchantHandler.RecordVisit).Methods("POST")

	r.router.HandleFunc("/ping", r.merchantHandler.Ping).Methods("GET")
}
