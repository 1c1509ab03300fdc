package main

import (
	"fmt"
	"log"
	"time"

	"festa-server/config"
	"festa-server/di"
	"festa-server/util"
)

func main() {
	container := di.NewContainer("prod")

	// Load the merchant catalog and seed the geo index + interaction state.
	merchants, err := container.CatalogAPI.GetMerchants(config.FESTA_EVENT_ID)
	if err != nil {
		log.Printf("[MAIN] Catalog fetch failed, falling back to the local fixture: %v", err)
		merchants, err = util.ReadMerchantsFromJSON(config.GetResourcePath(config.MERCHANTS_RESOURCE))
		if err != nil {
			log.Fatalf("Failed to read merchants catalog: %v", err)
		}
	}
	util.PrintMerchantsPartially(merchants)

	for i := range merchants {
		if err := container.RedisMerchantDao.UpsertMerchant(merchants[i]); err != nil {
			log.Printf("[MAIN] Failed to upsert merchant %s: %v", merchants[i].MerchantID, err)
			continue
		}
		container.InteractionController.RegisterMerchant(&merchants[i])
	}

	// Static map snapshot for quick inspection.
	util.PlotMerchantMap(merchants, time.Now(), config.MERCHANT_MAP_SNAPSHOT_OUTPUT)

	fmt.Println("refreshing statuses!")
	if err := container.StatusRefresher.RefreshStatuses(); err != nil {
		log.Printf("[MAIN] Initial status refresh failed: %v", err)
	}

	fmt.Println("starting periodic jobs!")
	container.StatusRefresher.StartPeriodicJob(config.STATUS_REFRESHER_SCHEDULE_SECONDS * time.Second)
	container.StatusRefresher.StartAmbientPulseJob(
		config.AMBIENT_PULSE_MIN_SECONDS*time.Second,
		config.AMBIENT_PULSE_MAX_SECONDS*time.Second,
	)

	fmt.Println("starting server!")
	container.FestaMapHttpServer.Start()
}
