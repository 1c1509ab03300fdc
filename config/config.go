package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server
const SERVER_ADDRESS = ":8080"

// Merchant catalog api
const CATALOG_ENDPOINT_BASE_V1 = "https://catalog.festamap.cat/v1"
const CATALOG_API_KEY = "PUT_YOUR_CATALOG_API_KEY"
const FESTA_EVENT_ID = "festa-major-2026"

// Status refresher config
const STATUS_REFRESHER_SCHEDULE_SECONDS = 60

// Ambient pulse runs on a longer randomized interval.
const AMBIENT_PULSE_MIN_SECONDS = 90
const AMBIENT_PULSE_MAX_SECONDS = 240

// Map viewport defaults used by the headless widget.
const MAP_CONTAINER_WIDTH = 1024
const MAP_CONTAINER_HEIGHT = 768
const MAP_LAT_MIN = 41.30
const MAP_LAT_MAX = 41.50
const MAP_LON_MIN = 2.05
const MAP_LON_MAX = 2.30

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const MERCHANTS_RESOURCE = "merchants.json"
const MERCHANT_MAP_SNAPSHOT_OUTPUT = "merchant_map.html"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
