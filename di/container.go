package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"festa-server/api"
	"festa-server/api/catalog"
	"festa-server/config"
	"festa-server/dao/redis"
	"festa-server/db"
	"festa-server/geometry"
	"festa-server/interaction"
	"festa-server/mapwidget"
	"festa-server/server"
	"festa-server/server/handlers"
	services "festa-server/service"
	"festa-server/status"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisMerchantDao      *redis.RedisMerchantDAO
	CatalogAPI            catalog.CatalogAPI
	StatusEngine          *status.Engine
	MapWidget             mapwidget.MapWidget
	Geometry              geometry.Geometry
	Scheduler             interaction.Scheduler
	InteractionController *interaction.Controller
	MerchantService       *services.MerchantService
	StatusRefresher       *services.StatusRefresherService
	MerchantHandler       *handlers.MerchantHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	FestaMapHttpServer    *server.FestaMapHttpServer
}

// noopCardView sinks card commands when no UI is attached to the backend.
type noopCardView struct{}

func (noopCardView) ShowCard(content interaction.CardContent, position interaction.CardPosition) {}
func (noopCardView) HideCard()                                                                   {}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
	}

	// Initialize Redis Merchant DAO
	redisMerchantDao := redis.NewRedisMerchantDAO(redisClient)

	// Initialize CatalogApi - mock reads the local fixture
	var catalogApiClient catalog.CatalogAPI
	if env != "prod" {
		catalogApiClient = catalog.NewCatalogApiClientMock()
		log.Printf("Using mock catalog api")
	} else {
		log.Printf("Using prod catalog api")
		httpClient := api.NewHTTPClient(config.CATALOG_ENDPOINT_BASE_V1)

		catalogApiClient = catalog.NewCatalogApiClient(httpClient)
		catalogApiClient.SetCredentials(config.CATALOG_API_KEY)
	}

	// Status engine with the default log reporter
	statusEngine := status.NewEngine(nil)

	// Headless map widget + geometry collaborators
	mapWidget := mapwidget.NewMapWidgetMock(
		config.MAP_CONTAINER_WIDTH, config.MAP_CONTAINER_HEIGHT,
		config.MAP_LAT_MIN, config.MAP_LAT_MAX,
		config.MAP_LON_MIN, config.MAP_LON_MAX,
	)
	geo := geometry.NewGeometryMock()

	// Interaction controller with real debounce timers
	scheduler := interaction.NewTimerScheduler()
	controller := interaction.NewController(statusEngine, mapWidget, scheduler, noopCardView{}, nil)
	controller.SetViewport(config.MAP_CONTAINER_WIDTH, config.MAP_CONTAINER_HEIGHT)

	// Initialize service layer
	merchantService := services.NewMerchantService(redisMerchantDao, geo)
	statusRefresher := services.NewStatusRefresherService(redisMerchantDao, statusEngine, controller)

	// Initialize merchant handler
	merchantHandler := handlers.NewMerchantHandler(redisMerchantDao, statusEngine, merchantService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(merchantHandler, muxRouter)

	// initialize festa map server
	festaMapHttpServer := server.NewFestaMapHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisMerchantDao:      redisMerchantDao,
		CatalogAPI:            catalogApiClient,
		StatusEngine:          statusEngine,
		MapWidget:             mapWidget,
		Geometry:              geo,
		Scheduler:             scheduler,
		InteractionController: controller,
		MerchantService:       merchantService,
		StatusRefresher:       statusRefresher,
		MerchantHandler:       merchantHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		FestaMapHttpServer:    festaMapHttpServer,
	}
}
