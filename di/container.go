package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"outings-server/api"
	"outings-server/api/feed"
	"outings-server/catalog"
	"outings-server/config"
	redisdao "outings-server/dao/redis"
	"outings-server/db"
	"outings-server/matching"
	"outings-server/models"
	"outings-server/server"
	"outings-server/server/handlers"
	services "outings-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisCatalogDao         *redisdao.RedisCatalogDAO
	MemoryCatalog           *catalog.MemoryCatalog
	Engine                  *matching.Engine
	BudgetTable             *models.BudgetTable
	CatalogFeed             feed.CatalogFeedAPI
	OutingService           *services.OutingService
	CatalogRefresherService *services.CatalogRefresherService
	SearchHandler           *handlers.SearchHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	OutingsHttpServer       *server.OutingsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client - in-memory mock outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize catalog DAO over Redis
	redisCatalogDao := redisdao.NewRedisCatalogDAO(redisClient)

	// Initialize the in-memory index the engine serves queries from
	memoryCatalog := catalog.NewMemoryCatalog()

	// Initialize the matching engine
	engine := matching.NewEngine(memoryCatalog)

	// Budget tier ladder
	budgetTable := models.DefaultBudgetTable()

	// Initialize catalog feed - using fixture-backed mock outside prod
	var catalogFeed feed.CatalogFeedAPI
	if env != "prod" {
		catalogFeed = feed.NewCatalogFeedClientMock()
		log.Printf("Using mock catalog feed")
	} else {
		log.Printf("Using prod catalog feed")
		httpClient := api.NewHTTPClient(config.CATALOG_FEED_ENDPOINT_BASE_V1)
		catalogFeed = feed.NewCatalogFeedClient(httpClient)
	}

	// Initialize service layer
	outingService := services.NewOutingService(engine, budgetTable)
	catalogRefresherService := services.NewCatalogRefresherService(redisCatalogDao, memoryCatalog, catalogFeed)

	// Initialize search handler
	searchHandler := handlers.NewSearchHandler(outingService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(searchHandler, muxRouter)

	// Initialize outings server
	outingsHttpServer := server.NewOutingsHttpServer(router, muxRouter, config.HTTP_LISTEN_ADDRESS)

	return &Container{
		RedisClient:             redisClient,
		RedisCatalogDao:         redisCatalogDao,
		MemoryCatalog:           memoryCatalog,
		Engine:                  engine,
		BudgetTable:             budgetTable,
		CatalogFeed:             catalogFeed,
		OutingService:           outingService,
		CatalogRefresherService: catalogRefresherService,
		SearchHandler:           searchHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		OutingsHttpServer:       outingsHttpServer,
	}
}
