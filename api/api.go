package main

import (
	"context"
	"log"
	"os"
	"riftstats/api/cache"
	"riftstats/api/modules"
	"riftstats/api/routes"
	"riftstats/fetcher/data/riot"
	"riftstats/pkg/config"
	"riftstats/pkg/database"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading the configuration: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.Bucket)
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	ctx := context.Background()

	// A dead redis degrades every cache to a miss, it doesn't stop the API.
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Errorf("Redis unavailable, running cacheless: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var store cache.Store
	if redisClient != nil {
		store = redisClient
	}

	riotClient := riot.NewClient(cfg.Riot, cfg.Limits, appLogger)

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(&modules.ModuleDependencies{
		DB:     db,
		Redis:  redisClient,
		Cache:  cache.NewCache(store),
		Config: cfg,
		Riot:   riotClient,
		Log:    appLogger,
	})
	if err != nil {
		log.Fatalf("Error creating the module: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.MatchupHandler,
		module.ChampionHandler,
	)

	// Start the server.
	router.Run(":8080")
}
