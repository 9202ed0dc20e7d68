package modules

import (
	"riftstats/api/cache"
	"riftstats/api/handlers"
	"riftstats/fetcher/assets"
	"riftstats/fetcher/data/riot"
	"riftstats/fetcher/data/statssite"
	"riftstats/fetcher/repositories"
	ingestionservice "riftstats/fetcher/services/ingestion"
	masteryservice "riftstats/fetcher/services/mastery"
	"riftstats/pkg/config"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies holds everything the handler initializers need.
type ModuleDependencies struct {
	DB     *gorm.DB
	Redis  *redis.RedisClient
	Cache  *cache.Cache
	Config *config.Config
	Riot   *riot.Client
	Log    *logger.Logger

	// Shared across the player and champion handlers.
	ingestion *ingestionservice.Service
	mastery   *masteryservice.Service
	stats     statssite.Provider
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	PlayerHandler   *handlers.PlayerHandler
	MatchupHandler  *handlers.MatchupHandler
	ChampionHandler *handlers.ChampionHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) (*Module, error) {
	router := gin.Default()

	initializeSharedServices(deps)

	return &Module{
		Router:          router,
		PlayerHandler:   initializePlayerHandler(deps),
		MatchupHandler:  initializeMatchupHandler(deps),
		ChampionHandler: initializeChampionHandler(deps),
	}, nil
}

// initializeSharedServices builds the fetcher side services that multiple
// handlers depend on.
func initializeSharedServices(deps *ModuleDependencies) {
	resolver := assets.NewChampionResolver(deps.Redis)

	var locker ingestionservice.Locker = ingestionservice.NewLocalLocker()
	if deps.Redis != nil {
		locker = ingestionservice.NewRedisLocker(deps.Redis)
	}

	deps.ingestion = ingestionservice.NewService(ingestionservice.ServiceDeps{
		Riot:       deps.Riot,
		MatchRepo:  repositories.NewMatchRepository(deps.DB),
		PlayerRepo: repositories.NewPlayerRepository(deps.DB),
		Locker:     locker,
		Log:        deps.Log,
	})

	deps.mastery = masteryservice.NewService(masteryservice.ServiceDeps{
		Riot:        deps.Riot,
		MasteryRepo: repositories.NewMasteryRepository(deps.DB),
		Resolver:    resolver,
		Log:         deps.Log,
	})

	deps.stats = statssite.NewScraper(deps.Config.StatsSite.BaseUrl)
}
