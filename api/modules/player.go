package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/repositories"
	playerservice "riftstats/api/services/player"
	fetcherrepositories "riftstats/fetcher/repositories"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		PlayerRepo:      repositories.NewPlayerReadRepository(deps.DB),
		PlayerWriteRepo: fetcherrepositories.NewPlayerRepository(deps.DB),
		MatchRepo:       repositories.NewMatchReadRepository(deps.DB),
		MasteryRepo:     repositories.NewMasteryReadRepository(deps.DB),

		Accounts:         deps.Riot,
		Ingestor:         deps.ingestion,
		MasteryRefresher: deps.mastery,

		Cache:    deps.Cache,
		CacheCfg: deps.Config.Cache,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
