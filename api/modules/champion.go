package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/repositories"
	championservice "riftstats/api/services/champion"
)

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	// Initialize the champion service and handler.
	championDeps := &championservice.ChampionServiceDeps{
		MasteryRepo: repositories.NewMasteryReadRepository(deps.DB),
		StatsRepo:   repositories.NewChampionStatsRepository(deps.DB),
		Stats:       deps.stats,

		Cache:    deps.Cache,
		CacheCfg: deps.Config.Cache,
	}

	championService := championservice.NewChampionService(championDeps)

	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}

	return handlers.NewChampionHandler(championHandlerDeps)
}
