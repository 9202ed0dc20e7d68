package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/repositories"
	matchupservice "riftstats/api/services/matchup"
)

func initializeMatchupHandler(deps *ModuleDependencies) *handlers.MatchupHandler {
	// Initialize the matchup service and handler.
	matchupDeps := &matchupservice.MatchupServiceDeps{
		MatchRepo: repositories.NewMatchReadRepository(deps.DB),
		Cache:     deps.Cache,
		CacheTTL:  deps.Config.Cache.MatchupDataTTL,
	}

	matchupService := matchupservice.NewMatchupService(matchupDeps)

	matchupHandlerDeps := &handlers.MatchupHandlerDependencies{
		MatchupService: matchupService,
	}

	return handlers.NewMatchupHandler(matchupHandlerDeps)
}
