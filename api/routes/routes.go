package routes

import (
	"riftstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.MatchupHandler:
			r.registerMatchupHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/players")
	{
		players.POST("", handler.RegisterPlayer)
		players.GET("/:playerId/matches", handler.GetMatchHistory)
		players.GET("/:playerId/masteries", handler.GetMasteries)
		players.GET("/:playerId/ranked", handler.GetRankedStats)
		players.POST("/:playerId/refresh", handler.RefreshPlayer)
	}
}

// Register the matchup handler.
func (r *Router) registerMatchupHandler(handler *handlers.MatchupHandler) {
	matchups := r.api.Group("/players/:playerId/matchups")
	{
		matchups.GET("/difficult", handler.GetDifficultMatchups)
		matchups.GET("/:champion", handler.GetMatchupDetail)
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("/:champion/stats", handler.GetChampionStats)
		champions.GET("/:champion/counters", handler.GetCounters)
	}

	r.api.GET("/players/:playerId/recommendations", handler.GetRecommendations)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
