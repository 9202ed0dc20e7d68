package handlers

import (
	"errors"
	"net/http"
	championservice "riftstats/api/services/champion"
	"riftstats/pkg/riotvalues/role"

	"github.com/gin-gonic/gin"
)

// Champion handler.
type ChampionHandler struct {
	championService *championservice.ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService *championservice.ChampionService
}

// Create a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		championService: deps.ChampionService,
	}
}

// Handler for getting the champion recommendations of a player.
func (h *ChampionHandler) GetRecommendations(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	recommendations, err := h.championService.GetRecommendations(c.Request.Context(), playerId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": recommendations})
}

// Handler for getting the ladder stats of a champion.
func (h *ChampionHandler) GetChampionStats(c *gin.Context) {
	champion := c.Param("champion")
	championRole := ""
	if raw := c.Query("role"); raw != "" {
		championRole = role.Normalize(raw)
	}

	overview, err := h.championService.GetChampionOverview(c.Request.Context(), champion, championRole)
	if err != nil {
		if errors.Is(err, championservice.ErrNoStatsAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": overview})
}

// Handler for getting the counters of a champion.
func (h *ChampionHandler) GetCounters(c *gin.Context) {
	champion := c.Param("champion")

	counters, err := h.championService.GetCounters(c.Request.Context(), champion)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": counters})
}
