package handlers

import (
	"errors"
	"net/http"
	"riftstats/api/filters"
	playerservice "riftstats/api/services/player"
	ingestionservice "riftstats/fetcher/services/ingestion"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Player handler.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// Create a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// Handler for registering a new tracked player.
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var body filters.RegisterPlayerBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.playerService.RegisterPlayer(c.Request.Context(), body.GameName, body.TagLine, body.Region)
	if err != nil {
		if errors.Is(err, playerservice.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "riot id not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": summary})
}

// Handler for getting the match history of a player.
func (h *PlayerHandler) GetMatchHistory(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	var qp filters.MatchHistoryQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := h.playerService.GetMatchHistory(c.Request.Context(), playerId, qp.AsMap())
	if err != nil {
		if errors.Is(err, playerservice.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": history})
}

// Handler for getting the champion masteries of a player.
func (h *PlayerHandler) GetMasteries(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	masteries, err := h.playerService.GetMasteries(c.Request.Context(), playerId)
	if err != nil {
		if errors.Is(err, playerservice.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": masteries})
}

// Handler for getting the ranked standings of a player.
func (h *PlayerHandler) GetRankedStats(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	ranked, err := h.playerService.GetRankedStats(c.Request.Context(), playerId)
	if err != nil {
		if errors.Is(err, playerservice.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ranked})
}

// Handler for forcing a full data refresh of a player.
func (h *PlayerHandler) RefreshPlayer(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	inserted, err := h.playerService.RefreshPlayer(c.Request.Context(), playerId)
	if err != nil {
		switch {
		case errors.Is(err, playerservice.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		case errors.Is(err, ingestionservice.ErrIngestionInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"newMatches": inserted}})
}

// playerIdParam parses the player id path parameter, writing the error
// response itself when the value is invalid.
func playerIdParam(c *gin.Context) (uint, bool) {
	playerId, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player id"})
		return 0, false
	}
	return uint(playerId), true
}
