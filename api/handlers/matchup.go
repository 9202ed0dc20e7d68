package handlers

import (
	"errors"
	"net/http"
	"riftstats/api/dto"
	"riftstats/api/filters"
	matchupservice "riftstats/api/services/matchup"
	"riftstats/pkg/messages"

	"github.com/gin-gonic/gin"
)

// Matchup handler.
type MatchupHandler struct {
	matchupService *matchupservice.MatchupService
}

type MatchupHandlerDependencies struct {
	MatchupService *matchupservice.MatchupService
}

// Create a new instance of the matchup handler.
func NewMatchupHandler(deps *MatchupHandlerDependencies) *MatchupHandler {
	return &MatchupHandler{
		matchupService: deps.MatchupService,
	}
}

// Handler for getting the difficult matchups of a player.
func (h *MatchupHandler) GetDifficultMatchups(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	var qp filters.MatchupQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.matchupService.GetDifficultMatchups(c.Request.Context(), playerId, qp.AsMap())
	if err != nil {
		// No stored matches is an empty result, not a failure.
		if errors.Is(err, matchupservice.ErrNoMatchData) {
			c.JSON(http.StatusOK, gin.H{"result": &dto.MatchupList{
				Matchups: []*dto.DifficultMatchup{},
				Reason:   messages.NoMatchData,
			}})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for getting the detail view against one opponent.
func (h *MatchupHandler) GetMatchupDetail(c *gin.Context) {
	playerId, ok := playerIdParam(c)
	if !ok {
		return
	}

	opponent := c.Param("champion")
	if opponent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing champion name"})
		return
	}

	var qp filters.MatchupDetailQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.matchupService.GetMatchupDetail(c.Request.Context(), playerId, opponent, qp.AsMap())
	if err != nil {
		if errors.Is(err, matchupservice.ErrNoMatchData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no games against this champion"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": detail})
}
