package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches retrieves all matches
// @Summary Get matches
// @Description Get all matches ordered by creation date (newest first) with participant names resolved
// @Tags matches
// @Produce json
// @Success 200 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	matches, err := h.matchService.GetMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetRecentMatches retrieves the N most recent matches
// @Summary Get recent matches
// @Description Get the N most recent matches (default: 10, max: 100)
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches to retrieve"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/recent [get]
func (h *MatchHandler) GetRecentMatches(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit parameter",
		})
		return
	}

	if limit > 100 {
		limit = 100
	}

	matches, err := h.matchService.GetRecentMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve recent matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// RecordMatch records a finished match and updates ratings
// @Summary Record a match
// @Description Record a two-a-side match result; updates the four players' ratings and statistics atomically
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.RecordMatchRequest true "Match to record"
// @Success 201 {object} models.RatingChangeResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) RecordMatch(c *gin.Context) {
	var req models.RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: team1 and team2 must each hold two player IDs, winner must be 1 or 2",
		})
		return
	}

	result, err := h.matchService.RecordMatch(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidTeamComposition):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A player cannot appear twice in the same match",
			})
		case errors.Is(err, models.ErrUnknownPlayer):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "One or more players do not exist",
			})
		case errors.Is(err, models.ErrTransactionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Conflicting match submission, please retry",
			})
		case errors.Is(err, models.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database unavailable, please retry later",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record match",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ExportMatches streams the match history as CSV
// @Summary Export matches
// @Description Download the full match history as a CSV file
// @Tags matches
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string
// @Router /matches/export [get]
func (h *MatchHandler) ExportMatches(c *gin.Context) {
	matches, err := h.matchService.GetMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve matches",
		})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="matches.csv"`)

	writer := csv.NewWriter(c.Writer)

	writer.Write([]string{"id", "team1_player1", "team1_player2", "team2_player1", "team2_player2", "winner", "played_at"})
	for _, match := range matches {
		writer.Write([]string{
			strconv.FormatUint(uint64(match.ID), 10),
			match.Team1Player1.Name,
			match.Team1Player2.Name,
			match.Team2Player1.Name,
			match.Team2Player2.Name,
			fmt.Sprintf("team%d", match.Winner),
			match.CreatedAt.Format(time.RFC3339),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		// Headers are already out, so the response cannot be rewritten
		log.Printf("CSV export aborted mid-stream: %v", err)
	}
}
