package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetAllPlayers retrieves the full leaderboard
// @Summary Get all players
// @Description Get every registered player ordered by rating (highest first), name as tiebreak
// @Tags players
// @Produce json
// @Success 200 {array} models.Player
// @Failure 500 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	players, err := h.playerService.GetAllPlayers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve players",
		})
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetTopPlayers retrieves the N highest rated players
// @Summary Get top players
// @Description Get the N highest rated players (default: 10, max: 100)
// @Tags players
// @Produce json
// @Param limit query int false "Number of players to retrieve"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/top [get]
func (h *PlayerHandler) GetTopPlayers(c *gin.Context) {
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

	players, err := h.playerService.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve players",
		})
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayer retrieves one player by id
// @Summary Get a player
// @Description Get a single player by their ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	player, err := h.playerService.GetPlayerByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrUnknownPlayer) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve player",
		})
		return
	}

	c.JSON(http.StatusOK, player)
}

// CreatePlayer registers a new player
// @Summary Register a player
// @Description Register a new player with a unique name and a role, starting at the initial rating
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player to create"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: name and role (goalkeeper or forward) are required",
		})
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicatePlayer) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "A player with this name already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create player",
		})
		return
	}

	c.JSON(http.StatusCreated, player)
}
