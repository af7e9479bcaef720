package handlers

import (
	"errors"
	"net/http"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ResetAll wipes all players and matches (development only)
// @Summary Reset all data
// @Description Delete every player and match; refused in production deployments
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/reset [post]
func (h *AdminHandler) ResetAll(c *gin.Context) {
	if err := h.adminService.ResetAll(); err != nil {
		if errors.Is(err, models.ErrOperationForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reset is not allowed in production",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reset data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All players and matches deleted",
	})
}
