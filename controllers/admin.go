package controllers

import (
	"net/http"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware rejects callers whose role is not admin. Unlike the
// ownership filter on /player, the failure is 401: the caller is told
// they lack the privilege, not that the resource is missing.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin privileges required"})
			return
		}
		c.Next()
	}
}

// GetAllPlayers lists every player across all owners.
func GetAllPlayers(c *gin.Context) {
	players := []models.Player{}
	if err := config.DB.Order("id asc").Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve players"})
		return
	}
	c.JSON(http.StatusOK, players)
}

// DeleteAnyPlayer removes a player without checking ownership.
func DeleteAnyPlayer(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var player models.Player
	if err := config.DB.First(&player, playerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Delete(&player).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete player"})
		return
	}
	tx.Commit()

	c.Status(http.StatusNoContent)
}
