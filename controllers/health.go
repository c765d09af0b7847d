package controllers

import (
	"net/http"

	"github.com/Jackson-git-lab/players-api/config"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the database is reachable.
func HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		dbStatus = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
