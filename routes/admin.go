package routes

import (
	"github.com/Jackson-git-lab/players-api/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes configures routes that require the admin role.
func SetupAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	admin.Use(controllers.AuthMiddleware())
	admin.Use(controllers.AdminMiddleware())
	{
		admin.GET("/Players", controllers.GetAllPlayers)
		admin.DELETE("/delete/:player_id", controllers.DeleteAnyPlayer)
	}
}
