package routes

import (
	"github.com/Jackson-git-lab/players-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupPlayerRoutes(router *gin.Engine) {
	player := router.Group("/player")
	player.Use(controllers.AuthMiddleware())
	{
		player.GET("/", controllers.Welcome)
		player.GET("/Players", controllers.GetMyPlayers)
		player.GET("/nom", controllers.GetPlayersByName)
		player.GET("/:player_id", controllers.GetPlayerByID)
		player.POST("/create", controllers.CreatePlayer)
		player.PUT("/update/:player_id", controllers.UpdatePlayer)
		player.DELETE("/delete/:player_id", controllers.DeletePlayer)
	}
}

func SetupUserRoutes(router *gin.Engine) {
	user := router.Group("/user")
	user.Use(controllers.AuthMiddleware())
	{
		user.GET("/me", controllers.GetMe)
		user.PUT("/change-password", controllers.ChangePassword)
	}
}
