package routes

import (
	"github.com/Jackson-git-lab/players-api/controllers"

	"github.com/gin-gonic/gin"
)

// SetupHeroRoutes configures the heroes surface. It carries no auth,
// matching the players routes only in layout.
func SetupHeroRoutes(router *gin.Engine) {
	heroes := router.Group("/heroes")
	{
		heroes.GET("", controllers.GetAllHeroes)
		heroes.GET("/type", controllers.GetHeroesByType)
		heroes.GET("/rank", controllers.GetHeroesByRank)
		heroes.GET("/search", controllers.SearchHeroes)
		heroes.GET("/stats", controllers.GetHeroesStats)
		heroes.GET("/types", controllers.GetValidTypes)
		heroes.GET("/top/:limit", controllers.GetTopHeroes)
		heroes.GET("/power/:power_name", controllers.GetHeroesByPower)
	}

	hero := router.Group("/hero")
	{
		hero.GET("/id/:hero_id", controllers.GetHeroByID)
		hero.GET("/name/:hero_name", controllers.GetHeroByName)
		hero.POST("/create", controllers.CreateHero)
		hero.PUT("/update/:hero_id", controllers.UpdateHero)
		hero.DELETE("/delete/:hero_id", controllers.DeleteHero)
	}
}
