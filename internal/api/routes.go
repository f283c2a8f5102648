package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id", handler.GetProperty)
		api.GET("/stats", handler.GetCatalogStats)
		api.GET("/mortgage/rates", handler.GetMortgageRates)

		api.POST("/auth/signup", handler.SignUp)
		api.POST("/auth/signin", handler.SignIn)
		api.PUT("/profile", handler.UpdateProfile)

		api.GET("/favorites", handler.GetFavorites)
		api.POST("/favorites/:id", handler.ToggleFavorite)

		api.GET("/theme", handler.GetTheme)
		api.PUT("/theme", handler.SetTheme)
	}
}
