package controllers

import (
	"net/http"

	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the storefront API under /api/v1.
// sessionAuth guards every route that acts on the caller's session.
func RegisterRoutes(router *gin.Engine, sc StorefrontController, sessionAuth gin.HandlerFunc) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Route not found"))
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", sc.GetCatalog)
		v1.POST("/sessions", sc.CreateSession)

		session := v1.Group("/session")
		session.Use(sessionAuth)
		{
			session.GET("", sc.GetSession)

			session.PUT("/selection/base", sc.SelectBase)
			session.PUT("/selection/topping", sc.SelectTopping)

			cart := session.Group("/cart")
			{
				cart.DELETE("", sc.ClearCart)
				cart.POST("/items", sc.AddToCart)
				cart.PUT("/items/:itemId", sc.SetQuantity)
				cart.DELETE("/items/:itemId", sc.RemoveItem)
				cart.POST("/items/:itemId/increment", sc.IncrementQuantity)
				cart.POST("/items/:itemId/decrement", sc.DecrementQuantity)
				cart.POST("/panel", sc.OpenCartPanel)
				cart.DELETE("/panel", sc.CloseCartPanel)
			}

			session.POST("/checkout", sc.Checkout)
		}
	}
}
