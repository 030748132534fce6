package routes

import (
	"net/http"

	"food-ordering-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, dishes *handlers.Dishes, orders *handlers.Orders) {
	// ── Dishes ─────────────────────────────────────────────────────
	r.GET("/dishes", dishes.List)
	r.POST("/dishes", dishes.Create()...)
	r.GET("/dishes/:dishId", dishes.Read()...)
	r.PUT("/dishes/:dishId", dishes.Update()...)

	// ── Orders ─────────────────────────────────────────────────────
	r.GET("/orders", orders.List)
	r.POST("/orders", orders.Create()...)
	r.GET("/orders/:orderId", orders.Read()...)
	r.PUT("/orders/:orderId", orders.Update()...)
	r.DELETE("/orders/:orderId", orders.Delete()...)

	// State machine info (great for docs/Postman)
	r.GET("/state-machine", handlers.StateMachineInfo)

	// Anything else is a routing failure, reported in the same envelope
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": c.Request.Method + " not allowed for " + c.Request.URL.Path,
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found: " + c.Request.URL.Path,
		})
	})
}
