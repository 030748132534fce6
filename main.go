package main

import (
	"log"
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/data"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/routes"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	gin.SetMode(cfg.GinMode)

	// Collections are seeded once and owned here for the whole process;
	// handlers receive them explicitly instead of reaching for globals.
	dishes := store.NewCollection(func(d *models.Dish) string { return d.ID })
	orders := store.NewCollection(func(o *models.Order) string { return o.ID })
	var seeded []string
	for _, dish := range data.Dishes() {
		if err := dishes.Insert(dish); err != nil {
			log.Fatal("Failed to seed dishes:", err)
		}
		seeded = append(seeded, dish.ID)
	}
	for _, order := range data.Orders() {
		if err := orders.Insert(order); err != nil {
			log.Fatal("Failed to seed orders:", err)
		}
		seeded = append(seeded, order.ID)
	}
	ids := store.NewSequence(seeded...)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Welcome to the Restaurant Ordering API",
			"docs":      "/state-machine",
			"health":    "/health",
			"resources": []string{"/dishes", "/orders"},
		})
	})

	routes.SetupRoutes(r,
		handlers.NewDishes(dishes, ids, logger),
		handlers.NewOrders(orders, ids, logger),
	)

	logger.Infof("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
