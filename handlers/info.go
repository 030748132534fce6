package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// StateMachineInfo returns the order lifecycle for informational purposes
func StateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.Transitions(),
		"states":          statemachine.Flow(),
		"terminal_states": []models.OrderStatus{models.StatusDelivered},
		"description":     "Restaurant Order Lifecycle State Machine",
	})
}
