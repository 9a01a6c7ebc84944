package handlers

import (
	"net/http"

	"storefront-admin-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the full order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"edges":           statemachine.Describe(),
		"terminal_states": []string{"CANCELLED", "RETURNED", "REFUNDED"},
		"description":     "Storefront Order Lifecycle State Machine",
	})
}
