package handlers

import "github.com/gin-gonic/gin"

// Health is the orchestration liveness probe. No storage access.
func Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"status":  "Server is running",
	})
}

func Status(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "SkinQuiz API",
		"version": "0.1.0",
		"status":  "operational",
	})
}
