package server

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes with the router.
//
//	GET  /        - Service banner
//	GET  /health  - Health check
//	POST /analyze - Run a repository estimation
func RegisterRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/", handlers.HandleRoot)
	router.GET("/health", handlers.HandleHealth)
	router.POST("/analyze", handlers.HandleAnalyze)
}
