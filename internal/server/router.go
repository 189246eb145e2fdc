package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with permissive CORS and the three
// endpoints of the service. No authentication: the service is meant to sit
// behind a trusted frontend.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/healthcheck", HealthCheck)
	router.POST("/upload", h.Upload)
	router.GET("/download", h.Download)

	return router
}
