package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS is permissive in development. In production only the listed origins
// are allowed; an empty list falls back to same-origin (no CORS headers).
func CORS(env string, origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if env != "production" {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}
