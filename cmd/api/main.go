package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/studio-navalha/agenda-api/internal/config"
	"github.com/studio-navalha/agenda-api/internal/db"
	"github.com/studio-navalha/agenda-api/internal/middleware"
	"github.com/studio-navalha/agenda-api/internal/routes"
	"github.com/studio-navalha/agenda-api/internal/timezone"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)
	rdb := db.NewRedis(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "ok",
			"timezone": timezone.BusinessTimezone,
		})
	})

	routes.RegisterRoutes(r, database, rdb, cfg)

	log.Println("listening on", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
