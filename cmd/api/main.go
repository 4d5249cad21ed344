package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/agenda-api/internal/config"
	dbpkg "github.com/clinicdesk/agenda-api/internal/db"
	"github.com/clinicdesk/agenda-api/internal/logging"
	"github.com/clinicdesk/agenda-api/internal/routes"
	"github.com/clinicdesk/agenda-api/internal/tokens"
)

func main() {

	logging.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	denylist := tokens.NewDenylist(cfg.RedisAddr, cfg.RedisPassword)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, denylist, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
