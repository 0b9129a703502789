package main

import (
	"github.com/gin-gonic/gin"

	"github.com/sharpcut-app/sharpcut-api/internal/billing"
	"github.com/sharpcut-app/sharpcut-api/internal/config"
	dbpkg "github.com/sharpcut-app/sharpcut-api/internal/db"
	"github.com/sharpcut-app/sharpcut-api/internal/logger"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
	"github.com/sharpcut-app/sharpcut-api/internal/routes"
)

func main() {

	log := logger.New("api")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	broker, err := realtime.NewBroker(cfg.RedisURL, logger.New("realtime"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer broker.Close()

	var billingClient *billing.Client
	if cfg.MPAccessToken != "" {
		billingClient, err = billing.New(cfg.MPAccessToken, cfg.PlanPrice)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init billing")
		}
	} else {
		log.Warn().Msg("MP_ACCESS_TOKEN not set, billing disabled")
	}

	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Broker:  broker,
		Billing: billingClient,
		Log:     log,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
