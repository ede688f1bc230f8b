package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/config"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/handlers"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/logging"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/router"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/websocket"
)

func main() {
	configDir := os.Getenv("AIRLINE_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	if err := config.Load(configDir); err != nil {
		bootLog := logging.New("info", false, os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	cfg, err := config.Get()
	if err != nil {
		bootLog := logging.New("info", false, os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to decode config")
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Pretty, os.Stdout)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := createStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Str("type", cfg.Storage.Type).Msg("Failed to open storage")
	}
	defer store.Close()

	hub := websocket.NewHub(log)
	go hub.Run(ctx)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize services
	game, err := service.NewGameService(ctx, service.Dependencies{
		Store:    store,
		Notifier: hub,
		Logger:   log,
		Options: service.Options{
			StartingBalance:   cfg.Game.StartingBalance,
			OfferCount:        cfg.Game.OfferCount,
			ListingCount:      cfg.Game.ListingCount,
			EngineWearPerHour: cfg.Game.EngineWearPerHour,
			CompanyName:       cfg.Game.CompanyName,
			Callsign:          cfg.Game.Callsign,
			Headquarters:      cfg.Game.Headquarters,
			PilotName:         cfg.Game.PilotName,
		},
		Rand: rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load game")
	}

	h := handlers.NewHandler(game)
	r := router.SetupRouter(h, hub.ServeWS, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Storage.Type).Msg("API server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stop()

	log.Info().Msg("Server stopped")
}
