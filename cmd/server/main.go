package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"chipscope/internal/fleet"
	fleetmetrics "chipscope/internal/fleet/metrics"
	fleetstore "chipscope/internal/fleet/store"
	"chipscope/internal/jwttoken"
	"chipscope/internal/miner"
	"chipscope/internal/platform/config"
	"chipscope/internal/platform/httpserver"
	"chipscope/internal/platform/logger"
	"chipscope/internal/platform/redis"
	"chipscope/internal/ratelimit"
	httptransport "chipscope/internal/transport/http"
)

// main wires high-level dependencies, starts the background fleet poller,
// and keeps the server lifecycle small. Business logic lives in the internal
// packages.
func main() {
	configPath := flag.String("config", os.Getenv("CHIPSCOPE_CONFIG"), "path to the YAML fleet config")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	if len(cfg.Miners) == 0 {
		log.Warn("no miners configured; the API will serve empty snapshots")
	}

	var snapshots fleetstore.SnapshotStore = fleetstore.NewMemoryStore()
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		snapshots = fleetstore.NewRedisStore(redisClient)
		defer redisClient.Close()
		log.Info("snapshot cache: redis")
	}

	metrics := fleetmetrics.New()
	client := miner.NewClient(miner.WithTimeout(cfg.FetchTimeout))
	poller := fleet.NewService(client, snapshots, metrics, log, cfg)

	jwtService := jwttoken.NewService(cfg.JWTSigningKey, "chipscope")
	handler := httptransport.NewHandler(snapshots, poller, log)
	pollLimiter := ratelimit.NewLimiter(6, time.Minute)
	router := httptransport.NewRouter(handler, jwtService, pollLimiter)

	srv := httpserver.New(cfg.Addr, router)

	pollCtx, stopPolling := context.WithCancel(context.Background())
	go poller.Run(pollCtx, cfg.PollInterval)

	log.Info("starting chipscope", "addr", cfg.Addr, "miners", len(cfg.Miners), "poll_interval", cfg.PollInterval.String())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	stopPolling()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
