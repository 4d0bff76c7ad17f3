package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-streamer/src/cache"
	"market-streamer/src/config"
	"market-streamer/src/datasource/tradingview"
	"market-streamer/src/grpc_control"
	"market-streamer/src/interfaces"
	"market-streamer/src/logger"
	"market-streamer/src/network"
	"market-streamer/src/publishers"
	"market-streamer/src/server"
	"market-streamer/src/storage"
	"market-streamer/src/streaming"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// 2. Bar archive (optional)
	var db interfaces.IDatabase
	if cfg.Storage.Enabled {
		switch cfg.Storage.DBType {
		case "postgres":
			db, err = storage.NewPostgresDB(cfg.MConfig, appLogger)
		default:
			// Default to SQLite
			db, err = storage.NewAsyncSQLiteDB(cfg.MConfig, appLogger)
		}
		if err != nil {
			appLogger.Critical("Failed to init db: %v", err)
		}
		if err := db.Initialize(); err != nil {
			appLogger.Critical("Failed to migrate db: %v", err)
		}
		defer db.Close()
	}

	// 3. Latest-bar cache (optional)
	var barCache interfaces.ICache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.MConfig, appLogger)
		if err != nil {
			appLogger.Critical("Failed to connect to cache: %v", err)
		}
		barCache = redisCache
		defer barCache.Close()
	}

	// 4. Bar publisher (optional)
	var publisher interfaces.IPublisher
	if cfg.Publisher.Enabled {
		natsPublisher := publishers.NewNATSPublisher(cfg.MConfig, appLogger)
		if err := natsPublisher.Connect(); err != nil {
			appLogger.Critical("Failed to connect to NATS: %v", err)
		}
		publisher = natsPublisher
		defer natsPublisher.Disconnect()
	}

	// 5. Upstream data source
	var networkManager interfaces.INetworkManager = network.NewAsyncNetworkManager(cfg.MConfig, appLogger)
	var source interfaces.IMarketDataSource = tradingview.NewTradingViewSource(cfg.MConfig, networkManager)

	// 6. Streaming core
	manager := streaming.NewConnectionManager(appLogger)
	engine := streaming.NewEngine(manager, source, cfg.MConfig, appLogger)
	engine.Archive = db
	engine.Cache = barCache
	engine.Publisher = publisher

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)

	// 7. Websocket / REST server
	srv := server.NewFastAPIServer(cfg.MConfig, appLogger, manager, engine, source, barCache)
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	// 8. gRPC control plane
	grpcService, err := grpc_control.NewGRPCService(cfg.MConfig, appLogger, manager, engine)
	if err != nil {
		appLogger.Critical("Failed to create gRPC service: %v", err)
	}
	grpcService.Start()

	// 9. Retention cleanup loop
	if db != nil && cfg.Storage.DataRetentionDays > 0 {
		go func() {
			ticker := time.NewTicker(24 * time.Hour)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					db.CleanupOldData()
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	appLogger.Info("%s listening on %s:%d (ws: /ws, grpc: %s:%d)",
		cfg.Name, cfg.Host, cfg.Port, cfg.GrpcHost, cfg.GrpcPort)

	// 10. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	grpcService.Stop(shutdownCtx)

	engine.Wait()
	appLogger.Info("All streaming tasks stopped.")
}
