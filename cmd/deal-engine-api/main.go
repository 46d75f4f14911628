package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/itpenciles/deal-engine/internal/cache"
	"github.com/itpenciles/deal-engine/internal/config"
	"github.com/itpenciles/deal-engine/internal/server"
	"github.com/itpenciles/deal-engine/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	var results cache.Cache
	if cfg.Cache.RedisAddress != "" {
		results = cache.NewRedisCache(cfg.Cache.RedisAddress, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		logger.Info("using redis result cache",
			zap.String("op", "main"),
			zap.String("address", cfg.Cache.RedisAddress),
			zap.Int("ttlSeconds", cfg.Cache.TTLSeconds),
		)
	} else {
		results = cache.NewMemoryCache()
		logger.Info("using in-memory result cache",
			zap.String("op", "main"),
		)
	}

	router := server.NewRouter(logger, results, cfg.AllowedOrigins)

	logger.Info("starting API server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := router.Run(cfg.Address); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
