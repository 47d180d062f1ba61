package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rhombus-ai/pattern-engine/pkg/config"
	"github.com/rhombus-ai/pattern-engine/pkg/handlers"
	"github.com/rhombus-ai/pattern-engine/pkg/llm"
	"github.com/rhombus-ai/pattern-engine/pkg/middleware"
	"github.com/rhombus-ai/pattern-engine/pkg/patterns"
	"github.com/rhombus-ai/pattern-engine/pkg/services"
	"github.com/rhombus-ai/pattern-engine/pkg/synth"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Static pattern library, initialized once and read-only afterwards
	library := patterns.NewLibrary()
	if cfg.Patterns.OverridesPath != "" {
		if err := library.LoadOverrides(cfg.Patterns.OverridesPath); err != nil {
			logger.Warn("Ignoring pattern overrides",
				zap.String("path", cfg.Patterns.OverridesPath),
				zap.Error(err))
		}
	}

	// External pattern generator; nil when no provider is configured
	generator, err := llm.NewPatternGenerator(&llm.Config{
		Provider: cfg.AI.Provider,
		Endpoint: cfg.AI.Endpoint,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create pattern generator", zap.Error(err))
	}

	synthesizer := synth.New(library, generator, cfg.AI.Timeout(), logger)
	patternService := services.NewPatternService(synthesizer, logger)
	queryService := services.NewQueryService(logger)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewPatternHandler(patternService, logger).RegisterRoutes(mux)
	handlers.NewDataHandler(patternService, queryService, logger).RegisterRoutes(mux)

	handler := middleware.Recover(logger)(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting pattern-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env),
		zap.Bool("external_ai", generator != nil))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// buildLogger constructs the process logger: human-readable in local
// development, JSON otherwise, at the configured level.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var logConfig zap.Config
	if cfg.Env == "local" {
		logConfig = zap.NewDevelopmentConfig()
	} else {
		logConfig = zap.NewProductionConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		logConfig.Level = zap.NewAtomicLevelAt(level)
	}
	return logConfig.Build()
}
