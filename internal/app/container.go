package app

import (
	"fmt"
	"net/http"

	"github.com/kapu/portfolio-backend-go/internal/api"
	"github.com/kapu/portfolio-backend-go/internal/config"
	"github.com/kapu/portfolio-backend-go/internal/constants"
	"github.com/kapu/portfolio-backend-go/internal/service/database"
	"github.com/kapu/portfolio-backend-go/internal/store"
	"go.uber.org/zap"
)

// Container bundles the assembled service graph for constructing the HTTP
// server. Wiring happens in Build so main stays focused on lifecycle.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router http.Handler
}

// Build assembles the stores, the diagnostic prober, and the router.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	profiles := store.NewProfileStore(cfg.Data.ProfilePath, logger)
	diary := store.NewDiaryStore(cfg.Data.DiaryPath, logger)
	prober := database.NewProber(cfg.Database.URL, cfg.Database.Name, logger)

	handler := api.NewHandler(profiles, diary, prober, api.HandlerConfig{
		DatabaseURLSet:  cfg.Database.URL != "",
		DatabaseNameSet: cfg.Database.Name != "",
	}, logger)

	logger.Info("Service graph assembled",
		zap.String("profile_path", cfg.Data.ProfilePath),
		zap.String("diary_path", cfg.Data.DiaryPath),
		zap.Bool("database_configured", cfg.Database.URL != ""),
	)

	return &Container{
		Config: cfg,
		Logger: logger,
		Router: api.NewRouter(handler, logger),
	}, nil
}

// NewServer builds the http.Server around the assembled router.
func (c *Container) NewServer() *http.Server {
	return &http.Server{
		Addr:         c.Config.Addr(),
		Handler:      c.Router,
		ReadTimeout:  constants.ServerTimeouts.Read,
		WriteTimeout: constants.ServerTimeouts.Write,
	}
}
