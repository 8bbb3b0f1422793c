package http

import (
	"github.com/dircast/dircast/internal/config"
	"github.com/dircast/dircast/internal/logger"
)

type Handler struct {
	cfg *config.Config

	logger *logger.Logger
}

func NewHandler(cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}
