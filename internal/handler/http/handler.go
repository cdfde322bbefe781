package http

import (
	"time"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/service"
	"github.com/ashabalin/themeboard/internal/validators"
)

type Handler struct {
	services *service.Services
	validate validators.Validator

	requestTimeout time.Duration
	version        string

	logger *logger.Logger
}

func NewHandler(services *service.Services, validate validators.Validator, requestTimeout time.Duration, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       validate,
		requestTimeout: requestTimeout,
		version:        version,
		logger:         logger,
	}
}
