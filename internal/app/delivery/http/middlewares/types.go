package middlewares

import (
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/services/core/auth"
	"medrecord-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	AuthUsecase     auth.AuthUsecase
	ResourceLimiter *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(
	log *zap.Logger,
	authUsecase auth.AuthUsecase,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:             log,
		AuthUsecase:     authUsecase,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
	}
}
