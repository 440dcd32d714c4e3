package middlewares

import (
	"policlinico-service/internal/app/config"
	"policlinico-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewMiddlewares(redisRepository redis.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}
