package records

import (
	"context"

	"policlinico-service/internal/app/models"
	sharedRedis "policlinico-service/internal/app/services/shared/redis"
	"policlinico-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisSnapshotRepository struct {
	redis  sharedRedis.RedisRepository
	logger *zap.Logger
}

func NewRedisSnapshotRepository(redis sharedRedis.RedisRepository, logger *zap.Logger) SnapshotRepository {
	return &redisSnapshotRepository{
		redis:  redis,
		logger: logger,
	}
}

func (r *redisSnapshotRepository) Load(ctx context.Context) (*models.Database, error) {
	data, err := r.redis.Get(ctx, constvars.StorageKeySnapshot)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}
	db := &models.Database{}
	if err := json.Unmarshal([]byte(data), db); err != nil {
		// a malformed snapshot must not brick the service; start empty
		r.logger.Error(constvars.ErrDevSnapshotDecodeFailed, zap.Error(err))
		return nil, nil
	}
	return db, nil
}

func (r *redisSnapshotRepository) Save(ctx context.Context, db *models.Database) error {
	return r.redis.Set(ctx, constvars.StorageKeySnapshot, db, 0)
}
