package redis

import (
	"context"
	"time"

	"policlinico-service/internal/app/models"
)

type RedisRepository interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	SetHashField(ctx context.Context, key, field string, value interface{}) error
	GetHashField(ctx context.Context, key, field string) (string, error)
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	IsSetMember(ctx context.Context, key string, value interface{}) (bool, error)
	GetSetMembers(ctx context.Context, key string) ([]string, error)
}
