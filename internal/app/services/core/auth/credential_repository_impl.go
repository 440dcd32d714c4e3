package auth

import (
	"context"
	"strings"

	sharedRedis "policlinico-service/internal/app/services/shared/redis"
	"policlinico-service/internal/pkg/constvars"
)

type credentialRepository struct {
	Redis sharedRedis.RedisRepository
}

func NewCredentialRepository(redis sharedRedis.RedisRepository) CredentialRepository {
	return &credentialRepository{Redis: redis}
}

func (repo *credentialRepository) SetPasswordHash(ctx context.Context, email, hash string) error {
	return repo.Redis.SetHashField(ctx, constvars.StorageKeyCredentials, strings.ToLower(email), hash)
}

func (repo *credentialRepository) GetPasswordHash(ctx context.Context, email string) (string, error) {
	return repo.Redis.GetHashField(ctx, constvars.StorageKeyCredentials, strings.ToLower(email))
}

func (repo *credentialRepository) AddKnownEmail(ctx context.Context, email string) error {
	return repo.Redis.AddToSet(ctx, constvars.StorageKeyKnownEmails, strings.ToLower(email))
}

func (repo *credentialRepository) IsKnownEmail(ctx context.Context, email string) (bool, error) {
	return repo.Redis.IsSetMember(ctx, constvars.StorageKeyKnownEmails, strings.ToLower(email))
}
