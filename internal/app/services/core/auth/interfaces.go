package auth

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.RegisterUser) error
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	Capabilities(ctx context.Context, session *models.Session) (*responses.Capabilities, error)
}

// CredentialRepository keeps bcrypt hashes keyed by email plus the
// known-emails ledger. It satisfies records.EmailLedger so the record
// store can consult the ledger during email uniqueness checks.
type CredentialRepository interface {
	SetPasswordHash(ctx context.Context, email, hash string) error
	GetPasswordHash(ctx context.Context, email string) (string, error)
	AddKnownEmail(ctx context.Context, email string) error
	IsKnownEmail(ctx context.Context, email string) (bool, error)
}
