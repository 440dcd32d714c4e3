package auth

import (
	"context"
	"fmt"
	"time"

	"policlinico-service/internal/app/config"
	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/app/services/shared/mailer"
	sharedRedis "policlinico-service/internal/app/services/shared/redis"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/dto/responses"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	Store       *records.RecordStore
	Credentials CredentialRepository
	Redis       sharedRedis.RedisRepository
	Mailer      mailer.MailerService
	Config      *config.InternalConfig
	Log         *zap.Logger
}

func NewAuthUsecase(
	store *records.RecordStore,
	credentials CredentialRepository,
	redis sharedRedis.RedisRepository,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		Store:       store,
		Credentials: credentials,
		Redis:       redis,
		Mailer:      mailerService,
		Config:      internalConfig,
		Log:         logger,
	}
}

// checkRoleEmail enforces the institutional domain policy: the address must
// belong to the university and its subdomain must match the selected role.
func checkRoleEmail(email, role string) error {
	if !utils.ValidateInstitutionalEmail(email) {
		return exceptions.ErrInstitutionalEmailRequired()
	}
	if !utils.ValidateEmailForRole(email, role) {
		return exceptions.ErrRoleEmailMismatch()
	}
	return nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := checkRoleEmail(request.Email, request.Role); err != nil {
		return nil, err
	}

	hash, err := uc.Credentials.GetPasswordHash(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if hash == "" || !utils.CheckPasswordHash(request.Password, hash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		SessionID:  utils.GenerateSessionID(),
		User:       request.Email,
		Role:       request.Role,
		LastAccess: time.Now().Format(constvars.TimeLayoutRegistered),
	}
	sessionTTL := time.Duration(uc.Config.JWT.ExpTimeInHour) * time.Hour
	if err := uc.Redis.CreateSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.Config.JWT.Secret, uc.Config.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("user logged in",
		zap.String("role", request.Role),
		zap.String("session_id", session.SessionID),
	)
	return &responses.Login{
		Token:        token,
		Role:         request.Role,
		Email:        request.Email,
		Capabilities: utils.CapabilitiesForRole(request.Role),
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	utils.SanitizeRegisterUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if request.Password != request.RetypePassword {
		return exceptions.ErrPasswordsDoNotMatch()
	}
	if !utils.EvaluatePassword(request.Password).Valid {
		return exceptions.ErrWeakPassword()
	}
	if err := checkRoleEmail(request.Email, request.Role); err != nil {
		return err
	}

	hash, err := uc.Credentials.GetPasswordHash(ctx, request.Email)
	if err != nil {
		return err
	}
	if hash != "" {
		return exceptions.ErrEmailAlreadyExists()
	}

	newHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	if err := uc.Credentials.SetPasswordHash(ctx, request.Email, newHash); err != nil {
		return err
	}
	if err := uc.Credentials.AddKnownEmail(ctx, request.Email); err != nil {
		return err
	}

	uc.Log.Info("user registered", zap.String("role", request.Role))
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.Redis.DeleteSession(ctx, sessionID)
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint never reveals whether an address is registered.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	utils.SanitizeForgotPasswordRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	hash, err := uc.Credentials.GetPasswordHash(ctx, request.Email)
	if err != nil || hash == "" {
		if err != nil {
			uc.Log.Error("forgot password lookup failed", zap.Error(err))
		}
		return nil
	}

	token, err := utils.GenerateResetPasswordJWT(request.Email, uc.Config.JWT.Secret, uc.Config.App.ForgotPasswordTokenExpTimeInMinute)
	if err != nil {
		uc.Log.Error("forgot password token generation failed", zap.Error(err))
		return nil
	}

	payload := &mailer.EmailPayload{
		To:      request.Email,
		Subject: "Recuperación de contraseña - Policlínico ULEAM",
		Body: fmt.Sprintf(
			"Para restablecer su contraseña ingrese al siguiente enlace (válido por %d minutos): %s?token=%s",
			uc.Config.App.ForgotPasswordTokenExpTimeInMinute,
			uc.Config.App.ResetPasswordUrl,
			token,
		),
	}
	if err := uc.Mailer.SendEmail(ctx, payload); err != nil {
		uc.Log.Error("forgot password mail publish failed", zap.Error(err))
	}
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if request.NewPassword != request.NewPasswordConfirmation {
		return exceptions.ErrPasswordsDoNotMatch()
	}
	if !utils.EvaluatePassword(request.NewPassword).Valid {
		return exceptions.ErrWeakPassword()
	}

	email, err := utils.ParseResetPasswordJWT(request.Token, uc.Config.JWT.Secret)
	if err != nil {
		return err
	}

	hash, err := uc.Credentials.GetPasswordHash(ctx, email)
	if err != nil {
		return err
	}
	if hash == "" {
		return exceptions.ErrResetTokenExpired(nil)
	}

	newHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	if err := uc.Credentials.SetPasswordHash(ctx, email, newHash); err != nil {
		return err
	}
	if err := uc.Credentials.AddKnownEmail(ctx, email); err != nil {
		return err
	}

	uc.Log.Info("password reset completed")
	return nil
}

func (uc *authUsecase) Capabilities(ctx context.Context, session *models.Session) (*responses.Capabilities, error) {
	if session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return &responses.Capabilities{
		Role:         session.Role,
		Capabilities: utils.CapabilitiesForRole(session.Role),
	}, nil
}
