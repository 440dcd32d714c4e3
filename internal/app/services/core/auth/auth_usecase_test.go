package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"policlinico-service/internal/app/config"
	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/app/services/shared/mailer"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCredentials struct {
	hashes map[string]string
	known  map[string]bool
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{hashes: map[string]string{}, known: map[string]bool{}}
}

func (f *fakeCredentials) SetPasswordHash(ctx context.Context, email, hash string) error {
	f.hashes[email] = hash
	return nil
}

func (f *fakeCredentials) GetPasswordHash(ctx context.Context, email string) (string, error) {
	return f.hashes[email], nil
}

func (f *fakeCredentials) AddKnownEmail(ctx context.Context, email string) error {
	f.known[email] = true
	return nil
}

func (f *fakeCredentials) IsKnownEmail(ctx context.Context, email string) (bool, error) {
	return f.known[email], nil
}

type fakeSessions struct {
	sessions map[string]*models.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*models.Session{}}
}

func (f *fakeSessions) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessions) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessions) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessions) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeSessions) Get(ctx context.Context, key string) (string, error)    { return "", nil }
func (f *fakeSessions) Delete(ctx context.Context, key string) error           { return nil }
func (f *fakeSessions) SetHashField(ctx context.Context, key, field string, value interface{}) error {
	return nil
}
func (f *fakeSessions) GetHashField(ctx context.Context, key, field string) (string, error) {
	return "", nil
}
func (f *fakeSessions) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	return nil
}
func (f *fakeSessions) IsSetMember(ctx context.Context, key string, value interface{}) (bool, error) {
	return false, nil
}
func (f *fakeSessions) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

type fakeMailer struct {
	sent []*mailer.EmailPayload
}

func (f *fakeMailer) SendEmail(ctx context.Context, payload *mailer.EmailPayload) error {
	f.sent = append(f.sent, payload)
	return nil
}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 1
	cfg.App.ForgotPasswordTokenExpTimeInMinute = 15
	cfg.App.ResetPasswordUrl = "http://localhost/reset"
	return cfg
}

func newTestUsecase(t *testing.T) (AuthUsecase, *fakeCredentials, *fakeSessions, *fakeMailer) {
	t.Helper()
	store, err := records.NewRecordStore(context.Background(), records.NewMemorySnapshotRepository(), nil, zap.NewNop())
	require.NoError(t, err)
	credentials := newFakeCredentials()
	sessions := newFakeSessions()
	mail := &fakeMailer{}
	uc := NewAuthUsecase(store, credentials, sessions, mail, testConfig(), zap.NewNop())
	return uc, credentials, sessions, mail
}

func registerUser(t *testing.T, uc AuthUsecase, role, email string) {
	t.Helper()
	require.NoError(t, uc.Register(context.Background(), &requests.RegisterUser{
		Role:           role,
		Email:          email,
		Password:       "Fuerte@123",
		RetypePassword: "Fuerte@123",
	}))
}

func TestRegisterAndLogin(t *testing.T) {
	uc, credentials, sessions, _ := newTestUsecase(t)
	registerUser(t, uc, "medico", "cvera@med.uleam.edu.ec")

	assert.True(t, credentials.known["cvera@med.uleam.edu.ec"])

	result, err := uc.Login(context.Background(), &requests.Login{
		Role:     "medico",
		Email:    "cvera@med.uleam.edu.ec",
		Password: "Fuerte@123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "medico", result.Role)
	assert.ElementsMatch(t, []string{constvars.CapabilityPatients, constvars.CapabilityHistories}, result.Capabilities)
	assert.Len(t, sessions.sessions, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)
	registerUser(t, uc, "medico", "cvera@med.uleam.edu.ec")

	_, err := uc.Login(context.Background(), &requests.Login{
		Role:     "medico",
		Email:    "cvera@med.uleam.edu.ec",
		Password: "Equivocada@1",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	_, err := uc.Login(context.Background(), &requests.Login{
		Role:     "medico",
		Email:    "nadie@med.uleam.edu.ec",
		Password: "Fuerte@123",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
}

func TestRegisterRoleDomainMismatch(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	err := uc.Register(context.Background(), &requests.RegisterUser{
		Role:           "admin",
		Email:          "cvera@med.uleam.edu.ec",
		Password:       "Fuerte@123",
		RetypePassword: "Fuerte@123",
	})
	assert.Error(t, err)
}

func TestRegisterNonInstitutionalEmail(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	err := uc.Register(context.Background(), &requests.RegisterUser{
		Role:           "medico",
		Email:          "cvera@gmail.com",
		Password:       "Fuerte@123",
		RetypePassword: "Fuerte@123",
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)
	registerUser(t, uc, "medico", "cvera@med.uleam.edu.ec")

	err := uc.Register(context.Background(), &requests.RegisterUser{
		Role:           "medico",
		Email:          "cvera@med.uleam.edu.ec",
		Password:       "Fuerte@123",
		RetypePassword: "Fuerte@123",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestForgotPasswordIsNeutral(t *testing.T) {
	uc, _, _, mail := newTestUsecase(t)
	registerUser(t, uc, "medico", "cvera@med.uleam.edu.ec")
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, &requests.ForgotPassword{Email: "cvera@med.uleam.edu.ec"}))
	require.NoError(t, uc.ForgotPassword(ctx, &requests.ForgotPassword{Email: "nadie@med.uleam.edu.ec"}))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "cvera@med.uleam.edu.ec", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Body, "token=")
}

func TestLogoutDeletesSession(t *testing.T) {
	uc, _, sessions, _ := newTestUsecase(t)
	registerUser(t, uc, "medico", "cvera@med.uleam.edu.ec")

	_, err := uc.Login(context.Background(), &requests.Login{
		Role:     "medico",
		Email:    "cvera@med.uleam.edu.ec",
		Password: "Fuerte@123",
	})
	require.NoError(t, err)

	for id := range sessions.sessions {
		require.NoError(t, uc.Logout(context.Background(), id))
	}
	assert.Empty(t, sessions.sessions)
}
