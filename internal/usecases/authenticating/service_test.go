package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repomocks "github.com/adpulse/campaign-reporting-api/infrastructure/repository/mocks"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/adpulse/campaign-reporting-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func newTestAuthenticator(t *testing.T) (Authenticator, *repomocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := repomocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret

	return NewService(userRepo, cfg), userRepo
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           42,
		Name:         "Ana",
		Email:        "ana@exemplo.com",
		PasswordHash: string(hash),
		Active:       true,
	}
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, code, authErr.Code)
}

func TestLoginUser(t *testing.T) {
	t.Run("login com sucesso gera token validável", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

		token, err := service.LoginUser("ana@exemplo.com", "senha-forte")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "ana@exemplo.com", claims.UserEmail)
	})

	t.Run("email é normalizado antes da consulta", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

		_, err := service.LoginUser("  Ana@Exemplo.com ", "senha-forte")
		require.NoError(t, err)
	})

	t.Run("campos obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestAuthenticator(t)

		_, err := service.LoginUser("", "senha")
		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)

		_, err = service.LoginUser("ana@exemplo.com", "")
		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("usuário não encontrado", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(nil, nil)

		_, err := service.LoginUser("ana@exemplo.com", "senha")
		assertAuthCode(t, err, apiErrors.ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")
		user.Active = false

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

		_, err := service.LoginUser("ana@exemplo.com", "senha-forte")
		assertAuthCode(t, err, apiErrors.ErrUserDisabled)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

		_, err := service.LoginUser("ana@exemplo.com", "senha-errada")
		assertAuthCode(t, err, apiErrors.ErrInvalidCredentials)
	})

	t.Run("falha no banco", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(nil, errors.New("conexão recusada"))

		_, err := service.LoginUser("ana@exemplo.com", "senha")
		assertAuthCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("token malformado", func(t *testing.T) {
		service, _ := newTestAuthenticator(t)

		_, err := service.ValidateToken("não-é-um-jwt")
		assert.Error(t, err)
	})

	t.Run("token assinado com outro segredo", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

		token, err := service.LoginUser("ana@exemplo.com", "senha-forte")
		require.NoError(t, err)

		other, _ := newTestAuthenticator(t)
		otherService := other.(*Service)
		otherService.cfg.Auth.Secret = "outro-segredo"

		_, err = otherService.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestGetUserProfile(t *testing.T) {
	t.Run("remove o hash da senha da resposta", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)
		user := testUser(t, "senha-forte")

		userRepo.EXPECT().GetUserByID(42).Return(user, nil)

		profile, err := service.GetUserProfile(42)
		require.NoError(t, err)
		assert.Empty(t, profile.PasswordHash)
		assert.Equal(t, "Ana", profile.Name)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := service.GetUserProfile(99)
		assertAuthCode(t, err, apiErrors.ErrUserNotFound)
	})
}
