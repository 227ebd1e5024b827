package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	authenticator, err := NewService("666", "segredo-de-teste", time.Hour)
	require.NoError(t, err)
	return authenticator.(*Service)
}

func TestNewService(t *testing.T) {
	_, err := NewService("", "segredo", time.Hour)
	assert.Error(t, err)

	_, err = NewService("666", "", time.Hour)
	assert.Error(t, err)

	authenticator, err := NewService("666", "segredo", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultSessionTTL, authenticator.(*Service).sessionTTL)
	assert.NotEqual(t, []byte("666"), authenticator.(*Service).passwordHash)
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "Senha correta gera token", password: "666"},
		{name: "Senha incorreta", password: "777", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Senha vazia", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsCredentialsError(err))
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.NotEmpty(t, claims.SessionID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)
	token, err := service.Login("666")
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		expired := newTestService(t)
		expired.secretKey = service.secretKey
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := expired.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		other, err := NewService("666", "outro-segredo", time.Hour)
		require.NoError(t, err)

		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token com algoritmo não HMAC", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{SessionID: "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Texto que não é token", func(t *testing.T) {
		_, err := service.ValidateToken("abc")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
