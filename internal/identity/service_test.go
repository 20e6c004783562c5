package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/stealthwork/kanjistudy/internal/config"
	mock_store "github.com/stealthwork/kanjistudy/internal/mocks/store"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func newTestService(t *testing.T, users store.UserRepository) *Service {
	t.Helper()
	service, err := NewService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 72,
	}, users)
	require.NoError(t, err)
	return service
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewService_requiresSecret(t *testing.T) {
	_, err := NewService(config.AuthConfig{TokenTTLHours: 72}, nil)
	assert.ErrorContains(t, err, "auth.jwt_secret is not configured")
}

func TestService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUserRepository(ctrl)

	var created *store.User
	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *store.User) error {
			created = user
			return nil
		})

	service := newTestService(t, users)
	user, token, err := service.SignUp(context.Background(), "mori@example.com", "secret-pw", "Mori")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mori@example.com", user.Email)
	assert.Equal(t, "Mori", user.DisplayName)
	assert.NotEmpty(t, token)

	require.NotNil(t, created)
	assert.NotEqual(t, "secret-pw", created.PasswordHash, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-pw")))
}

func TestService_SignUp_emailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUserRepository(ctrl)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrEmailTaken)

	service := newTestService(t, users)
	_, _, err := service.SignUp(context.Background(), "mori@example.com", "secret-pw", "Mori")
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestService_SignIn(t *testing.T) {
	account := &store.User{
		ID:           "user-1",
		Email:        "mori@example.com",
		PasswordHash: "",
	}

	tests := map[string]struct {
		email     string
		password  string
		setupMock func(users *mock_store.MockUserRepository)
		wantErr   error
	}{
		"valid credentials": {
			email:    "mori@example.com",
			password: "secret-pw",
			setupMock: func(users *mock_store.MockUserRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "mori@example.com").Return(account, nil)
			},
		},
		"wrong password": {
			email:    "mori@example.com",
			password: "wrong",
			setupMock: func(users *mock_store.MockUserRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "mori@example.com").Return(account, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		"unknown email": {
			email:    "nobody@example.com",
			password: "secret-pw",
			setupMock: func(users *mock_store.MockUserRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	account.PasswordHash = hashForTest(t, "secret-pw")

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock_store.NewMockUserRepository(ctrl)
			tc.setupMock(users)

			service := newTestService(t, users)
			user, token, err := service.SignIn(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_VerifyRoundTrip(t *testing.T) {
	account := &store.User{
		ID:           "user-1",
		Email:        "mori@example.com",
		PasswordHash: hashForTest(t, "secret-pw"),
	}

	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUserRepository(ctrl)
	users.EXPECT().FindByEmail(gomock.Any(), "mori@example.com").Return(account, nil)
	users.EXPECT().FindByID(gomock.Any(), "user-1").Return(account, nil)

	service := newTestService(t, users)
	_, token, err := service.SignIn(context.Background(), "mori@example.com", "secret-pw")
	require.NoError(t, err)

	user, err := service.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestService_Verify_rejectsBadTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_store.NewMockUserRepository(ctrl)
	service := newTestService(t, users)

	t.Run("garbage", func(t *testing.T) {
		_, err := service.Verify(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewService(config.AuthConfig{
			JWTSecret:     "other-secret",
			TokenTTLHours: 72,
		}, users)
		require.NoError(t, err)
		token, err := other.issueToken(&store.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = service.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-100 * time.Hour) }
		token, err := service.issueToken(&store.User{ID: "user-1"})
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted account", func(t *testing.T) {
		users.EXPECT().FindByID(gomock.Any(), "user-1").Return(nil, store.ErrUserNotFound)
		token, err := service.issueToken(&store.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = service.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
