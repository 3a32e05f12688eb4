package services

import (
	"context"
	"testing"

	"budget-service/internal/models"
	"budget-service/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userStoreStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	listFn          func(ctx context.Context) ([]*models.User, error)
}

func (s *userStoreStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userStoreStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userStoreStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userStoreStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userStoreStub) List(ctx context.Context) ([]*models.User, error) {
	return s.listFn(ctx)
}

func emptyUserStub() *userStoreStub {
	return &userStoreStub{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = "user-1"
			return nil
		},
		getByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
		listFn: func(ctx context.Context) ([]*models.User, error) {
			return []*models.User{}, nil
		},
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	req := &models.SignUpRequest{
		Username: "jo",
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "secret",
	}

	t.Run("hashes the password and persists", func(t *testing.T) {
		stub := emptyUserStub()
		var persisted *models.User
		stub.createFn = func(ctx context.Context, user *models.User) error {
			persisted = user
			return nil
		}

		svc := NewUserService(stub, zerolog.Nop())
		user, err := svc.CreateUser(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "jo", user.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("secret")))
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		stub := emptyUserStub()
		stub.getByEmailFn = func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "other"}, nil
		}

		svc := NewUserService(stub, zerolog.Nop())
		_, err := svc.CreateUser(ctx, req)

		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		stub := emptyUserStub()
		stub.getByUsernameFn = func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: "other"}, nil
		}

		svc := NewUserService(stub, zerolog.Nop())
		_, err := svc.CreateUser(ctx, req)

		assert.ErrorIs(t, err, ErrUsernameInUse)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("maps missing user", func(t *testing.T) {
		svc := NewUserService(emptyUserStub(), zerolog.Nop())
		_, err := svc.GetUser(ctx, "missing")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("returns the user", func(t *testing.T) {
		stub := emptyUserStub()
		stub.getByIDFn = func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Username: "jo"}, nil
		}

		svc := NewUserService(stub, zerolog.Nop())
		user, err := svc.GetUser(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "jo", user.Username)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	withUser := func() *userStoreStub {
		stub := emptyUserStub()
		stub.getByUsernameFn = func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{
				ID:           "user-1",
				Username:     "jo",
				Email:        "jo@example.com",
				PasswordHash: string(hash),
			}, nil
		}
		return stub
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		svc := NewAuthService(withUser(), "test-secret", zerolog.Nop())
		auth, err := svc.SignIn(ctx, &models.SignInRequest{Username: "jo", Password: "secret"})

		require.NoError(t, err)
		require.NotEmpty(t, auth.Token)

		claims, err := svc.ValidateToken(auth.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "jo", claims.Username)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		svc := NewAuthService(withUser(), "test-secret", zerolog.Nop())
		_, err := svc.SignIn(ctx, &models.SignInRequest{Username: "jo", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		svc := NewAuthService(emptyUserStub(), "test-secret", zerolog.Nop())
		_, err := svc.SignIn(ctx, &models.SignInRequest{Username: "nobody", Password: "secret"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		issuer := NewAuthService(withUser(), "other-secret", zerolog.Nop())
		user := &models.User{ID: "user-1", Username: "jo"}
		token, err := issuer.GenerateToken(user)
		require.NoError(t, err)

		svc := NewAuthService(withUser(), "test-secret", zerolog.Nop())
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}
