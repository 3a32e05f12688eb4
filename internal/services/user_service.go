package services

import (
	"context"
	"errors"

	"budget-service/internal/models"
	"budget-service/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users  store.UserStore
	logger zerolog.Logger
}

func NewUserService(users store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.SignUpRequest) (*models.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailInUse
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, ErrCreateUser
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Error creating user")
		return nil, ErrCreateUser
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("Error fetching user")
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) GetUserList(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing users")
		return nil, ErrUnknown
	}

	return users, nil
}
