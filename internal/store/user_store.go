package store

import (
	"context"
	"database/sql"
	"fmt"

	"budget-service/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type MySQLUserStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMySQLUserStore(db *sql.DB, logger zerolog.Logger) *MySQLUserStore {
	return &MySQLUserStore{
		db:     db,
		logger: logger,
	}
}

func (s *MySQLUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, name, password_hash) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Username, user.Email, user.Name, user.PasswordHash,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("Error inserting user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *MySQLUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getBy(ctx, "id", id)
}

func (s *MySQLUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getBy(ctx, "username", username)
}

func (s *MySQLUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getBy(ctx, "email", email)
}

func (s *MySQLUserStore) getBy(ctx context.Context, column, value string) (*models.User, error) {
	var user models.User

	query := fmt.Sprintf(
		"SELECT id, username, email, name, password_hash, created_at, updated_at FROM users WHERE %s = ?",
		column,
	)

	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Username, &user.Email, &user.Name,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str(column, value).Msg("Error fetching user")
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (s *MySQLUserStore) List(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, username, email, name, password_hash, created_at, updated_at FROM users ORDER BY created_at",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing users")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.Name,
			&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return users, nil
}
