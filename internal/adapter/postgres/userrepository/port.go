// package userrepository contains the PostgreSQL implementation of the user
// port
package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/domain"
)

var _ secondary.UserPort = (*userRepo)(nil)

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
	}
}

func (u *userRepo) Create(ctx context.Context, user *domain.Users) error {
	query := `
		INSERT INTO users (user_name, email, password_hash, auth_provider, google_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := u.db.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.PasswordHash, user.AuthProvider, user.GoogleID).Scan(&user.ID)
	if err != nil {
		u.logger.Error("Failed to create user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u *userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return u.getByColumn(ctx, "email", email)
}

func (u *userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return u.getByColumn(ctx, "user_name", userName)
}

func (u *userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return u.getByColumn(ctx, "google_id", googleID)
}

func (u *userRepo) getByColumn(ctx context.Context, column, value string) (*domain.Users, error) {
	query := fmt.Sprintf(`
		SELECT id, user_name, password_hash, email, auth_provider, google_id
		FROM users
		WHERE %s = $1
	`, column)

	var usr domain.Users
	err := u.db.QueryRowContext(ctx, query, value).Scan(
		&usr.ID,
		&usr.UserName,
		&usr.PasswordHash,
		&usr.Email,
		&usr.AuthProvider,
		&usr.GoogleID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return &usr, nil
}
