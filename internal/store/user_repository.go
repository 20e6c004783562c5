package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// UserRepository defines account lookups for the identity provider.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// DBUserRepository implements UserRepository using MySQL.
type DBUserRepository struct {
	db *sqlx.DB
}

// NewDBUserRepository creates a new DBUserRepository.
func NewDBUserRepository(db *sqlx.DB) *DBUserRepository {
	return &DBUserRepository{db: db}
}

// FindByEmail returns the account for the email, or ErrUserNotFound.
func (r *DBUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user by email) > %w", err)
	}
	return &user, nil
}

// FindByID returns the account for the uid, or ErrUserNotFound.
func (r *DBUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user by id) > %w", err)
	}
	return &user, nil
}

// Create inserts a new account. The email must be unused.
func (r *DBUserRepository) Create(ctx context.Context, user *User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, display_name, photo_url, password_hash) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Email, user.DisplayName, user.PhotoURL, user.PasswordHash); err != nil {
		// A concurrent signup can pass the lookup above and still lose the
		// race on uniq_users_email.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrEmailTaken
		}
		return fmt.Errorf("db.ExecContext(insert user) > %w", err)
	}
	return nil
}
