package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/db"
	"github.com/gradpath/intake/internal/pkg/dberrors"
	"github.com/gradpath/intake/internal/pkg/apperrors"
)

// UserRepository handles user database operations. It is the credential
// store: rows carry the password hash, so callers must sanitize before
// anything leaves the process.
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

// GetByEmail retrieves a user by exact email match, including the stored
// password hash. Absence is ErrUserNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if any account already uses the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// AdminEmailExists checks if an admin account already uses the email
func (r *UserRepository) AdminEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND role = $2)`,
		email, models.RoleAdmin).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}

	return exists, nil
}

// Create inserts a new user row. A concurrent insert of the same email
// loses the race at the unique constraint and comes back as
// ErrEmailAlreadyExists; the statement's implicit transaction rolls back.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.Role).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// createInTx inserts a user row as part of an enclosing transaction.
func createUserInTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.Role).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}
