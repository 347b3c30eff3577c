package repositories

import (
	"context"
	"fmt"

	"github.com/gradpath/intake/internal/db"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/auth"
	"github.com/gradpath/intake/internal/pkg/dberrors"
)

// SessionRepository persists sessions in Postgres. It satisfies
// auth.SessionStore; the name and role attached to a session are joined
// from users at lookup time so a renamed user is never served stale data.
type SessionRepository struct {
	db *db.PostgresDB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(database *db.PostgresDB) *SessionRepository {
	return &SessionRepository{
		db: database,
	}
}

// Create stores a new session row
func (r *SessionRepository) Create(ctx context.Context, session *auth.Session) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)`,
		session.Token, session.UserID, session.ExpiresAt)

	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// Get retrieves a session by token together with the owning user's name
// and role. Unknown tokens are ErrSessionNotFound.
func (r *SessionRepository) Get(ctx context.Context, token string) (*auth.Session, error) {
	session := &auth.Session{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT s.token, s.user_id, u.name, u.role, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1`,
		token).Scan(
		&session.Token, &session.UserID, &session.Name,
		&session.Role, &session.ExpiresAt)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error fetching session: %w", err)
	}

	return session, nil
}

// Delete removes a session row. Deleting an absent token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
