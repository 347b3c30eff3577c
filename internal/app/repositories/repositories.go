// Package repositories contains the persistence layer over Postgres.
package repositories

import (
	"github.com/gradpath/intake/internal/db"
)

// Repositories holds all repository instances
type Repositories struct {
	Users          *UserRepository
	StudentDetails *StudentDetailsRepository
	Sessions       *SessionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		StudentDetails: NewStudentDetailsRepository(database),
		Sessions:       NewSessionRepository(database),
	}
}
