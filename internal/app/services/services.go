// Package services contains the business logic between HTTP handlers and
// the persistence layer. Services operate on store interfaces so tests
// can substitute in-memory fakes.
package services

import (
	"context"
	"mime/multipart"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/auth"
	"github.com/gradpath/intake/internal/pkg/filestorage"
)

// UserStore is the subset of user persistence the services need.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	AdminEmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
}

// StudentStore is the subset of student record persistence the services need.
type StudentStore interface {
	Upsert(ctx context.Context, details *models.StudentDetails) error
	GetByUserID(ctx context.Context, userID int64) (*models.StudentDetails, error)
	ListSummaries(ctx context.Context) ([]models.StudentSummary, error)
	GetRecord(ctx context.Context, studentID int64) (*models.StudentRecord, error)
	CreateStudentWithDetails(ctx context.Context, user *models.User, details *models.StudentDetails) (int64, error)
}

// AuthService handles account registration and session lifecycle.
type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, *auth.Session, error)
	Logout(ctx context.Context, token string) error
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) error
}

// StudentService handles a student's own application record.
type StudentService interface {
	SubmitDetails(ctx context.Context, userID int64, req dto.SubmitDetailsRequest, files map[filestorage.Kind]*multipart.FileHeader) error
	GetDetails(ctx context.Context, userID int64) (*dto.StudentDetailsResponse, error)
}

// AdminService handles the administrative view over students.
type AdminService interface {
	ListStudents(ctx context.Context) ([]dto.StudentSummary, error)
	GetStudent(ctx context.Context, studentID int64) (*dto.StudentRecord, error)
	AddStudent(ctx context.Context, req dto.AddStudentRequest) (int64, error)
}

// Services holds all service instances
type Services struct {
	Auth    AuthService
	Student StudentService
	Admin   AdminService
}
