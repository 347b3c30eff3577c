package services

import (
	"context"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/logger"
	"github.com/gradpath/intake/internal/pkg/validation"
)

type adminService struct {
	students StudentStore
}

// NewAdminService creates a new admin service
func NewAdminService(students StudentStore) AdminService {
	return &adminService{
		students: students,
	}
}

// ListStudents returns the admin listing, most recently updated first.
func (s *adminService) ListStudents(ctx context.Context) ([]dto.StudentSummary, error) {
	summaries, err := s.students.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	// An empty listing must serialize as [] rather than null
	result := make([]dto.StudentSummary, 0, len(summaries))
	for _, sm := range summaries {
		result = append(result, dto.StudentSummary{
			ID:             sm.ID,
			Name:           sm.Name,
			Email:          sm.Email,
			University:     sm.University,
			Location:       sm.Location,
			BEPercentage:   sm.BEPercentage,
			BERanking:      sm.BERanking,
			CVPath:         sm.CVPath,
			TranscriptPath: sm.TranscriptPath,
			Status:         string(sm.Status),
			CreatedAt:      dto.FormatNullableTime(sm.CreatedAt),
			UpdatedAt:      dto.FormatNullableTime(sm.UpdatedAt),
		})
	}

	return result, nil
}

// GetStudent returns the full record for one student-role user.
func (s *adminService) GetStudent(ctx context.Context, studentID int64) (*dto.StudentRecord, error) {
	record, err := s.students.GetRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentRecord{
		StudentSummary: dto.StudentSummary{
			ID:             record.ID,
			Name:           record.Name,
			Email:          record.Email,
			University:     record.University,
			Location:       record.Location,
			BEPercentage:   record.BEPercentage,
			BERanking:      record.BERanking,
			CVPath:         record.CVPath,
			TranscriptPath: record.TranscriptPath,
			Status:         string(record.Status),
			CreatedAt:      dto.FormatNullableTime(record.CreatedAt),
			UpdatedAt:      dto.FormatNullableTime(record.UpdatedAt),
		},
		ReferenceDetails: record.ReferenceDetails,
	}, nil
}

// AddStudent creates a student account without credentials plus its
// profile row in one transaction and returns the new user id. The
// student cannot log in until they sign up with the same email.
func (s *adminService) AddStudent(ctx context.Context, req dto.AddStudentRequest) (int64, error) {
	if !validation.IsValidName(req.Name) || req.Email == "" {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name and Email are required")
	}

	email := validation.NormalizeEmail(req.Email)
	if !validation.IsValidEmail(email) {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Invalid email format")
	}

	user := &models.User{
		Name:  req.Name,
		Email: email,
		Role:  models.RoleStudent,
	}
	details := &models.StudentDetails{
		University:   req.University,
		Location:     req.Location,
		BEPercentage: req.BEPercentage,
		BERanking:    req.BERanking,
	}

	id, err := s.students.CreateStudentWithDetails(ctx, user, details)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("studentID", id).Str("email", email).Msg("Student added by admin")
	return id, nil
}
