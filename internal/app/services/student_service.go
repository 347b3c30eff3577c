package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/filestorage"
	"github.com/gradpath/intake/internal/pkg/logger"
)

// ArtifactStorage is the slice of file storage the student service needs.
type ArtifactStorage interface {
	SaveUpload(fileHeader *multipart.FileHeader, kind filestorage.Kind, userID int64, at time.Time) (string, error)
}

type studentService struct {
	students StudentStore
	storage  ArtifactStorage
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, storage ArtifactStorage) StudentService {
	return &studentService{
		students: students,
		storage:  storage,
	}
}

// SubmitDetails validates and stores one application submission. All
// present files are checked against their kind's allow-list before any
// byte is written, so a submission with one bad file leaves no partial
// artifacts behind. The record upsert runs after the files are on disk.
func (s *studentService) SubmitDetails(ctx context.Context, userID int64, req dto.SubmitDetailsRequest, files map[filestorage.Kind]*multipart.FileHeader) error {
	for kind, fileHeader := range files {
		if fileHeader == nil {
			continue
		}
		if !filestorage.AllowedFile(fileHeader.Filename, kind) {
			return apperrors.NewCustomError(apperrors.ErrInvalidFileType,
				"Invalid file type for "+string(kind))
		}
	}

	now := time.Now()
	paths := make(map[filestorage.Kind]*string, len(files))
	for kind, fileHeader := range files {
		if fileHeader == nil {
			continue
		}
		relPath, err := s.storage.SaveUpload(fileHeader, kind, userID, now)
		if err != nil {
			return err
		}
		p := relPath
		paths[kind] = &p
	}

	details := &models.StudentDetails{
		UserID:                   userID,
		FinalPercentage:          req.FinalPercentage,
		TentativeRanking:         req.TentativeRanking,
		FinalYearProject:         req.FinalYearProject,
		OtherResearch:            req.OtherResearch,
		Publications:             req.Publications,
		Extracurricular:          req.Extracurricular,
		ProfessionalExperience:   req.ProfessionalExperience,
		StrongPoints:             req.StrongPoints,
		WeakPoints:               req.WeakPoints,
		PreferredPrograms:        req.PreferredPrograms,
		ReferenceDetails:         req.ReferenceDetails,
		StatementOfPurpose:       req.StatementOfPurpose,
		IntendedResearchAreas:    req.IntendedResearchAreas,
		EnglishProficiency:       req.EnglishProficiency,
		LeadershipExperience:     req.LeadershipExperience,
		AvailabilityToStart:      req.AvailabilityToStart,
		AdditionalCertifications: req.AdditionalCertifications,
		TranscriptPath:           paths[filestorage.KindTranscript],
		CVPath:                   paths[filestorage.KindCV],
		PhotoPath:                paths[filestorage.KindPhoto],
	}

	if err := s.students.Upsert(ctx, details); err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Int("files", len(paths)).Msg("Student details submitted")
	return nil
}

// GetDetails returns the caller's own record, or ErrDetailsNotFound when
// nothing has been submitted yet.
func (s *studentService) GetDetails(ctx context.Context, userID int64) (*dto.StudentDetailsResponse, error) {
	details, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDetailsResponse{
		FinalPercentage:          details.FinalPercentage,
		TentativeRanking:         details.TentativeRanking,
		FinalYearProject:         details.FinalYearProject,
		OtherResearch:            details.OtherResearch,
		Publications:             details.Publications,
		Extracurricular:          details.Extracurricular,
		ProfessionalExperience:   details.ProfessionalExperience,
		StrongPoints:             details.StrongPoints,
		WeakPoints:               details.WeakPoints,
		PreferredPrograms:        details.PreferredPrograms,
		ReferenceDetails:         details.ReferenceDetails,
		StatementOfPurpose:       details.StatementOfPurpose,
		IntendedResearchAreas:    details.IntendedResearchAreas,
		EnglishProficiency:       details.EnglishProficiency,
		LeadershipExperience:     details.LeadershipExperience,
		AvailabilityToStart:      details.AvailabilityToStart,
		AdditionalCertifications: details.AdditionalCertifications,
		TranscriptPath:           details.TranscriptPath,
		CVPath:                   details.CVPath,
		PhotoPath:                details.PhotoPath,
		Status:                   string(details.Status),
		CreatedAt:                dto.FormatTime(details.CreatedAt),
		UpdatedAt:                dto.FormatTime(details.UpdatedAt),
	}, nil
}
