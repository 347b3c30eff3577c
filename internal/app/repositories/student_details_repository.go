package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/db"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/dberrors"
)

// StudentDetailsRepository handles student record persistence. The table
// holds at most one row per user, enforced by the user_id unique
// constraint and upsert-on-conflict writes.
type StudentDetailsRepository struct {
	db *db.PostgresDB
}

// NewStudentDetailsRepository creates a new StudentDetailsRepository
func NewStudentDetailsRepository(database *db.PostgresDB) *StudentDetailsRepository {
	return &StudentDetailsRepository{
		db: database,
	}
}

// upsertSQL writes every submitted column and bumps updated_at. The three
// artifact path columns COALESCE against the existing row so that a
// resubmission without a file of that kind keeps the stored path instead
// of erasing it.
const upsertSQL = `
	INSERT INTO student_details (
		user_id, final_percentage, tentative_ranking, final_year_project,
		other_research, publications, extracurricular, professional_experience,
		strong_points, weak_points, preferred_programs, reference_details,
		statement_of_purpose, intended_research_areas, english_proficiency,
		leadership_experience, availability_to_start, additional_certifications,
		transcript_path, cv_path, photo_path
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		$13, $14, $15, $16, $17, $18, $19, $20, $21
	)
	ON CONFLICT (user_id) DO UPDATE SET
		final_percentage = EXCLUDED.final_percentage,
		tentative_ranking = EXCLUDED.tentative_ranking,
		final_year_project = EXCLUDED.final_year_project,
		other_research = EXCLUDED.other_research,
		publications = EXCLUDED.publications,
		extracurricular = EXCLUDED.extracurricular,
		professional_experience = EXCLUDED.professional_experience,
		strong_points = EXCLUDED.strong_points,
		weak_points = EXCLUDED.weak_points,
		preferred_programs = EXCLUDED.preferred_programs,
		reference_details = EXCLUDED.reference_details,
		statement_of_purpose = EXCLUDED.statement_of_purpose,
		intended_research_areas = EXCLUDED.intended_research_areas,
		english_proficiency = EXCLUDED.english_proficiency,
		leadership_experience = EXCLUDED.leadership_experience,
		availability_to_start = EXCLUDED.availability_to_start,
		additional_certifications = EXCLUDED.additional_certifications,
		transcript_path = COALESCE(EXCLUDED.transcript_path, student_details.transcript_path),
		cv_path = COALESCE(EXCLUDED.cv_path, student_details.cv_path),
		photo_path = COALESCE(EXCLUDED.photo_path, student_details.photo_path),
		updated_at = CURRENT_TIMESTAMP`

// Upsert inserts or overwrites the record for details.UserID inside one
// transaction. Concurrent submissions for the same user cannot produce
// two rows; the unique constraint serializes them.
func (r *StudentDetailsRepository) Upsert(ctx context.Context, details *models.StudentDetails) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, upsertSQL,
			details.UserID, details.FinalPercentage, details.TentativeRanking,
			details.FinalYearProject, details.OtherResearch, details.Publications,
			details.Extracurricular, details.ProfessionalExperience,
			details.StrongPoints, details.WeakPoints, details.PreferredPrograms,
			details.ReferenceDetails, details.StatementOfPurpose,
			details.IntendedResearchAreas, details.EnglishProficiency,
			details.LeadershipExperience, details.AvailabilityToStart,
			details.AdditionalCertifications,
			details.TranscriptPath, details.CVPath, details.PhotoPath)
		if err != nil {
			return fmt.Errorf("error upserting student details: %w", err)
		}
		return nil
	})
}

// GetByUserID retrieves the full record for a user. Absence is
// ErrDetailsNotFound.
func (r *StudentDetailsRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentDetails, error) {
	details := &models.StudentDetails{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, university, location, be_percentage, be_ranking,
		       final_percentage, tentative_ranking, final_year_project,
		       other_research, publications, extracurricular,
		       professional_experience, strong_points, weak_points,
		       preferred_programs, reference_details, statement_of_purpose,
		       intended_research_areas, english_proficiency,
		       leadership_experience, availability_to_start,
		       additional_certifications, transcript_path, cv_path, photo_path,
		       status, created_at, updated_at
		FROM student_details
		WHERE user_id = $1`,
		userID).Scan(
		&details.ID, &details.UserID, &details.University, &details.Location,
		&details.BEPercentage, &details.BERanking,
		&details.FinalPercentage, &details.TentativeRanking,
		&details.FinalYearProject, &details.OtherResearch, &details.Publications,
		&details.Extracurricular, &details.ProfessionalExperience,
		&details.StrongPoints, &details.WeakPoints, &details.PreferredPrograms,
		&details.ReferenceDetails, &details.StatementOfPurpose,
		&details.IntendedResearchAreas, &details.EnglishProficiency,
		&details.LeadershipExperience, &details.AvailabilityToStart,
		&details.AdditionalCertifications,
		&details.TranscriptPath, &details.CVPath, &details.PhotoPath,
		&details.Status, &details.CreatedAt, &details.UpdatedAt)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrDetailsNotFound
		}
		return nil, fmt.Errorf("error fetching student details: %w", err)
	}

	return details, nil
}

// ListSummaries returns one row per student-role user, joined with their
// profile attributes when present, most recently updated first and
// falling back to account-creation order.
func (r *StudentDetailsRepository) ListSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT u.id,
		       u.name,
		       u.email,
		       COALESCE(sd.university, '') AS university,
		       COALESCE(sd.location, '') AS location,
		       COALESCE(sd.be_percentage, 0) AS be_percentage,
		       COALESCE(sd.be_ranking, 0) AS be_ranking,
		       COALESCE(sd.cv_path, '') AS cv_path,
		       COALESCE(sd.transcript_path, '') AS transcript_path,
		       COALESCE(sd.status, 'pending') AS status,
		       sd.created_at,
		       sd.updated_at
		FROM users u
		LEFT JOIN student_details sd ON u.id = sd.user_id
		WHERE u.role = $1
		ORDER BY COALESCE(sd.updated_at, u.created_at) DESC`,
		models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.StudentSummary
	for rows.Next() {
		var s models.StudentSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.University, &s.Location,
			&s.BEPercentage, &s.BERanking, &s.CVPath, &s.TranscriptPath,
			&s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// GetRecord returns the full admin view of one student. Unknown ids and
// non-student ids are both ErrStudentNotFound.
func (r *StudentDetailsRepository) GetRecord(ctx context.Context, studentID int64) (*models.StudentRecord, error) {
	record := &models.StudentRecord{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT u.id,
		       u.name,
		       u.email,
		       COALESCE(sd.university, '') AS university,
		       COALESCE(sd.location, '') AS location,
		       COALESCE(sd.be_percentage, 0) AS be_percentage,
		       COALESCE(sd.be_ranking, 0) AS be_ranking,
		       COALESCE(sd.cv_path, '') AS cv_path,
		       COALESCE(sd.transcript_path, '') AS transcript_path,
		       COALESCE(sd.status, 'pending') AS status,
		       COALESCE(sd.reference_details, '') AS reference_details,
		       sd.created_at,
		       sd.updated_at
		FROM users u
		LEFT JOIN student_details sd ON u.id = sd.user_id
		WHERE u.id = $1 AND u.role = $2`,
		studentID, models.RoleStudent).Scan(
		&record.ID, &record.Name, &record.Email, &record.University,
		&record.Location, &record.BEPercentage, &record.BERanking,
		&record.CVPath, &record.TranscriptPath, &record.Status,
		&record.ReferenceDetails, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student record: %w", err)
	}

	return record, nil
}

// CreateStudentWithDetails inserts the user row and its pending details
// row in a single transaction, so an admin-added student never exists
// half-created. Duplicate email surfaces as ErrEmailAlreadyExists.
func (r *StudentDetailsRepository) CreateStudentWithDetails(ctx context.Context, user *models.User, details *models.StudentDetails) (int64, error) {
	var userID int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := createUserInTx(ctx, tx, user)
		if err != nil {
			return err
		}
		userID = id

		_, err = tx.Exec(ctx, `
			INSERT INTO student_details (user_id, university, location, be_percentage, be_ranking, status)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, details.University, details.Location,
			details.BEPercentage, details.BERanking, models.StatusPending)
		if err != nil {
			return fmt.Errorf("error creating student details: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return userID, nil
}
