package models

import (
	"time"
)

// StudentSummary is one row of the admin listing: identity joined with
// whatever profile attributes exist, defaulted when no submission has
// been made yet. Timestamps stay nil for students without a details row.
type StudentSummary struct {
	ID             int64             `db:"id"`
	Name           string            `db:"name"`
	Email          string            `db:"email"`
	University     string            `db:"university"`
	Location       string            `db:"location"`
	BEPercentage   float64           `db:"be_percentage"`
	BERanking      int               `db:"be_ranking"`
	CVPath         string            `db:"cv_path"`
	TranscriptPath string            `db:"transcript_path"`
	Status         ApplicationStatus `db:"status"`
	CreatedAt      *time.Time        `db:"created_at"`
	UpdatedAt      *time.Time        `db:"updated_at"`
}

// StudentRecord is the full admin view of a single student.
type StudentRecord struct {
	StudentSummary
	ReferenceDetails string `db:"reference_details"`
}
