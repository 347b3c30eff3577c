package models

import (
	"time"
)

// StudentDetails is the one-to-one extension of a student-role user,
// keyed by user id. At most one row exists per user; submissions upsert.
//
// The three artifact path fields are nil until a file of that kind has
// been uploaded; a resubmission without a file of a kind keeps the
// previously stored path.
type StudentDetails struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"userId" db:"user_id"`

	// Admin-maintained profile attributes
	University   string  `json:"university" db:"university"`
	Location     string  `json:"location" db:"location"`
	BEPercentage float64 `json:"be_percentage" db:"be_percentage"`
	BERanking    int     `json:"be_ranking" db:"be_ranking"`

	// Application form fields (free text, submitted by the student)
	FinalPercentage          string `json:"final_percentage" db:"final_percentage"`
	TentativeRanking         string `json:"tentative_ranking" db:"tentative_ranking"`
	FinalYearProject         string `json:"final_year_project" db:"final_year_project"`
	OtherResearch            string `json:"other_research" db:"other_research"`
	Publications             string `json:"publications" db:"publications"`
	Extracurricular          string `json:"extracurricular" db:"extracurricular"`
	ProfessionalExperience   string `json:"professional_experience" db:"professional_experience"`
	StrongPoints             string `json:"strong_points" db:"strong_points"`
	WeakPoints               string `json:"weak_points" db:"weak_points"`
	PreferredPrograms        string `json:"preferred_programs" db:"preferred_programs"`
	ReferenceDetails         string `json:"reference_details" db:"reference_details"`
	StatementOfPurpose       string `json:"statement_of_purpose" db:"statement_of_purpose"`
	IntendedResearchAreas    string `json:"intended_research_areas" db:"intended_research_areas"`
	EnglishProficiency       string `json:"english_proficiency" db:"english_proficiency"`
	LeadershipExperience     string `json:"leadership_experience" db:"leadership_experience"`
	AvailabilityToStart      string `json:"availability_to_start" db:"availability_to_start"`
	AdditionalCertifications string `json:"additional_certifications" db:"additional_certifications"`

	// Uploaded artifact paths, relative to the upload root
	TranscriptPath *string `json:"transcript_path" db:"transcript_path"`
	CVPath         *string `json:"cv_path" db:"cv_path"`
	PhotoPath      *string `json:"photo_path" db:"photo_path"`

	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}
