package dto

// AddStudentRequest represents an admin adding a student record directly
type AddStudentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	University   string  `json:"university"`
	Location     string  `json:"location"`
	BEPercentage float64 `json:"be_percentage"`
	BERanking    int     `json:"be_ranking"`
}

// AddStudentResponse confirms a created student and carries the new id
type AddStudentResponse struct {
	Message   string `json:"message"`
	StudentID int64  `json:"student_id"`
}

// StudentSummary is one row of the admin student listing. Profile fields
// fall back to empty/zero values when the student has not submitted yet.
type StudentSummary struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	University     string  `json:"university"`
	Location       string  `json:"location"`
	BEPercentage   float64 `json:"be_percentage"`
	BERanking      int     `json:"be_ranking"`
	CVPath         string  `json:"cv_path"`
	TranscriptPath string  `json:"transcript_path"`
	Status         string  `json:"status"`
	CreatedAt      *string `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
}

// StudentRecord is the full admin view of one student.
type StudentRecord struct {
	StudentSummary
	ReferenceDetails string `json:"reference_details"`
}
