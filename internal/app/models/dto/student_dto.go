package dto

// SubmitDetailsRequest carries the text fields of a multipart
// application submission. File parts are handled separately.
type SubmitDetailsRequest struct {
	FinalPercentage          string `form:"final_percentage"`
	TentativeRanking         string `form:"tentative_ranking"`
	FinalYearProject         string `form:"final_year_project"`
	OtherResearch            string `form:"other_research"`
	Publications             string `form:"publications"`
	Extracurricular          string `form:"extracurricular"`
	ProfessionalExperience   string `form:"professional_experience"`
	StrongPoints             string `form:"strong_points"`
	WeakPoints               string `form:"weak_points"`
	PreferredPrograms        string `form:"preferred_programs"`
	ReferenceDetails         string `form:"reference_details"`
	StatementOfPurpose       string `form:"statement_of_purpose"`
	IntendedResearchAreas    string `form:"intended_research_areas"`
	EnglishProficiency       string `form:"english_proficiency"`
	LeadershipExperience     string `form:"leadership_experience"`
	AvailabilityToStart      string `form:"availability_to_start"`
	AdditionalCertifications string `form:"additional_certifications"`
}

// StudentDetailsResponse is the full record a student sees for their own
// submission.
type StudentDetailsResponse struct {
	FinalPercentage          string  `json:"final_percentage"`
	TentativeRanking         string  `json:"tentative_ranking"`
	FinalYearProject         string  `json:"final_year_project"`
	OtherResearch            string  `json:"other_research"`
	Publications             string  `json:"publications"`
	Extracurricular          string  `json:"extracurricular"`
	ProfessionalExperience   string  `json:"professional_experience"`
	StrongPoints             string  `json:"strong_points"`
	WeakPoints               string  `json:"weak_points"`
	PreferredPrograms        string  `json:"preferred_programs"`
	ReferenceDetails         string  `json:"reference_details"`
	StatementOfPurpose       string  `json:"statement_of_purpose"`
	IntendedResearchAreas    string  `json:"intended_research_areas"`
	EnglishProficiency       string  `json:"english_proficiency"`
	LeadershipExperience     string  `json:"leadership_experience"`
	AvailabilityToStart      string  `json:"availability_to_start"`
	AdditionalCertifications string  `json:"additional_certifications"`
	TranscriptPath           *string `json:"transcript_path"`
	CVPath                   *string `json:"cv_path"`
	PhotoPath                *string `json:"photo_path"`
	Status                   string  `json:"status"`
	CreatedAt                string  `json:"created_at"`
	UpdatedAt                string  `json:"updated_at"`
}
