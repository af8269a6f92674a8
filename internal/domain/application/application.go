package application

import (
	"time"

	"careerconnect/internal/common"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
)

// Statuses is the full allowed set. The review workflow is deliberately flat:
// a company may move an application between any two statuses.
var Statuses = []Status{StatusPending, StatusShortlisted, StatusHired, StatusRejected}

// ValidStatus matches exactly; case variants and empty strings are rejected.
func ValidStatus(status Status) bool {
	for _, known := range Statuses {
		if status == known {
			return true
		}
	}
	return false
}

type Application struct {
	ID                    common.UUID `json:"id"`
	ApplicantID           common.UUID `json:"applicant_id"`
	JobID                 common.UUID `json:"job_id"`
	CompanyID             common.UUID `json:"company_id"`
	CompanyName           string      `json:"company_name"`
	JobTitle              string      `json:"job_title"`
	CVFile                string      `json:"cv_file"`
	RecommendationLetters []string    `json:"recommendation_letters"`
	CareerSummaries       []string    `json:"career_summaries"`
	Status                Status      `json:"status"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// FileLocators lists every blob locator attached to the application.
func (a *Application) FileLocators() []string {
	locators := make([]string, 0, 1+len(a.RecommendationLetters)+len(a.CareerSummaries))
	if a.CVFile != "" {
		locators = append(locators, a.CVFile)
	}
	locators = append(locators, a.RecommendationLetters...)
	locators = append(locators, a.CareerSummaries...)
	return locators
}

// ApplicantView resolves company display fields for the job-seeker list.
type ApplicantView struct {
	Application
	CompanyLogo string `json:"company_logo,omitempty"`
}

// CompanyView resolves applicant and job summary fields for the candidate list.
type CompanyView struct {
	Application
	ApplicantName        string `json:"applicant_name"`
	ApplicantEmail       string `json:"applicant_email"`
	ApplicantMobile      string `json:"applicant_mobile,omitempty"`
	ApplicantStudentType string `json:"applicant_student_type,omitempty"`
	ApplicantDepartment  string `json:"applicant_department,omitempty"`
	JobCategory          string `json:"job_category"`
	JobDepartment        string `json:"job_department"`
}
