package job

import (
	"time"

	"careerconnect/internal/common"
)

type Job struct {
	ID              common.UUID `json:"id"`
	CompanyID       common.UUID `json:"company_id"`
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	Department      string      `json:"department"`
	StudentCategory string      `json:"student_category"`
	Gender          string      `json:"gender,omitempty"`
	Deadline        string      `json:"deadline"`
	Address         string      `json:"address"`
	Description     string      `json:"description"`
	Requirements    string      `json:"requirements"`
	Benefits        string      `json:"benefits"`
	Experience      string      `json:"experience"`
	SalaryRange     string      `json:"salary_range"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// WithCompany is the job-seeker-facing view with the owning company resolved.
type WithCompany struct {
	Job
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo,omitempty"`
}
