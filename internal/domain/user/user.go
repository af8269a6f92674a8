package user

import (
	"time"

	"careerconnect/internal/common"
)

type Role string

const (
	RoleApplicant Role = "user"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID                 common.UUID `json:"id"`
	Name               string      `json:"name"`
	Gender             string      `json:"gender,omitempty"`
	Email              string      `json:"email"`
	Mobile             string      `json:"mobile,omitempty"`
	PasswordHash       string      `json:"-"`
	StudentType        string      `json:"student_type,omitempty"`
	Department         string      `json:"department,omitempty"`
	ImageURL           string      `json:"image_url,omitempty"`
	CurrentAddress     string      `json:"current_address,omitempty"`
	AcademicBackground string      `json:"academic_background,omitempty"`
	CGPA               *float64    `json:"cgpa,omitempty"`
	Skills             string      `json:"skills,omitempty"`
	University         string      `json:"university,omitempty"`
	CertificateURL     string      `json:"certificate_url,omitempty"`
	CVURL              string      `json:"cv_url,omitempty"`
	ProjectLink        string      `json:"project_link,omitempty"`
	LinkedinLink       string      `json:"linkedin_link,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
