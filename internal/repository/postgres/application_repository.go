package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
)

const applicationColumns = `id, applicant_id, job_id, company_id, company_name, job_title, cv_file,
	recommendation_letters, career_summaries, status, created_at, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		app.ID, app.ApplicantID, app.JobID, app.CompanyID, app.CompanyName, app.JobTitle, app.CVFile,
		pq.Array(app.RecommendationLetters), pq.Array(app.CareerSummaries), app.Status,
		app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE applicant_id = $1 AND job_id = $2`, applicantID, jobID)
	return scanApplication(row)
}

func (r *ApplicationRepository) GetForApplicant(ctx context.Context, id, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE id = $1 AND applicant_id = $2`, id, applicantID)
	return scanApplication(row)
}

func (r *ApplicationRepository) GetForCompany(ctx context.Context, id, companyID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE id = $1 AND company_id = $2`, id, companyID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.ApplicantView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.applicant_id, a.job_id, a.company_id,
		a.company_name, a.job_title, a.cv_file, a.recommendation_letters, a.career_summaries,
		a.status, a.created_at, a.updated_at, c.image_url
		FROM applications a
		JOIN companies c ON c.id = a.company_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.ApplicantView
	for rows.Next() {
		var item application.ApplicantView
		err := rows.Scan(&item.ID, &item.ApplicantID, &item.JobID, &item.CompanyID,
			&item.CompanyName, &item.JobTitle, &item.CVFile,
			pq.Array(&item.RecommendationLetters), pq.Array(&item.CareerSummaries),
			&item.Status, &item.CreatedAt, &item.UpdatedAt, &item.CompanyLogo)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.CompanyView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.applicant_id, a.job_id, a.company_id,
		a.company_name, a.job_title, a.cv_file, a.recommendation_letters, a.career_summaries,
		a.status, a.created_at, a.updated_at,
		u.name, u.email, u.mobile, u.student_type, u.department,
		j.category, j.department
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		JOIN jobs j ON j.id = a.job_id
		WHERE a.company_id = $1
		ORDER BY a.created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company applications", err)
	}
	defer rows.Close()
	var items []application.CompanyView
	for rows.Next() {
		var item application.CompanyView
		err := rows.Scan(&item.ID, &item.ApplicantID, &item.JobID, &item.CompanyID,
			&item.CompanyName, &item.JobTitle, &item.CVFile,
			pq.Array(&item.RecommendationLetters), pq.Array(&item.CareerSummaries),
			&item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.ApplicantName, &item.ApplicantEmail, &item.ApplicantMobile,
			&item.ApplicantStudentType, &item.ApplicantDepartment,
			&item.JobCategory, &item.JobDepartment)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3
		RETURNING `+applicationColumns, status, time.Now().UTC(), id)
	return scanApplication(row)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	err := row.Scan(&app.ID, &app.ApplicantID, &app.JobID, &app.CompanyID, &app.CompanyName,
		&app.JobTitle, &app.CVFile, pq.Array(&app.RecommendationLetters),
		pq.Array(&app.CareerSummaries), &app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}
