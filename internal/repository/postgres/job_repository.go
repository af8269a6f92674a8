package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
)

const jobColumns = `id, company_id, title, category, department, student_category, gender, deadline,
	address, description, requirements, benefits, experience, salary_range, created_at, updated_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		posting.ID, posting.CompanyID, posting.Title, posting.Category, posting.Department,
		posting.StudentCategory, posting.Gender, posting.Deadline, posting.Address,
		posting.Description, posting.Requirements, posting.Benefits, posting.Experience,
		posting.SalaryRange, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.WithCompany, error) {
	row := r.db.QueryRowContext(ctx, `SELECT j.id, j.company_id, j.title, j.category, j.department,
		j.student_category, j.gender, j.deadline, j.address, j.description, j.requirements,
		j.benefits, j.experience, j.salary_range, j.created_at, j.updated_at,
		c.company_name, c.image_url
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id)
	var item job.WithCompany
	if err := scanJobWithCompany(row, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *JobRepository) GetByCompany(ctx context.Context, id, companyID common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND company_id = $2`, id, companyID)
	var item job.Job
	if err := scanJob(row, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.WithCompany, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT j.id, j.company_id, j.title, j.category, j.department,
		j.student_category, j.gender, j.deadline, j.address, j.description, j.requirements,
		j.benefits, j.experience, j.salary_range, j.created_at, j.updated_at,
		c.company_name, c.image_url
		FROM jobs j JOIN companies c ON c.id = j.company_id
		ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.WithCompany
	for rows.Next() {
		var item job.WithCompany
		if err := scanJobWithCompany(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var item job.Job
		if err := scanJob(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *JobRepository) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, category = $2, department = $3,
		student_category = $4, gender = $5, deadline = $6, address = $7, description = $8,
		requirements = $9, benefits = $10, experience = $11, salary_range = $12, updated_at = $13
		WHERE id = $14 AND company_id = $15`,
		posting.Title, posting.Category, posting.Department, posting.StudentCategory, posting.Gender,
		posting.Deadline, posting.Address, posting.Description, posting.Requirements, posting.Benefits,
		posting.Experience, posting.SalaryRange, time.Now().UTC(), posting.ID, posting.CompanyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return r.GetByCompany(ctx, posting.ID, posting.CompanyID)
}

func (r *JobRepository) Delete(ctx context.Context, id, companyID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return nil
}

func scanJob(row rowScanner, item *job.Job) error {
	err := row.Scan(&item.ID, &item.CompanyID, &item.Title, &item.Category, &item.Department,
		&item.StudentCategory, &item.Gender, &item.Deadline, &item.Address, &item.Description,
		&item.Requirements, &item.Benefits, &item.Experience, &item.SalaryRange,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewError(common.CodeNotFound, "job not found", err)
		}
		return common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return nil
}

func scanJobWithCompany(row rowScanner, item *job.WithCompany) error {
	err := row.Scan(&item.ID, &item.CompanyID, &item.Title, &item.Category, &item.Department,
		&item.StudentCategory, &item.Gender, &item.Deadline, &item.Address, &item.Description,
		&item.Requirements, &item.Benefits, &item.Experience, &item.SalaryRange,
		&item.CreatedAt, &item.UpdatedAt, &item.CompanyName, &item.CompanyLogo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewError(common.CodeNotFound, "job not found", err)
		}
		return common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return nil
}
