package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/company"
)

const companyColumns = `id, company_name, email, password_hash, establishment_year, contact_no,
	industry_type, address, license_no, image_url, description, created_at, updated_at`

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, account company.Company) (*company.Company, error) {
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO companies (`+companyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		account.ID, account.CompanyName, account.Email, account.PasswordHash, account.EstablishmentYear,
		account.ContactNo, account.IndustryType, account.Address, account.LicenseNo,
		account.ImageURL, account.Description, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "email is already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &account, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
	return scanCompany(row)
}

func (r *CompanyRepository) UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update password", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return nil
}

func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count companies", err)
	}
	return count, nil
}

func scanCompany(row rowScanner) (*company.Company, error) {
	var account company.Company
	err := row.Scan(&account.ID, &account.CompanyName, &account.Email, &account.PasswordHash,
		&account.EstablishmentYear, &account.ContactNo, &account.IndustryType, &account.Address,
		&account.LicenseNo, &account.ImageURL, &account.Description, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &account, nil
}

// 23505 is Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
