package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/event"
)

const eventColumns = `id, company_id, title, description, location, starts_at, cover_image_url, created_at, updated_at`

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, item event.CareerEvent) (*event.CareerEvent, error) {
	item.ID = common.NewUUID()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO career_events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.CompanyID, item.Title, item.Description, item.Location, item.StartsAt,
		item.CoverImageURL, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create event", err)
	}
	return &item, nil
}

func (r *EventRepository) GetByCompany(ctx context.Context, id, companyID common.UUID) (*event.CareerEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM career_events WHERE id = $1 AND company_id = $2`, id, companyID)
	return scanEvent(row)
}

func (r *EventRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]event.CareerEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM career_events WHERE company_id = $1 ORDER BY starts_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list events", err)
	}
	defer rows.Close()
	var items []event.CareerEvent
	for rows.Next() {
		item, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, item event.CareerEvent) (*event.CareerEvent, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE career_events SET title = $1, description = $2,
		location = $3, starts_at = $4, cover_image_url = $5, updated_at = $6
		WHERE id = $7 AND company_id = $8`,
		item.Title, item.Description, item.Location, item.StartsAt, item.CoverImageURL,
		time.Now().UTC(), item.ID, item.CompanyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update event", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "event not found", nil)
	}
	return r.GetByCompany(ctx, item.ID, item.CompanyID)
}

func (r *EventRepository) Delete(ctx context.Context, id, companyID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM career_events WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete event", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return common.NewError(common.CodeNotFound, "event not found", nil)
	}
	return nil
}

func scanEvent(row rowScanner) (*event.CareerEvent, error) {
	var item event.CareerEvent
	err := row.Scan(&item.ID, &item.CompanyID, &item.Title, &item.Description, &item.Location,
		&item.StartsAt, &item.CoverImageURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "event not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load event", err)
	}
	return &item, nil
}
