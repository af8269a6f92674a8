package database

import (
	"context"
	"database/sql"
	"fmt"
)

// The unique index on applications(applicant_id, job_id) is the safety net
// for concurrent duplicate submissions; the in-service existence check is
// only an early exit.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	gender TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL UNIQUE,
	mobile TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	student_type TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	current_address TEXT NOT NULL DEFAULT '',
	academic_background TEXT NOT NULL DEFAULT '',
	cgpa DOUBLE PRECISION,
	skills TEXT NOT NULL DEFAULT '',
	university TEXT NOT NULL DEFAULT '',
	certificate_url TEXT NOT NULL DEFAULT '',
	cv_url TEXT NOT NULL DEFAULT '',
	project_link TEXT NOT NULL DEFAULT '',
	linkedin_link TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	company_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	establishment_year INTEGER NOT NULL DEFAULT 0,
	contact_no TEXT NOT NULL DEFAULT '',
	industry_type TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	license_no TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	category TEXT NOT NULL,
	department TEXT NOT NULL,
	student_category TEXT NOT NULL,
	gender TEXT NOT NULL DEFAULT '',
	deadline TEXT NOT NULL,
	address TEXT NOT NULL,
	description TEXT NOT NULL,
	requirements TEXT NOT NULL,
	benefits TEXT NOT NULL,
	experience TEXT NOT NULL,
	salary_range TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id);

CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	applicant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	company_name TEXT NOT NULL,
	job_title TEXT NOT NULL,
	cv_file TEXT NOT NULL,
	recommendation_letters TEXT[] NOT NULL DEFAULT '{}',
	career_summaries TEXT[] NOT NULL DEFAULT '{}',
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT applications_applicant_job_unique UNIQUE (applicant_id, job_id)
);
CREATE INDEX IF NOT EXISTS idx_applications_company ON applications(company_id);

CREATE TABLE IF NOT EXISTS questions (
	id UUID PRIMARY KEY,
	author_id UUID NOT NULL,
	author_name TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	upvotes INTEGER NOT NULL DEFAULT 0,
	upvoted_by TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS question_replies (
	id UUID PRIMARY KEY,
	question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	author_id UUID NOT NULL,
	author_name TEXT NOT NULL DEFAULT '',
	text TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_replies_question ON question_replies(question_id);

CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	message TEXT NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);

CREATE TABLE IF NOT EXISTS career_events (
	id UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	starts_at TIMESTAMPTZ NOT NULL,
	cover_image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_company ON career_events(company_id);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
