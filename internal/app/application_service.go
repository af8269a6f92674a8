package app

import (
	"context"
	"log/slog"

	"careerconnect/internal/blob"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/notification"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/notify"
)

const applicationUploadDir = "applications"

type ApplicationService struct {
	repo          application.Repository
	jobs          job.Repository
	users         user.Repository
	blobs         blob.Store
	notifications notification.Repository
	mailer        notify.Mailer
	logger        *slog.Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, users user.Repository,
	blobs blob.Store, notifications notification.Repository, mailer notify.Mailer, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{
		repo:          repo,
		jobs:          jobs,
		users:         users,
		blobs:         blobs,
		notifications: notifications,
		mailer:        mailer,
		logger:        logger,
	}
}

type SubmitInput struct {
	ApplicantID           common.UUID
	JobID                 common.UUID
	CV                    *blob.File
	RecommendationLetters []blob.File
	CareerSummaries       []blob.File
}

// Submit validates preconditions, persists the uploaded files, then creates
// the application record with status pending. The duplicate check runs before
// any file write; the storage-layer unique constraint on (applicant, job) is
// what actually holds under concurrent submissions, so a conflict from Create
// is handled the same way as one from the early check.
func (s *ApplicationService) Submit(ctx context.Context, in SubmitInput) (*application.Application, error) {
	if in.CV == nil || in.CV.Size == 0 {
		return nil, common.NewError(common.CodeValidation,
			"Sorry! without uploading your own Curriculum Vitae, you cannot apply for this company", nil)
	}

	posting, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByApplicantAndJob(ctx, in.ApplicantID, in.JobID); err == nil {
		return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	var saved []string
	saveFile := func(file blob.File) (string, error) {
		locator, err := s.blobs.Save(ctx, applicationUploadDir, file)
		if err != nil {
			return "", err
		}
		saved = append(saved, locator)
		return locator, nil
	}

	cvLocator, err := saveFile(*in.CV)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to store CV", err)
	}
	letters := make([]string, 0, len(in.RecommendationLetters))
	for _, file := range in.RecommendationLetters {
		locator, err := saveFile(file)
		if err != nil {
			s.cleanupFiles(ctx, saved)
			return nil, common.NewError(common.CodeInternal, "failed to store recommendation letter", err)
		}
		letters = append(letters, locator)
	}
	summaries := make([]string, 0, len(in.CareerSummaries))
	for _, file := range in.CareerSummaries {
		locator, err := saveFile(file)
		if err != nil {
			s.cleanupFiles(ctx, saved)
			return nil, common.NewError(common.CodeInternal, "failed to store career summary", err)
		}
		summaries = append(summaries, locator)
	}

	created, err := s.repo.Create(ctx, application.Application{
		ApplicantID:           in.ApplicantID,
		JobID:                 in.JobID,
		CompanyID:             posting.CompanyID,
		CompanyName:           posting.CompanyName,
		JobTitle:              posting.Title,
		CVFile:                cvLocator,
		RecommendationLetters: letters,
		CareerSummaries:       summaries,
		Status:                application.StatusPending,
	})
	if err != nil {
		s.cleanupFiles(ctx, saved)
		return nil, err
	}
	return created, nil
}

func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID common.UUID) ([]application.ApplicantView, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *ApplicationService) ListForCompany(ctx context.Context, companyID common.UUID) ([]application.CompanyView, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// UpdateStatus moves an application to any of the four statuses. The lookup
// is scoped to the calling company, so a foreign application reads as not
// found rather than revealing that it exists.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, companyID common.UUID, status application.Status) (*application.Application, error) {
	if !application.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": "status must be pending, shortlisted, hired, or rejected",
		})
	}
	app, err := s.repo.GetForCompany(ctx, applicationID, companyID)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateStatus(ctx, app.ID, status)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, updated)
	return updated, nil
}

func (s *ApplicationService) DeleteForApplicant(ctx context.Context, applicationID, applicantID common.UUID) error {
	app, err := s.repo.GetForApplicant(ctx, applicationID, applicantID)
	if err != nil {
		return err
	}
	return s.deleteWithFiles(ctx, app)
}

func (s *ApplicationService) DeleteForCompany(ctx context.Context, applicationID, companyID common.UUID) error {
	app, err := s.repo.GetForCompany(ctx, applicationID, companyID)
	if err != nil {
		return err
	}
	return s.deleteWithFiles(ctx, app)
}

// deleteWithFiles removes attached blobs best-effort, then the record. A
// failed blob delete is logged and skipped: orphaned blobs only cost storage,
// while a half-deleted record would be visible to users.
func (s *ApplicationService) deleteWithFiles(ctx context.Context, app *application.Application) error {
	for _, locator := range app.FileLocators() {
		if err := s.blobs.Delete(ctx, locator); err != nil {
			s.logger.Warn("failed to delete application file",
				"application_id", app.ID.String(), "locator", locator, "error", err)
		}
	}
	return s.repo.Delete(ctx, app.ID)
}

// cleanupFiles compensates for a failed submission by removing blobs written
// before the failure. Survivors are logged as orphan candidates for an
// offline sweep.
func (s *ApplicationService) cleanupFiles(ctx context.Context, locators []string) {
	for _, locator := range locators {
		if err := s.blobs.Delete(ctx, locator); err != nil {
			s.logger.Warn("orphaned upload after failed submission", "locator", locator, "error", err)
		}
	}
}

func (s *ApplicationService) notifyStatusChange(ctx context.Context, app *application.Application) {
	message := "Your application for " + app.JobTitle + " at " + app.CompanyName +
		" is now " + string(app.Status)
	if _, err := s.notifications.Create(ctx, notification.Notification{
		UserID:  app.ApplicantID,
		Message: message,
	}); err != nil {
		s.logger.Warn("failed to record status notification", "application_id", app.ID.String(), "error", err)
	}
	if s.mailer == nil {
		return
	}
	applicant, err := s.users.GetByID(ctx, app.ApplicantID)
	if err != nil {
		s.logger.Warn("failed to resolve applicant for mail", "application_id", app.ID.String(), "error", err)
		return
	}
	if err := s.mailer.Send(ctx, applicant.Email, "Application status updated", message); err != nil {
		s.logger.Warn("failed to send status mail", "application_id", app.ID.String(), "error", err)
	}
}
