package app

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerconnect/internal/blob"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/notification"
	"careerconnect/internal/domain/user"
)

type fakeApplicationRepo struct {
	mu         sync.Mutex
	items      map[common.UUID]*application.Application
	failCreate error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return nil, r.failCreate
	}
	for _, existing := range r.items {
		if existing.ApplicantID == app.ApplicantID && existing.JobID == app.JobID {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
		}
	}
	app.ID = common.NewUUID()
	r.items[app.ID] = &app
	stored := *r.items[app.ID]
	return &stored, nil
}

func (r *fakeApplicationRepo) FindByApplicantAndJob(_ context.Context, applicantID, jobID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ApplicantID == applicantID && existing.JobID == jobID {
			stored := *existing
			return &stored, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) GetForApplicant(_ context.Context, id, applicantID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.ApplicantID != applicantID {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	stored := *existing
	return &stored, nil
}

func (r *fakeApplicationRepo) GetForCompany(_ context.Context, id, companyID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.CompanyID != companyID {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	stored := *existing
	return &stored, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID common.UUID) ([]application.ApplicantView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var views []application.ApplicantView
	for _, existing := range r.items {
		if existing.ApplicantID == applicantID {
			views = append(views, application.ApplicantView{Application: *existing})
		}
	}
	return views, nil
}

func (r *fakeApplicationRepo) ListByCompany(_ context.Context, companyID common.UUID) ([]application.CompanyView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var views []application.CompanyView
	for _, existing := range r.items {
		if existing.CompanyID == companyID {
			views = append(views, application.CompanyView{Application: *existing})
		}
	}
	return views, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	existing.Status = status
	stored := *existing
	return &stored, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeJobRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*job.WithCompany
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: make(map[common.UUID]*job.WithCompany)}
}

func (r *fakeJobRepo) add(posting job.WithCompany) common.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if posting.ID == "" {
		posting.ID = common.NewUUID()
	}
	r.items[posting.ID] = &posting
	return posting.ID
}

func (r *fakeJobRepo) Create(_ context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = r.add(job.WithCompany{Job: posting})
	return &posting, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id common.UUID) (*job.WithCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := *existing
	return &stored, nil
}

func (r *fakeJobRepo) GetByCompany(_ context.Context, id, companyID common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.CompanyID != companyID {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := existing.Job
	return &stored, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]job.WithCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []job.WithCompany
	for _, existing := range r.items {
		all = append(all, *existing)
	}
	return all, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []job.Job
	for _, existing := range r.items {
		if existing.CompanyID == companyID {
			all = append(all, existing.Job)
		}
	}
	return all, nil
}

func (r *fakeJobRepo) Update(_ context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[posting.ID]
	if !ok || existing.CompanyID != posting.CompanyID {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	existing.Job = posting
	return &posting, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id, companyID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.CompanyID != companyID {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Email == account.Email {
			return nil, common.NewError(common.CodeConflict, "email is already registered", nil)
		}
	}
	account.ID = common.NewUUID()
	r.items[account.ID] = &account
	stored := account
	return &stored, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	stored := *existing
	return &stored, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Email == email {
			stored := *existing
			return &stored, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id common.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	existing.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []user.User
	for _, existing := range r.items {
		all = append(all, *existing)
	}
	return all, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

type fakeBlobStore struct {
	mu         sync.Mutex
	saved      map[string]bool
	seq        int
	failAfter  int
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{saved: make(map[string]bool), failAfter: -1}
}

func (s *fakeBlobStore) Save(_ context.Context, dir string, file blob.File) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAfter >= 0 && s.seq >= s.failAfter {
		return "", errors.New("disk full")
	}
	s.seq++
	locator := "/uploads/" + dir + "/" + strconv.Itoa(s.seq) + "-" + file.Name
	s.saved[locator] = true
	return locator, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errors.New("blob unreachable")
	}
	delete(s.saved, locator)
	return nil
}

func (s *fakeBlobStore) stored() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, item notification.Notification) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = common.NewUUID()
	r.items = append(r.items, item)
	stored := item
	return &stored, nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID common.UUID) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notification.Notification
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, userID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items[i].IsRead = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+": "+body)
	return nil
}

type serviceFixture struct {
	service       *ApplicationService
	applications  *fakeApplicationRepo
	jobs          *fakeJobRepo
	users         *fakeUserRepo
	blobs         *fakeBlobStore
	notifications *fakeNotificationRepo
	mailer        *fakeMailer
	applicantID   common.UUID
	companyID     common.UUID
	jobID         common.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	applications := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	users := newFakeUserRepo()
	blobs := newFakeBlobStore()
	notifications := &fakeNotificationRepo{}
	mailer := &fakeMailer{}

	applicant, err := users.Create(context.Background(), user.User{Name: "Rahim", Email: "rahim@example.com"})
	require.NoError(t, err)
	companyID := common.NewUUID()
	jobID := jobs.add(job.WithCompany{
		Job:         job.Job{CompanyID: companyID, Title: "Backend Engineer"},
		CompanyName: "Acme Ltd",
	})

	return &serviceFixture{
		service:       NewApplicationService(applications, jobs, users, blobs, notifications, mailer, slog.Default()),
		applications:  applications,
		jobs:          jobs,
		users:         users,
		blobs:         blobs,
		notifications: notifications,
		mailer:        mailer,
		applicantID:   applicant.ID,
		companyID:     companyID,
		jobID:         jobID,
	}
}

func cvFile() *blob.File {
	return &blob.File{Name: "cv.pdf", ContentType: "application/pdf", Size: 1024, Reader: strings.NewReader("cv")}
}

func attachment(name string) blob.File {
	return blob.File{Name: name, ContentType: "application/pdf", Size: 512, Reader: strings.NewReader(name)}
}

func TestSubmitStoresFilesAndCreatesPendingApplication(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Submit(context.Background(), SubmitInput{
		ApplicantID:           f.applicantID,
		JobID:                 f.jobID,
		CV:                    cvFile(),
		RecommendationLetters: []blob.File{attachment("letter1.pdf"), attachment("letter2.pdf")},
		CareerSummaries:       []blob.File{attachment("summary.pdf")},
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, created.Status)
	assert.Equal(t, "Acme Ltd", created.CompanyName)
	assert.Equal(t, "Backend Engineer", created.JobTitle)
	assert.Equal(t, f.companyID, created.CompanyID)
	assert.NotEmpty(t, created.CVFile)
	assert.Len(t, created.RecommendationLetters, 2)
	assert.Len(t, created.CareerSummaries, 1)
	assert.Equal(t, 4, f.blobs.stored())
}

func TestSubmitWithoutCVIsRejectedBeforeAnyWrite(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		ApplicantID:           f.applicantID,
		JobID:                 f.jobID,
		RecommendationLetters: []blob.File{attachment("letter.pdf")},
	})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
	assert.Contains(t, err.Error(), "Curriculum Vitae")
	assert.Equal(t, 0, f.blobs.stored())
	assert.Equal(t, 0, f.applications.count())
}

func TestSubmitEmptyCVIsRejected(t *testing.T) {
	f := newServiceFixture(t)

	cv := cvFile()
	cv.Size = 0
	_, err := f.service.Submit(context.Background(), SubmitInput{ApplicantID: f.applicantID, JobID: f.jobID, CV: cv})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestSubmitUnknownJobIsNotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{ApplicantID: f.applicantID, JobID: common.NewUUID(), CV: cvFile()})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
	assert.Equal(t, 0, f.blobs.stored())
}

func TestSubmitDuplicateIsConflictWithoutNewFiles(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{ApplicantID: f.applicantID, JobID: f.jobID, CV: cvFile()})
	require.NoError(t, err)
	storedBefore := f.blobs.stored()

	_, err = f.service.Submit(context.Background(), SubmitInput{ApplicantID: f.applicantID, JobID: f.jobID, CV: cvFile()})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
	assert.Contains(t, err.Error(), "You have already applied for this job")
	assert.Equal(t, storedBefore, f.blobs.stored())
	assert.Equal(t, 1, f.applications.count())
}

func TestSubmitConcurrentDuplicatesPersistExactlyOne(t *testing.T) {
	f := newServiceFixture(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.Submit(context.Background(), SubmitInput{
				ApplicantID: f.applicantID,
				JobID:       f.jobID,
				CV:          cvFile(),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, common.Is(err, common.CodeConflict))
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.applications.count())
}

func TestSubmitCleansUpFilesWhenAWriteFails(t *testing.T) {
	f := newServiceFixture(t)
	f.blobs.failAfter = 2

	_, err := f.service.Submit(context.Background(), SubmitInput{
		ApplicantID:           f.applicantID,
		JobID:                 f.jobID,
		CV:                    cvFile(),
		RecommendationLetters: []blob.File{attachment("a.pdf"), attachment("b.pdf")},
	})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeInternal))
	assert.Equal(t, 0, f.blobs.stored())
	assert.Equal(t, 0, f.applications.count())
}

func TestSubmitCleansUpFilesWhenInsertFails(t *testing.T) {
	f := newServiceFixture(t)
	f.applications.failCreate = errors.New("connection reset")

	_, err := f.service.Submit(context.Background(), SubmitInput{ApplicantID: f.applicantID, JobID: f.jobID, CV: cvFile()})
	require.Error(t, err)
	assert.Equal(t, 0, f.blobs.stored())
}

func submitOne(t *testing.T, f *serviceFixture) *application.Application {
	t.Helper()
	created, err := f.service.Submit(context.Background(), SubmitInput{
		ApplicantID:           f.applicantID,
		JobID:                 f.jobID,
		CV:                    cvFile(),
		RecommendationLetters: []blob.File{attachment("letter.pdf")},
	})
	require.NoError(t, err)
	return created
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	for _, status := range []application.Status{
		application.StatusHired,
		application.StatusPending,
		application.StatusRejected,
		application.StatusShortlisted,
	} {
		updated, err := f.service.UpdateStatus(context.Background(), created.ID, f.companyID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownAndCaseVariants(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	for _, status := range []application.Status{"Hired", "SHORTLISTED", "accepted", " pending", ""} {
		_, err := f.service.UpdateStatus(context.Background(), created.ID, f.companyID, status)
		require.Error(t, err, "status %q", status)
		assert.True(t, common.Is(err, common.CodeValidation), "status %q", status)
	}
	stored, err := f.applications.GetForCompany(context.Background(), created.ID, f.companyID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, stored.Status)
}

func TestUpdateStatusByForeignCompanyReadsAsNotFound(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	_, err := f.service.UpdateStatus(context.Background(), created.ID, common.NewUUID(), application.StatusHired)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestUpdateStatusNotifiesApplicant(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	_, err := f.service.UpdateStatus(context.Background(), created.ID, f.companyID, application.StatusShortlisted)
	require.NoError(t, err)

	items, err := f.notifications.ListByUser(context.Background(), f.applicantID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "Backend Engineer")
	assert.Contains(t, items[0].Message, "shortlisted")
	require.Len(t, f.mailer.sent, 1)
	assert.Contains(t, f.mailer.sent[0], "rahim@example.com")
}

func TestDeleteForApplicantRemovesRecordAndFiles(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	err := f.service.DeleteForApplicant(context.Background(), created.ID, f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.applications.count())
	assert.Equal(t, 0, f.blobs.stored())
}

func TestDeleteSucceedsWhenBlobDeleteFails(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)
	f.blobs.failDelete = true

	err := f.service.DeleteForApplicant(context.Background(), created.ID, f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.applications.count())
}

func TestDeleteForCompanyIsOwnershipScoped(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	err := f.service.DeleteForCompany(context.Background(), created.ID, common.NewUUID())
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
	assert.Equal(t, 1, f.applications.count())

	err = f.service.DeleteForCompany(context.Background(), created.ID, f.companyID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.applications.count())
}

func TestDeleteForApplicantIsOwnershipScoped(t *testing.T) {
	f := newServiceFixture(t)
	created := submitOne(t, f)

	err := f.service.DeleteForApplicant(context.Background(), created.ID, common.NewUUID())
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
	assert.Equal(t, 1, f.applications.count())
}
