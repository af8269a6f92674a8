package handlers

import (
	"net/http"
	"time"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

const (
	maxRecommendationLetters = 10
	maxCareerSummaries       = 10
)

type ApplicationHandler struct {
	applications   *app.ApplicationService
	limiter        middleware.Limiter
	maxUploadBytes int64
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter, maxUploadBytes int64) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter, maxUploadBytes: maxUploadBytes}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if h.limiter != nil && !h.limiter.Allow("apply:"+applicantID.String(), 5, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.Error(w, common.NewValidationError("invalid multipart form", nil))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()
	jobID, err := common.ParseUUID(r.FormValue("jobId"))
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"jobId": "invalid uuid"}))
		return
	}

	cvFiles, cvOpened, err := openUploads(r, "cvImage", 1, h.maxUploadBytes)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer closeAll(cvOpened)
	letters, lettersOpened, err := openUploads(r, "recommendationLetters", maxRecommendationLetters, h.maxUploadBytes)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer closeAll(lettersOpened)
	summaries, summariesOpened, err := openUploads(r, "careerSummary", maxCareerSummaries, h.maxUploadBytes)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer closeAll(summariesOpened)

	in := app.SubmitInput{
		ApplicantID:           applicantID,
		JobID:                 jobID,
		RecommendationLetters: letters,
		CareerSummaries:       summaries,
	}
	if len(cvFiles) > 0 {
		in.CV = &cvFiles[0]
	}
	created, err := h.applications.Submit(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ListUser(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListForApplicant(r.Context(), applicantID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListForCompany(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), applicationID, companyID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.DeleteForApplicant(r.Context(), applicationID, applicantID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Application deleted successfully"})
}

func (h *ApplicationHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.DeleteForCompany(r.Context(), applicationID, companyID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Application deleted successfully"})
}
