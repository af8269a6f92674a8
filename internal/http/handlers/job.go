package handlers

import (
	"net/http"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title           string `json:"title" validate:"required"`
	Category        string `json:"category" validate:"required"`
	Department      string `json:"department"`
	StudentCategory string `json:"student_category"`
	Gender          string `json:"gender"`
	Deadline        string `json:"deadline" validate:"required"`
	Address         string `json:"address"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements"`
	Benefits        string `json:"benefits"`
	Experience      string `json:"experience"`
	SalaryRange     string `json:"salary_range"`
}

// ListAll serves the public board, no authentication required.
func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.GetByCompany(r.Context(), id, companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), jobFromRequest(req, companyID))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting := jobFromRequest(req, companyID)
	posting.ID = id
	updated, err := h.jobs.Update(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), id, companyID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Job deleted successfully"})
}

func jobFromRequest(req jobRequest, companyID common.UUID) job.Job {
	return job.Job{
		CompanyID:       companyID,
		Title:           req.Title,
		Category:        req.Category,
		Department:      req.Department,
		StudentCategory: req.StudentCategory,
		Gender:          req.Gender,
		Deadline:        req.Deadline,
		Address:         req.Address,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		Experience:      req.Experience,
		SalaryRange:     req.SalaryRange,
	}
}
