package handlers

import (
	"net/http"
	"strconv"
	"time"

	"careerconnect/internal/app"
	"careerconnect/internal/blob"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

const profileUploadDir = "profiles"

type AuthHandler struct {
	auth           *app.AuthService
	blobs          blob.Store
	limiter        middleware.Limiter
	maxUploadBytes int64
}

func NewAuthHandler(auth *app.AuthService, blobs blob.Store, limiter middleware.Limiter, maxUploadBytes int64) *AuthHandler {
	return &AuthHandler{auth: auth, blobs: blobs, limiter: limiter, maxUploadBytes: maxUploadBytes}
}

// RegisterUser accepts a multipart form so a profile image can be attached
// during signup.
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.Error(w, common.NewValidationError("invalid multipart form", nil))
		return
	}
	defer h.cleanupForm(r)

	in := app.RegisterUserInput{
		Name:               r.FormValue("name"),
		Gender:             r.FormValue("gender"),
		Email:              r.FormValue("email"),
		Mobile:             r.FormValue("mobile"),
		Password:           r.FormValue("password"),
		StudentType:        r.FormValue("studentType"),
		Department:         r.FormValue("department"),
		CurrentAddress:     r.FormValue("currentAddress"),
		AcademicBackground: r.FormValue("academicBackground"),
		Skills:             r.FormValue("skills"),
		University:         r.FormValue("university"),
		ProjectLink:        r.FormValue("projectLink"),
		LinkedinLink:       r.FormValue("linkedinLink"),
	}
	if raw := r.FormValue("cgpa"); raw != "" {
		cgpa, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"cgpa": "must be a number"}))
			return
		}
		in.CGPA = &cgpa
	}
	if fields := requireFields(map[string]string{"name": in.Name, "email": in.Email, "password": in.Password}); fields != nil {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}
	for _, upload := range []struct {
		field string
		dst   *string
	}{
		{"image", &in.ImageURL},
		{"certificate", &in.CertificateURL},
		{"cvFile", &in.CVURL},
	} {
		locator, err := h.saveOptionalUpload(r, upload.field)
		if err != nil {
			response.Error(w, err)
			return
		}
		*upload.dst = locator
	}
	result, err := h.auth.RegisterUser(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.Error(w, common.NewValidationError("invalid multipart form", nil))
		return
	}
	defer h.cleanupForm(r)

	year, _ := strconv.Atoi(r.FormValue("establishmentYear"))
	in := app.RegisterCompanyInput{
		CompanyName:       r.FormValue("companyName"),
		Email:             r.FormValue("email"),
		Password:          r.FormValue("password"),
		EstablishmentYear: year,
		ContactNo:         r.FormValue("contactNo"),
		IndustryType:      r.FormValue("industryType"),
		Address:           r.FormValue("address"),
		LicenseNo:         r.FormValue("licenseNo"),
		Description:       r.FormValue("description"),
	}
	if fields := requireFields(map[string]string{"companyName": in.CompanyName, "email": in.Email, "password": in.Password}); fields != nil {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}
	imageURL, err := h.saveOptionalUpload(r, "image")
	if err != nil {
		response.Error(w, err)
		return
	}
	in.ImageURL = imageURL
	result, err := h.auth.RegisterCompany(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user company"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow("login:"+middleware.ClientIP(r), 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "login rate limit exceeded", nil))
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ChangePassword(r.Context(), userID, role, req.OldPassword, req.NewPassword); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *AuthHandler) saveOptionalUpload(r *http.Request, field string) (string, error) {
	files, opened, err := openUploads(r, field, 1, h.maxUploadBytes)
	if err != nil {
		return "", err
	}
	defer closeAll(opened)
	if len(files) == 0 {
		return "", nil
	}
	locator, err := h.blobs.Save(r.Context(), profileUploadDir, files[0])
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store profile upload", err)
	}
	return locator, nil
}

func (h *AuthHandler) cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

func requireFields(values map[string]string) map[string]string {
	var missing map[string]string
	for field, value := range values {
		if value == "" {
			if missing == nil {
				missing = make(map[string]string)
			}
			missing[field] = "required"
		}
	}
	return missing
}
