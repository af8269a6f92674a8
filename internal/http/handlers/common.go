package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"careerconnect/internal/blob"
	"careerconnect/internal/common"
)

var validate = validator.New()

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	if err := validate.Struct(dst); err != nil {
		fields := make(map[string]string)
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				fields[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
			}
		}
		return common.NewValidationError("invalid request", fields)
	}
	return nil
}

// idFromPath parses the path segment at index as a UUID, counting segments
// after the leading slash (so index 2 is {id} in /applications/{id}/status).
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	segments := strings.Split(r.URL.Path, "/")
	if index >= len(segments) {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "missing"})
	}
	id, err := common.ParseUUID(segments[index])
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "invalid uuid"})
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

// allowedUploadType accepts any image or a PDF.
func allowedUploadType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

func checkUploadHeader(header *multipart.FileHeader, field string, maxBytes int64) error {
	contentType := header.Header.Get("Content-Type")
	if !allowedUploadType(contentType) {
		return common.NewValidationError("unsupported file type", map[string]string{
			field: "only image or PDF files are accepted",
		})
	}
	if header.Size > maxBytes {
		return common.NewValidationError("file too large", map[string]string{
			field: "file exceeds the upload size limit",
		})
	}
	return nil
}

// openUploads validates and opens every file for the given multipart field.
// Returned files must be closed via closeAll.
func openUploads(r *http.Request, field string, maxCount int, maxBytes int64) ([]blob.File, []multipart.File, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil, nil
	}
	if len(headers) > maxCount {
		return nil, nil, common.NewValidationError("too many files", map[string]string{
			field: "at most " + strconv.Itoa(maxCount) + " files are allowed",
		})
	}
	files := make([]blob.File, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	for _, header := range headers {
		if err := checkUploadHeader(header, field, maxBytes); err != nil {
			closeAll(opened)
			return nil, nil, err
		}
		file, err := header.Open()
		if err != nil {
			closeAll(opened)
			return nil, nil, common.NewError(common.CodeInternal, "failed to read uploaded file", err)
		}
		opened = append(opened, file)
		files = append(files, blob.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		})
	}
	return files, opened, nil
}

func closeAll(files []multipart.File) {
	for _, file := range files {
		_ = file.Close()
	}
}
