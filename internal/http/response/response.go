package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"careerconnect/internal/common"
)

// ErrorCollector receives every error written to a client.
type ErrorCollector interface {
	RecordError(code common.Code)
}

var collector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	collector = c
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.NewError(common.CodeInternal, "internal server error", err)
	}
	if collector != nil {
		collector.RecordError(appErr.Code)
	}
	JSON(w, statusFor(appErr.Code), errorBody{Error: appErr.Message, Fields: appErr.Fields})
}

// Conflict maps to 400 so "already applied" and "already upvoted" read as
// plain client errors, matching the original API surface.
func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeConflict:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
