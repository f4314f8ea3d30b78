package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/matzehuels/windbarb/pkg/errors"
)

type errorBody struct {
	Code      errs.Code `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errs.Code) int {
	switch code {
	case errs.ErrCodeInvalidSpeed,
		errs.ErrCodeInvalidConfiguration,
		errs.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errs.ErrCodeInvalidFormat:
		return http.StatusUnsupportedMediaType
	case errs.ErrCodeNotFound:
		return http.StatusNotFound
	case errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	status := statusFor(code)
	msg := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		msg = "internal error"
	} else if errs.IsPrecondition(err) {
		s.logger.Debug("render rejected", "path", r.URL.Path, "code", code,
			"request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorBody{
		Code:      code,
		Message:   msg,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
