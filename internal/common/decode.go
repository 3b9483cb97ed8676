package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes bounds inbound request bodies; quotation payloads are small.
const maxBodyBytes = 1 << 20

// DecodeJSON reads a JSON request body into dst, rejecting unknown fields
// and trailing content. Failures come back as BAD_REQUEST AppErrors ready
// for JSONError rendering.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &AppError{
			Code:       "BAD_REQUEST",
			Message:    "invalid request body",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &AppError{
			Code:       "BAD_REQUEST",
			Message:    "request body must contain a single JSON object",
			HTTPStatus: http.StatusBadRequest,
			Err:        fmt.Errorf("trailing content after JSON body"),
		}
	}
	return nil
}

// WriteError renders err, unwrapping AppError metadata when present.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		message := appErr.Message
		if message == "" {
			message = "internal error"
		}
		JSONError(w, status, code, message, appErr.Details)
		return
	}
	JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
