package api

import (
	stderrors "errors"
	"net/http"

	"github.com/archplane/archplane/pkg/errors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps an error code to an HTTP status and writes the structured
// body. Causes are kept server-side; clients get code and message only.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	message := err.Error()
	var e *errors.Error
	if stderrors.As(err, &e) {
		message = e.Message
	}

	writeJSON(w, statusFor(code), errorBody{Error: errorDetail{Code: code, Message: message}})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeDiagramNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeSolverFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
