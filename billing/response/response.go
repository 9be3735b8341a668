package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice.app/pkg/errs"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope every endpoint answers with. ErrorCode is 0 on
// success and mirrors the HTTP status otherwise.
type APIResponse struct {
	ErrorCode int         `json:"error_code"`
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
}

func Response(w http.ResponseWriter, message string, data interface{}, errorCode int, status string, httpStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	_ = json.NewEncoder(w).Encode(APIResponse{
		ErrorCode: errorCode,
		Status:    status,
		Message:   message,
		Data:      data,
	})
}

func Success(w http.ResponseWriter, message string, data interface{}) {
	Response(w, message, data, 0, StatusSuccess, http.StatusOK)
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	Response(w, message, data, 0, StatusSuccess, http.StatusCreated)
}

// Error writes err using the status its errs code maps to. Errors without a
// code, and internal ones, never leak their text.
func Error(w http.ResponseWriter, err error) {
	httpStatus := HTTPStatus(errs.Code(err))
	message := "an error occurred while processing the request"

	var e *errs.Error
	if errors.As(err, &e) && httpStatus != http.StatusInternalServerError {
		message = e.Message
	}

	Response(w, message, nil, httpStatus, StatusError, httpStatus)
}

func HTTPStatus(code errs.ErrCode) int {
	switch code {
	case errs.OK:
		return http.StatusOK
	case errs.InvalidArgument, errs.OutOfRange, errs.FailedPrecondition:
		return http.StatusBadRequest
	case errs.NotFound:
		return http.StatusNotFound
	case errs.AlreadyExists, errs.Aborted:
		return http.StatusConflict
	case errs.ResourceExhausted:
		return http.StatusTooManyRequests
	case errs.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case errs.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
