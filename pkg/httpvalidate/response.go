package httpvalidate

import (
	"encoding/json"
	"net/http"

	"github.com/UBF21/Vali-Validation/pkg/validator"
)

// Response is the JSON envelope written by Handle.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details is set for validation
// failures only and keeps the validator's property order.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details *validator.Result `json:"details,omitempty"`
}

const (
	CodeValidation           = "validation_error"
	CodeBadRequest           = "bad_request"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeRequestTooLarge      = "request_too_large"
	CodeCanceled             = "request_canceled"
	CodeInternal             = "internal_error"
)

// ValidationFailed builds the envelope for an invalid Result.
func ValidationFailed(res *validator.Result) Response {
	return Response{Error: &ErrorDetail{
		Code:    CodeValidation,
		Message: "The request contains invalid fields.",
		Details: res,
	}}
}

func errorResponse(code, message string) Response {
	return Response{Error: &ErrorDetail{Code: code, Message: message}}
}

// WriteJSON encodes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
