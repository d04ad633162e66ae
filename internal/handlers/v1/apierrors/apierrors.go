package apierrors

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Error is the wire shape of every error response: { "error": "<message>" }.
type Error struct {
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// New builds an error response with an explicit HTTP status. Underlying
// causes are never attached; callers log detail themselves.
func New(status int, message string) huma.StatusError {
	return &Error{status: status, Message: message}
}

// Install replaces huma's default problem-details model so that every error
// response, including huma's own request validation failures, uses the
// {error} shape. Validation failures surface as 400 rather than huma's
// default 422, since a malformed request field is a client error here.
func Install() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return &Error{status: status, Message: message}
	}
}
