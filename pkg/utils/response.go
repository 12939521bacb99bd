package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "logitrack/pkg/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// RespondError classifies a usecase error onto the HTTP taxonomy:
// 401 for authentication failures, 403 for permission failures,
// 404 for missing records, 400 for validation/precondition/database
// failures, 500 for anything uncategorized.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appErrors.ErrUnauthorized),
		errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUserInactive):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		ErrorResponse(c, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, appErrors.ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, appErrors.ErrUserAlreadyExists),
		errors.Is(err, appErrors.ErrInvalidUserRole),
		errors.Is(err, appErrors.ErrWeakPassword),
		errors.Is(err, appErrors.ErrNoEntrepotAssigned),
		errors.Is(err, appErrors.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeNotFound:
			ErrorResponse(c, http.StatusNotFound, appErr.Message)
		case appErrors.CodeForbidden:
			ErrorResponse(c, http.StatusForbidden, appErr.Message)
		case appErrors.CodeValidation,
			appErrors.CodePreconditionFailed,
			appErrors.CodeInvalidTransition,
			appErrors.CodeDuplicate,
			appErrors.CodeDatabase:
			ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		default:
			ErrorResponse(c, http.StatusInternalServerError, appErr.Message)
		}
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
