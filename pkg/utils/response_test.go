package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appErrors "logitrack/pkg/errors"
)

func respondErr(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorDuplicateIsBadRequest(t *testing.T) {
	duplicate := errors.New("a client with this CIN already exists")
	err := appErrors.NewAppError(appErrors.CodeDuplicate, "Client already exists", duplicate)

	w := respondErr(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Client already exists")
}

func TestRespondErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", appErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive user", appErrors.ErrUserInactive, http.StatusUnauthorized},
		{"insufficient permissions", appErrors.ErrInsufficientPermissions, http.StatusForbidden},
		{"user not found", appErrors.ErrUserNotFound, http.StatusNotFound},
		{"no entrepot assigned", appErrors.ErrNoEntrepotAssigned, http.StatusBadRequest},
		{"not found code", appErrors.NewAppError(appErrors.CodeNotFound, "missing", nil), http.StatusNotFound},
		{"forbidden code", appErrors.NewAppError(appErrors.CodeForbidden, "denied", nil), http.StatusForbidden},
		{"invalid transition code", appErrors.NewAppError(appErrors.CodeInvalidTransition, "no", nil), http.StatusBadRequest},
		{"database code", appErrors.NewAppError(appErrors.CodeDatabase, "constraint", nil), http.StatusBadRequest},
		{"uncategorized", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respondErr(t, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
