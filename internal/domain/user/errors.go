package user

import (
	"errors"

	appErrors "logitrack/pkg/errors"
)

// The user sentinels are shared with pkg/errors so the HTTP layer can
// classify them without importing the domain.
var (
	ErrUserNotFound      = appErrors.ErrUserNotFound
	ErrUserAlreadyExists = appErrors.ErrUserAlreadyExists
	ErrTokenNotFound     = errors.New("refresh token not found")
)
