package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrHashingPassword:     http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrTodoNotFound:          http.StatusNotFound,
	store.ErrSessionNotFound:       http.StatusUnauthorized,
	store.ErrTokenCollision:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorCodeMap pairs the same sentinels with the machine-readable codes used
// in JSON error bodies. Unknown errors collapse to codeInternalError so that
// storage details never leak to clients.
var errorCodeMap = map[error]string{
	service.ErrInvalidDataProvided: codeInvalidData,
	service.ErrWrongPassword:       codeWrongPassword,

	store.ErrUsernameAlreadyExists: codeUsernameTaken,
	store.ErrNoUserWasFound:        codeUserNotFound,
	store.ErrTodoNotFound:          codeNotFound,
	store.ErrSessionNotFound:       codeInvalidToken,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromError(err error) string {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codeInternalError
}

// writeError maps err to its HTTP status and JSON error code and writes the
// response body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: codeFromError(err)}, statusFromError(err)) //nolint:errcheck
}
