package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidBody:                 http.StatusBadRequest,
	ErrUnsupportedContentType:      http.StatusUnsupportedMediaType,
	ErrMissingImage:                http.StatusBadRequest,
	ErrUploadTooLarge:              http.StatusRequestEntityTooLarge,
	crypto.ErrPasswordTooLong:      http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	store.ErrNotFound:           http.StatusNotFound,
	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrCredentialConflict: http.StatusConflict,
	store.ErrDuplicateRecord:    http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text of errors whose message is
// fixed. Not found messages depend on the resource and are passed by the
// caller of writeError.
var errorMessageMap = map[error]string{
	service.ErrWrongPassword:    "Incorrect password",
	crypto.ErrPasswordTooLong:   "Password must be at most 72 bytes long",
	store.ErrUsernameTaken:      "Username already taken",
	store.ErrCredentialConflict: "Password was changed by another request",
	store.ErrDuplicateRecord:    "Record already exists",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text rendered for err. Validation and body
// errors carry their own description; server errors are never detailed.
func messageFromError(err error, status int, notFoundMessage string) string {
	if status == http.StatusNotFound {
		return notFoundMessage
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and renders it as {"error": message} with the status
// mapped by statusFromError.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status, notFoundMessage), status)
}
