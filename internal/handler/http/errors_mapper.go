package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/service"
	"github.com/MKhiriev/help-me-shop/internal/store"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/internal/validators"
	"github.com/MKhiriev/help-me-shop/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order. ErrCorruptList wraps ErrInvalidContents
// and must be found before it.
var errorStatuses = []errorStatus{
	{service.ErrCorruptList, http.StatusInternalServerError},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidListID, http.StatusBadRequest},
	{service.ErrInvalidRevisionID, http.StatusBadRequest},
	{utils.ErrInvalidID, http.StatusBadRequest},
	{models.ErrInvalidContents, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusBadRequest},
	{validators.ErrUnknownField, http.StatusBadRequest},
	{validators.ErrTitleTooLong, http.StatusBadRequest},
	{validators.ErrInvalidURL, http.StatusBadRequest},
	{validators.ErrURLTooLong, http.StatusBadRequest},
	{validators.ErrNotesTooLong, http.StatusBadRequest},
	{validators.ErrEmptyContents, http.StatusBadRequest},
	{validators.ErrContentsTooLarge, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrEmptyIdent, http.StatusBadRequest},
	{validators.ErrEmptyRevisionID, http.StatusBadRequest},
	{validators.ErrEmptySecretKey, http.StatusBadRequest},
	{validators.ErrInvalidProvider, http.StatusBadRequest},
	{validators.ErrEmptyNaturalKey, http.StatusBadRequest},
	{store.ErrUnsupportedProvider, http.StatusBadRequest},

	{service.ErrInvalidSecretKey, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrForbidden, http.StatusForbidden},

	{store.ErrListNotFound, http.StatusNotFound},
	{models.ErrItemNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},

	{store.ErrRevisionConflict, http.StatusConflict},
	{store.ErrDuplicateIdentity, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes it with its mapped status. Server
// side failures are reported without their details.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}

// writeInternalError reports a failure that is never the client's fault, such
// as a stored id that does not encode.
func writeInternalError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	logger.FromRequest(r).Err(err).Str("func", funcName).Msg("failed to build response")
	utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
