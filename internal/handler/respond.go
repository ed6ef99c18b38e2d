package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	"github.com/petrosTsatsis/KilogBackend/internal/middleware"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// statusForKind is the whole transport translation: a pure mapping from
// error kind to HTTP status.
func statusForKind(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindBusinessRule:
		return http.StatusBadRequest
	case apperr.KindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the envelope for a service failure. System details are
// logged but never put on the wire; permission denials name the actor.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		utils.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	status := statusForKind(e.Kind)

	switch e.Kind {
	case apperr.KindSystem:
		utils.Error(w, status, "internal server error", e.Err)
	case apperr.KindPermissionDenied:
		msg := e.Message
		if user, uerr := middleware.GetUserFromContext(r); uerr == nil {
			msg = fmt.Sprintf("user %s does not have permission to modify this %s: %s", user.ID, e.Resource, e.Message)
		}
		utils.ErrorSimple(w, status, msg)
	default:
		utils.ErrorSimple(w, status, e.Message)
	}
}
