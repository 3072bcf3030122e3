package http

import (
	"errors"
	"net/http"

	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"

	"github.com/rs/zerolog/log"
)

// Error is the single translator from the error taxonomy to HTTP. Every
// handler funnels failures through here so the envelope stays uniform.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *usecase.Error
	if !errors.As(err, &appErr) {
		appErr = usecase.Internal(err)
	}

	switch appErr.Kind {
	case usecase.KindValidation:
		httpx.JSONError(w, http.StatusBadRequest, appErr.Messages)
	case usecase.KindConflict:
		httpx.JSONError(w, http.StatusConflict, firstMessage(appErr, "Duplicate field value entered"))
	case usecase.KindUnauthorized:
		httpx.JSONError(w, http.StatusUnauthorized, firstMessage(appErr, "Not authorized"))
	case usecase.KindForbidden:
		httpx.JSONError(w, http.StatusForbidden, firstMessage(appErr, "Forbidden"))
	case usecase.KindNotFound:
		httpx.JSONError(w, http.StatusNotFound, firstMessage(appErr, "Resource not found"))
	default:
		log.Error().
			Err(err).
			Str("request_id", httpx.RequestIDFrom(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("unhandled error")
		httpx.JSONError(w, http.StatusInternalServerError, "Server Error")
	}
}

func firstMessage(err *usecase.Error, fallback string) string {
	if len(err.Messages) > 0 {
		return err.Messages[0]
	}
	return fallback
}
