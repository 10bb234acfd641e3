package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
)

func errorBody(code gen.ErrorDetailCode, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "listing not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.NotFoundJSONResponse {
	return gen.NotFoundJSONResponse(errorBody(gen.ErrorDetailCodeNotFound, message))
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ValidationErrorJSONResponse {
	return gen.ValidationErrorJSONResponse(errorBody(gen.ErrorDetailCodeValidationError, sentinelMessage(err, domain.ErrValidation)))
}

func conflictBody(err error) gen.ConflictJSONResponse {
	return gen.ConflictJSONResponse(errorBody(gen.ErrorDetailCodeConflict, sentinelMessage(err, domain.ErrConflict)))
}

func unauthenticatedBody() gen.UnauthenticatedJSONResponse {
	return gen.UnauthenticatedJSONResponse(errorBody(gen.ErrorDetailCodeUnauthenticated, "a valid bearer token is required"))
}

// internalBody logs err and returns a body that reveals nothing about it.
func (s *Server) internalBody(ctx context.Context, op string, err error) gen.InternalErrorJSONResponse {
	s.log.ErrorContext(ctx, "request failed", "operation", op, "error", err)
	return gen.InternalErrorJSONResponse(errorBody(gen.ErrorDetailCodeInternalError, "internal server error"))
}

// sentinelMessage extracts the human-readable part that follows sentinel in a
// wrapped error chain.
// e.g. "service.ReservationService.Create: validation error: endTime is required" → "endTime is required"
func sentinelMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

// StrictOptions returns error handlers that keep failures outside the
// handlers (undecodable bodies, malformed parameters, encoding errors) in the
// API's JSON error format.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	responseError := func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "response failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, errorBody(gen.ErrorDetailCodeInternalError, "internal server error"))
	}
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  RequestErrorHandler,
		ResponseErrorHandlerFunc: responseError,
	}
}

// RequestErrorHandler renders request decoding and parameter binding failures.
// Bodies cut off by the size limit yield 413; everything else is a 422.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody(gen.ErrorDetailCodePayloadTooLarge, "request body is too large"))
		return
	}
	var badParam *gen.InvalidParamFormatError
	if errors.As(err, &badParam) {
		writeError(w, http.StatusUnprocessableEntity, errorBody(gen.ErrorDetailCodeValidationError, "invalid "+badParam.ParamName))
		return
	}
	writeError(w, http.StatusUnprocessableEntity, errorBody(gen.ErrorDetailCodeValidationError, "request body must be valid JSON"))
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
