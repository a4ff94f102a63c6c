package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler/gen"
)

// errorBody builds the shared {"error":{"code","message"}} envelope.
func errorBody(code gen.ErrorDetailCode, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns the 404 body. The caller supplies the message because
// the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.NotFoundJSONResponse {
	return gen.NotFoundJSONResponse(errorBody(gen.ErrorDetailCodeNotFound, message))
}

// requestBody returns a 400 body for a request rejected before reaching the
// service layer (e.g. missing body).
func requestBody(message string) gen.BadRequestJSONResponse {
	return gen.BadRequestJSONResponse(errorBody(gen.ErrorDetailCodeValidationError, message))
}

// badRequestBody maps the domain errors that surface as HTTP 400 to their
// error codes. ok is false for any other error.
func badRequestBody(err error) (body gen.BadRequestJSONResponse, ok bool) {
	var code gen.ErrorDetailCode
	switch {
	case errors.Is(err, domain.ErrValidation):
		code = gen.ErrorDetailCodeValidationError
	case errors.Is(err, domain.ErrConflict):
		code = gen.ErrorDetailCodeConflict
	case errors.Is(err, domain.ErrInUse):
		code = gen.ErrorDetailCodeAreaInUse
	default:
		return gen.BadRequestJSONResponse{}, false
	}
	return gen.BadRequestJSONResponse(errorBody(code, unwrapMessage(err))), true
}

// unwrapMessage extracts the human-readable part that follows the sentinel in
// a wrapped domain error.
// e.g. "service.CastService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrConflict, domain.ErrInUse} {
		marker := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}

// writeError writes an error envelope with the given status.
func writeError(w http.ResponseWriter, status int, code gen.ErrorDetailCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // status line already sent
	json.NewEncoder(w).Encode(errorBody(code, message))
}

// NewHTTPHandler wires srv into the generated chi router with JSON error
// handling for every failure the generated code reports:
//   - malformed path or query parameters → 400 validation_error
//   - undecodable request bodies → 400 validation_error (413 when over the size limit)
//   - errors returned by handlers → logged, then a generic 500 internal_error
//
// When r is nil a new chi router is created.
func NewHTTPHandler(srv gen.StrictServerInterface, r chi.Router, log *slog.Logger) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: responseErrorHandler(log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, gen.ErrorDetailCodeValidationError, err.Error())
		},
	})
}

func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, gen.ErrorDetailCodeValidationError, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, gen.ErrorDetailCodeValidationError, "request body must be valid JSON")
}

// responseErrorHandler logs the cause and hides it from the client.
func responseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, gen.ErrorDetailCodeInternalError, "internal server error")
	}
}
