package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitquest/FitQuest_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and runs
// struct-tag validation. On failure the error response has already been
// written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondValidationError(w, FormatValidationError(err))
		return err
	}

	return nil
}

// URLParamInt parses an integer chi route parameter. On failure the error
// response has already been written and ok is false.
func URLParamInt(r *http.Request, w http.ResponseWriter, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return value, true
}

// QueryParamInt parses a required integer query parameter. On failure the
// error response has already been written and ok is false.
func QueryParamInt(r *http.Request, w http.ResponseWriter, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return value, true
}

// OptionalQueryParamInt parses an optional integer query parameter,
// returning (0, false, nil-written) semantics: present reports whether the
// parameter was supplied, and an invalid value writes a 400.
func OptionalQueryParamInt(r *http.Request, w http.ResponseWriter, name string) (value int, present, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, true, false
	}
	return parsed, true, true
}
