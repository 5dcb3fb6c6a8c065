package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/campuscanteen/backend/internal/domain"
)

// pageParam reads the optional ?page= query parameter. Non-numeric values
// and pages below 1 are rejected with domain.ErrBadRequest.
func pageParam(r *http.Request) (domain.PageRequest, error) {
	var page *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		return domain.PageRequest{}, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}
	return domain.NewPageRequest(page)
}

// idQueryParam reads an optional positive integer query parameter.
func idQueryParam(r *http.Request, name string) (*int64, error) {
	var id *int64
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &id); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}
	if id != nil && *id < 1 {
		return nil, fmt.Errorf("%w: %s must be a positive id", domain.ErrBadRequest, name)
	}
	return id, nil
}

// textParam returns a trimmed query parameter, "" when absent.
func textParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// pathID parses a numeric path placeholder. The router pattern already
// guarantees digits; this still catches values that overflow int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrBadRequest, name, raw)
	}
	return id, nil
}

// decodeJSON reads a single JSON object from the body into dst.
// Unknown fields and trailing data are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", domain.ErrBadRequest)
		}
		return fmt.Errorf("%w: malformed JSON: %v", domain.ErrBadRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: request body must hold a single JSON object", domain.ErrBadRequest)
	}
	return nil
}

// isJSONRequest reports whether the body is declared as JSON.
func isJSONRequest(r *http.Request) bool {
	ct, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	return strings.EqualFold(strings.TrimSpace(ct), "application/json")
}
