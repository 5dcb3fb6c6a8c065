// Package view renders handler results either as HTML pages or as JSON.
// Every page shares layout.html and the pagination partial; the page body
// comes from the template named after the view.
package view

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// shared holds the templates every page is parsed on top of.
var shared = []string{"templates/layout.html", "templates/pagination.html"}

var funcs = template.FuncMap{
	"price": func(cents int64) string {
		return fmt.Sprintf("%d.%02d", cents/100, cents%100)
	},
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"stars": func(n int) string {
		return strings.Repeat("★", n) + strings.Repeat("☆", max(0, 5-n))
	},
	"rating": func(avg float64) string {
		return strconv.FormatFloat(avg, 'f', 1, 64)
	},
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page template.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, shared...)
	if err != nil {
		return nil, fmt.Errorf("view.New: parse layout: %w", err)
	}
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view.New: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, path := range names {
		if isShared(path) {
			continue
		}
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("view.New: clone: %w", err)
		}
		if _, err := t.ParseFS(templateFS, path); err != nil {
			return nil, fmt.Errorf("view.New: parse %s: %w", path, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		r.pages[name] = t
	}
	return r, nil
}

func isShared(path string) bool {
	for _, s := range shared {
		if s == path {
			return true
		}
	}
	return false
}

// WantsJSON reports whether the client asked for JSON, either through
// ?format=json or an Accept header naming application/json.
func WantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}

// Render writes data as JSON or through the named page template.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) error {
	if WantsJSON(r) {
		return JSON(w, status, data)
	}
	return v.HTML(w, r, status, page, data)
}

// HTML executes the named page into a buffer first so a template failure
// never leaves a half-written page behind.
func (v *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", newPageData(r, data)); err != nil {
		return fmt.Errorf("view: render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a message for people.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes an error response in the format the client asked for.
func (v *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, code, message string) error {
	if WantsJSON(r) || r.Method != http.MethodGet {
		return JSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
	}
	return v.HTML(w, r, status, "error", map[string]any{
		"status":  status,
		"code":    code,
		"message": message,
	})
}

// pageData is what templates see: the view context plus enough of the
// request to build page links that keep the current filters.
type pageData struct {
	Data  map[string]any
	Path  string
	query url.Values
}

func newPageData(r *http.Request, data map[string]any) pageData {
	q := r.URL.Query()
	q.Del("page")
	q.Del("format")
	return pageData{Data: data, Path: r.URL.Path, query: q}
}

// PageURL links to page n of the current listing.
func (d pageData) PageURL(n int) string {
	q := url.Values{}
	for k, vs := range d.query {
		q[k] = vs
	}
	q.Set("page", strconv.Itoa(n))
	return d.Path + "?" + q.Encode()
}

// Get reads a context key, tolerating a nil map.
func (d pageData) Get(key string) any {
	return d.Data[key]
}
