// ABOUTME: Result values that page handlers return instead of writing responses directly
// ABOUTME: WriteResult executes a result against the response, rendering views through the view renderer

package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"realtorist-web/core/interfaces"
)

// ErrNoResult is returned when a nil result is written
var ErrNoResult = errors.New("results: no result to write")

// Result writes itself to a response
type Result interface {
	Execute(w http.ResponseWriter, r *http.Request) error
}

// WriteResult executes result against w
func WriteResult(w http.ResponseWriter, r *http.Request, result Result) error {
	if result == nil {
		return ErrNoResult
	}
	return result.Execute(w, r)
}

// JSONResult writes Value as JSON
type JSONResult struct {
	Status int
	Value  interface{}
}

// Execute implements Result
func (res JSONResult) Execute(w http.ResponseWriter, r *http.Request) error {
	body, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("marshal json result: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusOrOK(res.Status))
	_, err = w.Write(body)
	return err
}

// ViewResult renders a view. Nothing is written when rendering fails.
type ViewResult struct {
	Status   int
	View     string
	Model    interface{}
	Partial  bool
	Renderer interfaces.ViewRenderer
}

// Execute implements Result
func (res ViewResult) Execute(w http.ResponseWriter, r *http.Request) error {
	if res.Renderer == nil {
		return fmt.Errorf("results: no view renderer for view %q", res.View)
	}

	body, err := res.Renderer.RenderToString(r.Context(), res.View, res.Model, res.Partial)
	if err != nil {
		return err
	}

	return HTMLResult{Status: res.Status, Body: body}.Execute(w, r)
}

// HTMLResult writes pre-rendered markup
type HTMLResult struct {
	Status int
	Body   string
}

// Execute implements Result
func (res HTMLResult) Execute(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusOrOK(res.Status))
	_, err := w.Write([]byte(res.Body))
	return err
}

// RedirectResult redirects to URL
type RedirectResult struct {
	URL       string
	Permanent bool
}

// Execute implements Result
func (res RedirectResult) Execute(w http.ResponseWriter, r *http.Request) error {
	if res.URL == "" {
		return errors.New("results: redirect without a URL")
	}

	status := http.StatusFound
	if res.Permanent {
		status = http.StatusMovedPermanently
	}
	http.Redirect(w, r, res.URL, status)
	return nil
}

// StatusResult writes a bare status code with an optional plain-text message
type StatusResult struct {
	Status  int
	Message string
}

// Execute implements Result
func (res StatusResult) Execute(w http.ResponseWriter, r *http.Request) error {
	status := statusOrOK(res.Status)
	if res.Message == "" {
		w.WriteHeader(status)
		return nil
	}
	http.Error(w, res.Message, status)
	return nil
}

func statusOrOK(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}
