// ABOUTME: View rendering service that executes html/template views into strings
// ABOUTME: Resolves view names against search locations and caches parsed template sets

package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	coreerrors "realtorist-web/core/errors"
	"realtorist-web/core/interfaces"
)

const (
	// LayoutPath wraps every main page
	LayoutPath = "views/shared/layout.tmpl"

	// layoutTemplate is the template the layout file defines
	layoutTemplate = "layout"

	// sharedPartials are parsed into every set so views can {{template}} them
	sharedPartials = "views/shared/_*.tmpl"

	viewExt = ".tmpl"
)

// searchLocations are tried in order for a view referenced by name
var searchLocations = []string{
	"views/%s" + viewExt,
	"views/shared/%s" + viewExt,
}

// ViewRenderService renders views from a file system to strings
type ViewRenderService struct {
	fsys   fs.FS
	funcs  template.FuncMap
	logger interfaces.Logger

	// sets caches *template.Template by view path and kind
	sets sync.Map
}

// NewViewRenderService creates a renderer over fsys. Views live under
// "views/" in fsys.
func NewViewRenderService(fsys fs.FS, funcs template.FuncMap, logger interfaces.Logger) *ViewRenderService {
	return &ViewRenderService{
		fsys:   fsys,
		funcs:  funcs,
		logger: logger,
	}
}

// RenderToString renders viewName with model. A name ending in ".tmpl" is
// taken as an exact path; any other name is looked up under the search
// locations. Main pages are wrapped in the shared layout and must define a
// "content" template; partials render on their own.
func (s *ViewRenderService) RenderToString(ctx context.Context, viewName string, model interface{}, isPartial bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	viewPath, err := s.findView(viewName)
	if err != nil {
		return "", err
	}

	tmpl, err := s.templateSet(viewPath, isPartial)
	if err != nil {
		return "", err
	}

	data, ok := model.(ViewData)
	if !ok {
		data = ViewData{Model: model}
	}

	entry := layoutTemplate
	if isPartial {
		entry = path.Base(viewPath)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		return "", fmt.Errorf("render view %s: %w", viewPath, err)
	}

	s.logger.Debug("Rendered view", map[string]interface{}{
		"view":    viewPath,
		"partial": isPartial,
		"bytes":   buf.Len(),
	})

	return buf.String(), nil
}

// findView resolves a view name to a path in the file system
func (s *ViewRenderService) findView(viewName string) (string, error) {
	var candidates []string
	if strings.HasSuffix(viewName, viewExt) {
		candidates = []string{strings.TrimPrefix(strings.TrimPrefix(viewName, "~"), "/")}
	} else {
		for _, location := range searchLocations {
			candidates = append(candidates, fmt.Sprintf(location, viewName))
		}
	}

	for _, candidate := range candidates {
		if info, err := fs.Stat(s.fsys, candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", &coreerrors.ViewNotFoundError{View: viewName, SearchedLocations: candidates}
}

// templateSet returns the parsed set for a view, parsing it on first use
func (s *ViewRenderService) templateSet(viewPath string, isPartial bool) (*template.Template, error) {
	key := viewPath
	if isPartial {
		key = "partial:" + viewPath
	}

	if cached, ok := s.sets.Load(key); ok {
		return cached.(*template.Template), nil
	}

	files, err := fs.Glob(s.fsys, sharedPartials)
	if err != nil {
		return nil, fmt.Errorf("find shared partials: %w", err)
	}
	if !isPartial {
		files = append(files, LayoutPath)
	}
	files = appendUnique(files, viewPath)

	tmpl, err := template.New(path.Base(viewPath)).Funcs(s.funcs).ParseFS(s.fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("parse view %s: %w", viewPath, err)
	}

	actual, _ := s.sets.LoadOrStore(key, tmpl)
	return actual.(*template.Template), nil
}

func appendUnique(files []string, file string) []string {
	for _, f := range files {
		if f == file {
			return files
		}
	}
	return append(files, file)
}
