// ABOUTME: Page handlers that render the listing search and property detail views
// ABOUTME: Handlers return results; the handle wrapper writes them and renders the error page on failure

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"realtorist-web/api/binding"
	"realtorist-web/api/results"
	"realtorist-web/core/domain"
	"realtorist-web/core/interfaces"
	"realtorist-web/core/jsonld"
	"realtorist-web/core/listings"
	"realtorist-web/core/urls"
	"realtorist-web/pkg/featureflags"
	"github.com/go-chi/chi/v5"
)

// View names rendered by the page handlers
const (
	ListingsView        = "listings/index"
	ListingsResultsView = "listings/results"
	DetailsView         = "property/details"
	ErrorView           = "error"
)

// Layout holds what the shared layout reads from every page model
type Layout struct {
	Site         domain.SiteSettings
	Title        string
	Description  string
	CanonicalURL string
	JSONLD       string
}

// ListingCard is the model of one listing_card partial
type ListingCard struct {
	Listing       domain.Listing
	ExcerptLength int
}

// ListingsPage is the model of the listing search page and its results partial
type ListingsPage struct {
	Layout
	Cards     []ListingCard
	Filters   map[string]string
	Errors    map[string]string
	Page      int
	PageCount int
	Total     int
	PrevURL   string
	NextURL   string
}

// DetailsPage is the model of a property detail page
type DetailsPage struct {
	Layout
	Listing   domain.Listing
	URL       string
	ShareText string
}

// ErrorPage is the model of the error view
type ErrorPage struct {
	Layout
	Status  int
	Message string
}

// PageConfig tunes page output
type PageConfig struct {
	// ExcerptLength is the visible character budget of card excerpts and share text
	ExcerptLength int

	// PageSize is the number of cards per results page
	PageSize int

	// FragmentTTL is how long rendered detail pages stay cached
	FragmentTTL time.Duration
}

// PageHandler serves the HTML pages of the site
type PageHandler struct {
	catalog  interfaces.ListingCatalog
	renderer interfaces.ViewRenderer
	builder  *urls.Builder
	cache    interfaces.Cache
	logger   interfaces.Logger
	cfg      PageConfig
}

// NewPageHandler creates a new page handler. A nil deps.Cache disables
// fragment caching.
func NewPageHandler(catalog interfaces.ListingCatalog, renderer interfaces.ViewRenderer, builder *urls.Builder, deps interfaces.Dependencies, cfg PageConfig) *PageHandler {
	if cfg.PageSize < 1 {
		cfg.PageSize = listings.DefaultPerPage
	}
	return &PageHandler{
		catalog:  catalog,
		renderer: renderer,
		builder:  builder,
		cache:    deps.Cache,
		logger:   deps.Logger,
		cfg:      cfg,
	}
}

// RegisterRoutes mounts the pages on router. listingRoute is a chi pattern
// with {id} and {address} parameters.
func (h *PageHandler) RegisterRoutes(router chi.Router, listingRoute string) {
	router.Get("/", h.handle(h.Home))
	router.Get("/listings", h.handle(h.ListListings))
	router.Get(listingRoute, h.handle(h.Details))
	router.Get("/healthz", h.handle(h.Healthz))
	router.NotFound(h.handle(h.NotFound))
}

// Home redirects to the listing search page
func (h *PageHandler) Home(r *http.Request) (results.Result, error) {
	return results.RedirectResult{URL: h.builder.Content("~/listings")}, nil
}

// Healthz reports that the process is serving requests
func (h *PageHandler) Healthz(r *http.Request) (results.Result, error) {
	return results.JSONResult{Value: map[string]string{"status": "ok"}}, nil
}

// NotFound renders the error page for unmatched routes
func (h *PageHandler) NotFound(r *http.Request) (results.Result, error) {
	return h.errorResult(r, http.StatusNotFound, "The page you are looking for does not exist."), nil
}

// ListListings renders the listing search page. AJAX requests get only
// the results partial, or the filter errors as JSON when the filters do
// not bind.
func (h *PageHandler) ListListings(r *http.Request) (results.Result, error) {
	ctx := r.Context()
	ajax := binding.IsAjaxRequest(r)

	filters := binding.Filters(r)
	criteria, filterErrs := listings.ParseCriteria(filters)

	state := binding.NewModelState()
	for _, err := range filterErrs {
		state.AddValidationError(err)
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			state.AddError("page", "must be a whole number of one or more")
		} else {
			page = n
		}
	}

	if ajax && !state.IsValid() {
		return results.JSONResult{Status: http.StatusBadRequest, Value: state.ValidationErrors()}, nil
	}

	matched := listings.Filter(h.catalog.List(ctx), criteria)
	pageCount := listings.PageCount(len(matched), h.cfg.PageSize)
	if page > pageCount {
		page = pageCount
	}

	cards := make([]ListingCard, 0, h.cfg.PageSize)
	for _, l := range listings.Paginate(matched, page, h.cfg.PageSize) {
		cards = append(cards, ListingCard{Listing: l, ExcerptLength: h.cfg.ExcerptLength})
	}

	model := ListingsPage{
		Cards:     cards,
		Filters:   filters,
		Errors:    state.ValidationErrors(),
		Page:      page,
		PageCount: pageCount,
		Total:     len(matched),
	}
	if page > 1 {
		model.PrevURL = pageURL(r, page-1)
	}
	if page < pageCount {
		model.NextURL = pageURL(r, page+1)
	}

	if ajax && featureflags.IsEnabled(ctx, featureflags.AjaxPartialsEnabled) {
		return results.ViewResult{View: ListingsResultsView, Model: model, Partial: true, Renderer: h.renderer}, nil
	}

	layout, err := h.layout(r, "Properties for sale", fmt.Sprintf("%d properties for sale", len(matched)), "~/listings")
	if err != nil {
		return nil, err
	}
	model.Layout = layout

	return results.ViewResult{View: ListingsView, Model: model, Renderer: h.renderer}, nil
}

// Details renders a property detail page. Requests whose address segment
// does not match the listing are redirected to the canonical path.
func (h *PageHandler) Details(r *http.Request) (results.Result, error) {
	ctx := r.Context()

	listing, err := h.catalog.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	if !addressMatches(chi.URLParam(r, "address"), listing.Address) {
		target := h.builder.ListingPath(listing)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		return results.RedirectResult{URL: target, Permanent: true}, nil
	}

	useCache := h.cache != nil && featureflags.IsEnabled(ctx, featureflags.FragmentCacheEnabled)
	key := fragmentKey(h.builder.Origin(r), listing.ID)
	if useCache {
		if body, err := h.cache.Get(ctx, key); err == nil {
			return results.HTMLResult{Body: string(body)}, nil
		} else if !errors.Is(err, interfaces.ErrCacheMiss) {
			h.logger.Warn("Fragment cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	absoluteURL := h.builder.ListingURLAbsolute(r, listing)
	description := h.builder.ShareDescription(listing, h.cfg.ExcerptLength)

	layout, err := h.layout(r, listing.Address.OneLine(), description, "")
	if err != nil {
		return nil, err
	}
	layout.CanonicalURL = absoluteURL
	if layout.JSONLD != "" {
		listingLD, err := jsonld.ListingProperties(listing, absoluteURL, description)
		if err != nil {
			return nil, err
		}
		layout.JSONLD += ",\n" + listingLD
	}

	model := DetailsPage{
		Layout:    layout,
		Listing:   *listing,
		URL:       absoluteURL,
		ShareText: description,
	}

	if !useCache {
		return results.ViewResult{View: DetailsView, Model: model, Renderer: h.renderer}, nil
	}

	body, err := h.renderer.RenderToString(ctx, DetailsView, model, false)
	if err != nil {
		return nil, err
	}
	if err := h.cache.Set(ctx, key, []byte(body), h.cfg.FragmentTTL); err != nil {
		h.logger.Warn("Fragment cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return results.HTMLResult{Body: body}, nil
}

// layout fills the shared layout fields. contentPath, when set, becomes
// the canonical URL.
func (h *PageHandler) layout(r *http.Request, title, description, contentPath string) (Layout, error) {
	settings := h.catalog.Settings()
	layout := Layout{
		Site:        settings,
		Title:       title,
		Description: description,
	}

	if contentPath != "" {
		canonical, err := h.builder.ContentAbsolute(r, contentPath)
		if err != nil {
			return Layout{}, err
		}
		layout.CanonicalURL = canonical
	}

	if featureflags.IsEnabled(r.Context(), featureflags.JSONLDEnabled) {
		ld, err := jsonld.DefaultProperties(settings.Website, settings.Profile, settings.Social)
		if err != nil {
			return Layout{}, err
		}
		layout.JSONLD = ld
	}

	return layout, nil
}

func (h *PageHandler) errorResult(r *http.Request, status int, message string) results.Result {
	return results.ViewResult{
		Status: status,
		View:   ErrorView,
		Model: ErrorPage{
			Layout:  Layout{Site: h.catalog.Settings(), Title: http.StatusText(status)},
			Status:  status,
			Message: message,
		},
		Renderer: h.renderer,
	}
}

// handle adapts a result-returning page function to an http.HandlerFunc.
// Failures render the error view, or a plain-text error when that fails too.
func (h *PageHandler) handle(fn func(r *http.Request) (results.Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fn(r)
		if err == nil {
			err = results.WriteResult(w, r, result)
			if err == nil {
				return
			}
		}

		if errors.Is(err, context.Canceled) {
			return
		}

		status := statusFor(err)
		message := err.Error()
		if status >= http.StatusInternalServerError {
			message = "Something went wrong while loading this page."
			h.logger.Error("Page handler failed", map[string]interface{}{
				"path":  r.URL.Path,
				"error": err.Error(),
			})
		}

		if renderErr := results.WriteResult(w, r, h.errorResult(r, status, message)); renderErr != nil {
			h.logger.Error("Error page render failed", map[string]interface{}{
				"path":  r.URL.Path,
				"error": renderErr.Error(),
			})
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// addressMatches compares a request's address segment with the canonical
// one for address, ignoring percent-encoding differences
func addressMatches(segment string, address domain.Address) bool {
	got, err := url.PathUnescape(segment)
	if err != nil {
		return false
	}
	want, err := url.QueryUnescape(urls.AddressURLParameter(address))
	if err != nil {
		return false
	}
	return got == want
}

// fragmentKey scopes cached pages by the origin their absolute URLs were
// built from
func fragmentKey(origin, id string) string {
	return "details:" + origin + ":" + id
}

// pageURL returns the current request URL with its page parameter replaced
func pageURL(r *http.Request, page int) string {
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	return r.URL.Path + "?" + q.Encode()
}
