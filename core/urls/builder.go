// ABOUTME: URL building for listing detail pages and static content
// ABOUTME: Produces relative listing paths and absolute URLs from the incoming request

package urls

import (
	"net/http"
	"net/url"
	"strings"

	coreerrors "realtorist-web/core/errors"
	"realtorist-web/core/domain"
	"realtorist-web/pkg/utils/html"
)

// DefaultListingRoute is the route template for listing detail pages
const DefaultListingRoute = "/property/{id}/{address}"

// Options configures a Builder
type Options struct {
	// ListingRoute is a route template with {id} and {address} placeholders
	ListingRoute string

	// BasePath is the application root, "/" when mounted at the host root
	BasePath string

	// TrustProxyHeaders makes absolute URLs honour X-Forwarded-Proto and X-Forwarded-Host
	TrustProxyHeaders bool
}

// Builder builds listing and content URLs
type Builder struct {
	route      string
	basePath   string
	trustProxy bool
}

// NewBuilder creates a Builder, filling in defaults for empty options
func NewBuilder(opts Options) *Builder {
	route := opts.ListingRoute
	if route == "" {
		route = DefaultListingRoute
	}
	return &Builder{
		route:      route,
		basePath:   strings.TrimRight(opts.BasePath, "/"),
		trustProxy: opts.TrustProxyHeaders,
	}
}

// AddressURLParameter turns an address into a URL segment: "street city",
// lower-cased, spaces replaced by '-', then query-escaped.
func AddressURLParameter(address domain.Address) string {
	s := strings.ToLower(address.StreetAddress + " " + address.City)
	return url.QueryEscape(strings.ReplaceAll(s, " ", "-"))
}

// ListingPath returns the site-relative path of a listing's detail page
func (b *Builder) ListingPath(listing *domain.Listing) string {
	path := strings.NewReplacer(
		"{id}", url.PathEscape(listing.ID),
		"{address}", AddressURLParameter(listing.Address),
	).Replace(b.route)
	return b.basePath + path
}

// ListingURLAbsolute returns the absolute URL of a listing's detail page
// on the host that served r
func (b *Builder) ListingURLAbsolute(r *http.Request, listing *domain.Listing) string {
	return b.Origin(r) + b.ListingPath(listing)
}

// Content resolves an application-relative "~/" path against the base
// path. Other paths are returned unchanged.
func (b *Builder) Content(path string) string {
	switch {
	case path == "~":
		return b.basePath + "/"
	case strings.HasPrefix(path, "~/"):
		return b.basePath + path[1:]
	default:
		return path
	}
}

// ContentAbsolute returns the absolute URL of a content path on the host
// that served r. Any query string or fragment is dropped.
func (b *Builder) ContentAbsolute(r *http.Request, path string) (string, error) {
	if path == "" {
		return "", &coreerrors.ValidationError{Field: "path", Message: "content path cannot be empty"}
	}

	resolved := b.Content(path)
	if i := strings.IndexAny(resolved, "?#"); i >= 0 {
		resolved = resolved[:i]
	}
	if !strings.HasPrefix(resolved, "/") {
		resolved = "/" + resolved
	}

	return b.Origin(r) + resolved, nil
}

// ShareDescription returns a plain-text excerpt of the listing description
// for social share metadata
func (b *Builder) ShareDescription(listing *domain.Listing, maxChars int) string {
	text := strings.Join(strings.Fields(html.HTMLToPlainText(listing.Description)), " ")
	return html.Truncate(text, maxChars, html.DefaultTrailingText)
}

// Origin returns the "scheme://host" that absolute URLs built for r start
// with. Forwarded headers are honoured only when the builder trusts them.
func (b *Builder) Origin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if b.trustProxy {
		if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
			scheme = strings.ToLower(proto)
		}
		if fwdHost := firstHeaderValue(r, "X-Forwarded-Host"); fwdHost != "" {
			host = fwdHost
		}
	}

	return scheme + "://" + host
}

func firstHeaderValue(r *http.Request, name string) string {
	value := r.Header.Get(name)
	if i := strings.IndexByte(value, ','); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}
