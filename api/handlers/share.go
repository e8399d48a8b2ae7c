// ABOUTME: Listing share handler for the Huma API
// ABOUTME: Returns the absolute URL, excerpt and JSON-LD a social share card needs

package handlers

import (
	"context"
	"net/http"

	"realtorist-web/api/dto/mappers"
	"realtorist-web/api/dto/responses"
	"realtorist-web/core/interfaces"
	"realtorist-web/core/jsonld"
	"realtorist-web/core/urls"
	"realtorist-web/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// ShareHandler handles listing share metadata requests
type ShareHandler struct {
	catalog       interfaces.ListingCatalog
	builder       *urls.Builder
	excerptLength int
}

// NewShareHandler creates a new share handler
func NewShareHandler(catalog interfaces.ListingCatalog, builder *urls.Builder, excerptLength int) *ShareHandler {
	return &ShareHandler{
		catalog:       catalog,
		builder:       builder,
		excerptLength: excerptLength,
	}
}

// RegisterRoutes registers the share route
func (h *ShareHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "shareListing",
		Method:      http.MethodGet,
		Path:        "/api/listings/{id}/share",
		Summary:     "Get share metadata for a listing",
		Description: "Builds the absolute listing URL on the requesting host along with a plain-text excerpt and JSON-LD",
		Tags:        []string{"Listings"},
	}, h.Share)
}

// ShareInput defines the input for the Share operation
type ShareInput struct {
	ID string `path:"id" maxLength:"64" doc:"Listing ID"`

	// request carries the host, TLS state and forwarding headers of the call
	request *http.Request
}

// Resolve captures what the URL builder needs from the underlying request
func (i *ShareInput) Resolve(ctx huma.Context) []error {
	header := http.Header{}
	for _, name := range []string{"X-Forwarded-Proto", "X-Forwarded-Host"} {
		if v := ctx.Header(name); v != "" {
			header.Set(name, v)
		}
	}
	i.request = &http.Request{Host: ctx.Host(), TLS: ctx.TLS(), Header: header}
	return nil
}

// ShareOutput defines the output for the Share operation
type ShareOutput struct {
	Body responses.ShareResponse
}

// Share handles the GET /api/listings/{id}/share endpoint
func (h *ShareHandler) Share(ctx context.Context, input *ShareInput) (*ShareOutput, error) {
	listing, err := h.catalog.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	absoluteURL := h.builder.ListingURLAbsolute(input.request, listing)
	description := h.builder.ShareDescription(listing, h.excerptLength)

	var ld string
	if featureflags.IsEnabled(ctx, featureflags.JSONLDEnabled) {
		ld, err = jsonld.ListingProperties(listing, absoluteURL, description)
		if err != nil {
			return nil, toHumaError(err)
		}
	}

	return &ShareOutput{Body: mappers.ToShareResponse(listing, absoluteURL, description, ld)}, nil
}
