// ABOUTME: Service interfaces for the presentation helpers
// ABOUTME: Defines contracts the HTTP handlers depend on so they can be tested with mocks

package interfaces

import (
	"context"

	"realtorist-web/core/domain"
)

// ViewRenderer renders a named view with a model into a string
type ViewRenderer interface {
	RenderToString(ctx context.Context, viewName string, model any, isPartial bool) (string, error)
}

// ListingCatalog provides read-only access to listings and site settings
type ListingCatalog interface {
	// Get returns the listing with the given ID or a NotFoundError
	Get(ctx context.Context, id string) (*domain.Listing, error)

	// List returns all listings in display order
	List(ctx context.Context) []domain.Listing

	// Settings returns the website, profile and social settings
	Settings() domain.SiteSettings
}
