// ABOUTME: Read-only listing catalog loaded from a YAML seed file
// ABOUTME: Serves listing lookups and site settings to the page and API handlers

package listings

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"realtorist-web/core/domain"
	coreerrors "realtorist-web/core/errors"
)

// seedFile is the on-disk layout of the catalog
type seedFile struct {
	Site     domain.SiteSettings `yaml:"site"`
	Listings []domain.Listing    `yaml:"listings"`
}

// Catalog holds listings in seed-file order. It is immutable after loading
// and safe for concurrent use.
type Catalog struct {
	settings domain.SiteSettings
	listings []domain.Listing
	byID     map[string]int
}

// LoadCatalog reads and parses the seed file at path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog builds a catalog from YAML seed data. Every listing must
// validate and IDs must be unique.
func ParseCatalog(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(seed.Listings))
	for i := range seed.Listings {
		listing := &seed.Listings[i]
		if err := listing.Validate(); err != nil {
			return nil, fmt.Errorf("listing %d: %w", i, err)
		}
		if _, dup := byID[listing.ID]; dup {
			return nil, fmt.Errorf("listing %d: duplicate id %q", i, listing.ID)
		}
		byID[listing.ID] = i
	}

	return &Catalog{
		settings: seed.Site,
		listings: seed.Listings,
		byID:     byID,
	}, nil
}

// Get returns the listing with the given ID
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i, ok := c.byID[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "listing", ID: id}
	}

	listing := c.listings[i]
	return &listing, nil
}

// List returns a copy of every listing in seed-file order
func (c *Catalog) List(ctx context.Context) []domain.Listing {
	out := make([]domain.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Settings returns the site settings
func (c *Catalog) Settings() domain.SiteSettings {
	return c.settings
}
