package urls

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "realtorist-web/core/errors"
	"realtorist-web/core/domain"
)

func sampleListing() *domain.Listing {
	return &domain.Listing{
		ID: "C1234",
		Address: domain.Address{
			StreetAddress: "12 Elm Street",
			City:          "Toronto",
		},
		Description: "<p>Sunny <b>corner</b> unit.</p><p>Close to &amp; near transit.</p>",
	}
}

func TestAddressURLParameter(t *testing.T) {
	tests := []struct {
		name    string
		address domain.Address
		want    string
	}{
		{"simple", domain.Address{StreetAddress: "12 Elm Street", City: "Toronto"}, "12-elm-street-toronto"},
		{"reserved characters escaped", domain.Address{StreetAddress: "5 Main St #2", City: "St. John's"}, "5-main-st-%232-st.-john%27s"},
		{"unicode escaped", domain.Address{StreetAddress: "1 Rue Saint-Denis", City: "Montréal"}, "1-rue-saint-denis-montr%C3%A9al"},
		{"empty street", domain.Address{City: "Ottawa"}, "-ottawa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressURLParameter(tt.address))
		})
	}
}

func TestBuilder_ListingPath(t *testing.T) {
	listing := sampleListing()

	assert.Equal(t, "/property/C1234/12-elm-street-toronto", NewBuilder(Options{}).ListingPath(listing))
	assert.Equal(t, "/homes/C1234", NewBuilder(Options{ListingRoute: "/homes/{id}"}).ListingPath(listing))
	assert.Equal(t, "/app/property/C1234/12-elm-street-toronto", NewBuilder(Options{BasePath: "/app/"}).ListingPath(listing))
}

func TestBuilder_ListingURLAbsolute(t *testing.T) {
	listing := sampleListing()

	t.Run("host and port from request", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://localhost:8000/listings?page=2", nil)

		got := NewBuilder(Options{}).ListingURLAbsolute(r, listing)

		assert.Equal(t, "http://localhost:8000/property/C1234/12-elm-street-toronto", got)
	})

	t.Run("tls request is https", func(t *testing.T) {
		r := httptest.NewRequest("GET", "https://homes.example.com/", nil)
		r.TLS = &tls.ConnectionState{}

		got := NewBuilder(Options{}).ListingURLAbsolute(r, listing)

		assert.Equal(t, "https://homes.example.com/property/C1234/12-elm-street-toronto", got)
	})

	t.Run("forwarded headers ignored unless trusted", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://internal:8000/", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		r.Header.Set("X-Forwarded-Host", "homes.example.com")

		assert.Equal(t, "http://internal:8000/property/C1234/12-elm-street-toronto",
			NewBuilder(Options{}).ListingURLAbsolute(r, listing))
		assert.Equal(t, "https://homes.example.com/property/C1234/12-elm-street-toronto",
			NewBuilder(Options{TrustProxyHeaders: true}).ListingURLAbsolute(r, listing))
	})

	t.Run("first forwarded value wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://internal/", nil)
		r.Header.Set("X-Forwarded-Proto", "HTTPS, http")
		r.Header.Set("X-Forwarded-Host", "a.example.com, b.example.com")

		got := NewBuilder(Options{TrustProxyHeaders: true}).ListingURLAbsolute(r, listing)

		assert.Equal(t, "https://a.example.com/property/C1234/12-elm-street-toronto", got)
	})
}

func TestBuilder_Origin(t *testing.T) {
	r := httptest.NewRequest("GET", "http://internal:8080/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Host", "homes.example.com")

	assert.Equal(t, "http://internal:8080", NewBuilder(Options{}).Origin(r))
	assert.Equal(t, "https://homes.example.com", NewBuilder(Options{TrustProxyHeaders: true}).Origin(r))

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://internal:8080", NewBuilder(Options{}).Origin(r))
}

func TestBuilder_Content(t *testing.T) {
	b := NewBuilder(Options{BasePath: "/app"})

	assert.Equal(t, "/app/img/logo.png", b.Content("~/img/logo.png"))
	assert.Equal(t, "/app/", b.Content("~"))
	assert.Equal(t, "/img/logo.png", b.Content("/img/logo.png"))
	assert.Equal(t, "/img/logo.png", NewBuilder(Options{BasePath: "/"}).Content("~/img/logo.png"))
}

func TestBuilder_ContentAbsolute(t *testing.T) {
	r := httptest.NewRequest("GET", "http://localhost:8000/property/C1234/x", nil)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"app relative", "~/img/logo.png", "http://localhost:8000/img/logo.png"},
		{"root relative", "/css/site.css", "http://localhost:8000/css/site.css"},
		{"query dropped", "~/img/logo.png?v=3", "http://localhost:8000/img/logo.png"},
		{"bare relative gets a slash", "img/logo.png", "http://localhost:8000/img/logo.png"},
	}

	b := NewBuilder(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ContentAbsolute(r, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_ContentAbsolute_EmptyPath(t *testing.T) {
	r := httptest.NewRequest("GET", "http://localhost/", nil)

	got, err := NewBuilder(Options{}).ContentAbsolute(r, "")

	assert.Empty(t, got)
	assert.True(t, coreerrors.IsValidation(err))
}

func TestBuilder_ShareDescription(t *testing.T) {
	b := NewBuilder(Options{})
	listing := sampleListing()

	assert.Equal(t, "Sunny corner unit.Close to & near transit.", b.ShareDescription(listing, 100))
	assert.Equal(t, "Sunny corn...", b.ShareDescription(listing, 10))
}
