// ABOUTME: JSON-LD structured data for the site organisation and listing detail pages
// ABOUTME: Builds schema.org objects from site settings and listings and serialises them for <script> embedding

package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"

	"realtorist-web/core/domain"
)

type contactPoint struct {
	Type              string   `json:"@type"`
	Telephone         string   `json:"telephone,omitempty"`
	AvailableLanguage []string `json:"availableLanguage"`
}

type organization struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Name         string       `json:"name"`
	Logo         string       `json:"logo,omitempty"`
	Telephone    string       `json:"telephone,omitempty"`
	URL          string       `json:"url"`
	SameAs       []string     `json:"sameAs,omitempty"`
	ContactPoint contactPoint `json:"contactPoint"`
}

type webSite struct {
	Context       string `json:"@context"`
	Type          string `json:"@type"`
	Name          string `json:"name"`
	AlternateName string `json:"alternateName"`
	URL           string `json:"url"`
}

type postalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
}

type offer struct {
	Type  string `json:"@type"`
	Price int    `json:"price"`
	URL   string `json:"url"`
}

type residence struct {
	Context                string        `json:"@context"`
	Type                   string        `json:"@type"`
	Name                   string        `json:"name"`
	Description            string        `json:"description,omitempty"`
	URL                    string        `json:"url"`
	Image                  []string      `json:"image,omitempty"`
	NumberOfRooms          int           `json:"numberOfRooms,omitempty"`
	NumberOfBathroomsTotal int           `json:"numberOfBathroomsTotal,omitempty"`
	Address                postalAddress `json:"address"`
	Offers                 offer         `json:"offers"`
}

// DefaultProperties returns the Organization and WebSite objects for the
// site, separated by a comma so callers can embed them in a JSON array.
// Empty social profile links are left out of sameAs.
func DefaultProperties(website domain.WebsiteSettings, profile domain.ProfileSettings, social domain.SocialSettings) (string, error) {
	siteURL := "https://" + website.WebsiteAddress
	phone := domain.FormatPhoneNumber(profile.Phone)

	org := organization{
		Context:   "http://schema.org/",
		Type:      "Organization",
		Name:      profile.FullName,
		Logo:      website.Logo,
		Telephone: phone,
		URL:       siteURL,
		SameAs:    social.SameAs(),
		ContactPoint: contactPoint{
			Type:              "ContactPoint",
			Telephone:         phone,
			AvailableLanguage: []string{"en"},
		},
	}

	site := webSite{
		Context:       "http://schema.org",
		Type:          "WebSite",
		Name:          website.WebsiteName,
		AlternateName: website.WebsiteAddress,
		URL:           siteURL,
	}

	return join(org, site)
}

// ListingProperties returns a schema.org SingleFamilyResidence object for a
// listing detail page
func ListingProperties(listing *domain.Listing, absoluteURL, description string) (string, error) {
	obj := residence{
		Context:                "http://schema.org",
		Type:                   "SingleFamilyResidence",
		Name:                   listing.Address.OneLine(),
		Description:            description,
		URL:                    absoluteURL,
		Image:                  listing.Photos,
		NumberOfRooms:          listing.Bedrooms,
		NumberOfBathroomsTotal: listing.Bathrooms,
		Address: postalAddress{
			Type:            "PostalAddress",
			StreetAddress:   listing.Address.StreetAddress,
			AddressLocality: listing.Address.City,
			AddressRegion:   listing.Address.Province,
			PostalCode:      listing.Address.PostalCode,
		},
		Offers: offer{
			Type:  "Offer",
			Price: listing.Price,
			URL:   absoluteURL,
		},
	}

	return join(obj)
}

func join(objects ...interface{}) (string, error) {
	parts := make([]string, 0, len(objects))
	for _, obj := range objects {
		b, err := json.MarshalIndent(obj, "", "    ")
		if err != nil {
			return "", fmt.Errorf("marshal json-ld: %w", err)
		}
		parts = append(parts, string(b))
	}
	return strings.Join(parts, ",\n"), nil
}
