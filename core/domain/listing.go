// ABOUTME: Listing domain model represents a property offered for sale or rent
// ABOUTME: Provides validation and display helpers used by list and detail views

package domain

import (
	"errors"
	"strings"
)

// Address is the civic address of a listed property
type Address struct {
	// StreetAddress is the street number and name, e.g. "12 Elm Street"
	StreetAddress string `yaml:"street_address" json:"street_address"`

	// City is the municipality
	City string `yaml:"city" json:"city"`

	// Province is the province or state code
	Province string `yaml:"province" json:"province,omitempty"`

	// PostalCode is the postal or ZIP code
	PostalCode string `yaml:"postal_code" json:"postal_code,omitempty"`
}

// Listing represents a single property listing
type Listing struct {
	// ID is the unique listing identifier (MLS number or internal ID)
	ID string `yaml:"id" json:"id"`

	// Address locates the property
	Address Address `yaml:"address" json:"address"`

	// Price is the asking price in whole currency units
	Price int `yaml:"price" json:"price"`

	// Bedrooms and Bathrooms are room counts
	Bedrooms  int `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms int `yaml:"bathrooms" json:"bathrooms"`

	// Description is the agent-authored HTML description
	Description string `yaml:"description" json:"description"`

	// Photos are image URLs, the first one is the cover photo
	Photos []string `yaml:"photos" json:"photos,omitempty"`
}

// Validate checks if the listing has the fields needed to build its URL
func (l *Listing) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("listing ID cannot be empty")
	}

	if strings.TrimSpace(l.Address.StreetAddress) == "" {
		return errors.New("listing street address cannot be empty")
	}

	return nil
}

// CoverPhoto returns the first photo URL or an empty string
func (l Listing) CoverPhoto() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0]
}

// OneLine formats the address as "street, city, province postal"
func (a Address) OneLine() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.StreetAddress, a.City, strings.TrimSpace(a.Province + " " + a.PostalCode)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
