// ABOUTME: Listing search filters parsed from the filter[...] query dictionary
// ABOUTME: Unknown keys are ignored and malformed numbers become validation errors

package listings

import (
	"sort"
	"strconv"
	"strings"

	"realtorist-web/core/domain"
	coreerrors "realtorist-web/core/errors"
)

// Criteria narrows a listing search. Zero values do not filter.
type Criteria struct {
	City     string
	MinPrice int
	MaxPrice int
	Beds     int
}

// ParseCriteria reads city, minPrice, maxPrice and beds from a filter
// dictionary. Keys match case-insensitively. Values that are not
// non-negative integers are reported per field and left unset.
func ParseCriteria(filters map[string]string) (Criteria, []*coreerrors.ValidationError) {
	var (
		c    Criteria
		errs []*coreerrors.ValidationError
	)

	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := strings.TrimSpace(filters[key])
		if value == "" {
			continue
		}

		var target *int
		switch strings.ToLower(key) {
		case "city":
			c.City = value
			continue
		case "minprice":
			target = &c.MinPrice
		case "maxprice":
			target = &c.MaxPrice
		case "beds":
			target = &c.Beds
		default:
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			errs = append(errs, &coreerrors.ValidationError{
				Field:   key,
				Message: "must be a whole number of zero or more",
			})
			continue
		}
		*target = n
	}

	if c.MaxPrice > 0 && c.MinPrice > c.MaxPrice {
		errs = append(errs, &coreerrors.ValidationError{
			Field:   "maxPrice",
			Message: "must not be less than minPrice",
		})
	}

	return c, errs
}

// Filter returns the listings matching every set criterion, in order
func Filter(listings []domain.Listing, c Criteria) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if c.City != "" && !strings.EqualFold(l.Address.City, c.City) {
			continue
		}
		if c.MinPrice > 0 && l.Price < c.MinPrice {
			continue
		}
		if c.MaxPrice > 0 && l.Price > c.MaxPrice {
			continue
		}
		if c.Beds > 0 && l.Bedrooms < c.Beds {
			continue
		}
		out = append(out, l)
	}
	return out
}
