// ABOUTME: Mappers from listing domain models to API response DTOs
// ABOUTME: Keeps response shaping out of the handlers

package mappers

import (
	"unicode/utf8"

	"realtorist-web/api/dto/responses"
	"realtorist-web/core/domain"
	"realtorist-web/pkg/utils/html"
)

// ToShareResponse maps a listing and its computed share fields
func ToShareResponse(listing *domain.Listing, absoluteURL, description, jsonLD string) responses.ShareResponse {
	return responses.ShareResponse{
		ID:          listing.ID,
		URL:         absoluteURL,
		Title:       listing.Address.OneLine(),
		Description: description,
		Image:       listing.CoverPhoto(),
		JSONLD:      jsonLD,
	}
}

// ToTextResponse describes result relative to the input it was produced from
func ToTextResponse(input, result string) responses.TextResponse {
	visible := html.StripHTML(result)
	return responses.TextResponse{
		Text:          result,
		Truncated:     visible != html.StripHTML(input),
		VisibleLength: utf8.RuneCountInString(visible),
	}
}
