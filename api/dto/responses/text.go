// ABOUTME: Response DTOs for the text helper and listing share API endpoints
// ABOUTME: Shapes the JSON bodies returned by the huma handlers

package responses

// TextResponse is the result of a truncation or conversion
type TextResponse struct {
	Text          string `json:"text" doc:"Resulting text or HTML"`
	Truncated     bool   `json:"truncated" doc:"Whether visible text was cut"`
	VisibleLength int    `json:"visible_length" doc:"Visible characters in the result"`
}

// ShareResponse carries the metadata a social share card needs for a listing
type ShareResponse struct {
	ID          string `json:"id" doc:"Listing ID"`
	URL         string `json:"url" doc:"Absolute URL of the listing page"`
	Title       string `json:"title" doc:"One-line address"`
	Description string `json:"description" doc:"Plain-text excerpt of the description"`
	Image       string `json:"image,omitempty" doc:"Cover photo URL"`
	JSONLD      string `json:"json_ld,omitempty" doc:"schema.org JSON-LD for the listing"`
}
