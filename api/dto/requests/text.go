// ABOUTME: Request DTOs for the text helper API endpoints
// ABOUTME: Provides validation tags and default values for truncation and conversion requests

package requests

import "realtorist-web/pkg/utils/html"

// Truncation modes accepted by the truncate endpoint
const (
	ModeHTML      = "html"
	ModeText      = "text"
	ModeWords     = "words"
	ModeDelimiter = "delimiter"
)

// DefaultDelimiter marks the end of a teaser in authored HTML
const DefaultDelimiter = "<!--more-->"

// TruncateRequest represents the request body for truncating text or HTML
type TruncateRequest struct {
	// Text is the HTML fragment or plain text to truncate
	Text string `json:"text" maxLength:"200000" doc:"HTML fragment or plain text to truncate"`

	// MaxChars is the visible character budget
	MaxChars int `json:"max_chars,omitempty" minimum:"0" doc:"Visible characters to keep; not used in delimiter mode"`

	// Trailing is appended when anything was cut
	Trailing *string `json:"trailing,omitempty" maxLength:"32" doc:"Marker appended when text is cut (default \"...\")"`

	// Mode selects the truncation routine
	Mode string `json:"mode,omitempty" enum:"html,text,words,delimiter" default:"html" doc:"html keeps tags balanced, text and words cut plain text, delimiter cuts HTML at a marker"`

	// Delimiter is the cut marker for delimiter mode
	Delimiter string `json:"delimiter,omitempty" maxLength:"64" doc:"Cut marker for delimiter mode (default <!--more-->)"`
}

// ApplyDefaults sets default values for optional fields
func (r *TruncateRequest) ApplyDefaults() {
	if r.Mode == "" {
		r.Mode = ModeHTML
	}
	if r.Trailing == nil {
		trailing := html.DefaultTrailingText
		r.Trailing = &trailing
	}
	if r.Delimiter == "" {
		r.Delimiter = DefaultDelimiter
	}
}

// ConvertRequest represents the request body for strip and plain-text conversion
type ConvertRequest struct {
	// HTML is the fragment to convert
	HTML string `json:"html" maxLength:"200000" doc:"HTML fragment to convert"`
}
