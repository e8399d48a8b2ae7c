// ABOUTME: View data passed to templates, carrying the model and its HTML field prefix
// ABOUTME: Lets a template render a nested model with field names scoped under a prefix

package render

import "strings"

// ViewData is the dot value every template executes against
type ViewData struct {
	Model interface{}

	// HTMLFieldPrefix scopes form field names generated for Model, e.g. "Cards[0]"
	HTMLFieldPrefix string
}

// FieldName returns the full field name for name under the current prefix:
// "prefix.name", or "prefix[0]" when name is an index
func (v ViewData) FieldName(name string) string {
	switch {
	case v.HTMLFieldPrefix == "":
		return name
	case name == "":
		return v.HTMLFieldPrefix
	case strings.HasPrefix(name, "["):
		return v.HTMLFieldPrefix + name
	default:
		return v.HTMLFieldPrefix + "." + name
	}
}

// For returns view data for a nested model. A non-empty prefix is joined
// onto the current one; an empty prefix keeps it.
func (v ViewData) For(model interface{}, prefix string) ViewData {
	nested := ViewData{Model: model, HTMLFieldPrefix: v.HTMLFieldPrefix}
	if prefix != "" {
		nested.HTMLFieldPrefix = v.FieldName(prefix)
	}
	return nested
}
