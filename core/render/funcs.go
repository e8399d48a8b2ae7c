// ABOUTME: Template function map exposing the text helpers to views
// ABOUTME: Wraps truncation, stripping, URL building and view data helpers for html/template

package render

import (
	"html/template"
	"strconv"

	"realtorist-web/core/domain"
	"realtorist-web/core/urls"
	"realtorist-web/pkg/utils/html"
)

// Funcs returns the template functions available to every view
func Funcs(builder *urls.Builder) template.FuncMap {
	return template.FuncMap{
		// truncateHtml returns markup; descriptions come from the trusted catalog
		"truncateHtml": func(s string, maxChars int, trailing ...string) template.HTML {
			return template.HTML(html.TruncateHTMLWithTrailing(s, maxChars, marker(trailing)))
		},
		"truncate": func(s string, maxChars int, trailing ...string) string {
			return html.Truncate(s, maxChars, marker(trailing))
		},
		"truncateWords": func(s string, maxChars int, trailing ...string) string {
			return html.TruncateWords(s, maxChars, marker(trailing))
		},
		"stripHtml": html.StripHTML,
		"plainText": html.HTMLToPlainText,
		"listingPath": func(l domain.Listing) string {
			return builder.ListingPath(&l)
		},
		"content": builder.Content,
		"phone":   domain.FormatPhoneNumber,
		"price":   formatPrice,
		"rawHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"jsonLD": func(s string) template.JS {
			return template.JS(s)
		},
		"helperFor": func(parent ViewData, model interface{}, prefix string) ViewData {
			return parent.For(model, prefix)
		},
		"fieldName": func(v ViewData, name string) string {
			return v.FieldName(name)
		},
	}
}

func marker(trailing []string) string {
	if len(trailing) == 0 {
		return html.DefaultTrailingText
	}
	return trailing[0]
}

// formatPrice renders whole currency units with thousands separators, e.g. "$1,150,000"
func formatPrice(amount int) string {
	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		// two's complement negation stays correct for math.MinInt
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + "$" + string(out)
}
