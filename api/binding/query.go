// ABOUTME: Query string binding helpers for list pages
// ABOUTME: Binds name[key]=value query parameters into dictionaries and detects AJAX requests

package binding

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// FilterField is the query dictionary name used by listing search forms
const FilterField = "filter"

// QueryDictionary collects parameters named fieldName[key] into a map of
// key to first value. The fieldName prefix matches case-insensitively and
// keys keep their original case. When several parameters map to the same
// key, the lexically first parameter name wins.
func QueryDictionary(values url.Values, fieldName string) map[string]string {
	start := fieldName + "["
	const end = "]"

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	dict := make(map[string]string)
	for _, name := range names {
		if len(name) < len(start)+len(end) ||
			!strings.EqualFold(name[:len(start)], start) ||
			!strings.HasSuffix(name, end) {
			continue
		}

		key := name[len(start) : len(name)-len(end)]
		if _, exists := dict[key]; exists {
			continue
		}

		value := ""
		if v := values[name]; len(v) > 0 {
			value = v[0]
		}
		dict[key] = value
	}

	return dict
}

// Filters binds the filter[...] dictionary from the request query string
func Filters(r *http.Request) map[string]string {
	return QueryDictionary(r.URL.Query(), FilterField)
}

// IsAjaxRequest reports whether r was sent by XMLHttpRequest. A nil
// request is not an AJAX request.
func IsAjaxRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
