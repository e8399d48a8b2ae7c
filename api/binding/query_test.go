package binding

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryDictionary(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
		want  map[string]string
	}{
		{
			name:  "collects bracketed keys",
			query: "filter[city]=Toronto&filter[beds]=3&page=2",
			field: "filter",
			want:  map[string]string{"city": "Toronto", "beds": "3"},
		},
		{
			name:  "prefix case-insensitive, key case kept",
			query: "FILTER[MinPrice]=100&Filter[maxPrice]=200",
			field: "filter",
			want:  map[string]string{"MinPrice": "100", "maxPrice": "200"},
		},
		{
			name:  "field name case ignored",
			query: "sort[price]=asc",
			field: "Sort",
			want:  map[string]string{"price": "asc"},
		},
		{
			name:  "first value of repeated parameter",
			query: "filter[city]=Toronto&filter[city]=Ottawa",
			field: "filter",
			want:  map[string]string{"city": "Toronto"},
		},
		{
			name:  "empty value",
			query: "filter[city]=",
			field: "filter",
			want:  map[string]string{"city": ""},
		},
		{
			name:  "empty key",
			query: "filter[]=x",
			field: "filter",
			want:  map[string]string{"": "x"},
		},
		{
			name:  "missing closing bracket ignored",
			query: "filter[city=Toronto&filter=all&filters[x]=1",
			field: "filter",
			want:  map[string]string{},
		},
		{
			name:  "colliding keys resolve to lexically first name",
			query: "filter[city]=lower&FILTER[city]=upper",
			field: "filter",
			want:  map[string]string{"city": "upper"},
		},
		{
			name:  "nested brackets kept in key",
			query: "filter[a][b]=1",
			field: "filter",
			want:  map[string]string{"a][b": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, QueryDictionary(values, tt.field))
		})
	}
}

func TestFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/listings?filter%5Bcity%5D=Toronto&page=1", nil)

	assert.Equal(t, map[string]string{"city": "Toronto"}, Filters(r))
}

func TestIsAjaxRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/listings", nil)
	assert.False(t, IsAjaxRequest(r))

	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	assert.True(t, IsAjaxRequest(r))

	r.Header.Set("X-Requested-With", "xmlhttprequest")
	assert.False(t, IsAjaxRequest(r))

	assert.False(t, IsAjaxRequest(nil))
}
