package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantSort string
		wantDir  string
	}{
		{"colon syntax", "sort=order:desc", "order", "desc"},
		{"colon syntax invalid dir", "sort=order:sideways", "order", ""},
		{"separate params", "sort=title&dir=ASC", "title", "asc"},
		{"separate params invalid dir", "sort=title&dir=up", "title", ""},
		{"absent", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			sort, dir := ParseSortParam(q, "sort", "dir")
			assert.Equal(t, tt.wantSort, sort)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestParseBoolFilter(t *testing.T) {
	t.Parallel()

	q := url.Values{"active": {"true"}}
	v := ParseBoolFilter(q, "active")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}

	q = url.Values{"active": {"FALSE"}}
	v = ParseBoolFilter(q, "active")
	if assert.NotNil(t, v) {
		assert.False(t, *v)
	}

	assert.Nil(t, ParseBoolFilter(url.Values{"active": {"maybe"}}, "active"))
	assert.Nil(t, ParseBoolFilter(url.Values{}, "active"))
}

func TestFilterLocal(t *testing.T) {
	t.Parallel()

	type row struct{ Name, Code string }
	items := []row{
		{"Kerala State Board", "KSB"},
		{"Central Board", "CBSE"},
		{"Open Schooling", "NIOS"},
	}
	fields := func(r row) []string { return []string{r.Name, r.Code} }

	got := FilterLocal(items, "board", fields)
	assert.Len(t, got, 2)

	got = FilterLocal(items, "cbse", fields)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Central Board", got[0].Name)
	}

	assert.Equal(t, items, FilterLocal(items, "", fields))
	assert.Empty(t, FilterLocal(items, "zzz", fields))
}
