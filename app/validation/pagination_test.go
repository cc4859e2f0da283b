package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantPage int
		wantMsg  string
	}{
		{name: "valid page", page: 5, wantPage: 5},
		{name: "first page", page: 1, wantPage: 1},
		{name: "last allowed page", page: MaxPage, wantPage: MaxPage},
		{name: "negative page", page: -1, wantPage: 1, wantMsg: "Invalid page number"},
		{name: "zero page", page: 0, wantPage: 1, wantMsg: "Invalid page number"},
		{name: "extremely large page", page: 99999, wantPage: 1, wantMsg: "Page number too large"},
		{name: "just over the bound", page: MaxPage + 1, wantPage: 1, wantMsg: "Page number too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ValidatePagination(tt.page, DefaultPerPage)
			assert.Equal(t, tt.wantPage, page)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidatePaginationIgnoresPerPage(t *testing.T) {
	for _, perPage := range []int{-5, 0, 1, 6, 1000} {
		page, err := ValidatePagination(3, perPage)
		assert.NoError(t, err)
		assert.Equal(t, 3, page)
	}
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		raw      string
		wantPage int
		wantMsg  string
	}{
		{raw: "5", wantPage: 5},
		{raw: " 7 ", wantPage: 7},
		{raw: "", wantPage: 1},
		{raw: "   ", wantPage: 1},
		{raw: "\t\n", wantPage: 1},
		{raw: "abc", wantPage: 1, wantMsg: "Invalid page parameter"},
		{raw: "2.5", wantPage: 1, wantMsg: "Invalid page parameter"},
		{raw: "-1", wantPage: 1, wantMsg: "Invalid page number"},
		{raw: "0", wantPage: 1, wantMsg: "Invalid page number"},
		{raw: "99999", wantPage: 1, wantMsg: "Page number too large"},
		{raw: "99999999999999999999999", wantPage: 1, wantMsg: "Page number too large"},
		{raw: "-99999999999999999999999", wantPage: 1, wantMsg: "Invalid page number"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			page, err := PageFromQuery(tt.raw, DefaultPerPage)
			assert.Equal(t, tt.wantPage, page)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, page)

	page, err = ParsePage("page")
	assert.Equal(t, DefaultPage, page)
	assert.EqualError(t, err, "Invalid page parameter")
}
