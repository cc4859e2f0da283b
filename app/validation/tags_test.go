package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "basic tags", in: "python, flask, web", want: "python, flask, web"},
		{name: "extra whitespace", in: "python,  flask  ,   web", want: "python, flask, web"},
		{name: "empty pieces", in: "python, , flask, , web", want: "python, flask, web"},
		{name: "case insensitive duplicates", in: "python, Python, PYTHON, flask", want: "python, flask"},
		{name: "first casing kept", in: "Python, python, PYTHON", want: "Python"},
		{name: "empty string", in: "", want: ""},
		{name: "only separators", in: " , ,, ", want: ""},
		{name: "no spaces", in: "go,rust,go", want: "go, rust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTags(tt.in))
		})
	}
}

func TestSanitizeTagsKeepsFirstTwenty(t *testing.T) {
	var tags []string
	for i := 0; i < 25; i++ {
		tags = append(tags, fmt.Sprintf("tag%d", i))
	}

	result := SanitizeTags(strings.Join(tags, ", "))
	got := strings.Split(result, ", ")
	assert.Len(t, got, MaxTags)
	assert.Equal(t, tags[:MaxTags], got)
}

func TestSanitizeTagsCapsAfterDedup(t *testing.T) {
	// Duplicates must not use up slots of the 20 tag budget.
	var tags []string
	for i := 0; i < 21; i++ {
		tags = append(tags, fmt.Sprintf("t%d", i), fmt.Sprintf("T%d", i))
	}

	got := SplitTags(strings.Join(tags, ","))
	assert.Len(t, got, MaxTags)
	assert.Equal(t, "t19", got[19])
}

func TestSanitizeTagsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"python, Python, PYTHON, flask",
		"  a ,b,, c ,A, B ",
		strings.Repeat("x,", 40),
		"Go, go , GO,golang,  Golang",
	}
	for _, in := range inputs {
		once := SanitizeTags(in)
		assert.Equal(t, once, SanitizeTags(once), "input %q", in)
	}
}

func TestSplitTagsEmpty(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , "))
}
