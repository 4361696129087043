package search

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

func TestLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty content", content: "", want: []string{}},
		{name: "single line no newline", content: "one", want: []string{"one"}},
		{name: "trailing newline dropped", content: "one\ntwo\n", want: []string{"one", "two"}},
		{name: "only newline", content: "\n", want: []string{""}},
		{name: "interior empty lines kept", content: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf stripped", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone carriage return kept mid line", content: "a\rb\n", want: []string{"a\rb"}},
		{name: "two trailing newlines", content: "a\n\n", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.content))
		})
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	got := Search("duct", poem, true)
	assert.Equal(t, []string{"safe, fast, productive."}, got)
}

func TestSearchCaseInsensitive(t *testing.T) {
	content := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
	got := Search("rUsT", content, false)
	assert.Equal(t, []string{"Rust:", "Trust me."}, got)
}

func TestSearchCaseInsensitiveReturnsOriginalLine(t *testing.T) {
	got := SearchCaseInsensitive("DUCT", poem)
	assert.Equal(t, []string{"safe, fast, productive.", "Duct tape."}, got)
}

func TestSearchNoMatches(t *testing.T) {
	got := Search("monomorphization", poem, true)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchEmptyQueryMatchesEveryLine(t *testing.T) {
	assert.Equal(t, Lines(poem), Search("", poem, true))
}

func TestSearchKeepsDuplicatesInOrder(t *testing.T) {
	content := "b match\na match\nb match\nnone\n"
	got := Search("match", content, true)
	assert.Equal(t, []string{"b match", "a match", "b match"}, got)
}

func TestSearchUnicodeFold(t *testing.T) {
	content := "ÜBER alles\nunter\nüber\n"
	got := Search("über", content, false)
	assert.Equal(t, []string{"ÜBER alles", "über"}, got)
}

func TestSearchProperties(t *testing.T) {
	contents := []string{
		poem,
		"To be, or not to be\nthat IS the question\nWhether 'tis nobler\n",
		"",
		"\n\n\n",
		"MiXeD\nmixed\nMIXED\nnothing here",
	}
	queries := []string{"", "be", "Be", "is", "IS", "mixed", "xEd", "zzz", "\n"}

	for _, content := range contents {
		for _, query := range queries {
			sensitive := Search(query, content, true)
			insensitive := Search(query, content, false)

			for _, line := range sensitive {
				assert.Contains(t, line, query)
			}
			assert.GreaterOrEqual(t, len(insensitive), len(sensitive))
			assert.LessOrEqual(t, len(insensitive), len(Lines(content)))
			assertSubsequence(t, Lines(content), sensitive)
			assertSubsequence(t, Lines(content), insensitive)
		}
	}
}

func TestSearchResultsShareContentMemory(t *testing.T) {
	content := strings.Repeat("needle in hay\nhay only\n", 4)
	got := Search("needle", content, true)
	require.Len(t, got, 4)

	start := uintptr(unsafe.Pointer(unsafe.StringData(content)))
	end := start + uintptr(len(content))
	for _, line := range got {
		p := uintptr(unsafe.Pointer(unsafe.StringData(line)))
		assert.True(t, p >= start && p < end, "result line %q should point into content", line)
	}
}

// assertSubsequence checks that got appears in lines in the same relative order.
func assertSubsequence(t *testing.T, lines, got []string) {
	t.Helper()
	i := 0
	for _, line := range lines {
		if i < len(got) && line == got[i] {
			i++
		}
	}
	assert.Equal(t, len(got), i, "results %q are not an ordered subsequence of %q", got, lines)
}
