// Package search selects the lines of a text that contain a query string.
//
// All functions are pure. Returned lines are substrings of the content passed
// in, so they share its backing memory instead of copying it.
package search

import "strings"

// Lines splits content into lines on '\n'.
// A trailing newline does not produce an empty final line and a trailing
// '\r' is stripped from each line. Empty content has no lines.
func Lines(content string) []string {
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		var line string
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// Search returns the lines of content containing query, in file order.
// When caseSensitive is false both sides are lower-cased before comparison.
func Search(query, content string, caseSensitive bool) []string {
	if caseSensitive {
		return SearchCaseSensitive(query, content)
	}
	return SearchCaseInsensitive(query, content)
}

// SearchCaseSensitive returns the lines of content that contain query verbatim.
func SearchCaseSensitive(query, content string) []string {
	results := make([]string, 0)
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive returns the lines of content that contain query after
// lower-casing both. The original, unfolded line is returned.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)
	results := make([]string, 0)
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}
