package bouncer

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// RequestURL renders href with params appended as an encoded query string,
// the form used in failure messages.
func RequestURL(href string, params url.Values) string {
	if len(params) == 0 {
		return href
	}

	return fmt.Sprintf("%s/?%s", strings.TrimSuffix(href, "/"), params.Encode())
}

// Describe renders the final URL and headers of a response.
func Describe(resp *Response) string {
	return fmt.Sprintf("Response URL: %s\n Response Headers:\n %s", resp.URL, formatHeaders(resp))
}

// FailureMessage wraps Describe with the failing URL and a description of
// the parameters that were used.
func FailureMessage(href, description string, resp *Response) string {
	return fmt.Sprintf("Failed on %s \nUsing %s.\n %s", href, description, Describe(resp))
}

func formatHeaders(resp *Response) string {
	lines := make([]string, 0, len(resp.Header))
	for _, name := range slices.Sorted(maps.Keys(resp.Header)) {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(resp.Header[name], ", ")))
	}

	return strings.Join(lines, "\n")
}
