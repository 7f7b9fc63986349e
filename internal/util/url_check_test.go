package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTTPOrHTTPSURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"", false},
		{"   https://example.com   ", true},
		{"http:/example.com", false},
	}

	for _, tt := range tests {
		got := IsHTTPOrHTTPSURL(tt.input)
		if got != tt.want {
			t.Errorf("IsHTTPOrHTTPSURL(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsHostOf(t *testing.T) {
	hosts := []string{"download.cdn.mozilla.net", "download-installer.cdn.mozilla.net"}

	tests := []struct {
		input string
		want  bool
	}{
		{"https://download.cdn.mozilla.net/pub/firefox/releases/63.0/mac/en-US/Firefox%2063.0.dmg", true},
		{"https://download-installer.cdn.mozilla.net/pub/file.exe", true},
		{"https://DOWNLOAD.cdn.mozilla.net:443/pub/file.exe", true},
		{"https://cdn.mozilla.net/pub/file.exe", false},
		{"https://download.cdn.mozilla.net.evil.example/pub", false},
		{"/pub/file.exe", false},
		{"::", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHostOf(tt.input, hosts), tt.input)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b,"))
	assert.Nil(t, SplitList(""))
}
