package bouncertest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

func TestServerRedirectsToPredictedFile(t *testing.T) {
	srv := NewServer(map[string]string{
		"firefox-latest":         "63.0",
		"firefox-nightly-latest": "65.0a1",
	})
	defer srv.Close()

	prober := bouncer.NewProber()

	tests := []struct {
		product string
		os      string
		want    string
	}{
		{"firefox-latest", "win", "/pub/firefox/releases/63.0/win32/en-US/Firefox%20Setup%2063.0.exe"},
		{"firefox-latest", "osx", "/pub/firefox/releases/63.0/mac/en-US/Firefox%2063.0.dmg"},
		{"firefox-nightly-latest", "linux", "/pub/firefox/releases/65.0a1/linux-i686/en-US/firefox-65.0a1.en-US.linux-i686.tar.bz2"},
	}

	for _, tt := range tests {
		t.Run(tt.product+"/"+tt.os, func(t *testing.T) {
			resp, err := prober.Head(context.Background(), srv.URL, map[string][]string{
				"product": {tt.product},
				"os":      {tt.os},
				"lang":    {"en-US"},
			})
			require.NoError(t, err)

			assert.True(t, resp.Redirected)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, srv.URL+tt.want, resp.URL)
		})
	}
}

func TestServerUnknownProduct(t *testing.T) {
	srv := NewServer(map[string]string{"firefox-latest": "63.0"})
	defer srv.Close()

	resp, err := bouncer.NewProber().Head(context.Background(), srv.URL, map[string][]string{
		"product": {"thunderbird-latest"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.Redirected)
}

func TestServerUnknownPlatform(t *testing.T) {
	srv := NewServer(map[string]string{"firefox-latest": "63.0"})
	defer srv.Close()

	resp, err := bouncer.NewProber().Head(context.Background(), srv.URL, map[string][]string{
		"product": {"firefox-latest"},
		"os":      {"bsd"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerIndexLinks(t *testing.T) {
	srv := NewServer(map[string]string{
		"firefox-latest":      "63.0",
		"firefox-beta-latest": "64.0b3",
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	doc, err := bouncer.ParseHTML(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{"/?product=firefox-beta-latest", "/?product=firefox-latest"}, bouncer.Links(doc))
}
