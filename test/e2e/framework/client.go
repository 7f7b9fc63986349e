package framework

import (
	"context"
	"fmt"
	"net/url"

	"github.com/neutree-ai/bouncer-probe/internal/util"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

// Client is a wrapper around the bouncer probe.
type Client struct {
	prober     *bouncer.Prober
	bouncerURL string
	locale     string
	cdnHosts   []string
}

// NewClient creates a new bouncer client from cfg.
func NewClient(cfg *Config) *Client {
	return &Client{
		prober: bouncer.NewProber(
			bouncer.WithUserAgent(cfg.UserAgent),
			bouncer.WithLocale(cfg.Locale),
			bouncer.WithTimeout(cfg.Timeout),
		),
		bouncerURL: cfg.BouncerURL,
		locale:     cfg.Locale,
		cdnHosts:   cfg.CDNHosts,
	}
}

// DownloadParams returns the bouncer query for a product alias and platform.
func (c *Client) DownloadParams(alias string, os bouncer.Platform) url.Values {
	return url.Values{
		"product": {alias},
		"os":      {string(os)},
		"lang":    {c.locale},
	}
}

// Download asks the bouncer for a product alias on a platform.
func (c *Client) Download(ctx context.Context, alias string, os bouncer.Platform) (*bouncer.Response, error) {
	return c.prober.Head(ctx, c.bouncerURL, c.DownloadParams(alias, os))
}

// Probe sends params to the bouncer as is.
func (c *Client) Probe(ctx context.Context, params url.Values) (*bouncer.Response, error) {
	return c.prober.Head(ctx, c.bouncerURL, params)
}

// RequestURL renders the bouncer URL with params for failure messages.
func (c *Client) RequestURL(params url.Values) string {
	return bouncer.RequestURL(c.bouncerURL, params)
}

// FailureMessage describes resp for a failed expectation on params.
func (c *Client) FailureMessage(params url.Values, resp *bouncer.Response) string {
	return bouncer.FailureMessage(c.RequestURL(params), fmt.Sprintf("params %s", params.Encode()), resp)
}

// IsCDNHost returns true if rawURL is served by one of the configured CDN hosts.
func (c *Client) IsCDNHost(rawURL string) bool {
	return util.IsHostOf(rawURL, c.cdnHosts)
}

// BouncerURL returns the bouncer URL the client probes.
func (c *Client) BouncerURL() string {
	return c.bouncerURL
}
