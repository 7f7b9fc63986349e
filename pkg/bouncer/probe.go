package bouncer

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// DefaultUserAgent is a desktop Firefox user agent. The bouncer picks
	// builds by user agent when no os param is given.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.7; rv:10.0.1) Gecko/20100101 Firefox/10.0.1"
	DefaultLocale    = "en-US"
	// DefaultTimeout applies to each request stage separately.
	DefaultTimeout = 15 * time.Second
)

type probeOptions struct {
	userAgent string
	locale    string
	timeout   time.Duration
	transport http.RoundTripper
}

// Option overrides a probe setting, either for every call when passed to
// NewProber or for a single call when passed to Head.
type Option func(*probeOptions)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(opts *probeOptions) {
		if userAgent != "" {
			opts.userAgent = userAgent
		}
	}
}

// WithLocale sets the Accept-Language header.
func WithLocale(locale string) Option {
	return func(opts *probeOptions) {
		if locale != "" {
			opts.locale = locale
		}
	}
}

// WithTimeout sets the timeout of each request stage.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *probeOptions) {
		if timeout > 0 {
			opts.timeout = timeout
		}
	}
}

// WithTransport replaces the default transport, which skips TLS verification.
func WithTransport(transport http.RoundTripper) Option {
	return func(opts *probeOptions) {
		opts.transport = transport
	}
}

// Response is the outcome of a probe.
type Response struct {
	// URL is the URL of the last request made, after any followed redirects.
	URL        string
	StatusCode int
	Status     string
	Header     http.Header
	// Redirected is set when the first response was a 302 and its Location was fetched.
	Redirected bool
}

// Prober issues HEAD requests against the bouncer. It is safe for concurrent use.
type Prober struct {
	opts probeOptions
}

// NewProber creates a Prober with the default headers, a 15 second timeout and
// TLS certificate verification disabled.
func NewProber(options ...Option) *Prober {
	p := &Prober{
		opts: probeOptions{
			userAgent: DefaultUserAgent,
			locale:    DefaultLocale,
			timeout:   DefaultTimeout,
		},
	}

	for _, opt := range options {
		opt(&p.opts)
	}

	if p.opts.transport == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:errcheck
		transport.TLSClientConfig = &tls.Config{
			//nolint:gosec
			InsecureSkipVerify: true,
		}
		p.opts.transport = transport
	}

	return p
}

// Head sends a HEAD request to href with params attached to the query,
// without following redirects. A 302 carrying a Location header is followed
// once with a second HEAD request that does follow redirects and carries no
// params. Any other response is returned as is.
//
// Errors are always *TransportError.
func (p *Prober) Head(ctx context.Context, href string, params url.Values, options ...Option) (*Response, error) {
	// Copy the options so concurrent calls can override them independently.
	opts := p.opts
	for _, opt := range options {
		opt(&opts)
	}

	requestURL := RequestURL(href, params)

	target, err := withParams(href, params)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	resp, err := head(ctx, target, opts, false)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	location := resp.Header.Get("Location")
	if resp.StatusCode != http.StatusFound || location == "" {
		return resp, nil
	}

	next, err := resolveLocation(target, location)
	if err != nil {
		return nil, &TransportError{URL: location, Err: err}
	}

	klog.V(4).Infof("Following redirect from %s to %s", requestURL, next)

	final, err := head(ctx, next, opts, true)
	if err != nil {
		return nil, &TransportError{URL: next, Err: err}
	}

	final.Redirected = true

	return final, nil
}

func head(ctx context.Context, target string, opts probeOptions, follow bool) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("User-Agent", opts.userAgent)
	req.Header.Set("Accept-Language", opts.locale)
	req.Header.Set("Connection", "close")
	req.Close = true

	client := &http.Client{
		Transport: opts.transport,
		Timeout:   opts.timeout,
	}
	if !follow {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	klog.V(4).Infof("HEAD %s (follow redirects: %v)", target, follow)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	klog.V(4).Infof("HEAD %s returned %s", resp.Request.URL, resp.Status)

	return &Response{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
	}, nil
}

func withParams(href string, params url.Values) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse url %s", href)
	}

	if len(params) == 0 {
		return u.String(), nil
	}

	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	u.RawQuery = query.Encode()

	return u.String(), nil
}

func resolveLocation(base, location string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse url %s", base)
	}

	l, err := url.Parse(location)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse redirect location %s", location)
	}

	return b.ResolveReference(l).String(), nil
}
