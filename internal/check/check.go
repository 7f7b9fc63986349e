// Package check runs the bouncer redirect checks over a matrix of platforms
// and release aliases.
package check

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/bouncer-probe/internal/util"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

// Result is the outcome of checking one platform and alias pair.
type Result struct {
	Platform   bouncer.Platform
	Alias      string
	Version    string
	Params     url.Values
	RequestURL string
	Expected   string
	Response   *bouncer.Response
	Err        error
}

// Passed reports whether the pair redirected to the expected file on a CDN host.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Description names the parameters used for the pair.
func (r Result) Description() string {
	return fmt.Sprintf("os=%s, product=%s, version=%s", r.Platform, r.Alias, r.Version)
}

// FailureMessage renders the failure with the response details when one was received.
func (r Result) FailureMessage() string {
	if r.Err == nil {
		return ""
	}

	if r.Response == nil {
		return r.Err.Error()
	}

	return fmt.Sprintf("%v\n%s", r.Err, bouncer.FailureMessage(r.RequestURL, r.Description(), r.Response))
}

type pair struct {
	platform bouncer.Platform
	alias    string
}

// Run checks every platform and alias pair of m with prober. Results are
// returned in platform then alias order. The error is only set when ctx ends
// before every pair was checked; pairs that were skipped carry the context error.
func Run(ctx context.Context, prober *bouncer.Prober, m *Matrix) ([]Result, error) {
	var pairs []pair

	aliases := slices.Sorted(maps.Keys(m.Aliases))
	for _, p := range m.Platforms {
		for _, alias := range aliases {
			pairs = append(pairs, pair{platform: p, alias: alias})
		}
	}

	results := make([]Result, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.Concurrency)

	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Platform: p.platform, Alias: p.alias, Version: m.Aliases[p.alias], Err: err}
				return err
			}

			results[i] = checkPair(gctx, prober, m, p)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, errors.Wrap(err, "check run interrupted")
	}

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
			klog.Warningf("Check failed for %s: %v", r.Description(), r.Err)
		}
	}

	klog.Infof("Checked %d pairs against %s, %d failed", len(results), m.BouncerURL, failed)

	return results, nil
}

func checkPair(ctx context.Context, prober *bouncer.Prober, m *Matrix, p pair) Result {
	version := m.Aliases[p.alias]
	params := url.Values{
		"product": {p.alias},
		"os":      {string(p.platform)},
		"lang":    {m.Locale},
	}

	r := Result{
		Platform:   p.platform,
		Alias:      p.alias,
		Version:    version,
		Params:     params,
		RequestURL: bouncer.RequestURL(m.BouncerURL, params),
	}

	r.Expected, r.Err = bouncer.ExpectedFilename(p.platform, p.alias, version)
	if r.Err != nil {
		return r
	}

	r.Response, r.Err = prober.Head(ctx, m.BouncerURL, params, bouncer.WithLocale(m.Locale))
	if r.Err != nil {
		return r
	}

	r.Err = verify(r.Response, r.Expected, m.CDNHosts)

	return r
}

func verify(resp *bouncer.Response, expected string, cdnHosts []string) error {
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	if !util.IsHostOf(resp.URL, cdnHosts) {
		return errors.Errorf("final url %s is not on a cdn host (%s)", resp.URL, strings.Join(cdnHosts, ", "))
	}

	u, err := url.Parse(resp.URL)
	if err != nil {
		return errors.Wrapf(err, "failed to parse final url %s", resp.URL)
	}

	if !strings.HasSuffix(u.EscapedPath(), "/"+expected) {
		return errors.Errorf("final url %s does not end with %s", resp.URL, expected)
	}

	return nil
}
