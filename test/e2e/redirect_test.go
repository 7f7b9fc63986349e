package e2e_test

import (
	"context"
	"maps"
	"net/http"
	"net/url"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

var _ = Describe("Bouncer", Label("redirect"), func() {
	DescribeTable("redirects every alias to the expected file on a CDN host",
		func(os bouncer.Platform) {
			for _, alias := range slices.Sorted(maps.Keys(cfg.Versions)) {
				By("Checking " + alias + " on " + string(os))

				expected, err := bouncer.ExpectedFilename(os, alias, cfg.Versions[alias])
				Expect(err).NotTo(HaveOccurred())

				ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout)
				resp, err := client.Download(ctx, alias, os)
				cancel()
				Expect(err).NotTo(HaveOccurred())

				msg := client.FailureMessage(client.DownloadParams(alias, os), resp)
				Expect(resp.StatusCode).To(Equal(http.StatusOK), msg)
				Expect(resp.Redirected).To(BeTrue(), msg)
				Expect(client.IsCDNHost(resp.URL)).To(BeTrue(), msg)
				Expect(resp.URL).To(HaveSuffix("/"+expected), msg)
			}
		},
		Entry("on Windows", bouncer.PlatformWindows),
		Entry("on macOS", bouncer.PlatformMac),
		Entry("on Linux", bouncer.PlatformLinux),
	)

	It("returns 404 for an unknown product", func() {
		params := url.Values{"product": {"firefox-does-not-exist"}, "os": {"win"}, "lang": {cfg.Locale}}

		resp, err := client.Probe(context.Background(), params)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound), client.FailureMessage(params, resp))
	})

	It("links every alias from the index page", func() {
		if fake == nil {
			Skip("index page is only served by the fake bouncer")
		}

		resp, err := http.Get(client.BouncerURL())
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		doc, err := bouncer.ParseHTML(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var want []string
		for _, alias := range slices.Sorted(maps.Keys(cfg.Versions)) {
			want = append(want, "/?product="+alias)
		}
		Expect(bouncer.Links(doc)).To(Equal(want))
	})
})
