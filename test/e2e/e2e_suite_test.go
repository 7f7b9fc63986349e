package e2e_test

import (
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neutree-ai/bouncer-probe/internal/bouncertest"
	"github.com/neutree-ai/bouncer-probe/test/e2e/framework"
)

var (
	cfg    *framework.Config
	client *framework.Client

	// fake is set when the suite runs against the in-process bouncer.
	fake *httptest.Server
)

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

var _ = BeforeSuite(func() {
	cfg = framework.NewConfigFromEnv()
	Expect(cfg.Versions).NotTo(BeEmpty(), "E2E_VERSIONS has no alias=version entries")

	if cfg.BouncerURL == "" {
		fake = bouncertest.NewServer(cfg.Versions)
		cfg.BouncerURL = fake.URL
		cfg.CDNHosts = []string{"127.0.0.1"}
		GinkgoWriter.Printf("E2E_BOUNCER_URL not set, using fake bouncer at %s\n", fake.URL)
	}

	client = framework.NewClient(cfg)
	GinkgoWriter.Printf("Testing bouncer %s with CDN hosts %v\n", cfg.BouncerURL, cfg.CDNHosts)
})

var _ = AfterSuite(func() {
	if fake != nil {
		fake.Close()
	}
	GinkgoWriter.Println("E2E test suite completed")
})
