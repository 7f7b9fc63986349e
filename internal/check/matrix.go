package check

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/neutree-ai/bouncer-probe/internal/util"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

const defaultConcurrency = 4

// DefaultCDNHosts are the hosts the bouncer is expected to redirect to.
var DefaultCDNHosts = []string{
	"download.cdn.mozilla.net",
	"download-installer.cdn.mozilla.net",
}

// Matrix describes which platform and alias pairs a check run covers.
type Matrix struct {
	BouncerURL string `yaml:"bouncer_url"`
	Locale     string `yaml:"locale,omitempty"`
	// Platforms defaults to every supported platform.
	Platforms []bouncer.Platform `yaml:"platforms,omitempty"`
	// Aliases maps a release alias to the version it currently serves.
	Aliases     map[string]string `yaml:"aliases"`
	CDNHosts    []string          `yaml:"cdn_hosts,omitempty"`
	Concurrency int               `yaml:"concurrency,omitempty"`
}

// LoadMatrix reads a YAML matrix file, applies defaults and validates it.
func LoadMatrix(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read check matrix %s", path)
	}

	m := &Matrix{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse check matrix %s", path)
	}

	m.SetDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// SetDefaults fills unset fields.
func (m *Matrix) SetDefaults() {
	if m.Locale == "" {
		m.Locale = bouncer.DefaultLocale
	}

	if len(m.Platforms) == 0 {
		m.Platforms = append([]bouncer.Platform(nil), bouncer.Platforms...)
	}

	if len(m.CDNHosts) == 0 {
		m.CDNHosts = append([]string(nil), DefaultCDNHosts...)
	}

	if m.Concurrency <= 0 {
		m.Concurrency = defaultConcurrency
	}
}

// Validate checks the matrix can be run.
func (m *Matrix) Validate() error {
	if !util.IsHTTPOrHTTPSURL(m.BouncerURL) {
		return errors.Errorf("bouncer url %q must be an http or https url", m.BouncerURL)
	}

	if len(m.Aliases) == 0 {
		return errors.New("at least one alias is required")
	}

	for _, p := range m.Platforms {
		if _, err := bouncer.ParsePlatform(string(p)); err != nil {
			return err
		}
	}

	for alias, version := range m.Aliases {
		if version == "" {
			return errors.Errorf("alias %s has no version", alias)
		}
	}

	return nil
}
