package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neutree-ai/bouncer-probe/cmd/bouncer-cli/app/cmd/global"
	"github.com/neutree-ai/bouncer-probe/internal/check"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

type checkOptions struct {
	config      string
	bouncerURL  string
	aliases     map[string]string
	platforms   []string
	cdnHosts    []string
	concurrency int
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every platform and alias against the bouncer",
		Long: `Probe the bouncer for every platform and alias pair and verify the final
response is a 200 from a CDN host for the expected filename.

The matrix is read from --config and can be overridden with flags.

Examples:
  bouncer-cli check --config matrix.yaml
  bouncer-cli check --bouncer-url https://download.mozilla.org --alias firefox-latest=63.0 --platform win`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Path to a YAML check matrix")
	cmd.Flags().StringVar(&opts.bouncerURL, "bouncer-url", "", "Bouncer URL, overrides the matrix")
	cmd.Flags().StringToStringVar(&opts.aliases, "alias", nil, "Alias and version as alias=version, overrides the matrix")
	cmd.Flags().StringSliceVar(&opts.platforms, "platform", nil, "Platforms to check, overrides the matrix")
	cmd.Flags().StringSliceVar(&opts.cdnHosts, "cdn-host", nil, "Accepted CDN hosts, overrides the matrix")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Number of concurrent probes")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	m := &check.Matrix{}

	if opts.config != "" {
		loaded, err := check.LoadMatrix(opts.config)
		if err != nil {
			return err
		}

		m = loaded
	}

	if opts.bouncerURL != "" {
		m.BouncerURL = opts.bouncerURL
	}

	if len(opts.aliases) > 0 {
		m.Aliases = opts.aliases
	}

	if len(opts.platforms) > 0 {
		m.Platforms = nil
		for _, p := range opts.platforms {
			m.Platforms = append(m.Platforms, bouncer.Platform(p))
		}
	}

	if len(opts.cdnHosts) > 0 {
		m.CDNHosts = opts.cdnHosts
	}

	if opts.concurrency > 0 {
		m.Concurrency = opts.concurrency
	}

	if global.Locale != "" {
		m.Locale = global.Locale
	}

	m.SetDefaults()

	if err := m.Validate(); err != nil {
		return err
	}

	results, err := check.Run(cmd.Context(), global.NewProber(), m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OS\tALIAS\tVERSION\tSTATUS\tRESULT\tFINAL URL")

	failed := 0
	for _, r := range results {
		status, finalURL := "-", "-"
		if r.Response != nil {
			status = fmt.Sprintf("%d", r.Response.StatusCode)
			finalURL = r.Response.URL
		}

		result := "PASS"
		if !r.Passed() {
			result = "FAIL"
			failed++
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Platform, r.Alias, r.Version, status, result, finalURL)
	}

	w.Flush()

	for _, r := range results {
		if !r.Passed() {
			fmt.Fprintf(out, "\n%s\n", r.FailureMessage())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}

	return nil
}
