package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neutree-ai/bouncer-probe/cmd/bouncer-cli/app/cmd/global"
	"github.com/neutree-ai/bouncer-probe/internal/util"
	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

func newProbeCmd() *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "probe <URL>",
		Short: "Send a HEAD request and follow a single 302",
		Long: `Send a HEAD request to URL without following redirects. When the response
is a 302 with a Location header, the location is requested once more with
redirects followed. The final URL, status and headers are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsHTTPOrHTTPSURL(args[0]) {
				return fmt.Errorf("invalid url %q: must be an http or https url", args[0])
			}

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			resp, err := global.NewProber().Head(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", resp.Status)
			fmt.Fprintln(cmd.OutOrStdout(), bouncer.Describe(resp))

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "Query parameter as key=value, may be repeated")

	return cmd
}

func parseParams(raw []string) (url.Values, error) {
	params := url.Values{}

	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q: expected key=value", p)
		}

		params.Add(key, value)
	}

	return params, nil
}
