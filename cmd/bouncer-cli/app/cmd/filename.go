package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

type filenameOptions struct {
	os      string
	alias   string
	version string
}

func newFilenameCmd() *cobra.Command {
	opts := &filenameOptions{}

	cmd := &cobra.Command{
		Use:   "filename",
		Short: "Print the expected artifact filename",
		Long: `Print the filename the bouncer is expected to redirect to for an OS, alias and version.

Aliases containing "aurora" or "nightly" use the developer build naming.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := bouncer.ExpectedFilename(bouncer.Platform(opts.os), opts.alias, opts.version)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.os, "os", "", "Operating system: win, osx or linux (required)")
	cmd.Flags().StringVar(&opts.alias, "alias", "", "Release alias, e.g. firefox-latest (required)")
	cmd.Flags().StringVar(&opts.version, "version", "", "Product version (required)")

	_ = cmd.MarkFlagRequired("os")
	_ = cmd.MarkFlagRequired("alias")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}
