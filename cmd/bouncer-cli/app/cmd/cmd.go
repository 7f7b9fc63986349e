package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/bouncer-probe/cmd/bouncer-cli/app/cmd/global"
)

func NewBouncerCliCommand() *cobra.Command {
	bouncerCliCmd := &cobra.Command{
		Use:   "bouncer-cli",
		Short: "Bouncer redirect checks",
		Long: `bouncer-cli verifies that the download bouncer redirects release aliases
to the expected Firefox artifacts on the CDN.

Examples:
  # Print the expected filename of a build
  bouncer-cli filename --os win --alias firefox-latest --version 63.0

  # Probe a bouncer URL and print the final response
  bouncer-cli probe https://download.mozilla.org --param product=firefox-latest --param os=osx

  # Check every platform and alias of a matrix
  bouncer-cli check --config matrix.yaml
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			global.ResolveEnv()
		},
	}

	global.AddFlags(bouncerCliCmd)
	bouncerCliCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	bouncerCliCmd.AddCommand(newFilenameCmd())
	bouncerCliCmd.AddCommand(newProbeCmd())
	bouncerCliCmd.AddCommand(newCheckCmd())
	bouncerCliCmd.AddCommand(newVersionCmd())

	return bouncerCliCmd
}

func Execute() {
	err := NewBouncerCliCommand().Execute()
	if err != nil {
		fmt.Println(err.Error())
		klog.Flush()
		os.Exit(1)
	}
}
