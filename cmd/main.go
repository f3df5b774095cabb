package main

import (
	"fmt"
	"os"

	"github.com/sebicas/site/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:           "sebicas",
		Short:         "Serve, export or preview sebicas.com",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.bind(root)

	root.AddCommand(
		newServeCmd(&opts),
		newExportCmd(&opts),
		newPreviewCmd(&opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.configFile != "" {
		return config.FromFile(opts.configFile)
	}
	return config.Get()
}
