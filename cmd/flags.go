package main

import "github.com/spf13/cobra"

type globalOptions struct {
	configFile string
}

func (o *globalOptions) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "Path to a config file (json, yaml or toml). Defaults to ./config.* when present")
}
