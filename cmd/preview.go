package main

import (
	"time"

	"github.com/sebicas/site/internal/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the home page in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return preview.Run(conf.FooterYear(time.Now()))
		},
	}
}
