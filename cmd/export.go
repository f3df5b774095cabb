package main

import (
	"fmt"
	"time"

	"github.com/sebicas/site/pkg/content"
	"github.com/sebicas/site/web/export"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		dir  string
		live bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = conf.Export.Dir
			}
			if err := content.Validate(); err != nil {
				return err
			}

			res, err := export.Run(cmd.Context(), export.Options{
				Dir:  dir,
				Year: conf.FooterYear(time.Now()),
				Live: live,
			})
			if err != nil {
				return err
			}

			for _, f := range res.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f.Path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", res, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory, overrides export.dir")
	cmd.Flags().BoolVar(&live, "live", false, "Keep the live navbar script in exported pages")
	return cmd
}
