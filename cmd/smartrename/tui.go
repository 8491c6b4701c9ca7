package main

import (
	"github.com/spf13/cobra"

	"smartrename/internal/tui"
)

// NewTUICmd creates the tui command
func NewTUICmd() *cobra.Command {
	var (
		opts     planOptions
		watching bool
	)

	cmd := &cobra.Command{
		Use:   "tui [directory]",
		Short: "Review and apply renames interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd, args)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			return tui.Run(req, cfg, watching)
		},
	}

	addPlanFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&watching, "watch", "w", true, "mark the preview stale when the directory changes")

	return cmd
}
