package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"smartrename/internal/classify"
)

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>...",
		Short: "Show the category of each file name",
		Long: `Print the category each name falls into. Only the extension is used,
so the files do not need to exist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := classify.New(cfg.ExtraExtensions())
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", filepath.Base(name), classifier.Classify(name))
			}
			return nil
		},
	}
}
