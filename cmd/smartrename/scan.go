package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"smartrename/internal/analysis"
	"smartrename/internal/classify"
	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var (
		detailed bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the files that can be renamed",
		Long: `List the regular files directly inside a directory with their category.
Use --detailed to also show sizes and detected content types.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			if detailed || jsonOut {
				return scanDetailed(cmd, dir, jsonOut)
			}
			return scanNames(cmd, dir)
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "show size and content type")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	return cmd
}

func scanNames(cmd *cobra.Command, dir string) error {
	renamer := rename.CurrentRenamerFactory()
	renamer.SetConfig(cfg)

	files := renamer.Scan(dir)
	if err := renamer.LastScanError(); err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	out := cmd.OutOrStdout()
	classifier := classify.New(cfg.ExtraExtensions())
	fmt.Fprintln(out, primaryText(fmt.Sprintf("%d files in %s", len(files), dir)))
	for _, name := range files {
		fmt.Fprintf(out, "  %-10s %s\n", infoText(classifier.Classify(name).String()), name)
	}
	return nil
}

func scanDetailed(cmd *cobra.Command, dir string, jsonOut bool) error {
	engine := analysis.NewWithConfig(cfg)
	results, err := engine.InspectDirectory(dir)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	var total int64
	fmt.Fprintln(out, primaryText(fmt.Sprintf("%d files in %s", len(results), dir)))
	for _, info := range results {
		total += info.Size
		fmt.Fprintf(out, "  %-30s %-10s %-24s %s\n",
			filepath.Base(info.Path), info.Category, info.ContentType, info.HumanSize())
	}

	summary := analysis.Summary(results)
	fmt.Fprintln(out)
	for _, c := range types.AllCategories {
		if summary[c] > 0 {
			fmt.Fprintf(out, "  %s: %d\n", emphasisText(c.String()), summary[c])
		}
	}
	fmt.Fprintf(out, "  %s: %s\n", emphasisText("total"), humanize.Bytes(uint64(total)))
	return nil
}
