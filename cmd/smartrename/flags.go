package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

// planOptions are the naming flags shared by preview, rename, tui and watch
type planOptions struct {
	prefix     string
	sequential bool
	start      int
	padding    int
	types      string
	match      string
}

func addPlanFlags(cmd *cobra.Command, opts *planOptions) {
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "prefix for every new name")
	cmd.Flags().BoolVarP(&opts.sequential, "sequential", "s", false, "replace names with sequence numbers")
	cmd.Flags().IntVar(&opts.start, "start", types.DefaultStartNumber, "first sequence number")
	cmd.Flags().IntVar(&opts.padding, "padding", types.DefaultDigitPadding, "minimum digits of the sequence number")
	cmd.Flags().StringVarP(&opts.types, "types", "t", "", "file types to rename: image,video,document,other or all")
	cmd.Flags().StringVarP(&opts.match, "match", "m", "", "only rename files whose names match this glob")
}

// request builds a plan request from the config defaults, overridden by the
// flags the user actually set.
func (o *planOptions) request(cmd *cobra.Command, args []string) (rename.PlanRequest, error) {
	policy := cfg.Policy()
	flags := cmd.Flags()
	if flags.Changed("prefix") {
		policy.Prefix = o.prefix
	}
	policy.Prefix = strings.TrimSpace(policy.Prefix)
	if flags.Changed("sequential") {
		policy.UseSequential = o.sequential
	}
	if flags.Changed("start") {
		policy.StartNumber = o.start
	}
	if flags.Changed("padding") {
		policy.DigitPadding = o.padding
	}

	categories, err := cfg.Categories()
	if err != nil {
		return rename.PlanRequest{}, err
	}
	if flags.Changed("types") {
		categories, err = types.ParseCategories(strings.Split(o.types, ","))
		if err != nil {
			return rename.PlanRequest{}, err
		}
	}

	match := cfg.Defaults.Match
	if flags.Changed("match") {
		match = o.match
	}

	dir, err := targetDirectory(args)
	if err != nil {
		return rename.PlanRequest{}, err
	}

	return rename.PlanRequest{
		Directory:  dir,
		Policy:     policy.Normalize(),
		Categories: categories,
		Match:      match,
	}, nil
}

// targetDirectory picks the first argument, then the configured default, then
// the working directory.
func targetDirectory(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	} else if cfg != nil && cfg.Directories.Default != "" {
		dir = cfg.Directories.Default
	}
	return filepath.Abs(dir)
}

// splitList splits a comma separated flag value, dropping blanks
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
