package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	var (
		opts     planOptions
		only     []string
		exclude  []string
		planPath string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename the matching files",
		Long: `Plan new names for the matching files, ask for confirmation and rename them.
Use --only or --exclude to rename part of the plan, or --plan to apply a
plan saved by "preview --output".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renamer := rename.CurrentRenamerFactory()
			renamer.SetConfig(cfg)

			var (
				plan   []types.RenamePair
				dir    string
				policy types.NamingPolicy
				cats   types.CategorySet
			)
			if planPath != "" {
				pf, err := rename.LoadPlanFile(planPath)
				if err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				renamer.Scan(pf.Directory)
				if err := renamer.LastScanError(); err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				plan, dir, policy = pf.Renames, pf.Directory, pf.Policy
				cats = types.AllCategorySet()
			} else {
				req, err := opts.request(cmd, args)
				if err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				plan, err = renamer.Preview(req)
				if err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				dir, policy, cats = req.Directory, req.Policy, req.Categories
			}

			if names := splitList(only); len(names) > 0 {
				plan = rename.Select(plan, names)
			}
			if names := splitList(exclude); len(names) > 0 {
				plan = rename.Exclude(plan, names)
			}
			if err := rename.ValidateSelection(plan); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			out := cmd.OutOrStdout()
			printSummary(out, dir, policy, cats, len(plan))
			printPlan(out, plan)

			if !yes && cfg.Settings.Confirm {
				if !confirm(cmd, fmt.Sprintf("Rename %d files?", len(plan))) {
					fmt.Fprintln(out, warningText("Rename cancelled"))
					return nil
				}
			}

			outcome := renamer.Execute(plan)
			if outcome.HasErrors() {
				fmt.Fprintln(out, warningText(fmt.Sprintf("Renamed %d files, %d errors (see log)", outcome.Success, outcome.Errors)))
			} else {
				fmt.Fprintln(out, successText(fmt.Sprintf("Renamed %d files", outcome.Success)))
			}
			return nil
		},
	}

	addPlanFlags(cmd, &opts)
	cmd.Flags().StringSliceVar(&only, "only", nil, "rename only these current names")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "leave these current names alone")
	cmd.Flags().StringVar(&planPath, "plan", "", "apply a plan file saved by preview --output")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
