package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartrename/internal/rename"
)

// NewPreviewCmd creates the preview command
func NewPreviewCmd() *cobra.Command {
	var (
		opts   planOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview [directory]",
		Short: "Show the renames that would be applied",
		Long: `Plan new names for the matching files without touching them.
Use --output to save the plan; edit it and pass it to "rename --plan".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd, args)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			renamer := rename.CurrentRenamerFactory()
			renamer.SetConfig(cfg)
			plan, err := renamer.Preview(req)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			out := cmd.OutOrStdout()
			printSummary(out, req.Directory, req.Policy, req.Categories, len(plan))
			printPlan(out, plan)

			if output != "" {
				pf := rename.PlanFile{
					Directory: req.Directory,
					Policy:    req.Policy,
					Renames:   plan,
				}
				if p, ok := renamer.(*rename.Planner); ok {
					pf.Session = p.Session()
				}
				if err := rename.SavePlanFile(output, pf); err != nil {
					return reportError(cmd.ErrOrStderr(), err)
				}
				fmt.Fprintln(out, successText(fmt.Sprintf("Plan saved to %s", output)))
			}
			return nil
		},
	}

	addPlanFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the plan as YAML")

	return cmd
}
