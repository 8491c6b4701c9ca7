package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"smartrename/internal/rename"
	"smartrename/internal/watch"
	"smartrename/pkg/types"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		opts     planOptions
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Keep printing the rename preview as the directory changes",
		Long: `Print the rename preview and print it again whenever files are added,
removed or renamed. Nothing is renamed. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd, args)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			renamer := rename.CurrentRenamerFactory()
			renamer.SetConfig(cfg)

			out := cmd.OutOrStdout()
			previewer, err := watch.NewPreviewer(req, renamer, func(plan []types.RenamePair, err error) {
				fmt.Fprintln(out, mutedText(time.Now().Format("15:04:05")))
				if err != nil {
					fmt.Fprintln(out, warningText(err.Error()))
					return
				}
				printPlan(out, plan)
			}, watch.WithDebounce(debounce))
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(out, infoText(fmt.Sprintf("Watching %s (Ctrl+C to stop)", req.Directory)))
			if err := previewer.Start(); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			<-ctx.Done()
			previewer.Stop()
			fmt.Fprintln(out, infoText("Stopped watching"))
			return nil
		},
	}

	addPlanFlags(cmd, &opts)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait this long for changes to settle")

	return cmd
}
