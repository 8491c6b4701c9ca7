package main

import (
	"errors"

	"github.com/spf13/cobra"

	"smartrename/internal/gui"
)

// NewGUICmd creates the gui command
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return reportError(cmd.ErrOrStderr(), errors.New("this build has no GUI support (built with nogui)"))
			}
			path, err := configPath()
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			return gui.StartGUI(cfg, path)
		},
	}
}
