package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// hasGum reports whether the gum prompt helper is installed
func hasGum() bool {
	_, err := exec.LookPath("gum")
	return err == nil
}

// runGumConfirm asks with `gum confirm`; gum exits non-zero on "no"
func runGumConfirm(prompt string) bool {
	cmd := exec.Command("gum", "confirm", prompt)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run() == nil
}

// confirm asks a yes/no question. gum is used only when reading from the
// terminal; otherwise a line is read from the command's input.
func confirm(cmd *cobra.Command, prompt string) bool {
	if cmd.InOrStdin() == os.Stdin && hasGum() {
		return runGumConfirm(prompt)
	}
	return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
}

func promptYesNo(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
