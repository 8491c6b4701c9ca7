package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"smartrename/internal/errors"
	"smartrename/pkg/types"
)

var (
	primaryStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D08770"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1"))
	emphasisStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	boxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7B61FF")).
			Padding(0, 1)
)

func primaryText(s string) string  { return primaryStyle.Render(s) }
func successText(s string) string  { return successStyle.Render("✓ " + s) }
func errorText(s string) string    { return errorStyle.Render("✗ " + s) }
func warningText(s string) string  { return warningStyle.Render("! " + s) }
func infoText(s string) string     { return infoStyle.Render(s) }
func emphasisText(s string) string { return emphasisStyle.Render(s) }
func mutedText(s string) string    { return mutedStyle.Render(s) }

func banner() string {
	return primaryText(`
 ┌─┐┌┬┐┌─┐┬─┐┌┬┐┬─┐┌─┐┌┐┌┌─┐┌┬┐┌─┐
 └─┐│││├─┤├┬┘ │ ├┬┘├┤ │││├─┤│││├┤
 └─┘┴ ┴┴ ┴┴└─ ┴ ┴└─└─┘┘└┘┴ ┴┴ ┴└─┘`)
}

// printPlan writes one line per pair with the names aligned
func printPlan(w io.Writer, plan []types.RenamePair) {
	width := 0
	for _, pair := range plan {
		width = max(width, len(pair.Current))
	}
	for _, pair := range plan {
		line := fmt.Sprintf("  %-*s %s %s", width, pair.Current, infoText("->"), pair.Proposed)
		if pair.IsIdentity() {
			line += mutedText(" (unchanged)")
		}
		fmt.Fprintln(w, line)
	}
}

// printSummary writes a boxed summary of a request
func printSummary(w io.Writer, dir string, policy types.NamingPolicy, categories types.CategorySet, count int) {
	numbering := "off"
	if policy.UseSequential {
		numbering = fmt.Sprintf("from %d, %d digits", policy.StartNumber, policy.DigitPadding)
	}
	content := fmt.Sprintf("Folder:    %s\nPrefix:    %q\nNumbering: %s\nTypes:     %s\nFiles:     %d",
		dir, policy.Prefix, numbering, categories, count)
	fmt.Fprintln(w, boxStyle.Render(content))
}

// reportedError marks an error that has already been shown to the user
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reportError prints err in a form suited to its kind and returns it for the exit status
func reportError(w io.Writer, err error) error {
	switch {
	case errors.KindOf(err) == errors.ValidationFailed:
		fmt.Fprintln(w, warningText(err.Error()))
	case errors.IsFileNotFound(err):
		fmt.Fprintln(w, errorText(err.Error()))
		fmt.Fprintln(w, mutedText("  Check that the path exists."))
	case errors.IsFileAccessDenied(err):
		fmt.Fprintln(w, errorText(err.Error()))
		fmt.Fprintln(w, mutedText("  Check that you can read the path."))
	case errors.IsInvalidConfig(err):
		fmt.Fprintln(w, errorText(err.Error()))
		fmt.Fprintln(w, mutedText("  Fix the file or recreate it with: smartrename config init --force"))
	default:
		fmt.Fprintln(w, errorText(err.Error()))
	}
	return reportedError{err}
}

// isReported reports whether err was already printed by reportError
func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
