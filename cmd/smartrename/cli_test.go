package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrename/internal/errors"
	"smartrename/internal/rename"
	"smartrename/pkg/testutils"
	"smartrename/pkg/types"
)

// runCli runs the command tree with an isolated config file and returns
// stdout and stderr with styling removed.
func runCli(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return testutils.StripANSI(stdout.String()), testutils.StripANSI(stderr.String()), err
}

func useMemFs(t *testing.T, dir string, names ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutils.CreateMemFiles(t, fs, dir, names...)
	rename.SetRenamerFactory(func() rename.Renamer { return rename.NewWithFs(fs) })
	t.Cleanup(rename.ResetRenamerFactory)
	return fs
}

func TestHelpListsCommands(t *testing.T) {
	out, _, err := runCli(t, "", "--help")
	require.NoError(t, err)
	for _, name := range []string{"scan", "classify", "preview", "rename", "tui", "gui", "watch", "config"} {
		assert.Contains(t, out, name)
	}
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := runCli(t, "", "classify", "a.JPG", "clip.mov", "notes.md", "Makefile")
	require.NoError(t, err)

	assert.Contains(t, out, "a.JPG\timage")
	assert.Contains(t, out, "clip.mov\tvideo")
	assert.Contains(t, out, "notes.md\tdocument")
	assert.Contains(t, out, "Makefile\tother")
}

func TestClassifyRequiresArgs(t *testing.T) {
	_, _, err := runCli(t, "", "classify")
	assert.Error(t, err)
}

func TestScanCommand(t *testing.T) {
	useMemFs(t, "/photos", "b.jpg", "a.jpg", "notes.txt")

	out, _, err := runCli(t, "", "scan", "/photos")
	require.NoError(t, err)
	assert.Contains(t, out, "3 files in /photos")
	assert.Less(t, strings.Index(out, "a.jpg"), strings.Index(out, "b.jpg"))
	assert.Contains(t, out, "document")
}

func TestScanMissingDirectory(t *testing.T) {
	useMemFs(t, "/photos")

	_, errOut, err := runCli(t, "", "scan", "/missing")
	require.Error(t, err)
	assert.Equal(t, errors.FileNotFound, errors.KindOf(err))
	assert.Contains(t, errOut, "directory not found")
	assert.Contains(t, errOut, "Check that the path exists")
}

func TestScanDetailedJSON(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	out, _, err := runCli(t, "", "scan", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"path"`)
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "text/plain")
}

func TestScanDetailed(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	out, _, err := runCli(t, "", "scan", dir, "--detailed")
	require.NoError(t, err)
	assert.Contains(t, out, "5 files in")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "image: 2")
}

func TestPreviewCommand(t *testing.T) {
	fs := useMemFs(t, "/photos", "b.jpg", "a.jpg", "notes.txt")

	out, _, err := runCli(t, "", "preview", "/photos", "-p", "trip_", "-s", "-t", "image")
	require.NoError(t, err)
	assert.Contains(t, out, "trip_001.jpg")
	assert.Contains(t, out, "trip_002.jpg")
	assert.NotContains(t, out, "notes.txt")

	// Nothing is renamed
	ok, err := afero.Exists(fs, "/photos/a.jpg")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreviewValidation(t *testing.T) {
	useMemFs(t, "/photos", "a.jpg")

	t.Run("empty prefix", func(t *testing.T) {
		_, errOut, err := runCli(t, "", "preview", "/photos")
		require.Error(t, err)
		assert.Equal(t, errors.EmptyPrefix, errors.ReasonOf(err))
		assert.Contains(t, errOut, "prefix must not be empty")
	})

	t.Run("no files of the selected type", func(t *testing.T) {
		_, _, err := runCli(t, "", "preview", "/photos", "-p", "x_", "-t", "video")
		require.Error(t, err)
		assert.Equal(t, errors.NoFiles, errors.ReasonOf(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := runCli(t, "", "preview", "/photos", "-p", "x_", "-t", "audio")
		assert.Error(t, err)
	})
}

func TestPreviewSavesPlan(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)
	planPath := filepath.Join(t.TempDir(), "plan.yaml")

	_, _, err := runCli(t, "", "preview", dir, "-p", "doc_", "-t", "document", "-o", planPath)
	require.NoError(t, err)

	pf, err := rename.LoadPlanFile(planPath)
	require.NoError(t, err)
	assert.Equal(t, dir, pf.Directory)
	assert.NotEmpty(t, pf.Session)
	require.Len(t, pf.Renames, 2)
	assert.Equal(t, "notes.txt", pf.Renames[0].Current)
	assert.Equal(t, "doc_notes.txt", pf.Renames[0].Proposed)
}

func TestPreviewTrimsPrefix(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)
	planPath := filepath.Join(t.TempDir(), "plan.yaml")

	out, _, err := runCli(t, "", "preview", dir, "-p", "  pic_ ", "-t", "video", "-o", planPath)
	require.NoError(t, err)
	assert.Contains(t, out, "pic_clip.mp4")

	pf, err := rename.LoadPlanFile(planPath)
	require.NoError(t, err)
	assert.Equal(t, "pic_", pf.Policy.Prefix)
	assert.Equal(t, "pic_clip.mp4", pf.Renames[0].Proposed)
}

func TestRenameCommand(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	out, _, err := runCli(t, "", "rename", dir, "-p", "img_", "-s", "-t", "image", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed 2 files")

	assert.Equal(t, []string{"clip.mp4", "img_001.jpg", "img_002.jpg", "notes.txt", "report.pdf"}, testutils.ListDir(t, dir))
}

func TestRenameConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithDefault(t, dir)

		out, _, err := runCli(t, "n\n", "rename", dir, "-p", "x_", "-t", "video")
		require.NoError(t, err)
		assert.Contains(t, out, "Rename cancelled")
		assert.Contains(t, testutils.ListDir(t, dir), "clip.mp4")
	})

	t.Run("accepted", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithDefault(t, dir)

		out, _, err := runCli(t, "y\n", "rename", dir, "-p", "x_", "-t", "video")
		require.NoError(t, err)
		assert.Contains(t, out, "Rename 1 files? [y/N]")
		assert.Contains(t, testutils.ListDir(t, dir), "x_clip.mp4")
	})
}

func TestRenameSubset(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	_, _, err := runCli(t, "", "rename", dir, "-p", "x_", "-t", "all", "--only", "a.jpg,notes.txt", "--exclude", "notes.txt", "--yes")
	require.NoError(t, err)

	files := testutils.ListDir(t, dir)
	assert.Contains(t, files, "x_a.jpg")
	assert.Contains(t, files, "b.jpg")
	assert.Contains(t, files, "notes.txt")
}

func TestRenameEmptySelection(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	_, _, err := runCli(t, "", "rename", dir, "-p", "x_", "--only", "missing.jpg", "--yes")
	require.Error(t, err)
	assert.Equal(t, errors.NoSelection, errors.ReasonOf(err))
	assert.Len(t, testutils.ListDir(t, dir), 5)
}

func TestRenamePerFileErrorsExitZero(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.jpg":   "a",
		"x_a.jpg": "taken",
	})

	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, rename.SavePlanFile(planPath, rename.PlanFile{
		Directory: dir,
		Renames:   []types.RenamePair{{Current: "a.jpg", Proposed: "x_a.jpg"}},
	}))

	out, _, err := runCli(t, "", "rename", "--plan", planPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed 0 files, 1 errors")

	content, err := os.ReadFile(filepath.Join(dir, "x_a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "taken", string(content))
}

func TestRenameFromPlanFile(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)
	planPath := filepath.Join(t.TempDir(), "plan.yaml")

	_, _, err := runCli(t, "", "preview", dir, "-p", "pic_", "-t", "image", "-o", planPath)
	require.NoError(t, err)

	// Drop the second entry the way a user would edit the file
	pf, err := rename.LoadPlanFile(planPath)
	require.NoError(t, err)
	pf.Renames = pf.Renames[:1]
	require.NoError(t, rename.SavePlanFile(planPath, *pf))

	out, _, err := runCli(t, "", "rename", "--plan", planPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed 1 files")

	files := testutils.ListDir(t, dir)
	assert.Contains(t, files, "pic_a.jpg")
	assert.Contains(t, files, "b.jpg")
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	run := func(args ...string) (string, error) {
		var stdout, stderr bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		err := cmd.Execute()
		return testutils.StripANSI(stdout.String() + stderr.String()), err
	}

	out, err := run("config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, strings.TrimSpace(out))

	_, err = run("config", "init")
	require.NoError(t, err)
	_, err = os.Stat(cfgPath)
	require.NoError(t, err)

	out, err = run("config", "init")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")

	_, err = run("config", "init", "--force")
	require.NoError(t, err)

	out, err = run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "digit_padding: \"3\"")
	assert.Contains(t, out, "confirm: true")
}

func TestInvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("settings:\n  log_level: chatty\n"), 0644))

	var stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "classify", "a.jpg"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, isReported(err))
	assert.Contains(t, stderr.String(), "invalid log level")
	assert.Contains(t, stderr.String(), "config init --force")
}

func TestConfigDefaultsApply(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
defaults:
  prefix: "cfg_"
  use_sequential: true
  start_number: 7
  digit_padding: 2
  types: [video]
`), 0644))

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "preview", dir})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "cfg_07.mp4")

	// Flags override the file
	stdout.Reset()
	cmd = NewRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "preview", dir, "--start", "1", "-p", "flag_"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "flag_01.mp4")
}

func TestPromptYesNo(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, promptYesNo(strings.NewReader("yes\n"), &out, "Go?"))
	assert.True(t, promptYesNo(strings.NewReader("Y"), &out, "Go?"))
	assert.False(t, promptYesNo(strings.NewReader("\n"), &out, "Go?"))
	assert.False(t, promptYesNo(strings.NewReader(""), &out, "Go?"))
	assert.Contains(t, out.String(), "Go? [y/N]")
}

func TestReportErrorHints(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", errors.NewValidationError(errors.NoFiles, "no files to rename"), "! no files to rename"},
		{"not found", errors.NewFileError("plan file not found", "/p.yaml", errors.FileNotFound, nil), "Check that the path exists"},
		{"access denied", errors.NewFileError("failed to read plan file", "/p.yaml", errors.FileAccessDenied, nil), "Check that you can read the path"},
		{"config", errors.Wrap(errors.NewConfigError("invalid log level", "settings.log_level", errors.InvalidConfig, nil), "invalid configuration"), "config init --force"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := reportError(&buf, tc.err)
			assert.True(t, isReported(err))
			assert.Equal(t, errors.KindOf(tc.err), errors.KindOf(err))
			assert.Contains(t, testutils.StripANSI(buf.String()), tc.want)
		})
	}
}
