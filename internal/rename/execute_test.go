package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrename/pkg/types"
)

func planAll(t *testing.T, p *Planner, policy types.NamingPolicy) []types.RenamePair {
	t.Helper()
	p.Scan(testDir)
	p.ApplyTypeFilter(types.AllCategorySet())
	plan, err := p.GeneratePlan(policy)
	require.NoError(t, err)
	return plan
}

func TestExecute(t *testing.T) {
	p, fs := newTestPlanner(t, "b.jpg", "a.jpg", "c.jpg")
	plan := planAll(t, p, types.NamingPolicy{Prefix: "img_", UseSequential: true, StartNumber: 1, DigitPadding: 3})

	outcome := p.Execute(plan)

	assert.Equal(t, types.Outcome{Success: 3}, outcome)
	assert.False(t, outcome.HasErrors())
	for _, name := range []string{"img_001.jpg", "img_002.jpg", "img_003.jpg"} {
		assert.True(t, exists(t, fs, name), name)
	}
	assert.False(t, exists(t, fs, "a.jpg"))

	data, err := afero.ReadFile(fs, filepath.Join(testDir, "img_001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", string(data))
}

func TestExecuteSubset(t *testing.T) {
	p, fs := newTestPlanner(t, "a.txt", "b.txt", "c.txt")
	plan := planAll(t, p, types.NamingPolicy{Prefix: "p_"})

	outcome := p.Execute(Exclude(plan, []string{"b.txt"}))

	assert.Equal(t, types.Outcome{Success: 2}, outcome)
	assert.True(t, exists(t, fs, "p_a.txt"))
	assert.True(t, exists(t, fs, "b.txt"))
	assert.True(t, exists(t, fs, "p_c.txt"))
}

func TestExecuteIdentitySkip(t *testing.T) {
	p, fs := newTestPlanner(t, "a.txt")
	p.Scan(testDir)

	outcome := p.Execute([]types.RenamePair{{Current: "a.txt", Proposed: "a.txt"}})

	assert.Equal(t, types.Outcome{}, outcome)
	assert.True(t, exists(t, fs, "a.txt"))
	assert.Equal(t, Scanned, p.State())
}

func TestExecutePartialFailure(t *testing.T) {
	p, fs := newTestPlanner(t, "a.txt", "b.txt", "c.txt")
	plan := planAll(t, p, types.NamingPolicy{Prefix: "p_"})

	require.NoError(t, fs.Remove(filepath.Join(testDir, "b.txt")))
	outcome := p.Execute(plan)

	assert.Equal(t, types.Outcome{Success: 2, Errors: 1}, outcome)
	assert.True(t, outcome.HasErrors())
	assert.True(t, exists(t, fs, "p_a.txt"))
	assert.True(t, exists(t, fs, "p_c.txt"))
	assert.False(t, exists(t, fs, "p_b.txt"))
}

func TestExecuteNoClobber(t *testing.T) {
	p, fs := newTestPlanner(t, "a.txt", "b.txt")
	p.Scan(testDir)

	outcome := p.Execute([]types.RenamePair{
		{Current: "a.txt", Proposed: "b.txt"},
	})

	assert.Equal(t, types.Outcome{Errors: 1}, outcome)
	assert.True(t, exists(t, fs, "a.txt"))
	assert.True(t, exists(t, fs, "b.txt"))
}

func TestExecuteRejectsPaths(t *testing.T) {
	p, fs := newTestPlanner(t, "a.txt")
	p.Scan(testDir)

	outcome := p.Execute([]types.RenamePair{
		{Current: "a.txt", Proposed: "../escaped.txt"},
		{Current: "a.txt", Proposed: "sub/a.txt"},
		{Current: "a.txt", Proposed: ".."},
	})

	assert.Equal(t, types.Outcome{Errors: 3}, outcome)
	assert.True(t, exists(t, fs, "a.txt"))
}

func TestExecuteWithoutDirectory(t *testing.T) {
	p, _ := newTestPlanner(t, "a.txt")

	outcome := p.Execute([]types.RenamePair{{Current: "a.txt", Proposed: "b.txt"}})

	assert.Equal(t, types.Outcome{}, outcome)
	assert.Equal(t, Unscanned, p.State())
}

func TestExecuteCaseOnlyRename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0644))

	p := New()
	p.Scan(dir)
	outcome := p.Execute([]types.RenamePair{{Current: "photo.jpg", Proposed: "PHOTO.jpg"}})

	assert.Equal(t, types.Outcome{Success: 1}, outcome)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "PHOTO.jpg", entries[0].Name())
}
