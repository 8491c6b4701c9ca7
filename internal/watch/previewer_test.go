package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrename/internal/errors"
	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

type previewRecorder struct {
	mu    sync.Mutex
	plans chan []types.RenamePair
	errs  []error
}

func (r *previewRecorder) record(plan []types.RenamePair, err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	r.plans <- plan
}

func (r *previewRecorder) next(t *testing.T) []types.RenamePair {
	t.Helper()
	select {
	case plan := <-r.plans:
		return plan
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for preview")
	}
	return nil
}

func TestPreviewerRefreshesOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), nil, 0644))

	rec := &previewRecorder{plans: make(chan []types.RenamePair, 8)}
	req := rename.PlanRequest{
		Directory:  dir,
		Policy:     types.NamingPolicy{Prefix: "img_", UseSequential: true, StartNumber: 1, DigitPadding: 2},
		Categories: types.NewCategorySet(types.Image),
	}

	p, err := NewPreviewer(req, rename.New(), rec.record, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, p.Start())
	defer p.Stop()

	assert.Equal(t, []types.RenamePair{{Current: "a.jpg", Proposed: "img_01.jpg"}}, rec.next(t))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), nil, 0644))
	assert.Equal(t, []types.RenamePair{
		{Current: "a.jpg", Proposed: "img_01.jpg"},
		{Current: "b.jpg", Proposed: "img_02.jpg"},
	}, rec.next(t))

	status := p.Status()
	assert.True(t, status.Running)
	assert.Equal(t, dir, status.Directory)
	assert.GreaterOrEqual(t, status.Previews, 2)
	assert.False(t, status.LastActivity.IsZero())
}

func TestPreviewerReportsValidation(t *testing.T) {
	dir := t.TempDir()
	rec := &previewRecorder{plans: make(chan []types.RenamePair, 8)}
	req := rename.PlanRequest{
		Directory:  dir,
		Policy:     types.NamingPolicy{Prefix: "x"},
		Categories: types.AllCategorySet(),
	}

	p, err := NewPreviewer(req, nil, rec.record)
	require.NoError(t, err)
	require.NoError(t, p.Start())

	assert.Empty(t, rec.next(t))
	p.Stop()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.errs)
	assert.Equal(t, errors.NoFiles, errors.ReasonOf(rec.errs[0]))
	assert.False(t, p.Status().Running)
}
