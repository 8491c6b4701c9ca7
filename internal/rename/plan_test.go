package rename

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrename/pkg/types"
)

func TestPlanSequential(t *testing.T) {
	policy := types.NamingPolicy{Prefix: "img_", UseSequential: true, StartNumber: 1, DigitPadding: 3}

	plan := Plan([]string{"a.jpg", "b.jpg", "c.jpg"}, policy)

	assert.Equal(t, []types.RenamePair{
		{Current: "a.jpg", Proposed: "img_001.jpg"},
		{Current: "b.jpg", Proposed: "img_002.jpg"},
		{Current: "c.jpg", Proposed: "img_003.jpg"},
	}, plan)
}

func TestPlanPrefixOnly(t *testing.T) {
	plan := Plan([]string{"x.txt", "y.txt", "README", ".bashrc"}, types.NamingPolicy{Prefix: "p"})

	assert.Equal(t, []types.RenamePair{
		{Current: "x.txt", Proposed: "px.txt"},
		{Current: "y.txt", Proposed: "py.txt"},
		{Current: "README", Proposed: "pREADME"},
		{Current: ".bashrc", Proposed: "p.bashrc"},
	}, plan)
}

func TestPlanNumbering(t *testing.T) {
	tests := []struct {
		name   string
		policy types.NamingPolicy
		want   string
	}{
		{"start offset", types.NamingPolicy{Prefix: "s", UseSequential: true, StartNumber: 41, DigitPadding: 3}, "s041.png"},
		{"wider than padding", types.NamingPolicy{Prefix: "s", UseSequential: true, StartNumber: 12345, DigitPadding: 2}, "s12345.png"},
		{"zero padding falls back", types.NamingPolicy{Prefix: "s", UseSequential: true, StartNumber: 1, DigitPadding: 0}, "s001.png"},
		{"negative start falls back", types.NamingPolicy{Prefix: "s", UseSequential: true, StartNumber: -4, DigitPadding: 1}, "s1.png"},
		{"keeps only last suffix", types.NamingPolicy{Prefix: "s", UseSequential: true, StartNumber: 1, DigitPadding: 1}, "s1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan([]string{"shot.raw.png"}, tt.policy)
			require.Len(t, plan, 1)
			assert.Equal(t, tt.want, plan[0].Proposed)
		})
	}
}

func TestPlanDeterministic(t *testing.T) {
	files := []string{"a.jpg", "b.mov", "c", "d.tar.gz", "e.JPG"}
	policy := types.NamingPolicy{Prefix: "v_", UseSequential: true, StartNumber: 7, DigitPadding: 2}

	assert.Equal(t, Plan(files, policy), Plan(files, policy))
}

func TestPlanUniqueness(t *testing.T) {
	files := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		files = append(files, fmt.Sprintf("f%03d.dat", i))
	}

	for _, policy := range []types.NamingPolicy{
		{Prefix: "x", UseSequential: true, StartNumber: 1, DigitPadding: 1},
		{Prefix: "x"},
	} {
		seen := map[string]bool{}
		for _, pair := range Plan(files, policy) {
			assert.False(t, seen[pair.Proposed], "duplicate %s", pair.Proposed)
			seen[pair.Proposed] = true
		}
		assert.Len(t, seen, len(files))
	}
}

func TestPlanEmpty(t *testing.T) {
	plan := Plan(nil, types.DefaultPolicy())
	assert.NotNil(t, plan)
	assert.Empty(t, plan)
}

func TestResolve(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "p.txt", Resolve("p.txt", used))

	used["p.txt"] = true
	assert.Equal(t, "p(1).txt", Resolve("p.txt", used))

	used["p(1).txt"] = true
	used["p(2).txt"] = true
	assert.Equal(t, "p(3).txt", Resolve("p.txt", used))
	assert.Len(t, used, 3, "Resolve must not claim names")

	used["Makefile"] = true
	assert.Equal(t, "Makefile(1)", Resolve("Makefile", used))
}

func TestResolveManyCollisions(t *testing.T) {
	used := map[string]bool{"n.txt": true}
	for i := 1; i <= 5000; i++ {
		used[fmt.Sprintf("n(%d).txt", i)] = true
	}
	assert.Equal(t, "n(5001).txt", Resolve("n.txt", used))
}

func TestSelectExclude(t *testing.T) {
	plan := Plan([]string{"a.jpg", "b.jpg", "c.jpg"}, types.NamingPolicy{Prefix: "p_"})

	selected := Select(plan, []string{"c.jpg", "a.jpg", "missing.jpg"})
	assert.Equal(t, []types.RenamePair{
		{Current: "a.jpg", Proposed: "p_a.jpg"},
		{Current: "c.jpg", Proposed: "p_c.jpg"},
	}, selected)

	kept := Exclude(plan, []string{"b.jpg"})
	assert.Equal(t, selected, kept)

	assert.Empty(t, Select(plan, nil))
	assert.Len(t, Exclude(plan, nil), 3)
}
