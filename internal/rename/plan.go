package rename

import (
	"fmt"

	"smartrename/pkg/types"
)

// Plan computes new names for files, in the order given, under policy.
// Sequence numbers follow that order starting at policy.StartNumber.
// Proposed names in the result are pairwise distinct; later files that would
// reuse a claimed name get a "(N)" counter before their suffix.
func Plan(files []string, policy types.NamingPolicy) []types.RenamePair {
	policy = policy.Normalize()
	plan := make([]types.RenamePair, 0, len(files))
	used := make(map[string]bool, len(files))

	for i, file := range files {
		name := Resolve(baseName(file, i, policy), used)
		used[name] = true
		plan = append(plan, types.RenamePair{Current: file, Proposed: name})
	}
	return plan
}

// baseName builds the unresolved new name for the i-th file.
func baseName(file string, i int, policy types.NamingPolicy) string {
	stem, suffix := types.SplitName(file)
	if policy.UseSequential {
		return fmt.Sprintf("%s%0*d%s", policy.Prefix, policy.DigitPadding, policy.StartNumber+i, suffix)
	}
	return policy.Prefix + stem + suffix
}

// Resolve returns base if it is not in used, otherwise the first of
// "stem(1)suffix", "stem(2)suffix", ... that is free. The probe has no upper
// bound. Resolve does not modify used.
func Resolve(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	stem, suffix := types.SplitName(base)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s(%d)%s", stem, counter, suffix)
		if !used[candidate] {
			return candidate
		}
	}
}

// Select returns the pairs whose current name is in names, in plan order.
func Select(plan []types.RenamePair, names []string) []types.RenamePair {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	selected := []types.RenamePair{}
	for _, pair := range plan {
		if wanted[pair.Current] {
			selected = append(selected, pair)
		}
	}
	return selected
}

// Exclude returns the pairs whose current name is not in names, in plan order.
func Exclude(plan []types.RenamePair, names []string) []types.RenamePair {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	kept := []types.RenamePair{}
	for _, pair := range plan {
		if !skip[pair.Current] {
			kept = append(kept, pair)
		}
	}
	return kept
}
