package types

import "fmt"

// RenamePair is one planned rename inside the bound directory.
type RenamePair struct {
	Current  string `yaml:"current" json:"current"`
	Proposed string `yaml:"proposed" json:"proposed"`
}

// IsIdentity reports whether the rename would leave the name unchanged.
func (p RenamePair) IsIdentity() bool {
	return p.Current == p.Proposed
}

func (p RenamePair) String() string {
	return fmt.Sprintf("%s -> %s", p.Current, p.Proposed)
}

// Outcome aggregates the result of an execution pass. Identity pairs count
// as neither success nor error.
type Outcome struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
}

// HasErrors reports whether any rename failed.
func (o Outcome) HasErrors() bool {
	return o.Errors > 0
}

func (o Outcome) String() string {
	return fmt.Sprintf("%d renamed, %d errors", o.Success, o.Errors)
}
