package types

import (
	"strconv"
	"strings"
)

const (
	// DefaultStartNumber is the first sequence value when none (or an invalid one) is given
	DefaultStartNumber = 1
	// DefaultDigitPadding is the minimum width of the sequence number
	DefaultDigitPadding = 3
)

// NamingPolicy controls how new names are built.
type NamingPolicy struct {
	Prefix        string `yaml:"prefix" json:"prefix"`
	UseSequential bool   `yaml:"use_sequential" json:"use_sequential"`
	StartNumber   int    `yaml:"start_number" json:"start_number"`
	DigitPadding  int    `yaml:"digit_padding" json:"digit_padding"`
}

// DefaultPolicy returns a policy with the documented numbering defaults and no prefix.
func DefaultPolicy() NamingPolicy {
	return NamingPolicy{
		StartNumber:  DefaultStartNumber,
		DigitPadding: DefaultDigitPadding,
	}
}

// Normalize replaces out-of-range numbering values with the defaults:
// a negative start becomes 1 and a padding below 1 becomes 3.
func (p NamingPolicy) Normalize() NamingPolicy {
	if p.StartNumber < 0 {
		p.StartNumber = DefaultStartNumber
	}
	if p.DigitPadding < 1 {
		p.DigitPadding = DefaultDigitPadding
	}
	return p
}

// ParseStartNumber converts user input to a start number. Anything that is not
// a non-negative integer falls back to DefaultStartNumber.
func ParseStartNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return DefaultStartNumber
	}
	return n
}

// ParseDigitPadding converts user input to a digit padding. Anything that is not
// an integer >= 1 falls back to DefaultDigitPadding.
func ParseDigitPadding(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultDigitPadding
	}
	return n
}
