package rename

// RenamerFactory is a function that creates a Renamer
// This allows for dependency injection in tests
type RenamerFactory func() Renamer

// DefaultRenamerFactory creates a planner on the real filesystem
var DefaultRenamerFactory RenamerFactory = func() Renamer {
	return New()
}

// CurrentRenamerFactory is the currently active factory
// This can be swapped in tests
var CurrentRenamerFactory = DefaultRenamerFactory

// SetRenamerFactory sets a custom renamer factory for dependency injection
func SetRenamerFactory(factory RenamerFactory) {
	CurrentRenamerFactory = factory
}

// ResetRenamerFactory resets to the default renamer factory
func ResetRenamerFactory() {
	CurrentRenamerFactory = DefaultRenamerFactory
}
