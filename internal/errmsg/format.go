// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Mix operations
	OpMixCreate Op = "save mix"
	OpMixUpdate Op = "update mix"
	OpMixDelete Op = "delete mix"
	OpMixLoad   Op = "load mixes"
	OpMixOpen   Op = "open mix"

	// Catalog operations
	OpCatalogLoad Op = "load flavors"
	OpCatalogSeed Op = "import flavor catalog"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the affected item.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
