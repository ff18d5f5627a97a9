package naming

import (
	"fmt"
	"regexp"
)

var (
	resourceNameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	symbolRe       = regexp.MustCompile(`^[A-Z0-9]+$`)
)

// ValidateResourceName checks that name is an RFC1123 DNS label: lowercase
// alphanumerics and hyphens, 1-63 characters, alphanumeric at both ends.
func ValidateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 63 {
		return fmt.Errorf("name %q too long (max 63 characters)", name)
	}
	if !resourceNameRe.MatchString(name) {
		return fmt.Errorf("name %q must be a lowercase DNS label (alphanumerics and hyphens)", name)
	}
	return nil
}

// ValidateSymbol checks that symbol is an exchange trading symbol:
// uppercase alphanumerics, 1-20 characters (e.g., "BTCUSD").
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(symbol) > 20 {
		return fmt.Errorf("symbol %q too long (max 20 characters)", symbol)
	}
	if !symbolRe.MatchString(symbol) {
		return fmt.Errorf("symbol %q must contain only uppercase alphanumerics", symbol)
	}
	return nil
}
