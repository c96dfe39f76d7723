// Package validation holds value checks shared by configuration layers.
package validation

import (
	"fmt"
	"regexp"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value looks like #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NamedColor is a color value together with the config key it came from.
type NamedColor struct {
	Field string
	Value string
}

// ValidateHexColors returns one message per color that is not #RRGGBB.
func ValidateHexColors(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, fmt.Sprintf("%s.%s must be a hex color like #RRGGBB (got %q)", prefix, c.Field, c.Value))
		}
	}
	return errs
}
