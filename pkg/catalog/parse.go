package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidDistance is returned when a display string does not hold a number with a unit
var ErrInvalidDistance = errors.New("invalid distance")

// decimal is plain digits with at most one decimal separator
var decimal = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// ParseDistanceKm converts display text such as "6,4km", "2 km" or "850m" to kilometres.
// Both comma and dot are accepted as decimal separator.
func ParseDistanceKm(text string) (float64, error) {
	value, unit, err := splitUnit(text)
	if err != nil {
		return 0, err
	}
	if unit == "m" {
		return value / 1000, nil
	}
	return value, nil
}

// ParseElevationM converts display text such as "157m" to metres.
func ParseElevationM(text string) (float64, error) {
	value, unit, err := splitUnit(text)
	if err != nil {
		return 0, err
	}
	if unit == "km" {
		return value * 1000, nil
	}
	return value, nil
}

// splitUnit separates the numeric part of a display string from its km/m suffix.
// A bare number is returned with an empty unit.
func splitUnit(text string) (float64, string, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	unit := ""
	switch {
	case strings.HasSuffix(s, "km"):
		unit = "km"
	case strings.HasSuffix(s, "m"):
		unit = "m"
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, unit))

	if s == "" {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}
	if strings.Count(s, ",") > 1 || (strings.Contains(s, ",") && strings.Contains(s, ".")) {
		return 0, "", fmt.Errorf("%w: ambiguous separators in %q", ErrInvalidDistance, text)
	}

	if strings.HasPrefix(s, "-") {
		return 0, "", fmt.Errorf("%w: negative value %q", ErrInvalidDistance, text)
	}
	if !decimal.MatchString(s) {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}

	value, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}
	return value, unit, nil
}
