package printer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSecondsField parses a record time value in the stored `<int> seconds`
// form.
func ParseSecondsField(v string) (int64, error) {
	s, ok := strings.CutSuffix(v, " seconds")
	if !ok {
		return 0, fmt.Errorf("%q is not a seconds value", v)
	}

	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a seconds value: %w", v, err)
	}

	return secs, nil
}

// FormatSeconds returns a human-readable form of a seconds amount.
// Examples: "45 seconds", "2 minutes", "3 hours", "1 day".
func FormatSeconds(secs int64) string {
	if secs < 0 {
		return fmt.Sprintf("%d seconds", secs)
	}

	// Seconds
	if secs < 60 {
		if secs == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", secs)
	}

	// Minutes
	if secs < 60*60 {
		minutes := secs / 60
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	// Hours
	if secs < 24*60*60 {
		hours := secs / (60 * 60)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}

	// Days
	days := secs / (24 * 60 * 60)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// humanizeSecondsField renders a stored `<int> seconds` value human readable,
// falling back to the raw value when it doesn't parse.
func humanizeSecondsField(v string) string {
	secs, err := ParseSecondsField(v)
	if err != nil {
		return v
	}
	return FormatSeconds(secs)
}
