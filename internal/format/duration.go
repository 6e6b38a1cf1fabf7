package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumberString inserts thousands-separating commas into a decimal
// digit string for display, preserving a leading sign. Non-decimal input
// (hex/octal/binary renderings, or anything with a base prefix) is returned
// unchanged, since grouping digits in those bases would be misleading.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	digits := s
	if neg {
		digits = s[1:]
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return s
		}
	}

	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
