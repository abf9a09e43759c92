// Package sysinfo - formatting utilities
package sysinfo

import "fmt"

// FormatBytes converts a byte count to a human-readable string with binary
// units.
//
// Example: FormatBytes(1536) returns "1.50 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
