package sysinfo

import (
	"bufio"
	"os"
	"strings"
)

// Defaults used when no os-release file is readable or a key is absent.
const (
	DefaultOSName    = "Unknown OS"
	DefaultANSIColor = "0;37"
)

// OSReleasePaths lists the standard os-release locations, tried in order.
var OSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// ReadOSRelease extracts the distribution's PRETTY_NAME and ANSI_COLOR from
// the first readable path. Surrounding quotes are stripped; the scan stops
// once both keys are found. Missing files or keys yield the defaults.
func ReadOSRelease(paths ...string) (name, ansiColor string) {
	name, ansiColor = DefaultOSName, DefaultANSIColor

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}

		foundName, foundColor := false, false
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if !foundName && strings.HasPrefix(line, "PRETTY_NAME=") {
				name = strings.Trim(line[len("PRETTY_NAME="):], `"`)
				foundName = true
			} else if !foundColor && strings.HasPrefix(line, "ANSI_COLOR=") {
				ansiColor = strings.Trim(line[len("ANSI_COLOR="):], `"`)
				foundColor = true
			}
			if foundName && foundColor {
				break
			}
		}
		f.Close()
		return name, ansiColor
	}
	return name, ansiColor
}
