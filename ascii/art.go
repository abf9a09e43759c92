// Package ascii provides the built-in logo and loading of user-supplied art
// files.
package ascii

import (
	"os"
	"strings"
)

// Default is the built-in logo, used when no art file is given.
const Default = `        #####
       #######
       ##O#O##
       #######
     ###########
    #############
   ###############
   ################
  #################
  #################
#####################
#####################
  #################`

// Load returns the contents of path trimmed of surrounding whitespace.
// An empty or unreadable path falls back to Default; loading never fails.
func Load(path string) string {
	if path == "" {
		return Default
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Default
	}
	return strings.TrimSpace(string(b))
}

// Lines splits an art block into its display lines. An empty block has no
// lines.
func Lines(art string) []string {
	if art == "" {
		return nil
	}
	return strings.Split(art, "\n")
}
