// Package main provides the gfetch command-line tool: host facts rendered
// beside colored ASCII art in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gfetch/ascii"
	"gfetch/render"
	"gfetch/sysinfo"
)

const version = "0.2.0"

const usage = `gfetch ` + version + `

USAGE:
    gfetch [OPTIONS]

OPTIONS (optional):
    --config <FILE>     path to text file containing ascii art
    --spacing <N>       spaces before ascii art (0-255, default=3)
    --color <ANSI>      (e.g. 36, 1;36, 38;5;205)
    --debug             log collection failures to stderr
    -h, --help          print help
    -v, --version       print version`

func main() {
	args := os.Args[1:]

	if text, ok := earlyExit(args); ok {
		fmt.Println(text)
		return
	}

	osName, ansiColor := sysinfo.ReadOSRelease(sysinfo.OSReleasePaths...)

	opts := parseOptions(args, options{spacing: 3, color: ansiColor})

	level := slog.LevelError
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	colorCode := render.Color(opts.color)
	art := render.Decorate(ascii.Lines(ascii.Load(opts.artPath)), colorCode, render.ResetCode, opts.spacing)

	collector := &sysinfo.Collector{
		Source:    sysinfo.NewSource(),
		OSName:    osName,
		ColorCode: colorCode,
		Log:       logger,
	}

	render.Fprint(os.Stdout, render.Compose(art, collector.Collect(), opts.spacing))
}

// earlyExit returns the help or version text when the arguments request one,
// short-circuiting collection and rendering. Help takes precedence over
// version wherever the two appear.
func earlyExit(args []string) (string, bool) {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return usage, true
		}
	}
	for _, arg := range args {
		if arg == "-v" || arg == "--version" {
			return "gfetch " + version, true
		}
	}
	return "", false
}

type options struct {
	artPath string
	spacing int
	color   string
	debug   bool
}

// parseOptions walks the argument list by hand: unknown flags and flags
// missing their value are ignored, and a bad --spacing keeps the value it
// had. The tool always produces output.
func parseOptions(args []string, opts options) options {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				i++
				opts.artPath = args[i]
			}
		case "--spacing":
			if i+1 < len(args) {
				i++
				if n, err := strconv.ParseUint(args[i], 10, 8); err == nil {
					opts.spacing = int(n)
				}
			}
		case "--color":
			if i+1 < len(args) {
				i++
				opts.color = args[i]
			}
		case "--debug":
			opts.debug = true
		}
	}
	return opts
}
