package sysinfo

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gfetch/render"
)

var errUnavailable = errors.New("unavailable")

// fakeSource returns fixed facts, or fails everything when broken is set.
type fakeSource struct {
	broken bool
}

func (f fakeSource) Hostname() (string, error) {
	if f.broken {
		return "", errUnavailable
	}
	return "web01.example.com", nil
}

func (f fakeSource) ProductName() (string, error) {
	if f.broken {
		return "", errUnavailable
	}
	return "ThinkPad X1", nil
}

func (f fakeSource) Kernel() (string, string, error) {
	if f.broken {
		return "", "", errUnavailable
	}
	return "Linux", "6.8.0-41-generic", nil
}

func (f fakeSource) Uptime() (time.Duration, error) {
	if f.broken {
		return 0, errUnavailable
	}
	return 26*time.Hour + 5*time.Minute, nil
}

func (f fakeSource) CPUModel() (string, error) {
	if f.broken {
		return "", errUnavailable
	}
	return "AMD Ryzen 7 5800X", nil
}

func (f fakeSource) Memory() (uint64, uint64, error) {
	if f.broken {
		return 0, 0, errUnavailable
	}
	return 6 * 1 << 30, 16 * 1 << 30, nil
}

func (f fakeSource) Swap() (uint64, uint64, error) {
	if f.broken {
		return 0, 0, errUnavailable
	}
	return 0, 2 * 1 << 30, nil
}

func (f fakeSource) DiskUsage(path string) (uint64, uint64, error) {
	if f.broken {
		return 0, 0, errUnavailable
	}
	return 120 * 1 << 30, 500 * 1 << 30, nil
}

func (f fakeSource) LocalIP() (string, error) {
	if f.broken {
		return "", errUnavailable
	}
	return "192.168.1.20", nil
}

func fakeEnv(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func newTestCollector(src Source, env map[string]string) *Collector {
	return &Collector{
		Source:    src,
		OSName:    "Debian GNU/Linux 12 (bookworm)",
		ColorCode: "\x1b[1;31m",
		Getenv:    fakeEnv(env),
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestCollect(t *testing.T) {
	c := newTestCollector(fakeSource{}, map[string]string{
		"USER":                "ada",
		"TERM":                "xterm-256color",
		"SHELL":               "/bin/zsh",
		"XDG_CURRENT_DESKTOP": "sway",
	})

	got := c.Collect()
	want := []string{
		"ada@web01@ThinkPad X1",
		"Uptime: 26 hours, 5 mins",
		"\x1b[1;31m" + strings.Repeat("-", len("ada@web01@ThinkPad X1")) + render.ResetCode,
		"OS: Debian GNU/Linux 12 (bookworm)",
		"CPU: AMD Ryzen 7 5800X",
		"KERNEL: Linux 6.8.0-41-generic",
		"Disk: 120GB/500GB used (/)",
		"Memory: 6.00 GiB/16.00 GiB",
		"Swap: 0 B/2.00 GiB",
		"Terminal: xterm-256color",
		"Shell: /bin/zsh",
		"WM: sway",
		"Local IP: 192.168.1.20",
	}

	if len(got) != len(want) {
		t.Fatalf("Collect returned %d lines; want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestCollectAllSourcesFail(t *testing.T) {
	c := newTestCollector(fakeSource{broken: true}, nil)

	got := c.Collect()
	want := []string{
		"unknown@unknown@unknown",
		"Uptime: unknown",
		"\x1b[1;31m" + strings.Repeat("-", len("unknown@unknown@unknown")) + render.ResetCode,
		"OS: Debian GNU/Linux 12 (bookworm)",
		"CPU: Unknown CPU",
		"KERNEL: unknown",
		"Disk usage: unknown",
		"Memory: 0 B/0 B",
		"Swap: 0 B/0 B",
		"Terminal: unknown",
		"Shell: unknown",
		"WM: unknown",
		"Local IP: unknown",
	}

	if len(got) != len(want) {
		t.Fatalf("Collect returned %d lines; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestCollectNeverPanicsOrShrinks(t *testing.T) {
	// Fallbacks keep the block shape stable whatever the sources do.
	healthy := newTestCollector(fakeSource{}, nil).Collect()
	broken := newTestCollector(fakeSource{broken: true}, nil).Collect()
	if len(healthy) != len(broken) {
		t.Fatalf("line count changed on failure: %d vs %d", len(healthy), len(broken))
	}
}

func TestSeparatorMatchesIdentityWidth(t *testing.T) {
	c := newTestCollector(fakeSource{}, map[string]string{"USER": "bob"})
	lines := c.Collect()

	identity := lines[0]
	sep := lines[2]
	sep = strings.TrimPrefix(sep, c.ColorCode)
	sep = strings.TrimSuffix(sep, render.ResetCode)
	if len(sep) != len(identity) || strings.Trim(sep, "-") != "" {
		t.Fatalf("separator %q does not match identity %q", sep, identity)
	}
}
