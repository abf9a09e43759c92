// Package sysinfo gathers host facts for display. Every fact is collected
// independently; a fact whose source is missing or unreadable falls back to a
// fixed placeholder instead of failing the collection.
package sysinfo

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"gfetch/render"
)

const unknown = "unknown"

// rootPath is the mount point reported on the disk line.
const rootPath = "/"

// Source provides the raw host facts. Implementations are platform specific;
// each method is independently fallible and the Collector absorbs the errors.
type Source interface {
	// Hostname returns the machine's network name, possibly fully qualified.
	Hostname() (string, error)

	// ProductName returns the hardware product/model name.
	ProductName() (string, error)

	// Kernel returns the kernel's system name and release.
	Kernel() (sysname, release string, err error)

	// Uptime returns the time since boot.
	Uptime() (time.Duration, error)

	// CPUModel returns the processor brand string.
	CPUModel() (string, error)

	// Memory returns used and total physical memory in bytes.
	Memory() (used, total uint64, err error)

	// Swap returns used and total swap in bytes.
	Swap() (used, total uint64, err error)

	// DiskUsage returns used and total bytes for the filesystem at path.
	DiskUsage(path string) (used, total uint64, err error)

	// LocalIP returns the host's primary non-loopback IPv4 address.
	LocalIP() (string, error)
}

// NewSource returns the fact source for the current platform.
func NewSource() Source {
	return newPlatformSource()
}

// Collector assembles the ordered info block from a Source and the process
// environment.
type Collector struct {
	Source Source

	// OSName is the resolved distribution name, shown on the OS line.
	OSName string

	// ColorCode is the escape sequence used for the separator rule.
	ColorCode string

	// Getenv overrides os.Getenv, mainly for tests.
	Getenv func(string) string

	// Log receives per-fact failure details at debug level.
	Log *slog.Logger
}

// Collect gathers every fact and returns the display lines.
//
// Returns:
//   - The info block in its fixed order: identity, uptime, separator, OS,
//     CPU, kernel, disk, memory, swap, terminal, shell, window manager,
//     local IP
//
// Every line is present in every run; a fact whose source failed carries its
// placeholder value instead.
func (c *Collector) Collect() []string {
	identity := c.identity()
	return []string{
		identity,
		c.uptime(),
		c.separator(identity),
		"OS: " + c.OSName,
		"CPU: " + c.cpu(),
		c.kernel(),
		c.disk(),
		c.memory(),
		c.swap(),
		"Terminal: " + c.env("TERM", unknown),
		"Shell: " + c.env("SHELL", unknown),
		"WM: " + c.env("XDG_CURRENT_DESKTOP", unknown),
		c.localIP(),
	}
}

// identity returns the user@host@model line. The hostname is shortened to its
// first label.
func (c *Collector) identity() string {
	user := c.env("USER", unknown)

	host, err := c.Source.Hostname()
	if err != nil {
		c.debug("hostname", err)
		host = unknown
	} else {
		host, _, _ = strings.Cut(host, ".")
	}

	model, err := c.Source.ProductName()
	if err != nil {
		c.debug("product name", err)
		model = unknown
	}

	return user + "@" + host + "@" + model
}

// separator returns a colored dash rule matching the identity line's display
// width.
func (c *Collector) separator(identity string) string {
	return c.ColorCode + strings.Repeat("-", runewidth.StringWidth(identity)) + render.ResetCode
}

func (c *Collector) uptime() string {
	d, err := c.Source.Uptime()
	if err != nil {
		c.debug("uptime", err)
		return "Uptime: " + unknown
	}
	secs := int64(d.Seconds())
	return fmt.Sprintf("Uptime: %d hours, %d mins", secs/3600, secs%3600/60)
}

func (c *Collector) cpu() string {
	model, err := c.Source.CPUModel()
	if err != nil {
		c.debug("cpu model", err)
		return "Unknown CPU"
	}
	return model
}

func (c *Collector) kernel() string {
	sysname, release, err := c.Source.Kernel()
	if err != nil {
		c.debug("kernel", err)
		return "KERNEL: " + unknown
	}
	return fmt.Sprintf("KERNEL: %s %s", sysname, release)
}

func (c *Collector) disk() string {
	used, total, err := c.Source.DiskUsage(rootPath)
	if err != nil {
		c.debug("disk usage", err)
		return "Disk usage: " + unknown
	}
	const gib = 1 << 30
	return fmt.Sprintf("Disk: %dGB/%dGB used (%s)", used/gib, total/gib, rootPath)
}

func (c *Collector) memory() string {
	used, total, err := c.Source.Memory()
	if err != nil {
		c.debug("memory", err)
		used, total = 0, 0
	}
	return fmt.Sprintf("Memory: %s/%s", FormatBytes(used), FormatBytes(total))
}

func (c *Collector) swap() string {
	used, total, err := c.Source.Swap()
	if err != nil {
		c.debug("swap", err)
		used, total = 0, 0
	}
	return fmt.Sprintf("Swap: %s/%s", FormatBytes(used), FormatBytes(total))
}

func (c *Collector) localIP() string {
	ip, err := c.Source.LocalIP()
	if err != nil {
		c.debug("local ip", err)
		return "Local IP: " + unknown
	}
	return "Local IP: " + ip
}

func (c *Collector) env(key, fallback string) string {
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Collector) debug(fact string, err error) {
	log := c.Log
	if log == nil {
		log = slog.Default()
	}
	log.Debug("fact unavailable", "fact", fact, "error", err)
}

// localIPFromInterfaces returns the first non-loopback IPv4 address found on
// any interface. Shared by the platform sources.
func localIPFromInterfaces() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip4 := ipnet.IP.To4()
		if ip4 == nil || ip4.IsLoopback() {
			continue
		}
		return ip4.String(), nil
	}
	return "", errors.New("no non-loopback IPv4 address")
}
