//go:build linux

// Package sysinfo - Linux backend. Facts come from native syscalls where the
// kernel offers one, and from /proc and /sys pseudo-files otherwise.
package sysinfo

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/unix"
)

type linuxSource struct {
	meminfoPath string
	cpuinfoPath string
	productPath string
}

func newPlatformSource() Source {
	return &linuxSource{
		meminfoPath: "/proc/meminfo",
		cpuinfoPath: "/proc/cpuinfo",
		productPath: "/sys/class/dmi/id/product_name",
	}
}

func (s *linuxSource) Hostname() (string, error) {
	return os.Hostname()
}

func (s *linuxSource) ProductName() (string, error) {
	b, err := os.ReadFile(s.productPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *linuxSource) Kernel() (string, string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:]), nil
}

func (s *linuxSource) Uptime() (time.Duration, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	return time.Duration(info.Uptime) * time.Second, nil
}

// CPUModel prefers the CPUID brand string; /proc/cpuinfo covers architectures
// where CPUID reports nothing.
func (s *linuxSource) CPUModel() (string, error) {
	if name := strings.TrimSpace(cpuid.CPU.BrandName); name != "" {
		return name, nil
	}
	return cpuModelFromProc(s.cpuinfoPath)
}

func (s *linuxSource) Memory() (used, total uint64, err error) {
	values, err := readMeminfoFields(s.meminfoPath, "MemTotal:", "MemAvailable:")
	if err != nil {
		return 0, 0, err
	}
	total = values[0] * 1024
	available := values[1] * 1024
	if total > available {
		used = total - available
	}
	return used, total, nil
}

func (s *linuxSource) Swap() (used, total uint64, err error) {
	values, err := readMeminfoFields(s.meminfoPath, "SwapTotal:", "SwapFree:")
	if err != nil {
		return 0, 0, err
	}
	total = values[0] * 1024
	free := values[1] * 1024
	if total > free {
		used = total - free
	}
	return used, total, nil
}

func (s *linuxSource) DiskUsage(path string) (used, total uint64, err error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, err
	}
	total = st.Blocks * uint64(st.Frsize)
	free := st.Bfree * uint64(st.Frsize)
	return total - free, total, nil
}

func (s *linuxSource) LocalIP() (string, error) {
	return localIPFromInterfaces()
}

// readMeminfoFields returns the kB values of the named meminfo fields, in the
// order given. Fields that are absent or unparsable stay zero.
func readMeminfoFields(path string, fields ...string) ([]uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := make([]uint64, len(fields))
	for _, line := range strings.Split(string(b), "\n") {
		for i, field := range fields {
			if !strings.HasPrefix(line, field) {
				continue
			}
			parts := strings.Fields(line)
			if len(parts) < 2 {
				continue
			}
			if v, err := strconv.ParseUint(parts[1], 10, 64); err == nil {
				values[i] = v
			}
		}
	}
	return values, nil
}

func cpuModelFromProc(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(b), "\n") {
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, value, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(value), nil
		}
	}
	return "", errors.New("model name not present in cpuinfo")
}
