//go:build !linux

// Package sysinfo - portable backend for platforms without a native one,
// built on gopsutil.
package sysinfo

import (
	"errors"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type portableSource struct{}

func newPlatformSource() Source {
	return portableSource{}
}

func (portableSource) Hostname() (string, error) {
	return os.Hostname()
}

func (portableSource) ProductName() (string, error) {
	// gopsutil exposes no hardware model; the collector substitutes its
	// placeholder.
	return "", errors.New("product name unavailable on this platform")
}

func (portableSource) Kernel() (string, string, error) {
	info, err := host.Info()
	if err != nil {
		return "", "", err
	}
	return info.OS, info.KernelVersion, nil
}

func (portableSource) Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func (portableSource) CPUModel() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", errors.New("no cpu info reported")
	}
	return infos[0].ModelName, nil
}

func (portableSource) Memory() (used, total uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Used, vm.Total, nil
}

func (portableSource) Swap() (used, total uint64, err error) {
	sm, err := mem.SwapMemory()
	if err != nil {
		return 0, 0, err
	}
	return sm.Used, sm.Total, nil
}

func (portableSource) DiskUsage(path string) (used, total uint64, err error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, 0, err
	}
	return u.Used, u.Total, nil
}

func (portableSource) LocalIP() (string, error) {
	return localIPFromInterfaces()
}
