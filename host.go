package dynaudnorm

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/denisbrodbeck/machineid"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostInfo describes the machine a report was collected on. Only OS is
// guaranteed; the other fields are left empty when the platform cannot
// provide them.
type HostInfo struct {
	OS              string `json:"os" yaml:"os"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	KernelArch      string `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty"`
	TotalRAMMB      uint64 `json:"total_ram_mb,omitempty" yaml:"total_ram_mb,omitempty"`
	MachineID       string `json:"machine_id,omitempty" yaml:"machine_id,omitempty"`
}

func collectHost(ctx context.Context, cfg ReportConfig) HostInfo {
	ctx, cancel := context.WithTimeout(ctx, cfg.HostTimeout)
	defer cancel()

	info := HostInfo{OS: runtime.GOOS}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = hi.Platform
		info.PlatformVersion = hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
		info.KernelArch = hi.KernelArch
	} else {
		cfg.Logger.Debug("host info unavailable", slog.Any("error", err))
	}

	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalRAMMB = vmem.Total / 1024 / 1024
	} else {
		cfg.Logger.Debug("memory info unavailable", slog.Any("error", err))
	}

	if !cfg.SkipMachineID {
		if id, err := protectedMachineID(cfg.AppID); err == nil {
			info.MachineID = id
		} else {
			cfg.Logger.Debug("machine id unavailable", slog.Any("error", err))
		}
	}

	return info
}

// protectedMachineID returns the app-scoped machine ID, hashed again so
// the raw value never leaves the process.
func protectedMachineID(appID string) (string, error) {
	mid, err := machineid.ProtectedID(appID)
	if err != nil {
		return "", fmt.Errorf("collect machine id: %w", err)
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256([]byte(mid))), nil
}
