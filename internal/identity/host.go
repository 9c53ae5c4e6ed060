package identity

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/bowerhall/name/internal/logger"
)

// FallbackHost is reported when the hostname cannot be read.
const FallbackHost = "localhost"

var (
	hostnameFunc = os.Hostname
	hostInfoFunc = host.InfoWithContext
)

// Hostname reads the local host identifier. It never fails.
func Hostname() string {
	name, err := hostnameFunc()
	if err != nil || name == "" {
		logger.Warn("error reading hostname", "error", err, "fallback", FallbackHost)
		return FallbackHost
	}

	return name
}

// HostDetails returns platform attributes for the startup log, or nil when
// the host cannot be inspected.
func HostDetails(ctx context.Context) []any {
	info, err := hostInfoFunc(ctx)
	if err != nil || info == nil {
		logger.Debug("host info unavailable", "error", err)
		return nil
	}

	return []any{
		"os", info.OS,
		"platform", info.Platform,
		"platform_version", info.PlatformVersion,
		"kernel", info.KernelVersion,
		"arch", info.KernelArch,
		"virtualization", info.VirtualizationSystem,
		"uptime", (time.Duration(info.Uptime) * time.Second).String(),
	}
}
