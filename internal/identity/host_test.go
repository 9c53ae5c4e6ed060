package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func stubHostname(t *testing.T, name string, err error) {
	t.Helper()
	orig := hostnameFunc
	hostnameFunc = func() (string, error) { return name, err }
	t.Cleanup(func() { hostnameFunc = orig })
}

func stubHostInfo(t *testing.T, info *host.InfoStat, err error) {
	t.Helper()
	orig := hostInfoFunc
	hostInfoFunc = func(context.Context) (*host.InfoStat, error) { return info, err }
	t.Cleanup(func() { hostInfoFunc = orig })
}

func TestHostname(t *testing.T) {
	stubHostname(t, "worker-1", nil)

	if got := Hostname(); got != "worker-1" {
		t.Errorf("expected worker-1, got %q", got)
	}
}

func TestHostnameFallbackOnError(t *testing.T) {
	stubHostname(t, "", errors.New("uname failed"))

	if got := Hostname(); got != FallbackHost {
		t.Errorf("expected %q, got %q", FallbackHost, got)
	}
}

func TestHostnameFallbackOnEmpty(t *testing.T) {
	stubHostname(t, "", nil)

	if got := Hostname(); got != FallbackHost {
		t.Errorf("expected %q, got %q", FallbackHost, got)
	}
}

func TestHostnameReal(t *testing.T) {
	if got := Hostname(); got == "" {
		t.Error("expected non-empty hostname")
	}
}

func TestHostDetails(t *testing.T) {
	stubHostInfo(t, &host.InfoStat{
		OS:            "linux",
		Platform:      "debian",
		KernelVersion: "6.1.0",
		KernelArch:    "x86_64",
		Uptime:        90,
	}, nil)

	attrs := HostDetails(context.Background())

	got := map[string]any{}
	for i := 0; i+1 < len(attrs); i += 2 {
		got[attrs[i].(string)] = attrs[i+1]
	}
	want := map[string]any{
		"os":       "linux",
		"platform": "debian",
		"kernel":   "6.1.0",
		"arch":     "x86_64",
		"uptime":   "1m30s",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("expected %s=%v, got %v", k, v, got[k])
		}
	}
}

func TestHostDetailsUnavailable(t *testing.T) {
	stubHostInfo(t, nil, errors.New("no /proc"))

	if attrs := HostDetails(context.Background()); attrs != nil {
		t.Errorf("expected nil attrs, got %v", attrs)
	}
}
