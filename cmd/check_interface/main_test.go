package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostprobe/check-interface/internal/sysfs"
)

// fakeSysfs points the probe at a temp directory and materializes attribute
// files for one interface.
func fakeSysfs(t *testing.T, attrs map[string]string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv(sysfs.RootEnvVar, root)

	if attrs == nil {
		return
	}

	dir := filepath.Join(root, "testif0")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	for attr, value := range attrs {
		if err := os.WriteFile(filepath.Join(dir, attr), []byte(value+"\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", attr, err)
		}
	}
}

func TestRun(t *testing.T) {
	healthy := map[string]string{
		"operstate": "up",
		"duplex":    "full",
		"mtu":       "1500",
		"speed":     "1000",
	}
	degraded := map[string]string{
		"operstate": "up",
		"duplex":    "full",
		"mtu":       "1500",
		"speed":     "100",
	}

	tests := []struct {
		name     string
		args     []string
		attrs    map[string]string
		exitCode int
		stdout   string
	}{
		{
			name:     "healthy interface",
			args:     []string{"-i", "testif0", "-m", "1500"},
			attrs:    healthy,
			exitCode: 0,
			stdout:   "Interface is up, Negotiated interface speed is 1000 MBit/s, Negotiated duplex mode is full, MTU size is 1500",
		},
		{
			name:     "speed below expectation",
			args:     []string{"-i", "testif0"},
			attrs:    degraded,
			exitCode: 1,
			stdout:   "Negotiated interface speed (100 MBit/s) is below requested interface speed (1000 MBit/s)",
		},
		{
			name:     "speed below expectation escalated",
			args:     []string{"-i", "testif0", "-C"},
			attrs:    degraded,
			exitCode: 2,
			stdout:   "Negotiated interface speed (100 MBit/s) is below requested interface speed (1000 MBit/s)",
		},
		{
			name:     "interface not present",
			args:     []string{"-i", "testif0"},
			attrs:    nil,
			exitCode: 2,
			stdout:   "Interface is not present",
		},
		{
			name: "interface down",
			args: []string{"-i", "testif0"},
			attrs: map[string]string{
				"operstate": "down",
				"duplex":    "unknown",
				"mtu":       "1500",
				"speed":     "-1",
			},
			exitCode: 2,
			stdout:   "Interface is DOWN",
		},
		{
			name: "unexpected operstate",
			args: []string{"-i", "testif0"},
			attrs: map[string]string{
				"operstate": "dormant",
				"duplex":    "full",
				"mtu":       "1500",
				"speed":     "1000",
			},
			exitCode: 3,
			stdout:   "Interface is dormant",
		},
		{
			name: "malformed mtu attribute",
			args: []string{"-i", "testif0"},
			attrs: map[string]string{
				"operstate": "up",
				"duplex":    "full",
				"mtu":       "jumbo",
				"speed":     "1000",
			},
			exitCode: 3,
			stdout:   `cannot convert reported mtu "jumbo" of interface testif0 to an integer`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeSysfs(t, tt.attrs)

			var stdout, stderr bytes.Buffer
			exitCode := run(tt.args, &stdout, &stderr)

			if exitCode != tt.exitCode {
				t.Errorf("run() exit code = %d, want %d", exitCode, tt.exitCode)
			}
			if got := strings.TrimRight(stdout.String(), "\n"); got != tt.stdout {
				t.Errorf("run() stdout = %q, want %q", got, tt.stdout)
			}
		})
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{name: "missing interface", args: []string{}, stderr: "mandatory"},
		{name: "malformed mtu flag", args: []string{"-i", "eth0", "-m", "jumbo"}, stderr: "Error:"},
		{name: "invalid address check", args: []string{"-i", "eth0", "-a", "ipx"}, stderr: "invalid address check"},
		{name: "invalid link state", args: []string{"-i", "eth0", "-s", "1000:full:extra"}, stderr: "invalid link state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := run(tt.args, &stdout, &stderr)

			if exitCode != 3 {
				t.Errorf("run() exit code = %d, want 3", exitCode)
			}
			if stdout.Len() != 0 {
				t.Errorf("run() stdout = %q, want empty", stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("run() stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"--help"}, &stdout, &stderr)

	if exitCode != 0 {
		t.Errorf("run() exit code = %d, want 0", exitCode)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("run() stdout = %q, want usage text", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"--version"}, &stdout, &stderr)

	if exitCode != 0 {
		t.Errorf("run() exit code = %d, want 0", exitCode)
	}
	if !strings.Contains(stdout.String(), version) {
		t.Errorf("run() stdout = %q, want version string", stdout.String())
	}
}
