// Package sysfs reads per-interface attributes from the kernel's network
// class directory (/sys/class/net/<interface>/<attribute>).
package sysfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultRoot is the kernel's per-interface attribute directory.
const DefaultRoot = "/sys/class/net"

// RootEnvVar overrides the attribute root directory (useful for tests).
const RootEnvVar = "CHECK_INTERFACE_SYSFS_ROOT"

// ErrNotPresent reports that an attribute file does not exist or cannot be
// read. This is a normal observation for absent or partially-initialized
// interfaces, not a failure.
var ErrNotPresent = errors.New("attribute not present")

// Reader reads interface attributes below a fixed root directory.
type Reader struct {
	Root string
}

// NewReader returns a Reader rooted at DefaultRoot, or at the directory
// named by CHECK_INTERFACE_SYSFS_ROOT if set.
func NewReader() *Reader {
	root := DefaultRoot
	if override := os.Getenv(RootEnvVar); override != "" {
		root = override
	}
	return &Reader{Root: root}
}

// Attr returns the whitespace-trimmed content of an attribute file.
// Any read failure is reported as ErrNotPresent.
//
//nolint:gosec // G304: path components are an interface name and a fixed attribute name
func (r *Reader) Attr(iface, attr string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.Root, iface, attr))
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s", ErrNotPresent, iface, attr)
	}
	return strings.TrimSpace(string(data)), nil
}

// IntAttr reads an attribute and parses it as a base-10 integer. An absent
// attribute is reported as ErrNotPresent; an attribute that exists but does
// not parse is a data-format error the caller must treat as fatal.
func (r *Reader) IntAttr(iface, attr string) (int, error) {
	raw, err := r.Attr(iface, attr)
	if err != nil {
		return -1, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1, fmt.Errorf("cannot convert reported %s %q of interface %s to an integer", attr, raw, iface)
	}

	return value, nil
}
