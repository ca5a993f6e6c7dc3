// Package config builds the probe's expectation model from command-line
// flags and an optional YAML defaults file.
package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Duplex modes the kernel can negotiate.
const (
	DuplexHalf = "half"
	DuplexFull = "full"
)

// AddressCheck selects which address families the address-presence check
// considers.
type AddressCheck string

// Address check modes.
const (
	AddressNone AddressCheck = "none"
	AddressIPv4 AddressCheck = "ipv4"
	AddressIPv6 AddressCheck = "ipv6"
	AddressBoth AddressCheck = "both"
)

// Built-in expectation defaults.
const (
	DefaultSpeed     = 1000
	DefaultDuplex    = DuplexFull
	defaultLinkState = "1000:full"
)

// Expectation holds the operator-supplied thresholds for one probe run.
// It is immutable once Parse returns. MTU and Speed values of zero or below
// disable the corresponding check.
type Expectation struct {
	Interface    string
	MTU          int
	Speed        int
	Duplex       string
	Critical     bool
	AddressCheck AddressCheck
}

// Options is the fully parsed command line: the expectation model plus the
// flags that only affect process behavior.
type Options struct {
	Expectation Expectation
	Verbose     bool
	ShowHelp    bool
	ShowVersion bool
}

// Parse builds Options from command-line arguments. Precedence, lowest
// first: built-in defaults, the defaults file's defaults section, the
// defaults file's per-interface section, explicitly set flags.
//
// When help or version output is requested, Parse returns early without
// validating the remaining configuration.
func Parse(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("check_interface", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard) // errors and usage text are rendered by the caller
	fs.Usage = func() {}

	ifaceName := fs.StringP("interface", "i", "", "interface to check")
	mtu := fs.IntP("mtu", "m", 0, "expected MTU value for the interface")
	state := fs.StringP("state", "s", defaultLinkState, "expected link state as <speed>[:<mode>]")
	critical := fs.BoolP("critical", "C", false, "report CRITICAL instead of WARNING on mismatches")
	address := fs.StringP("address-assigned", "a", "", "require an assigned address (ip, ipv4 or ipv6)")
	configFile := fs.String("config", "", "YAML file with default expectations")
	verbose := fs.BoolP("verbose", "v", false, "log diagnostics to stderr")
	showVersion := fs.Bool("version", false, "print version and exit")
	showHelp := fs.BoolP("help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse command line: %w", err)
	}

	opts := &Options{
		Expectation: Expectation{
			Interface:    *ifaceName,
			Speed:        DefaultSpeed,
			Duplex:       DefaultDuplex,
			AddressCheck: AddressNone,
		},
		Verbose:     *verbose,
		ShowHelp:    *showHelp,
		ShowVersion: *showVersion,
	}

	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	if opts.Expectation.Interface == "" {
		return nil, fmt.Errorf("interface to check is mandatory")
	}

	if *configFile != "" {
		file, err := LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		if err := file.Apply(&opts.Expectation); err != nil {
			return nil, err
		}
	}

	// Explicitly set flags win over anything the defaults file provided.
	if fs.Changed("mtu") {
		opts.Expectation.MTU = *mtu
	}
	if fs.Changed("state") {
		speed, duplex, err := ParseLinkState(*state)
		if err != nil {
			return nil, err
		}
		opts.Expectation.Speed = speed
		opts.Expectation.Duplex = duplex
	}
	if fs.Changed("critical") {
		opts.Expectation.Critical = *critical
	}
	if fs.Changed("address-assigned") {
		mode, err := ParseAddressCheck(*address)
		if err != nil {
			return nil, err
		}
		opts.Expectation.AddressCheck = mode
	}

	return opts, nil
}

// ParseLinkState parses a <speed>[:<mode>] expectation. An empty speed
// before the colon keeps the default, so ":half" expects 1000 MBit/s at
// half duplex.
func ParseLinkState(state string) (int, string, error) {
	parts := strings.Split(state, ":")
	if len(parts) > 2 {
		return 0, "", fmt.Errorf("invalid link state %q", state)
	}

	speed := DefaultSpeed
	duplex := DefaultDuplex

	if len(parts) == 1 {
		value, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, "", fmt.Errorf("cannot convert link speed %q to an integer", parts[0])
		}
		return value, duplex, nil
	}

	if parts[0] != "" {
		value, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, "", fmt.Errorf("cannot convert link speed %q to an integer", parts[0])
		}
		speed = value
	}

	duplex = parts[1]
	if duplex != DuplexHalf && duplex != DuplexFull {
		return 0, "", fmt.Errorf("invalid duplex mode %q (use half or full)", duplex)
	}

	return speed, duplex, nil
}

// ParseAddressCheck maps the -a flag value to an AddressCheck mode.
// "ip" covers both families.
func ParseAddressCheck(value string) (AddressCheck, error) {
	switch value {
	case "ip":
		return AddressBoth, nil
	case "ipv4":
		return AddressIPv4, nil
	case "ipv6":
		return AddressIPv6, nil
	}
	return AddressNone, fmt.Errorf("invalid address check %q (use ip, ipv4 or ipv6)", value)
}
