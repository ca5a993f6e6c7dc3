// Package main implements check_interface, a Nagios-compatible probe for the
// operational health of a single network interface.
//
// The probe reads the interface's sysfs attributes and assigned addresses,
// evaluates them against operator expectations, prints one status line on
// stdout and exits with the Nagios code of the winning severity
// (OK=0, WARNING=1, CRITICAL=2, UNKNOWN=3).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hostprobe/check-interface/internal/check"
	"github.com/hostprobe/check-interface/internal/config"
	"github.com/hostprobe/check-interface/internal/logging"
	"github.com/hostprobe/check-interface/internal/network"
	"github.com/hostprobe/check-interface/internal/sysfs"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one probe cycle and returns the process exit code.
// Configuration errors go to stderr; everything the monitoring framework
// should see goes to stdout as a single line.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := config.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return check.StateUnknown.ExitCode()
	}

	if opts.ShowHelp {
		printUsage(stdout)
		return check.StateOK.ExitCode()
	}
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "check_interface version %s\n", version)
		return check.StateOK.ExitCode()
	}

	logger := logging.New(opts.Verbose)

	facts, err := network.Collect(sysfs.NewReader(), opts.Expectation.Interface)
	if err != nil {
		// Data-format errors become the status line so the monitoring
		// framework can display them.
		fmt.Fprintln(stdout, err)
		return check.StateUnknown.ExitCode()
	}

	logger.Debug().
		Str("interface", opts.Expectation.Interface).
		Bool("present", facts.Present).
		Str("operstate", facts.OperState).
		Int("speed", facts.Speed).
		Str("duplex", facts.Duplex).
		Int("mtu", facts.MTU).
		Int("addresses", len(facts.Addresses)).
		Msg("collected interface facts")

	result := check.Evaluate(&opts.Expectation, facts)
	line, severity := check.Report(result)

	logger.Debug().
		Str("severity", severity.String()).
		Int("exit_code", severity.ExitCode()).
		Msg("evaluation complete")

	fmt.Fprintln(stdout, line)
	return severity.ExitCode()
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `check_interface - Nagios plugin checking the health of a network interface

Usage:
  check_interface -i <interface> [flags]

Flags:
  -i, --interface <if>        Interface to check. Mandatory.

  -m, --mtu <mtu>             Expected MTU value for the interface.
                              Disabled unless given.

  -s, --state <state>         Expected state as <speed>[:<mode>], where <speed> is the
                              expected negotiated link speed in MBit/s and <mode> is the
                              negotiated duplex mode, one of "half" or "full".
                              Default: 1000:full

  -C, --critical              Report CRITICAL instead of WARNING if the negotiated speed
                              or duplex mode is not the expected one or the MTU size
                              does not match.

  -a, --address-assigned <f>  Require at least one non-link-local address of family <f>,
                              one of "ip" (any family), "ipv4" or "ipv6".
                              Disabled unless given.

      --config <file>         YAML file with default expectations, applied below any
                              explicitly set flags.

  -v, --verbose               Log diagnostics to stderr.

      --version               Print version and exit.

  -h, --help                  This text.

Exit codes:
  0  OK
  1  WARNING
  2  CRITICAL
  3  UNKNOWN

Examples:
  # Expect a 1 GBit/s full-duplex link (the default)
  check_interface -i eth0

  # Expect a 10 GBit/s link with jumbo frames, escalate mismatches
  check_interface -i eth2 -s 10000:full -m 9000 -C

  # Additionally require a routable IPv4 address
  check_interface -i eth0 -a ipv4
`)
}
