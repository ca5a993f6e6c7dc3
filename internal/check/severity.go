// Package check implements the status evaluation engine for the interface probe.
//
// The evaluator is a pure function of operator expectations and observed
// interface facts. Findings accumulate into four severity buckets; the
// reporter picks the winning bucket and maps it to a Nagios exit code.
package check

// Severity is a Nagios plugin status. The numeric value doubles as the
// process exit code expected by monitoring frameworks.
type Severity int

// Nagios plugin states, ordered by exit code.
const (
	StateOK Severity = iota
	StateWarning
	StateCritical
	StateUnknown
)

// String returns the conventional Nagios label for the severity.
func (s Severity) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	case StateUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the severity.
func (s Severity) ExitCode() int {
	if s < StateOK || s > StateUnknown {
		return int(StateUnknown)
	}
	return int(s)
}
