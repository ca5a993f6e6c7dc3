package check

import "strings"

// messageSeparator joins the messages of the winning bucket into the single
// status line consumed by the monitoring framework.
const messageSeparator = ", "

// Report selects the reported severity by strict precedence
// UNKNOWN > CRITICAL > WARNING > OK and returns the joined status line of
// the winning bucket. An entirely empty result should not happen given the
// evaluator's contract; it is reported as UNKNOWN.
func Report(result Result) (string, Severity) {
	switch {
	case len(result.Unknown) > 0:
		return strings.Join(result.Unknown, messageSeparator), StateUnknown
	case len(result.Critical) > 0:
		return strings.Join(result.Critical, messageSeparator), StateCritical
	case len(result.Warning) > 0:
		return strings.Join(result.Warning, messageSeparator), StateWarning
	case len(result.OK) > 0:
		return strings.Join(result.OK, messageSeparator), StateOK
	}
	return "No check results available", StateUnknown
}
