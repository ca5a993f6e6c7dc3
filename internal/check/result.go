package check

// Result collects evaluation findings into one ordered message list per
// severity. Buckets are never merged; the reporter selects exactly one of
// them. Keeping full lists instead of a single worst-so-far severity
// preserves message order and multiplicity when several independent checks
// report together.
type Result struct {
	Unknown  []string
	Critical []string
	Warning  []string
	OK       []string
}

func (r *Result) unknown(msg string)  { r.Unknown = append(r.Unknown, msg) }
func (r *Result) critical(msg string) { r.Critical = append(r.Critical, msg) }
func (r *Result) warning(msg string)  { r.Warning = append(r.Warning, msg) }
func (r *Result) ok(msg string)       { r.OK = append(r.OK, msg) }

// degraded files a finding as CRITICAL or WARNING depending on the
// operator's escalation preference.
func (r *Result) degraded(escalate bool, msg string) {
	if escalate {
		r.critical(msg)
	} else {
		r.warning(msg)
	}
}
