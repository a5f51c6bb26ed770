package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result holds the outcome of a single account check.
type Result struct {
	Name    string   // e.g., "account: afnos86"
	Status  Status   // OK, FAIL or SKIP
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Skipped returns true if the check was recorded without running.
func (r Result) Skipped() bool {
	return r.Status == StatusSkip
}

// Detail returns the first detail line, or the error text when no detail
// was recorded. Used where a single reason string is needed.
func (r Result) Detail() string {
	if len(r.Details) > 0 {
		return r.Details[0]
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}
