// Package report renders the per-run summary sent to the operator.
// The emoji markers and line layout are the message format the recipient
// already watches for, so they are part of the contract here.
package report

import (
	"strings"
	"time"

	"github.com/fnosnas/koyeb-keepalive/pkg/check"
)

const timeLayout = "2006-01-02 15:04"

// The header clock is pinned to UTC+8 regardless of where the job runs.
var headerZone = time.FixedZone("UTC+8", 8*60*60)

// Line renders one account result.
func Line(r check.Result) string {
	switch r.Status {
	case check.StatusOK:
		return "✅ " + r.Name + " | token check passed"
	case check.StatusSkip:
		return "⚠️ " + r.Name + " | token not configured, skipped"
	default:
		return "❌ " + r.Name + " | token check failed | reason: " + r.Detail()
	}
}

// Summary renders the full run report: a UTC+8 timestamp header, one line
// per result in input order, and a fixed completion line.
func Summary(now time.Time, results []check.Result) string {
	var b strings.Builder
	b.WriteString("⏰ Beijing time: ")
	b.WriteString(now.In(headerZone).Format(timeLayout))
	b.WriteString("\n\n")
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Line(r))
	}
	b.WriteString("\n\n✅ Run complete")
	return b.String()
}

// ErrorMessage renders the single-line fallback sent when the run aborts
// before producing a summary.
func ErrorMessage(err error) string {
	return "❌ Keep-alive run failed: " + err.Error()
}
