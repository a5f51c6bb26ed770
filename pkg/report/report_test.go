package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fnosnas/koyeb-keepalive/pkg/check"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		result check.Result
		want   string
	}{
		{
			name:   "success",
			result: check.Result{Name: "account: a", Status: check.StatusOK},
			want:   "✅ account: a | token check passed",
		},
		{
			name: "failure carries reason",
			result: check.Result{
				Name:    "account: c",
				Status:  check.StatusFail,
				Details: []string{"token rejected: 401 Unauthorized"},
			},
			want: "❌ account: c | token check failed | reason: token rejected: 401 Unauthorized",
		},
		{
			name:   "skip",
			result: check.Result{Name: "account: a", Status: check.StatusSkip},
			want:   "⚠️ account: a | token not configured, skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.result); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	// 2026-01-02 16:04 UTC is 2026-01-03 00:04 in UTC+8.
	now := time.Date(2026, 1, 2, 16, 4, 0, 0, time.UTC)
	results := []check.Result{
		{Name: "account: b", Status: check.StatusOK},
		{Name: "account: a", Status: check.StatusSkip},
		{Name: "account: c", Status: check.StatusFail, Details: []string{"token rejected: 401 Unauthorized"}},
	}

	got := Summary(now, results)

	if !strings.HasPrefix(got, "⏰ Beijing time: 2026-01-03 00:04\n\n") {
		t.Errorf("Summary() header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.HasSuffix(got, "\n\n✅ Run complete") {
		t.Errorf("Summary() missing completion line: %q", got)
	}

	// One line per account, in input order.
	body := strings.TrimSuffix(strings.TrimPrefix(got, "⏰ Beijing time: 2026-01-03 00:04\n\n"), "\n\n✅ Run complete")
	lines := strings.Split(body, "\n")
	if len(lines) != len(results) {
		t.Fatalf("result lines = %d, want %d", len(lines), len(results))
	}
	for i, want := range []string{"account: b", "account: a", "account: c"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want containing %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[2], "401") {
		t.Errorf("failure line = %q, want containing 401", lines[2])
	}
}

func TestErrorMessage(t *testing.T) {
	got := ErrorMessage(errors.New("KOYEB_ACCOUNTS is not set"))
	want := "❌ Keep-alive run failed: KOYEB_ACCOUNTS is not set"
	if got != want {
		t.Errorf("ErrorMessage() = %q, want %q", got, want)
	}
}
