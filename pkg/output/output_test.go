package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fnosnas/koyeb-keepalive/pkg/check"
)

// captureOutput redirects stdout while fn runs and returns what was printed.
func captureOutput(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func withoutColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldYellow, oldReset := green, red, yellow, reset
	green, red, yellow, reset = "", "", "", ""
	t.Cleanup(func() {
		green, red, yellow, reset = oldGreen, oldRed, oldYellow, oldReset
	})
}

func TestPrintResultOK(t *testing.T) {
	withoutColors(t)

	out := captureOutput(func() {
		PrintResult(check.Result{
			Name:    "account: afnos86",
			Status:  check.StatusOK,
			Details: []string{"token accepted (status 200)"},
		})
	})

	if !strings.Contains(out, "[OK] account: afnos86") {
		t.Errorf("output = %q, want OK line", out)
	}
	if !strings.Contains(out, "token accepted (status 200)") {
		t.Errorf("output = %q, want detail line", out)
	}
}

func TestPrintResultFail(t *testing.T) {
	withoutColors(t)

	out := captureOutput(func() {
		PrintResult(check.Result{
			Name:    "account: afnos86",
			Status:  check.StatusFail,
			Details: []string{"token rejected: 401 Unauthorized"},
		})
	})

	if !strings.Contains(out, "[FAIL] account: afnos86") {
		t.Errorf("output = %q, want FAIL line", out)
	}
	if !strings.Contains(out, "401 Unauthorized") {
		t.Errorf("output = %q, want reason detail", out)
	}
}

func TestPrintResultSkip(t *testing.T) {
	withoutColors(t)

	out := captureOutput(func() {
		PrintResult(check.Result{
			Name:   "account: afnos86",
			Status: check.StatusSkip,
		})
	})

	if !strings.Contains(out, "[SKIP] account: afnos86") {
		t.Errorf("output = %q, want SKIP line", out)
	}
}
