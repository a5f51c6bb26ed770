package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"

	"github.com/fnosnas/koyeb-keepalive/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	switch r.Status {
	case check.StatusOK:
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	case check.StatusSkip:
		fmt.Printf("%s[SKIP]%s %s\n", yellow, reset, r.Name)
	default:
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Printf("      %s\n", d)
	}
}
