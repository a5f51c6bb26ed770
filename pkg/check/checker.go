package check

import "context"

// Checker is implemented by all check types.
// Each check validates one credential or endpoint and returns a Result
// indicating success, failure or skip.
//
// Implementations:
//   - koyebcheck.Check: validates a Koyeb API token
type Checker interface {
	Run(ctx context.Context) Result
}
