// Package accounts loads the list of Koyeb accounts under test from the
// process environment. The list lives in a single JSON-encoded variable so
// the whole configuration fits in one scheduler secret.
package accounts

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// EnvVar is the environment variable holding the JSON account list.
const EnvVar = "KOYEB_ACCOUNTS"

// DefaultName labels accounts that carry neither a name nor an email.
const DefaultName = "unnamed account"

// Account is a named credential pair under test.
type Account struct {
	Name  string // display label, never empty after Load
	Token string // opaque bearer token; empty means "skip this account"
}

// ConfigError marks configuration faults that abort the whole run before
// any check is attempted. Per-account faults never use this type.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads EnvVar and parses it into the ordered account list.
//
// The variable must contain a JSON array of objects of the form
// {"name": ..., "email": ..., "token": ...}. Element shape is not
// validated beyond what the checks need: a missing name falls back to
// email and then to DefaultName, and a missing or empty token is kept
// as an empty string for the caller to record as skipped.
func Load(g EnvGetter) ([]Account, error) {
	raw, ok := g.LookupEnv(EnvVar)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, &ConfigError{Reason: EnvVar + " is not set"}
	}

	if !gjson.Valid(raw) {
		return nil, &ConfigError{Reason: EnvVar + " is not valid JSON"}
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, &ConfigError{Reason: EnvVar + " must be a JSON array"}
	}

	items := parsed.Array()
	if len(items) == 0 {
		return nil, &ConfigError{Reason: EnvVar + " contains no accounts"}
	}

	accounts := make([]Account, 0, len(items))
	for _, item := range items {
		name := item.Get("name").String()
		if name == "" {
			name = item.Get("email").String()
		}
		if name == "" {
			name = DefaultName
		}
		accounts = append(accounts, Account{
			Name:  name,
			Token: strings.TrimSpace(item.Get("token").String()),
		})
	}

	return accounts, nil
}
