package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Result collects every failure found for one transaction, in rule order.
type Result struct {
	failures []string
}

// Fail records a failure.
func (r *Result) Fail(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

// Failures returns a copy of the recorded failures.
func (r *Result) Failures() []string {
	return append([]string(nil), r.failures...)
}

// Valid reports whether no rule failed.
func (r *Result) Valid() bool {
	return len(r.failures) == 0
}

// Err returns nil for a valid result and an error listing the failures otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return errors.New(r.String())
}

func (r *Result) String() string {
	return strings.Join(r.failures, "; ")
}
