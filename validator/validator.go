// Package validator performs build-time analysis of a machine declaration.
// Errors here mean the graph must not reach code generation; warnings flag
// suspicious but legal declarations, such as deliberate terminal sinks that
// are unreachable from the initial state.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/staticfsm/graph"
)

// ErrInvalidGraph is the sentinel wrapped by ValidationResult.Err.
var ErrInvalidGraph = errors.New("invalid state machine graph")

// ValidationResult contains the outcome of validating a machine declaration.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError represents a declaration defect that blocks generation.
type ValidationError struct {
	Code    string // Error code like "UNDECLARED_STATE", "DUPLICATE_EDGE"
	Message string // Human-readable error message
	State   string // State name if applicable
}

// ValidationWarning represents a non-blocking issue.
type ValidationWarning struct {
	Code    string
	Message string
	State   string
}

// Validate runs the default rule set over the graph.
func Validate(g *graph.Graph) ValidationResult {
	return ValidateWithRules(g, DefaultRules())
}

// ValidateStrict validates and promotes warnings to errors.
func ValidateStrict(g *graph.Graph) ValidationResult {
	result := Validate(g)

	for _, warning := range result.Warnings {
		result.Errors = append(result.Errors, ValidationError{
			Code:    warning.Code,
			Message: warning.Message,
			State:   warning.State,
		})
	}

	result.Warnings = nil

	if len(result.Errors) > 0 {
		result.Valid = false
	}

	return result
}

// ValidateWithRules validates using a custom rule set.
func ValidateWithRules(g *graph.Graph, rules []Rule) ValidationResult {
	result := ValidationResult{Valid: true}

	for _, rule := range rules {
		ruleResult := rule.Check(g)
		result.Errors = append(result.Errors, ruleResult.Errors...)
		result.Warnings = append(result.Warnings, ruleResult.Warnings...)
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}

	return result
}

// HasErrors returns true if the result has any errors.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if the result has any warnings.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err collapses the errors into a single error for callers that need one
// (the generator, the CLI exit path). Returns nil for a valid result.
func (r ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, ErrInvalidGraph)

	for _, e := range r.Errors {
		errs = append(errs, fmt.Errorf("[%s] %s", e.Code, e.Message))
	}

	return errors.Join(errs...)
}

// String returns a human-readable summary of validation results.
func (r ValidationResult) String() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString("✓ Declaration is valid\n")
	} else {
		fmt.Fprintf(&sb, "✗ Declaration has %d error(s)\n", len(r.Errors))

		for _, err := range r.Errors {
			fmt.Fprintf(&sb, "  [%s] %s", err.Code, err.Message)

			if err.State != "" {
				fmt.Fprintf(&sb, " (state: %s)", err.State)
			}

			sb.WriteString("\n")
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&sb, "⚠ %d warning(s):\n", len(r.Warnings))

		for _, warn := range r.Warnings {
			fmt.Fprintf(&sb, "  [%s] %s\n", warn.Code, warn.Message)
		}
	}

	return sb.String()
}
