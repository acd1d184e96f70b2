package genera

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity grades a validation finding.
type Severity int

const (
	// SeverityWarning marks hygiene issues worth reviewing but not fatal.
	SeverityWarning Severity = iota

	// SeverityError marks issues that make the list unfit for a run.
	SeverityError
)

// Label returns the fixed-width tag for a severity.
func (s Severity) Label() string {
	if s == SeverityError {
		return "ERROR:"
	}
	return "WARNING:"
}

// Finding is a single validation result for one input line.
type Finding struct {
	Severity Severity
	Line     int // 1-based position among the non-empty input lines
	Genus    string
	Message  string
}

// String renders the finding the way the validate command prints it.
func (f Finding) String() string {
	return fmt.Sprintf("%s line %d (%s): %s", f.Severity.Label(), f.Line, f.Genus, f.Message)
}

// titleCaser folds genus names for the capitalization check. Botanical genus
// names are language-neutral Latin, so the undetermined language tag applies.
var titleCaser = cases.Title(language.Und)

// Validate runs the offline hygiene checks over a genus list. No subprocess
// and no network: this inspects the list text only.
//
// Errors: duplicate names, lines that are blank after trimming. Warnings:
// surrounding whitespace, non-title-case names, embedded hybrid signs in what
// should be a genus-level list.
func Validate(names []string) []Finding {
	var findings []Finding
	seen := make(map[string]int, len(names))

	for i, name := range names {
		line := i + 1
		trimmed := strings.TrimSpace(name)

		if trimmed == "" {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     line,
				Genus:    name,
				Message:  "blank after trimming whitespace",
			})
			continue
		}

		if prev, ok := seen[trimmed]; ok {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Line:     line,
				Genus:    trimmed,
				Message:  fmt.Sprintf("duplicate of line %d", prev),
			})
		} else {
			seen[trimmed] = line
		}

		if trimmed != name {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Line:     line,
				Genus:    trimmed,
				Message:  "surrounding whitespace",
			})
		}

		if expected := titleCaser.String(strings.ToLower(trimmed)); trimmed != expected {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Line:     line,
				Genus:    trimmed,
				Message:  fmt.Sprintf("not in title case (expected %q)", expected),
			})
		}

		if strings.Contains(trimmed, "×") || strings.Contains(trimmed, " x ") {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Line:     line,
				Genus:    trimmed,
				Message:  "hybrid sign in a genus-level list",
			})
		}
	}

	return findings
}

// HasErrors reports whether any finding is error-level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
