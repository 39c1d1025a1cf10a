package lint

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Rule identifies the check that produced a finding.
type Rule string

const (
	RuleTrailingSpace  Rule = "trailing-space"
	RuleLeadingSpace   Rule = "leading-space"
	RuleSpacing        Rule = "spacing"
	RuleSectionAlias   Rule = "section-alias"
	RulePredicateAlias Rule = "predicate-alias"
	RuleEmptySection   Rule = "empty-section"
)

// Finding is a single lint diagnostic.
type Finding struct {
	Rule    Rule
	Summary string
	Detail  string
	Range   hcl.Range
}

// Diagnostic converts the finding into a warning diagnostic.
func (f Finding) Diagnostic() *hcl.Diagnostic {
	rng := f.Range
	return &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  f.Summary,
		Detail:   fmt.Sprintf("%s (%s)", f.Detail, f.Rule),
		Subject:  &rng,
	}
}
