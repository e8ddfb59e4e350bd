// Package rules implements the naming rules and the Checker that runs them.
package rules

import "github.com/eykd/fentarxiu-go/internal/domain"

// Rule inspects a name and returns every defect it finds, in discovery
// order. A rule never fails: malformed input is either ignored or reported
// as a defect.
type Rule interface {
	Check(text string) []domain.Defect
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(text string) []domain.Defect

// Check calls f(text).
func (f RuleFunc) Check(text string) []domain.Defect { return f(text) }

// Checker runs an ordered list of rules against a name.
type Checker struct {
	rules []Rule
}

// NewChecker creates a Checker that runs rules in the given order.
func NewChecker(rules ...Rule) *Checker {
	return &Checker{rules: append([]Rule(nil), rules...)}
}

// Check runs every rule and concatenates their defects in rule order.
// All rules run even when an earlier one reports defects.
func (c *Checker) Check(text string) domain.Outcome {
	var defects []domain.Defect
	for _, r := range c.rules {
		defects = append(defects, r.Check(text)...)
	}
	return domain.Outcome{Defects: defects}
}

// FileRules returns the rules applied to sheet filenames.
func FileRules(cat *domain.Catalogue) []Rule {
	return []Rule{
		FileCharacterRule{},
		PrefixRule{Catalogue: cat},
		InstrumentNameRule{Catalogue: cat},
		VoiceRule{},
		ExtensionRule{},
	}
}

// FolderRules returns the rules applied to work folder names.
func FolderRules() []Rule {
	return []Rule{
		FolderCharacterRule{},
		FolderNameRule{},
	}
}

// NewFileChecker returns a Checker running FileRules.
func NewFileChecker(cat *domain.Catalogue) *Checker {
	return NewChecker(FileRules(cat)...)
}

// NewFolderChecker returns a Checker running FolderRules.
func NewFolderChecker() *Checker {
	return NewChecker(FolderRules()...)
}
