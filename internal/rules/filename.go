package rules

import (
	"regexp"
	"strings"

	"github.com/eykd/fentarxiu-go/internal/domain"
)

// PrefixShape describes the expected filename prefix.
const PrefixShape = "one or more 4-digit blocks (category, code, voice) joined by '+' and followed by '_'"

// Voice range accepted by VoiceRule.
const (
	MinVoice = 0
	MaxVoice = 9
)

// PrefixRule checks that a filename starts with well-formed blocks whose
// (category, code) pairs are catalogued.
type PrefixRule struct {
	Catalogue *domain.Catalogue
}

// Check reports at most one structural defect, or one UnknownInstrument per
// uncatalogued block.
func (r PrefixRule) Check(text string) []domain.Defect {
	if text == "" {
		return []domain.Defect{domain.EmptyFilename{}}
	}
	if !domain.HasPrefix(text) {
		return []domain.Defect{domain.MalformedPrefix{Expected: PrefixShape}}
	}
	parsed, ok := domain.ParseFilename(text)
	if !ok {
		return []domain.Defect{domain.UnparsableFilename{Blocks: countBlocks(text)}}
	}

	var defects []domain.Defect
	for _, b := range parsed.Blocks {
		if !r.Catalogue.Has(b.Category, b.Code) {
			defects = append(defects, domain.UnknownInstrument{Category: b.Category, Code: b.Code})
		}
	}
	return defects
}

// countBlocks counts the prefix blocks of a name known to match the prefix
// pattern.
func countBlocks(text string) int {
	prefix, _, _ := strings.Cut(text, "_")
	return strings.Count(prefix, "+") + 1
}

// voiceQualifier matches a trailing "_<n>" (n > 0) or "_Principal".
var voiceQualifier = regexp.MustCompile(`_(?:[1-9][0-9]*|(?i:principal))$`)

// StripVoiceQualifier removes a trailing voice qualifier from a name segment,
// so "Clarinet_1" and "Clarinet_Principal" both become "Clarinet".
func StripVoiceQualifier(name string) string {
	if loc := voiceQualifier.FindStringIndex(name); loc != nil {
		return name[:loc[0]]
	}
	return name
}

// InstrumentNameRule checks that each name segment matches the catalogue
// name of its block. Uncatalogued blocks are left to PrefixRule.
type InstrumentNameRule struct {
	Catalogue *domain.Catalogue
}

// Check returns one NameMismatch per mismatching segment. Filenames that do
// not parse produce nothing.
func (r InstrumentNameRule) Check(text string) []domain.Defect {
	parsed, ok := domain.ParseFilename(text)
	if !ok {
		return nil
	}

	var defects []domain.Defect
	for i, b := range parsed.Blocks {
		expected, ok := r.Catalogue.Name(b.Category, b.Code)
		if !ok {
			continue
		}
		received := parsed.Names[i]
		if StripVoiceQualifier(received) != expected {
			defects = append(defects, domain.NameMismatch{
				Category: b.Category,
				Code:     b.Code,
				Received: received,
				Expected: expected,
			})
		}
	}
	return defects
}

// VoiceRule checks that every block's voice lies in [MinVoice, MaxVoice].
// The grammar already limits a voice to one digit; the check stays in case
// the grammar is ever widened.
type VoiceRule struct{}

// Check returns one InvalidVoice per out-of-range block.
func (VoiceRule) Check(text string) []domain.Defect {
	parsed, ok := domain.ParseFilename(text)
	if !ok {
		return nil
	}

	var defects []domain.Defect
	for _, b := range parsed.Blocks {
		if b.Voice < MinVoice || b.Voice > MaxVoice {
			defects = append(defects, domain.InvalidVoice{
				Category: b.Category,
				Code:     b.Code,
				Voice:    b.Voice,
				Min:      MinVoice,
				Max:      MaxVoice,
			})
		}
	}
	return defects
}

// ExtensionRule checks that a filename ends in .pdf, ignoring case and
// surrounding whitespace.
type ExtensionRule struct{}

// Check returns a NotPDF defect when the suffix is missing.
func (ExtensionRule) Check(text string) []domain.Defect {
	trimmed := strings.TrimSpace(text)
	if strings.HasSuffix(strings.ToLower(trimmed), ".pdf") {
		return nil
	}
	return []domain.Defect{domain.NotPDF{Empty: trimmed == ""}}
}
