package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockLen is the length of one prefix block: category, two-digit code, voice.
const BlockLen = 4

// Block is one prefix block of a filename.
type Block struct {
	Category int
	Code     string
	Voice    int
}

// Key returns the catalogue key of the block.
func (b Block) Key() InstrumentKey {
	return InstrumentKey{Category: b.Category, Code: b.Code}
}

// ParsedFilename holds the prefix blocks of a filename and the name segments
// that follow the separator. Blocks and Names always have the same length.
type ParsedFilename struct {
	Blocks []Block
	Names  []string
}

// prefixRegex matches one or more 4-digit blocks joined by '+' and the
// trailing '_' separator.
var prefixRegex = regexp.MustCompile(`^\d{4}(?:\+\d{4})*_`)

// HasPrefix reports whether name starts with a well-formed block prefix.
func HasPrefix(name string) bool {
	return prefixRegex.MatchString(name)
}

// ParseFilename splits name into prefix blocks and name segments.
//
// The expected shape is {block}+{block}..._{Name}+{Name}...[.pdf]. The
// second return value is false when name does not match, including when the
// number of name segments differs from the number of blocks. No catalogue
// lookup or character validation happens here.
func ParseFilename(name string) (ParsedFilename, bool) {
	prefix := prefixRegex.FindString(name)
	if prefix == "" {
		return ParsedFilename{}, false
	}

	var blocks []Block
	for _, s := range strings.Split(strings.TrimSuffix(prefix, "_"), "+") {
		b, ok := parseBlock(s)
		if !ok {
			return ParsedFilename{}, false
		}
		blocks = append(blocks, b)
	}

	rest := strings.TrimSuffix(name[len(prefix):], ".pdf")
	var names []string
	if rest != "" {
		for _, n := range strings.Split(rest, "+") {
			names = append(names, strings.TrimSpace(n))
		}
	}
	if len(names) != len(blocks) {
		return ParsedFilename{}, false
	}

	return ParsedFilename{Blocks: blocks, Names: names}, true
}

func parseBlock(s string) (Block, bool) {
	if len(s) != BlockLen {
		return Block{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Block{}, false
		}
	}
	return Block{
		Category: int(s[0] - '0'),
		Code:     s[1:3],
		Voice:    int(s[3] - '0'),
	}, true
}

// GenerateFilename builds a single-block filename for an instrument. It is
// the inverse of ParseFilename for conforming names.
func GenerateFilename(b Block, name string) string {
	return fmt.Sprintf("%d%s%d_%s.pdf", b.Category, b.Code, b.Voice, name)
}
