package rules

import (
	"unicode"

	"github.com/eykd/fentarxiu-go/internal/domain"
)

// middleDot is the Catalan punt volat (as in "col·lecció").
const middleDot = '·'

// fileChar reports whether r may appear in a sheet filename: letters
// (accented included), digits, space, and _ - + . ·
func fileChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ' ', '_', '-', '+', '.', middleDot:
		return true
	}
	return false
}

// folderChar is fileChar plus '&'.
func folderChar(r rune) bool {
	return r == '&' || fileChar(r)
}

// scanRunes calls report for each rune of text rejected by allowed, passing
// its zero-based rune index.
func scanRunes(text string, allowed func(rune) bool, report func(i int, r rune)) {
	i := 0
	for _, r := range text {
		if !allowed(r) {
			report(i, r)
		}
		i++
	}
}

// FileCharacterRule rejects every character outside the filename set.
type FileCharacterRule struct{}

// Check returns one InvalidCharacter per rejected character.
func (FileCharacterRule) Check(text string) []domain.Defect {
	var defects []domain.Defect
	scanRunes(text, fileChar, func(i int, r rune) {
		defects = append(defects, domain.InvalidCharacter{Index: i, Char: r})
	})
	return defects
}

// FolderCharacterRule rejects every character outside the folder-name set.
type FolderCharacterRule struct{}

// Check returns one InvalidFolderCharacter per rejected character.
func (FolderCharacterRule) Check(text string) []domain.Defect {
	var defects []domain.Defect
	scanRunes(text, folderChar, func(i int, r rune) {
		defects = append(defects, domain.InvalidFolderCharacter{Index: i, Char: r})
	})
	return defects
}
