package rules

import "github.com/eykd/fentarxiu-go/internal/domain"

// FolderNameRule checks that a folder name has the Title_Authors or
// Title_Authors_Arrangers shape.
type FolderNameRule struct{}

// Check returns a single InvalidFolderName defect when the name does not parse.
func (FolderNameRule) Check(text string) []domain.Defect {
	if _, ok := domain.ParseFolderName(text); !ok {
		return []domain.Defect{domain.InvalidFolderName{Expected: domain.FolderShapes}}
	}
	return nil
}
