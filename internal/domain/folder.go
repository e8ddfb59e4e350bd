package domain

import "strings"

// FolderShapes describes the two accepted folder-name shapes.
const FolderShapes = "WorkName_Author1+Author2 or WorkName_Author1+Author2_Arranger1+Arranger2"

// ParsedFolderName holds the parts of a work folder name.
type ParsedFolderName struct {
	Title     string
	Authors   []string
	Arrangers []string
}

// ParseFolderName splits a folder name of the form Title_Authors or
// Title_Authors_Arrangers. Only the first two underscores separate segments;
// any further '_' belongs to the arranger text. Title and at least one author
// are required. An empty arranger segment yields no arrangers.
func ParseFolderName(name string) (ParsedFolderName, bool) {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 2 {
		return ParsedFolderName{}, false
	}

	title := strings.TrimSpace(parts[0])
	if title == "" {
		return ParsedFolderName{}, false
	}
	authors := splitPeople(parts[1])
	if len(authors) == 0 {
		return ParsedFolderName{}, false
	}

	var arrangers []string
	if len(parts) == 3 {
		arrangers = splitPeople(parts[2])
	}
	return ParsedFolderName{Title: title, Authors: authors, Arrangers: arrangers}, true
}

// splitPeople splits a '+'-joined list, trimming pieces and dropping empty ones.
func splitPeople(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "+") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
