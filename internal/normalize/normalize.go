// Package normalize brings names read from disk into the composed Unicode
// form used by the instrument catalogue.
package normalize

import "golang.org/x/text/unicode/norm"

// Name returns s in NFC form. Filesystems that store decomposed names
// (a base letter followed by combining marks) would otherwise fail both the
// character and the catalogue checks for names such as "Flautí".
func Name(s string) string {
	return norm.NFC.String(s)
}
