// Package messages renders defects as short Valencian sentences for the
// people who maintain the archive.
package messages

import (
	"fmt"

	"github.com/eykd/fentarxiu-go/internal/domain"
)

// Progress messages printed by the audit commands.
const (
	FilesValidated    = "Validats %d fitxers."
	FilesWithErrors   = "%d fitxers amb errors."
	FoldersValidated  = "Validades %d carpetes."
	FoldersWithErrors = "%d carpetes amb errors."
	LogSaved          = "Log guardat a %s."
)

// Fallback is used for defects this package does not know how to describe.
const Fallback = "El nom no compleix les regles de validació."

// Render returns a one-line message for d.
func Render(d domain.Defect) string {
	switch d := d.(type) {
	case domain.InvalidCharacter:
		return fmt.Sprintf("Caràcter no permès: «%c» (posició %d).", d.Char, d.Index+1)
	case domain.InvalidFolderCharacter:
		return fmt.Sprintf("Caràcter no permès al nom de la carpeta: «%c» (posició %d).", d.Char, d.Index+1)
	case domain.EmptyFilename:
		return "El prefix del nom no és vàlid: el nom del fitxer és buit."
	case domain.MalformedPrefix:
		return "El prefix del nom no és vàlid: ha de començar amb un o més blocs de 4 xifres " +
			"(rang, codi i veu) units amb «+» i seguits de «_»."
	case domain.UnparsableFilename:
		return fmt.Sprintf("El prefix del nom no és vàlid: hi ha %d bloc(s) però el nombre de noms "+
			"d'instrument després de «_» no coincideix.", d.Blocks)
	case domain.UnknownInstrument:
		return fmt.Sprintf("El prefix del nom no és vàlid: el rang %d amb el codi %s no existeix al catàleg.",
			d.Category, d.Code)
	case domain.NameMismatch:
		return fmt.Sprintf("El nom de l'instrument «%s» no coincideix amb el del catàleg (s'esperava «%s»).",
			d.Received, d.Expected)
	case domain.InvalidVoice:
		return fmt.Sprintf("La veu del bloc no és vàlida: ha de ser entre %d i %d, però és %d.",
			d.Min, d.Max, d.Voice)
	case domain.NotPDF:
		if d.Empty {
			return "El nom del fitxer no pot estar buit; ha d'acabar en .pdf."
		}
		return "El nom del fitxer ha d'acabar en .pdf."
	case domain.InvalidFolderName:
		return "El nom de la carpeta no és vàlid: el format esperat és " +
			"NomObra_Autor1+Autor2 o NomObra_Autor1+Autor2_Arranjador1+Arranjador2 " +
			"(els autors són obligatoris; els arranjadors, opcionals)."
	default:
		return Fallback
	}
}

// Lines renders defects as log lines prefixed with "  - ".
func Lines(defects []domain.Defect) []string {
	lines := make([]string, len(defects))
	for i, d := range defects {
		lines[i] = "  - " + Render(d)
	}
	return lines
}
