package domain

// DefectKind identifies the variant of a Defect.
type DefectKind string

// Defect kind constants.
const (
	KindInvalidCharacter       DefectKind = "invalid_character"
	KindInvalidFolderCharacter DefectKind = "invalid_folder_character"
	KindEmptyFilename          DefectKind = "empty_filename"
	KindMalformedPrefix        DefectKind = "malformed_prefix"
	KindUnparsableFilename     DefectKind = "unparsable_filename"
	KindUnknownInstrument      DefectKind = "unknown_instrument"
	KindNameMismatch           DefectKind = "name_mismatch"
	KindInvalidVoice           DefectKind = "invalid_voice"
	KindNotPDF                 DefectKind = "not_pdf"
	KindInvalidFolderName      DefectKind = "invalid_folder_name"
)

// Defect is one violation found by a rule. The set of variants is closed:
// only types in this package implement it.
type Defect interface {
	Kind() DefectKind
	defect()
}

// InvalidCharacter reports a character outside the filename character set.
// Index is the zero-based rune position in the checked string.
type InvalidCharacter struct {
	Index int  `json:"index"`
	Char  rune `json:"char"`
}

// InvalidFolderCharacter reports a character outside the folder-name
// character set.
type InvalidFolderCharacter struct {
	Index int  `json:"index"`
	Char  rune `json:"char"`
}

// EmptyFilename reports an empty filename where a prefix was expected.
type EmptyFilename struct{}

// MalformedPrefix reports a filename that does not start with one or more
// '+'-joined 4-digit blocks followed by '_'.
type MalformedPrefix struct {
	Expected string `json:"expected"`
}

// UnparsableFilename reports a filename whose prefix is well formed but whose
// name segments do not pair up with its blocks.
type UnparsableFilename struct {
	Blocks int `json:"blocks"`
}

// UnknownInstrument reports a prefix block absent from the catalogue.
type UnknownInstrument struct {
	Category int    `json:"category"`
	Code     string `json:"code"`
}

// NameMismatch reports a name segment that differs from the catalogue name
// of its block.
type NameMismatch struct {
	Category int    `json:"category"`
	Code     string `json:"code"`
	Received string `json:"received"`
	Expected string `json:"expected"`
}

// InvalidVoice reports a voice outside [Min, Max].
type InvalidVoice struct {
	Category int    `json:"category"`
	Code     string `json:"code"`
	Voice    int    `json:"voice"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// NotPDF reports a filename without the .pdf extension. Empty is set when
// the filename is blank.
type NotPDF struct {
	Empty bool `json:"empty"`
}

// InvalidFolderName reports a folder name that matches neither accepted shape.
type InvalidFolderName struct {
	Expected string `json:"expected"`
}

func (InvalidCharacter) Kind() DefectKind       { return KindInvalidCharacter }
func (InvalidFolderCharacter) Kind() DefectKind { return KindInvalidFolderCharacter }
func (EmptyFilename) Kind() DefectKind          { return KindEmptyFilename }
func (MalformedPrefix) Kind() DefectKind        { return KindMalformedPrefix }
func (UnparsableFilename) Kind() DefectKind     { return KindUnparsableFilename }
func (UnknownInstrument) Kind() DefectKind      { return KindUnknownInstrument }
func (NameMismatch) Kind() DefectKind           { return KindNameMismatch }
func (InvalidVoice) Kind() DefectKind           { return KindInvalidVoice }
func (NotPDF) Kind() DefectKind                 { return KindNotPDF }
func (InvalidFolderName) Kind() DefectKind      { return KindInvalidFolderName }

func (InvalidCharacter) defect()       {}
func (InvalidFolderCharacter) defect() {}
func (EmptyFilename) defect()          {}
func (MalformedPrefix) defect()        {}
func (UnparsableFilename) defect()     {}
func (UnknownInstrument) defect()      {}
func (NameMismatch) defect()           {}
func (InvalidVoice) defect()           {}
func (NotPDF) defect()                 {}
func (InvalidFolderName) defect()      {}

// Outcome is the result of checking one name. It conforms when no rule
// reported a defect.
type Outcome struct {
	Defects []Defect
}

// Conforming reports whether the outcome holds no defects.
func (o Outcome) Conforming() bool {
	return len(o.Defects) == 0
}
