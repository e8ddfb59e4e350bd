package domain

// Instrument families.
const (
	CategoryScore      = 0
	CategoryWoodwind   = 1
	CategoryBrass      = 2
	CategoryPercussion = 3
	CategoryPiano      = 4
	CategoryStrings    = 5
	CategoryChoir      = 6
)

var categoryNames = map[int]string{
	CategoryScore:      "Guió i/o parts",
	CategoryWoodwind:   "Fusta",
	CategoryBrass:      "Metall",
	CategoryPercussion: "Percussió",
	CategoryPiano:      "Piano",
	CategoryStrings:    "Corda",
	CategoryChoir:      "Cor",
}

// CategoryName returns the family label for category, or false if the
// category is not one of the built-in families.
func CategoryName(category int) (string, bool) {
	name, ok := categoryNames[category]
	return name, ok
}

var defaultTable = map[InstrumentKey]string{
	{CategoryScore, "00"}: "Guió",

	{CategoryWoodwind, "00"}: "Flauta",
	{CategoryWoodwind, "01"}: "Flautí",
	{CategoryWoodwind, "02"}: "Oboe",
	{CategoryWoodwind, "03"}: "CornAnglès",
	{CategoryWoodwind, "04"}: "Fagot",
	{CategoryWoodwind, "05"}: "Requint",
	{CategoryWoodwind, "06"}: "Clarinet",
	{CategoryWoodwind, "07"}: "ClarinetBaix",
	{CategoryWoodwind, "08"}: "SaxoSoprano",
	{CategoryWoodwind, "09"}: "SaxoAlt",
	{CategoryWoodwind, "10"}: "SaxoTenor",
	{CategoryWoodwind, "11"}: "SaxoBaríton",
	{CategoryWoodwind, "12"}: "Dolçaina",

	{CategoryBrass, "00"}: "Corneta",
	{CategoryBrass, "01"}: "Piccolo",
	{CategoryBrass, "02"}: "Trompeta",
	{CategoryBrass, "03"}: "Fliscorn",
	{CategoryBrass, "04"}: "Trompa",
	{CategoryBrass, "05"}: "Trombó",
	{CategoryBrass, "06"}: "TrombóBaix",
	{CategoryBrass, "07"}: "Bombardí",
	{CategoryBrass, "08"}: "Tuba",

	{CategoryPercussion, "00"}: "Timbals",
	{CategoryPercussion, "01"}: "Caixa",
	{CategoryPercussion, "02"}: "Bombo",
	{CategoryPercussion, "03"}: "Plats",
	{CategoryPercussion, "04"}: "Bateria",
	{CategoryPercussion, "05"}: "Altres",

	{CategoryPiano, "00"}: "Piano",

	{CategoryStrings, "00"}: "Violoncel",
	{CategoryStrings, "01"}: "Contrabaix",

	{CategoryChoir, "00"}: "Cor",
	{CategoryChoir, "01"}: "Dones",
	{CategoryChoir, "02"}: "Homes",
}
