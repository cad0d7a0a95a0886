package gamedata

// SpellEffect represents what a spell does to its target.
type SpellEffect string

const (
	// SpellRemove takes the target off the grid entirely, bypassing HP.
	SpellRemove SpellEffect = "remove"
	// SpellDrain deals Power damage and heals the caster by the same amount.
	SpellDrain SpellEffect = "drain"
)

// SpellDef defines a wizard spell loaded from JSON.
//
// Range is an exact distance: the target must be Range steps away along one
// axis and 0 along the other.
type SpellDef struct {
	ID          string      `json:"id"` // Name used when casting (e.g., "hp-stealer")
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Effect      SpellEffect `json:"effect"`
	Range       int         `json:"range"`
	Power       int         `json:"power"`
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Spells, nil
}
