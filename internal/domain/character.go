package domain

import "time"

// CharacterClasses is the fixed set of playable classes.
// The hybrid classes at the end are reserved for later unlock flows but are
// valid at creation time.
var CharacterClasses = []string{
	"Berserker",
	"Shadow Assassin",
	"Iron Titan",
	"Windrunner",
	"Mystic Monk",
	"Forge Master",
	"Phantom Blade",
	"Nature Walker",
	"Gymnast Sage",
	"Warrior Priest",
	"AIFitnessCompanion Knight",
	"Elemental Shaper",
	"Chrono Warrior",
	"Beast Tamer",
	"Neural Architect",
}

// ValidCharacterClass reports whether name is one of the fixed classes
func ValidCharacterClass(name string) bool {
	for _, c := range CharacterClasses {
		if c == name {
			return true
		}
	}
	return false
}

// Stats is the fixed eight-attribute stat block. All values are
// non-negative and start at zero.
type Stats struct {
	STR int `json:"STR"`
	DUR int `json:"DUR"`
	AGI int `json:"AGI"`
	DEX int `json:"DEX"`
	STA int `json:"STA"`
	INT int `json:"INT"`
	WIL int `json:"WIL"`
	VIT int `json:"VIT"`
}

// Character is a user-owned progression entity.
// Level is derived from XP and never set directly by callers; XP only
// ever increases.
type Character struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	ClassName string    `json:"className"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	Stats     Stats     `json:"stats"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCharacter carries the caller-supplied fields for character creation.
// The store assigns identity and initializes level 1, zero XP, zero stats.
type NewCharacter struct {
	UserID    int
	Name      string
	ClassName string
}
