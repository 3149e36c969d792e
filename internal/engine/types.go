package engine

import "strings"

// LevelName is the display name of a progression level within an XP cycle.
type LevelName string

const (
	LevelSurvivor   LevelName = "Survivor"
	LevelCurious    LevelName = "Curious"
	LevelCourageous LevelName = "Courageous"
	LevelConnected  LevelName = "Connected"
)

func (l LevelName) IsValid() bool {
	switch l {
	case LevelSurvivor, LevelCurious, LevelCourageous, LevelConnected:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryBasic       Category = "basic"
	CategoryPleasurable Category = "pleasurable"
	CategorySocial      Category = "social"
	CategoryNecessary   Category = "necessary"
	CategoryFocus       Category = "focus"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBasic, CategoryPleasurable, CategorySocial, CategoryNecessary, CategoryFocus:
		return true
	default:
		return false
	}
}

// PartRole is the IFS role carried by a part.
type PartRole string

const (
	RoleManager     PartRole = "manager"
	RoleFirefighter PartRole = "firefighter"
	RoleExile       PartRole = "exile"
	RoleUnknown     PartRole = "unknown"
)

func (r PartRole) IsValid() bool {
	switch r {
	case RoleManager, RoleFirefighter, RoleExile, RoleUnknown:
		return true
	default:
		return false
	}
}

// DefaultPartRole is used when user input is missing/invalid.
const DefaultPartRole = RoleUnknown

// ParsePartRole parses user input to a PartRole.
// If input is empty or unrecognized, returns DefaultPartRole.
func ParsePartRole(input string) PartRole {
	r := PartRole(strings.TrimSpace(strings.ToLower(input)))
	if r.IsValid() {
		return r
	}
	return DefaultPartRole
}

type JournalType string

const (
	JournalText  JournalType = "text"
	JournalVoice JournalType = "voice"
	JournalPhoto JournalType = "photo"
)

func (j JournalType) IsValid() bool {
	switch j {
	case JournalText, JournalVoice, JournalPhoto:
		return true
	default:
		return false
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}
