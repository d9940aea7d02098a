// Package armory defines the themed enemy and weapon families.
//
// Each theme pairs exactly one Enemy variant with one Weapon variant. The
// pairing is fixed at compile time: a factory always produces both halves of
// the same family, so callers can never mix an enemy from one theme with a
// weapon from another.
package armory

// Enemy is a hostile creature that can describe its attack.
type Enemy interface {
	Attack() string
}

// Weapon is an armament that can describe its use.
type Weapon interface {
	Use() string
}

// Theme identifies one enemy/weapon family.
type Theme int

const (
	ThemeOrc Theme = iota
	ThemeTroll
	ThemeElf
	ThemeDwarf
	ThemeDragon
	ThemeGoblin
)

func (t Theme) String() string {
	switch t {
	case ThemeOrc:
		return "Orc"
	case ThemeTroll:
		return "Troll"
	case ThemeElf:
		return "Elf"
	case ThemeDwarf:
		return "Dwarf"
	case ThemeDragon:
		return "Dragon"
	case ThemeGoblin:
		return "Goblin"
	default:
		return "Unknown"
	}
}

// Factory produces the enemy and weapon of a single theme.
type Factory interface {
	Theme() Theme

	CreateEnemy() Enemy

	CreateWeapon() Weapon
}

// Registry returns the fixed, ordered list of family factories.
//
// The set of families is a closed enumeration known at build time. Each call
// returns a fresh slice so callers cannot reorder or replace entries in the
// canonical registry.
func Registry() []Factory {
	return []Factory{
		OrcFactory{},
		TrollFactory{},
		ElfFactory{},
		DwarfFactory{},
		DragonFactory{},
		GoblinFactory{},
	}
}
