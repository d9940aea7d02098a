package armory

// OrcWeapon is the orc family's heavy axe.
type OrcWeapon struct{}

func (OrcWeapon) Use() string {
	return "You swing a crude but heavy axe!"
}

// TrollWeapon is the troll family's massive club.
type TrollWeapon struct{}

func (TrollWeapon) Use() string {
	return "You lift a massive club overhead!"
}

// ElfWeapon is the elf family's longbow.
type ElfWeapon struct{}

func (ElfWeapon) Use() string {
	return "You draw a slender longbow!"
}

// DwarfWeapon is the dwarf family's forged hammer.
type DwarfWeapon struct{}

func (DwarfWeapon) Use() string {
	return "You heft a finely forged hammer, perfect for crushing skulls!"
}

// DragonWeapon is the dragon family's fiery breath.
type DragonWeapon struct{}

func (DragonWeapon) Use() string {
	return "You channel fiery breath, scorching all in your path!"
}

// GoblinWeapon is the goblin family's jagged dagger.
type GoblinWeapon struct{}

func (GoblinWeapon) Use() string {
	return "You brandish a jagged dagger, small but deadly!"
}
