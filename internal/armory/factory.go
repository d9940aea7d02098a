package armory

// OrcFactory produces the orc family.
type OrcFactory struct{}

func (OrcFactory) Theme() Theme { return ThemeOrc }

func (OrcFactory) CreateEnemy() Enemy { return Orc{} }

func (OrcFactory) CreateWeapon() Weapon { return OrcWeapon{} }

// TrollFactory produces the troll family.
type TrollFactory struct{}

func (TrollFactory) Theme() Theme { return ThemeTroll }

func (TrollFactory) CreateEnemy() Enemy { return Troll{} }

func (TrollFactory) CreateWeapon() Weapon { return TrollWeapon{} }

// ElfFactory produces the elf family.
type ElfFactory struct{}

func (ElfFactory) Theme() Theme { return ThemeElf }

func (ElfFactory) CreateEnemy() Enemy { return Elf{} }

func (ElfFactory) CreateWeapon() Weapon { return ElfWeapon{} }

// DwarfFactory produces the dwarf family.
type DwarfFactory struct{}

func (DwarfFactory) Theme() Theme { return ThemeDwarf }

func (DwarfFactory) CreateEnemy() Enemy { return Dwarf{} }

func (DwarfFactory) CreateWeapon() Weapon { return DwarfWeapon{} }

// DragonFactory produces the dragon family.
type DragonFactory struct{}

func (DragonFactory) Theme() Theme { return ThemeDragon }

func (DragonFactory) CreateEnemy() Enemy { return Dragon{} }

func (DragonFactory) CreateWeapon() Weapon { return DragonWeapon{} }

// GoblinFactory produces the goblin family.
type GoblinFactory struct{}

func (GoblinFactory) Theme() Theme { return ThemeGoblin }

func (GoblinFactory) CreateEnemy() Enemy { return Goblin{} }

func (GoblinFactory) CreateWeapon() Weapon { return GoblinWeapon{} }
