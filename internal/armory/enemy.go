package armory

// Orc is a brute-force melee attacker.
type Orc struct{}

func (Orc) Attack() string {
	return "Orc attacks with brute force!"
}

// Troll is a slow, club-wielding bruiser.
type Troll struct{}

func (Troll) Attack() string {
	return "Troll smashes its club down on you!"
}

// Elf is a ranged attacker.
type Elf struct{}

func (Elf) Attack() string {
	return "Elf shoots a volley of arrows!"
}

// Dwarf is a precise hammer fighter.
type Dwarf struct{}

func (Dwarf) Attack() string {
	return "Dwarf swings a mighty hammer, striking with solid precision!"
}

// Dragon is a fire-breathing monster.
type Dragon struct{}

func (Dragon) Attack() string {
	return "Dragon unleashes a torrent of fire from its maw!"
}

// Goblin is a fast, sneaky skirmisher.
type Goblin struct{}

func (Goblin) Attack() string {
	return "Goblin darts forward, slashing quickly with a rusty blade!"
}
