package armory

import "testing"

// TestFactoriesProduceMatchingFamilies verifies every factory yields the
// enemy and weapon descriptions of its own theme.
func TestFactoriesProduceMatchingFamilies(t *testing.T) {
	tests := []struct {
		factory Factory
		theme   Theme
		attack  string
		use     string
	}{
		{
			factory: OrcFactory{},
			theme:   ThemeOrc,
			attack:  "Orc attacks with brute force!",
			use:     "You swing a crude but heavy axe!",
		},
		{
			factory: TrollFactory{},
			theme:   ThemeTroll,
			attack:  "Troll smashes its club down on you!",
			use:     "You lift a massive club overhead!",
		},
		{
			factory: ElfFactory{},
			theme:   ThemeElf,
			attack:  "Elf shoots a volley of arrows!",
			use:     "You draw a slender longbow!",
		},
		{
			factory: DwarfFactory{},
			theme:   ThemeDwarf,
			attack:  "Dwarf swings a mighty hammer, striking with solid precision!",
			use:     "You heft a finely forged hammer, perfect for crushing skulls!",
		},
		{
			factory: DragonFactory{},
			theme:   ThemeDragon,
			attack:  "Dragon unleashes a torrent of fire from its maw!",
			use:     "You channel fiery breath, scorching all in your path!",
		},
		{
			factory: GoblinFactory{},
			theme:   ThemeGoblin,
			attack:  "Goblin darts forward, slashing quickly with a rusty blade!",
			use:     "You brandish a jagged dagger, small but deadly!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.theme.String(), func(t *testing.T) {
			if got := tc.factory.Theme(); got != tc.theme {
				t.Fatalf("Theme() = %v, want %v", got, tc.theme)
			}
			if got := tc.factory.CreateEnemy().Attack(); got != tc.attack {
				t.Fatalf("Attack() = %q, want %q", got, tc.attack)
			}
			if got := tc.factory.CreateWeapon().Use(); got != tc.use {
				t.Fatalf("Use() = %q, want %q", got, tc.use)
			}
		})
	}
}

// TestRegistryOrder verifies the registry holds all six families in their
// canonical order.
func TestRegistryOrder(t *testing.T) {
	want := []Theme{ThemeOrc, ThemeTroll, ThemeElf, ThemeDwarf, ThemeDragon, ThemeGoblin}

	registry := Registry()
	if len(registry) != len(want) {
		t.Fatalf("expected %d factories, got %d", len(want), len(registry))
	}
	for i, factory := range registry {
		if factory.Theme() != want[i] {
			t.Fatalf("registry[%d].Theme() = %v, want %v", i, factory.Theme(), want[i])
		}
	}
}

// TestRegistryReturnsFreshSlice ensures mutating one returned slice does not
// affect subsequent calls.
func TestRegistryReturnsFreshSlice(t *testing.T) {
	first := Registry()
	first[0] = GoblinFactory{}

	second := Registry()
	if second[0].Theme() != ThemeOrc {
		t.Fatalf("registry was mutated: first entry is %v, want %v", second[0].Theme(), ThemeOrc)
	}
}

// TestFactoriesAreStateless ensures repeated construction yields identical
// descriptions.
func TestFactoriesAreStateless(t *testing.T) {
	for _, factory := range Registry() {
		first := factory.CreateEnemy().Attack()
		second := factory.CreateEnemy().Attack()
		if first != second {
			t.Fatalf("%v enemy descriptions differ: %q vs %q", factory.Theme(), first, second)
		}

		firstUse := factory.CreateWeapon().Use()
		secondUse := factory.CreateWeapon().Use()
		if firstUse != secondUse {
			t.Fatalf("%v weapon descriptions differ: %q vs %q", factory.Theme(), firstUse, secondUse)
		}
	}
}

// TestThemeString covers the enumeration's display names.
func TestThemeString(t *testing.T) {
	tests := []struct {
		theme Theme
		want  string
	}{
		{ThemeOrc, "Orc"},
		{ThemeTroll, "Troll"},
		{ThemeElf, "Elf"},
		{ThemeDwarf, "Dwarf"},
		{ThemeDragon, "Dragon"},
		{ThemeGoblin, "Goblin"},
		{Theme(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.theme.String(); got != tc.want {
			t.Fatalf("Theme(%d).String() = %q, want %q", tc.theme, got, tc.want)
		}
	}
}
