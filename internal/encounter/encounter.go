// Package encounter implements the random family selection for the demo.
package encounter

import (
	"errors"
	"math/rand"

	"github.com/louisbranch/bestiary/internal/armory"
)

// ErrEmptyRegistry indicates a roll was requested against no factories.
var ErrEmptyRegistry = errors.New("at least one factory must be provided")

// RollRequest describes a request for a random enemy/weapon pairing.
type RollRequest struct {
	Seed int64
}

// Result holds the descriptions produced by one family.
type Result struct {
	Theme       armory.Theme
	EnemyAttack string
	WeaponUse   string
}

// Roll picks one family uniformly at random from the canonical registry and
// invokes both of its constructors.
//
// # Determinism
//
// Roll is deterministic with respect to the Seed field on RollRequest: the
// same seed always selects the same family. Callers wanting an independent
// uniform draw per invocation supply a fresh random seed.
//
// # Pairing
//
// The returned EnemyAttack and WeaponUse always come from the same family;
// the selection happens once and both constructors run on the selected
// factory.
func Roll(request RollRequest) (Result, error) {
	return RollFrom(armory.Registry(), request)
}

// RollFrom picks one family uniformly at random from the provided factories.
// It returns ErrEmptyRegistry when no factories are supplied.
func RollFrom(factories []armory.Factory, request RollRequest) (Result, error) {
	if len(factories) == 0 {
		return Result{}, ErrEmptyRegistry
	}

	rng := rand.New(rand.NewSource(request.Seed))
	factory := factories[rng.Intn(len(factories))]

	enemy := factory.CreateEnemy()
	weapon := factory.CreateWeapon()

	return Result{
		Theme:       factory.Theme(),
		EnemyAttack: enemy.Attack(),
		WeaponUse:   weapon.Use(),
	}, nil
}
