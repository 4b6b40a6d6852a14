package entity

import (
	"fmt"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
)

// Kind identifies a spawnable marker decoded from a room bitmap
type Kind uint8

const (
	KindEnemy Kind = iota
	KindEnemyReverse
	KindRotator
	KindTreasure
	KindDialog
	KindStairs
	KindReplicator
	KindEscaper
	KindSignpost1
	KindSignpost2
	KindBoss
)

var kindNames = [...]string{
	KindEnemy:        "enemy",
	KindEnemyReverse: "enemy_reverse",
	KindRotator:      "rotator",
	KindTreasure:     "treasure",
	KindDialog:       "dialog",
	KindStairs:       "stairs",
	KindReplicator:   "replicator",
	KindEscaper:      "escaper",
	KindSignpost1:    "signpost1",
	KindSignpost2:    "signpost2",
	KindBoss:         "boss",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Cacheable reports whether entities of this kind persist in the room cache
// Non-cacheable kinds are spawned fresh on every room entry
func (k Kind) Cacheable() bool {
	return k != KindBoss
}

// Factory builds marker entities for the world model
type Factory struct {
	env *Env
}

func NewFactory(env *Env) *Factory {
	return &Factory{env: env}
}

// Build creates the entity for a marker at tile (col, row) of room
func (f *Factory) Build(kind Kind, col, row int, room engine.RoomCoord) (engine.Entity, error) {
	env := f.env
	switch kind {
	case KindEnemy:
		return NewEnemy(env, col, row, false), nil
	case KindEnemyReverse:
		return NewEnemy(env, col, row, true), nil
	case KindRotator:
		return NewRotator(env, col, row), nil
	case KindTreasure:
		return NewPickup(env, col, row, parameter.ItemTreasure), nil
	case KindDialog:
		return NewDialogTrigger(env, col, row, room), nil
	case KindStairs:
		return NewStairs(env, col, row), nil
	case KindReplicator:
		return NewPickup(env, col, row, parameter.ItemReplicator), nil
	case KindEscaper:
		return NewPickup(env, col, row, parameter.ItemEscaper), nil
	case KindSignpost1:
		return NewPickup(env, col, row, parameter.ItemSignpost1), nil
	case KindSignpost2:
		return NewPickup(env, col, row, parameter.ItemSignpost2), nil
	case KindBoss:
		return NewBoss(env, col, row), nil
	}
	return nil, fmt.Errorf("unknown marker kind %d", kind)
}
