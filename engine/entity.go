package engine

import (
	"fmt"

	"github.com/lixenwraith/escape-artist/vmath"
)

// ID is a unique identifier for a registered entity, 0 = unbound
type ID uint64

// Tag is a capability bitmask declared by an entity at construction
type Tag uint16

const (
	// TagCacheable entities persist in the room cache across room transitions
	TagCacheable Tag = 1 << iota
	// TagTransient entities are hostile/hazard/feedback objects purged on respawn
	TagTransient
	// TagReplicated marks dropped bodies; purged on every room change
	TagReplicated
	// TagSolid entities implement Solid and block movement
	TagSolid
	// TagStairs entities switch the character into ladder movement
	TagStairs
	// TagHostile entities implement Damageable and can be hit by dropped bodies
	TagHostile
	// TagRoomScoped entities belong to the room they were spawned in and are dropped on exit
	TagRoomScoped
)

// Has reports whether all bits in other are set
func (t Tag) Has(other Tag) bool {
	return t&other == other
}

// Entity is the minimal contract for every simulation object
type Entity interface {
	ID() ID
	// Update advances one tick, returns false once the entity is finished
	Update() bool
	Render(s Surface)
	// Depth orders rendering, lower first
	Depth() int
	Tags() Tag

	bind(id ID)
}

// Base carries the registry identity; embed it to satisfy Entity
type Base struct {
	id ID
}

// ID returns the registry-assigned identifier (0 before first Add)
func (b *Base) ID() ID { return b.id }

func (b *Base) bind(id ID) {
	if b.id == 0 {
		b.id = id
	}
}

// Solid entities expose a footprint that blocks movement
type Solid interface {
	Entity
	Bounds() vmath.Rect
}

// EscapeTarget entities expose a mirror-teleport pivot
// ok is false when the capability is currently inactive
type EscapeTarget interface {
	Entity
	EscapePoint() (p vmath.Point, ok bool)
}

// Damageable entities can take damage from dropped bodies
type Damageable interface {
	Entity
	Bounds() vmath.Rect
	Damage(amount int)
}

// Predicate selects entities for queries and bulk removal
type Predicate func(Entity) bool

// WithTag returns a predicate matching entities carrying all bits of tag
func WithTag(tag Tag) Predicate {
	return func(e Entity) bool { return e.Tags().Has(tag) }
}

// RoomCoord addresses one room inside the world bitmap
type RoomCoord struct {
	Col, Row int
}

// Add returns the coordinate offset by (dc, dr)
func (c RoomCoord) Add(dc, dr int) RoomCoord {
	return RoomCoord{Col: c.Col + dc, Row: c.Row + dr}
}

func (c RoomCoord) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}
