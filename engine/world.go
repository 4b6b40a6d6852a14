package engine

import (
	"sort"

	"github.com/lixenwraith/escape-artist/vmath"
)

// Registry owns every live simulation entity for one session
// Not safe for concurrent use; the tick driver is the only caller
type Registry struct {
	nextEntityID ID
	entities     []Entity
	alive        map[ID]struct{}

	// Deferred bulk removals requested during the current update pass
	removals []Predicate

	events *EventQueue
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		nextEntityID: 1,
		entities:     make([]Entity, 0, 64),
		alive:        make(map[ID]struct{}),
		events:       NewEventQueue(),
	}
}

// Add appends an entity; entities keep their ID across remove/re-add
// Adding an entity that is already live is a no-op
func (r *Registry) Add(e Entity) {
	if e.ID() == 0 {
		e.bind(r.nextEntityID)
		r.nextEntityID++
	}
	if _, ok := r.alive[e.ID()]; ok {
		return
	}
	r.alive[e.ID()] = struct{}{}
	r.entities = append(r.entities, e)
}

// Contains reports whether the entity is live
func (r *Registry) Contains(e Entity) bool {
	if e == nil || e.ID() == 0 {
		return false
	}
	_, ok := r.alive[e.ID()]
	return ok
}

// Len returns the live entity count
func (r *Registry) Len() int {
	return len(r.entities)
}

// Remove drops a single entity, no-op if absent
func (r *Registry) Remove(e Entity) {
	if !r.Contains(e) {
		return
	}
	r.RemoveWhere(func(x Entity) bool { return x.ID() == e.ID() })
}

// RemoveWhere drops every live entity matching pred and returns them in insertion order
func (r *Registry) RemoveWhere(pred Predicate) []Entity {
	var removed []Entity
	kept := r.entities[:0]
	for _, e := range r.entities {
		if pred(e) {
			delete(r.alive, e.ID())
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
	return removed
}

// RequestRemoval queues a predicate applied after the current update pass
func (r *Registry) RequestRemoval(pred Predicate) {
	r.removals = append(r.removals, pred)
}

// UpdateAll advances every entity live at tick start, in insertion order
// Entities removed earlier in the same pass are skipped; entities added during the pass wait for the next tick
// After the pass, finished entities are dropped and queued removal predicates are applied
func (r *Registry) UpdateAll() {
	snapshot := make([]Entity, len(r.entities))
	copy(snapshot, r.entities)

	finished := make(map[ID]struct{})
	for _, e := range snapshot {
		if _, ok := r.alive[e.ID()]; !ok {
			continue
		}
		if !e.Update() {
			finished[e.ID()] = struct{}{}
		}
	}

	if len(finished) > 0 {
		r.RemoveWhere(func(e Entity) bool {
			_, done := finished[e.ID()]
			return done
		})
	}

	if len(r.removals) == 0 {
		return
	}
	removals := r.removals
	r.removals = nil
	r.RemoveWhere(func(e Entity) bool {
		for _, pred := range removals {
			if pred(e) {
				return true
			}
		}
		return false
	})
}

// RenderAll draws entities by ascending depth, ties in insertion order
func (r *Registry) RenderAll(s Surface) {
	sorted := make([]Entity, len(r.entities))
	copy(sorted, r.entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth() < sorted[j].Depth()
	})
	for _, e := range sorted {
		e.Render(s)
	}
}

// Query returns all live entities matching pred in insertion order
func (r *Registry) Query(pred Predicate) []Entity {
	var result []Entity
	for _, e := range r.entities {
		if pred(e) {
			result = append(result, e)
		}
	}
	return result
}

// QueryTag returns all live entities carrying tag
func (r *Registry) QueryTag(tag Tag) []Entity {
	return r.Query(WithTag(tag))
}

// Any reports whether at least one live entity matches pred
func (r *Registry) Any(pred Predicate) bool {
	for _, e := range r.entities {
		if pred(e) {
			return true
		}
	}
	return false
}

// Solids returns every live solid entity
func (r *Registry) Solids() []Solid {
	var result []Solid
	for _, e := range r.entities {
		if !e.Tags().Has(TagSolid) {
			continue
		}
		if s, ok := e.(Solid); ok {
			result = append(result, s)
		}
	}
	return result
}

// NearestEscapeTarget returns the active escape target closest to p
// Ties resolve to the first in insertion order
func (r *Registry) NearestEscapeTarget(p vmath.Point) (EscapeTarget, bool) {
	var (
		best     EscapeTarget
		bestDist int
	)
	for _, e := range r.entities {
		t, ok := e.(EscapeTarget)
		if !ok {
			continue
		}
		pt, active := t.EscapePoint()
		if !active {
			continue
		}
		d := vmath.DistanceSq(p, pt)
		if best == nil || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best, best != nil
}

// Emit queues an event for the session to consume after the tick
func (r *Registry) Emit(ev Event) {
	r.events.Push(ev)
}

// DrainEvents returns and clears pending events
func (r *Registry) DrainEvents() []Event {
	return r.events.Consume()
}
