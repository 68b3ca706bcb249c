package ecs

import (
	"sort"

	"github.com/milk9111/pixelrig/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id. It reports
// whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func Entities(w *World) []Entity {
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// First returns the lowest-id live entity that has the given component.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.storeFor(kind)
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	var best Entity
	for _, e := range s.Entities() {
		if !best.Valid() || e.id() < best.id() {
			best = e
		}
	}
	return best, true
}

// Query returns live entities that have every listed component, sorted by id
// so iteration order is deterministic.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	out := IntersectEntities(sets...)
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

func (w *World) storeFor(kind component.Kind) *SparseSet {
	if w == nil || kind == nil || !kind.Valid() {
		return nil
	}
	return w.stores[kind.ID()]
}

func (w *World) ensureStore(kind component.Kind) *SparseSet {
	s := w.stores[kind.ID()]
	if s == nil {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	return s
}
