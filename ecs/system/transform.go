package system

import (
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
)

// maxHierarchyDepth bounds parent chains so a cycle cannot recurse forever.
const maxHierarchyDepth = 32

// TransformPropagationSystem writes GlobalTransform for every entity with a
// Transform, composing through Parent links.
type TransformPropagationSystem struct{}

func NewTransformPropagationSystem() *TransformPropagationSystem {
	return &TransformPropagationSystem{}
}

func (s *TransformPropagationSystem) Update(w *ecs.World) {
	resolved := make(map[ecs.Entity]component.Transform)
	for _, e := range w.Query(component.TransformComponent.Kind()) {
		global := resolveGlobal(w, e, resolved, 0)
		if g, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
			g.Transform = global
			continue
		}
		if err := ecs.Add(w, e, component.GlobalTransformComponent.Kind(), &component.GlobalTransform{Transform: global}); err != nil {
			panic("transform system: add global transform: " + err.Error())
		}
	}
}

func resolveGlobal(w *ecs.World, e ecs.Entity, resolved map[ecs.Entity]component.Transform, depth int) component.Transform {
	if t, ok := resolved[e]; ok {
		return t
	}
	local, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return component.NewTransform(0, 0, 0)
	}

	global := *local
	if parent, ok := ecs.Get(w, e, component.ParentComponent.Kind()); ok && depth < maxHierarchyDepth {
		p := ecs.Entity(parent.Entity)
		if ecs.IsAlive(w, p) && p != e {
			global = resolveGlobal(w, p, resolved, depth+1).Mul(*local)
		}
	}
	resolved[e] = global
	return global
}
