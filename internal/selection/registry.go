package selection

import "github.com/Faultbox/boxselect/internal/physics"

// Selectable is anything that can be selected. Implementations are expected to
// be pointer types so they can be compared and used as set members.
type Selectable interface {
	OnSelect()
	OnDeselect()
}

// Registry maps collision bodies to the selectable objects that own them.
// Bodies without an entry are ignored by the selection list.
type Registry struct {
	entries map[physics.BodyID]Selectable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[physics.BodyID]Selectable)}
}

// Register associates a body with a selectable, replacing any previous entry.
func (r *Registry) Register(id physics.BodyID, s Selectable) {
	r.entries[id] = s
}

// Unregister removes the entry for a body.
func (r *Registry) Unregister(id physics.BodyID) {
	delete(r.entries, id)
}

// Lookup returns the selectable registered for a body.
func (r *Registry) Lookup(id physics.BodyID) (Selectable, bool) {
	s, ok := r.entries[id]
	return s, ok
}

// Len returns the number of registered bodies.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Resolve maps bodies to their selectables, in body order, dropping
// unregistered bodies and duplicates (one selectable may own several bodies).
func (r *Registry) Resolve(bodies []*physics.Body) []Selectable {
	out := make([]Selectable, 0, len(bodies))
	seen := make(map[Selectable]struct{}, len(bodies))
	for _, b := range bodies {
		s, ok := r.entries[b.ID]
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
