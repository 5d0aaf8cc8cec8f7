package c4

import "github.com/eugenedong/arch-as-code/errors"

// Index resolves entities of one model by id, path or alias. It is built once
// and is read-only afterwards; the model must not be mutated while an Index
// over it is in use.
type Index struct {
	byID    map[string]Entity
	byPath  map[Path]Entity
	byAlias map[string]Entity
	parents map[string]string
}

// NewIndex indexes every entity of m, including nested deployment nodes.
// Two entities sharing an id is malformed input and yields a CodeDuplicateID
// error. Duplicate paths and aliases resolve to the first declaration.
func NewIndex(m *Model) (*Index, error) {
	ix := &Index{
		byID:    make(map[string]Entity),
		byPath:  make(map[Path]Entity),
		byAlias: make(map[string]Entity),
		parents: make(map[string]string),
	}
	if m == nil {
		return ix, nil
	}

	for _, e := range m.Entities() {
		id := e.GetID()
		if prev, ok := ix.byID[id]; ok {
			return nil, errors.NewWithContext(
				errors.CodeDuplicateID,
				"duplicate entity id "+id,
				map[string]interface{}{
					"id":     id,
					"first":  prev.Type().String(),
					"second": e.Type().String(),
				},
			)
		}
		ix.byID[id] = e

		if p := e.GetPath(); p != "" {
			if _, ok := ix.byPath[p]; !ok {
				ix.byPath[p] = e
			}
		}
		if a := e.GetAlias(); a != "" {
			if _, ok := ix.byAlias[a]; !ok {
				ix.byAlias[a] = e
			}
		}
	}

	ix.indexParents(m)
	return ix, nil
}

func (ix *Index) indexParents(m *Model) {
	for i := range m.Containers {
		c := &m.Containers[i]
		if parent, ok := ix.ResolveReference(c.SystemID, c.SystemAlias); ok {
			ix.parents[c.ID] = parent.GetID()
		}
	}
	for i := range m.Components {
		c := &m.Components[i]
		if parent, ok := ix.ResolveReference(c.ContainerID, c.ContainerAlias); ok {
			ix.parents[c.ID] = parent.GetID()
		}
	}
	for _, n := range m.AllDeploymentNodesRecursively() {
		for _, child := range n.Children {
			ix.parents[child.ID] = n.ID
		}
	}
}

// FindEntityByID returns the entity with the given id.
func (ix *Index) FindEntityByID(id string) (Entity, bool) {
	e, ok := ix.byID[id]
	return e, ok
}

// FindEntityByPath returns the entity at the given path.
func (ix *Index) FindEntityByPath(p Path) (Entity, bool) {
	e, ok := ix.byPath[p]
	return e, ok
}

// FindEntityByAlias returns the entity with the given alias.
func (ix *Index) FindEntityByAlias(alias string) (Entity, bool) {
	e, ok := ix.byAlias[alias]
	return e, ok
}

// ResolveReference looks an entity up by id, falling back to alias when id is
// empty.
func (ix *Index) ResolveReference(id, alias string) (Entity, bool) {
	if id != "" {
		return ix.FindEntityByID(id)
	}
	if alias != "" {
		return ix.FindEntityByAlias(alias)
	}
	return nil, false
}

// ParentID returns the id of the entity that contains id: a container's
// system, a component's container or a deployment node's parent node.
func (ix *Index) ParentID(id string) (string, bool) {
	p, ok := ix.parents[id]
	return p, ok
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int {
	return len(ix.byID)
}
