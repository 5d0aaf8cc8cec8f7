// Package diff computes per-entity differences between two snapshots of an
// architecture model.
//
// Entities are matched by id within each kind. Every id present in either
// snapshot yields exactly one Diff; a parent whose own fields are unchanged is
// reported as CHILDREN_UPDATED when anything beneath it changed.
package diff

import (
	"log/slog"
	"sort"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
)

// Diff is the change record of one entity.
type Diff struct {
	// ID is the entity id shared by Before and After.
	ID string `json:"id"`

	// Type is the entity kind.
	Type c4.Type `json:"type"`

	// Before is the entity in the first snapshot, or nil if it was created.
	Before c4.Entity `json:"before,omitempty"`

	// After is the entity in the second snapshot, or nil if it was deleted.
	After c4.Entity `json:"after,omitempty"`

	// Status classifies the change.
	Status Status `json:"status"`
}

// Entity returns After if present, Before otherwise.
//
//nolint:ireturn // entities are a closed set of variants behind c4.Entity.
func (d Diff) Entity() c4.Entity {
	if d.After != nil {
		return d.After
	}
	return d.Before
}

type key struct {
	t  c4.Type
	id string
}

// Set is an immutable collection of diffs holding at most one Diff per kind and id.
type Set struct {
	diffs map[key]Diff
}

func newSet() *Set {
	return &Set{diffs: make(map[key]Diff)}
}

// Len returns the number of diffs.
func (s *Set) Len() int {
	return len(s.diffs)
}

// Get returns the diff of the entity of kind t with the given id.
func (s *Set) Get(t c4.Type, id string) (Diff, bool) {
	d, ok := s.diffs[key{t: t, id: id}]
	return d, ok
}

// Find returns the diff with the given id, searching kinds in model order.
func (s *Set) Find(id string) (Diff, bool) {
	for _, t := range c4.Types {
		if d, ok := s.Get(t, id); ok {
			return d, true
		}
	}
	return Diff{}, false
}

// Slice returns the diffs ordered by kind, then id.
func (s *Set) Slice() []Diff {
	out := make([]Diff, 0, len(s.diffs))
	for _, d := range s.diffs {
		out = append(out, d)
	}
	order := make(map[c4.Type]int, len(c4.Types))
	for i, t := range c4.Types {
		order[t] = i
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return order[out[i].Type] < order[out[j].Type]
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByStatus returns the diffs with the given status, ordered as Slice.
func (s *Set) ByStatus(status Status) []Diff {
	var out []Diff
	for _, d := range s.Slice() {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// Counts returns the number of diffs per status.
func (s *Set) Counts() map[Status]int {
	out := make(map[Status]int)
	for _, d := range s.diffs {
		out[d.Status]++
	}
	return out
}

// HasChanges reports whether any diff is not NO_UPDATE.
func (s *Set) HasChanges() bool {
	for _, d := range s.diffs {
		if d.Status != StatusNoUpdate {
			return true
		}
	}
	return false
}

// Compute diffs first (before) against second (after). Both models are only
// read. The only error is malformed input, such as an id used twice within
// one model.
func Compute(first, second *c4.Model, opts ...Option) (*Set, error) {
	o := applyOptions(opts)

	before, err := c4.NewIndex(first)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid first architecture")
	}
	after, err := c4.NewIndex(second)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid second architecture")
	}

	set := newSet()
	for _, t := range c4.Types {
		for _, id := range unionIDs(first, second, t) {
			b := findOfType(before, t, id)
			a := findOfType(after, t, id)
			set.diffs[key{t: t, id: id}] = Diff{
				ID:     id,
				Type:   t,
				Before: b,
				After:  a,
				Status: calculateStatus(b, a),
			}
		}
	}

	rollUpChildren(set, before, after)

	if o.logger != nil {
		counts := set.Counts()
		o.logger.Debug("architecture diff computed",
			slog.Int("total", set.Len()),
			slog.Int("created", counts[StatusCreated]),
			slog.Int("deleted", counts[StatusDeleted]),
			slog.Int("updated", counts[StatusUpdated]),
			slog.Int("children_updated", counts[StatusChildrenUpdated]),
		)
	}

	return set, nil
}

// unionIDs returns the sorted ids of kind t present in either model.
func unionIDs(first, second *c4.Model, t c4.Type) []string {
	seen := make(map[string]struct{})
	for _, m := range []*c4.Model{first, second} {
		if m == nil {
			continue
		}
		for _, e := range m.EntitiesOf(t) {
			seen[e.GetID()] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

//nolint:ireturn // entities are a closed set of variants behind c4.Entity.
func findOfType(ix *c4.Index, t c4.Type, id string) c4.Entity {
	e, ok := ix.FindEntityByID(id)
	if !ok || e.Type() != t {
		return nil
	}
	return e
}

// calculateStatus classifies a single entity. Both sides absent cannot happen
// for an id drawn from the union of both models and is a programming error.
func calculateStatus(before, after c4.Entity) Status {
	switch {
	case before == nil && after == nil:
		panic("diff: entity absent from both snapshots")
	case before == nil:
		return StatusCreated
	case after == nil:
		return StatusDeleted
	case Equal(before, after):
		return StatusNoUpdate
	default:
		return StatusUpdated
	}
}

// rollUpChildren marks every NO_UPDATE ancestor of a changed entity as
// CHILDREN_UPDATED. Containment is taken from both snapshots so that created
// and deleted children count towards their parent.
func rollUpChildren(set *Set, before, after *c4.Index) {
	for _, d := range set.Slice() {
		if d.Status == StatusNoUpdate {
			continue
		}
		visited := map[string]bool{d.ID: true}
		for _, parent := range ancestors(d.ID, before, after, visited) {
			for _, t := range c4.Types {
				k := key{t: t, id: parent}
				if pd, ok := set.diffs[k]; ok && pd.Status == StatusNoUpdate {
					pd.Status = StatusChildrenUpdated
					set.diffs[k] = pd
				}
			}
		}
	}
}

// ancestors walks up the containment hierarchy of id in both snapshots.
func ancestors(id string, before, after *c4.Index, visited map[string]bool) []string {
	var out []string
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ix := range []*c4.Index{before, after} {
			p, ok := ix.ParentID(cur)
			if !ok || visited[p] {
				continue
			}
			visited[p] = true
			out = append(out, p)
			queue = append(queue, p)
		}
	}
	return out
}
