package diff

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/eugenedong/arch-as-code/c4"
)

var tagsType = reflect.TypeOf([]c4.Tag(nil))

// equalOpts defines structural equality of entities. Tags are a set, nil and
// empty collections are the same, and a deployment node's children are left
// out because each child is diffed as an entity of its own.
//
// go-cmp panics when two options apply to the same value, so EquateEmpty is
// kept off tag slices and equalTags alone decides them.
var equalOpts = cmp.Options{
	cmp.Comparer(equalTags),
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type() != tagsType
	}, cmpopts.EquateEmpty()),
	cmpopts.IgnoreFields(c4.DeploymentNode{}, "Children"),
}

// equalTags compares tags as sets: order, duplicates and nil versus empty do
// not matter.
func equalTags(a, b []c4.Tag) bool {
	as := make(map[c4.Tag]struct{}, len(a))
	for _, t := range a {
		as[t] = struct{}{}
	}
	bs := make(map[c4.Tag]struct{}, len(b))
	for _, t := range b {
		bs[t] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for t := range as {
		if _, ok := bs[t]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether two entities are structurally equal over their own fields.
func Equal(a, b c4.Entity) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Explain returns a human readable description of the differences between
// two entities, or the empty string if they are equal.
func Explain(a, b c4.Entity) string {
	return cmp.Diff(a, b, equalOpts)
}
