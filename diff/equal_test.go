package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eugenedong/arch-as-code/c4"
)

func TestEqual(t *testing.T) {
	base := func() *c4.Container {
		return &c4.Container{
			Base: c4.Base{
				ID:   "20",
				Name: "API",
				Tags: []c4.Tag{"a", "b"},
				Relationships: []c4.Relationship{
					{ID: "r1", Action: c4.ActionUses, WithID: "21"},
				},
			},
			SystemID: "10",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *c4.Container)
		want   bool
	}{
		{name: "identical", mutate: func(*c4.Container) {}, want: true},
		{name: "tag order ignored", mutate: func(c *c4.Container) { c.Tags = []c4.Tag{"b", "a"} }, want: true},
		{name: "duplicate tag ignored", mutate: func(c *c4.Container) { c.Tags = []c4.Tag{"a", "b", "a"} }, want: true},
		{name: "tag added", mutate: func(c *c4.Container) { c.Tags = append(c.Tags, "c") }, want: false},
		{name: "name changed", mutate: func(c *c4.Container) { c.Name = "Gateway" }, want: false},
		{name: "technology changed", mutate: func(c *c4.Container) { c.Technology = "Go" }, want: false},
		{name: "relationship changed", mutate: func(c *c4.Container) { c.Relationships[0].Technology = "gRPC" }, want: false},
		{name: "relationship removed", mutate: func(c *c4.Container) { c.Relationships = nil }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.mutate(b)
			assert.Equal(t, tt.want, Equal(base(), b))
			if tt.want {
				assert.Empty(t, Explain(base(), b))
			} else {
				assert.NotEmpty(t, Explain(base(), b))
			}
		})
	}
}

func TestEqualEmptyCollections(t *testing.T) {
	a := &c4.Person{Base: c4.Base{ID: "1", Name: "A"}}
	b := &c4.Person{Base: c4.Base{ID: "1", Name: "A", Tags: []c4.Tag{}, Relationships: []c4.Relationship{}}}
	assert.True(t, Equal(a, b))
}

func TestEqualDifferentKinds(t *testing.T) {
	a := &c4.Person{Base: c4.Base{ID: "1", Name: "A"}}
	b := &c4.SoftwareSystem{Base: c4.Base{ID: "1", Name: "A"}}
	assert.False(t, Equal(a, b))
}

func TestEqualIgnoresDeploymentChildren(t *testing.T) {
	a := &c4.DeploymentNode{Base: c4.Base{ID: "1", Name: "AWS"}}
	b := &c4.DeploymentNode{
		Base:     c4.Base{ID: "1", Name: "AWS"},
		Children: []c4.DeploymentNode{{Base: c4.Base{ID: "2", Name: "Region"}}},
	}
	assert.True(t, Equal(a, b))

	b.ContainerInstances = []c4.ContainerInstance{{ID: "3", ContainerReference: c4.Reference{ID: "9"}}}
	assert.False(t, Equal(a, b))
}

func TestEqualTags(t *testing.T) {
	tests := []struct {
		name string
		a    []c4.Tag
		b    []c4.Tag
		want bool
	}{
		{name: "both nil", want: true},
		{name: "nil and empty", a: nil, b: []c4.Tag{}, want: true},
		{name: "both empty", a: []c4.Tag{}, b: []c4.Tag{}, want: true},
		{name: "reordered", a: []c4.Tag{"core", "read"}, b: []c4.Tag{"read", "core"}, want: true},
		{name: "duplicates", a: []c4.Tag{"core"}, b: []c4.Tag{"core", "core"}, want: true},
		{name: "nil and one tag", a: nil, b: []c4.Tag{"core"}, want: false},
		{name: "different tag", a: []c4.Tag{"core"}, b: []c4.Tag{"read"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &c4.Person{Base: c4.Base{ID: "1", Name: "A", Tags: tt.a}}
			b := &c4.Person{Base: c4.Base{ID: "1", Name: "A", Tags: tt.b}}
			assert.Equal(t, tt.want, Equal(a, b))
			assert.Equal(t, tt.want, Equal(b, a))
		})
	}
}
