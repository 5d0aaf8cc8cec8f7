package c4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenedong/arch-as-code/errors"
)

func sampleModel() *Model {
	return &Model{
		People: []Person{{
			Base: Base{
				ID:    "1",
				Alias: "@Reader",
				Name:  "Reader",
				Path:  PersonPath("Reader"),
				Relationships: []Relationship{
					{ID: "r1", Action: ActionUses, WithID: "2", Description: "Browses"},
				},
			},
			Location: LocationExternal,
		}},
		Systems: []SoftwareSystem{{
			Base:     Base{ID: "2", Alias: "@Bookstore", Name: "Bookstore", Path: SystemPath("Bookstore")},
			Location: LocationInternal,
		}},
		Containers: []Container{{
			Base:        Base{ID: "3", Name: "API", Path: ContainerPath("Bookstore", "API")},
			SystemAlias: "@Bookstore",
			Technology:  "Go",
		}},
		Components: []Component{{
			Base:        Base{ID: "4", Name: "Search", Path: ComponentPath("Bookstore", "API", "Search")},
			ContainerID: "3",
		}},
		DeploymentNodes: []DeploymentNode{{
			Base:        Base{ID: "5", Name: "AWS"},
			Environment: "Production",
			Children: []DeploymentNode{{
				Base: Base{ID: "6", Name: "us-east-1"},
				Children: []DeploymentNode{{
					Base: Base{ID: "7", Name: "EKS"},
					ContainerInstances: []ContainerInstance{
						{ID: "8", ContainerReference: Reference{ID: "3"}, Instances: 2},
					},
				}},
			}},
		}},
	}
}

func TestNewIndex(t *testing.T) {
	ix, err := NewIndex(sampleModel())
	require.NoError(t, err)
	assert.Equal(t, 7, ix.Len())

	t.Run("find by id across collections", func(t *testing.T) {
		for id, want := range map[string]Type{
			"1": TypePerson,
			"2": TypeSystem,
			"3": TypeContainer,
			"4": TypeComponent,
			"5": TypeDeploymentNode,
			"7": TypeDeploymentNode,
		} {
			e, ok := ix.FindEntityByID(id)
			require.True(t, ok, "id %s", id)
			assert.Equal(t, want, e.Type(), "id %s", id)
			assert.Equal(t, id, e.GetID())
		}
	})

	t.Run("absence is not an error", func(t *testing.T) {
		e, ok := ix.FindEntityByID("99")
		assert.False(t, ok)
		assert.Nil(t, e)

		_, ok = ix.FindEntityByPath("c4://Nope")
		assert.False(t, ok)
	})

	t.Run("find by path", func(t *testing.T) {
		e, ok := ix.FindEntityByPath(ComponentPath("Bookstore", "API", "Search"))
		require.True(t, ok)
		assert.Equal(t, "4", e.GetID())

		e, ok = ix.FindEntityByPath("@Reader")
		require.True(t, ok)
		assert.Equal(t, "1", e.GetID())
	})

	t.Run("find by alias", func(t *testing.T) {
		e, ok := ix.FindEntityByAlias("@Bookstore")
		require.True(t, ok)
		assert.Equal(t, "2", e.GetID())
	})

	t.Run("parents", func(t *testing.T) {
		tests := []struct {
			child  string
			parent string
		}{
			{child: "3", parent: "2"},
			{child: "4", parent: "3"},
			{child: "6", parent: "5"},
			{child: "7", parent: "6"},
		}
		for _, tt := range tests {
			got, ok := ix.ParentID(tt.child)
			require.True(t, ok, "child %s", tt.child)
			assert.Equal(t, tt.parent, got)
		}

		_, ok := ix.ParentID("5")
		assert.False(t, ok)
	})
}

func TestNewIndexDuplicateID(t *testing.T) {
	tests := []struct {
		name  string
		model *Model
	}{
		{
			name: "same collection",
			model: &Model{People: []Person{
				{Base: Base{ID: "1", Name: "A"}},
				{Base: Base{ID: "1", Name: "B"}},
			}},
		},
		{
			name: "across collections",
			model: &Model{
				People:  []Person{{Base: Base{ID: "1", Name: "A"}}},
				Systems: []SoftwareSystem{{Base: Base{ID: "1", Name: "S"}}},
			},
		},
		{
			name: "nested deployment node",
			model: &Model{
				Systems: []SoftwareSystem{{Base: Base{ID: "9", Name: "S"}}},
				DeploymentNodes: []DeploymentNode{{
					Base:     Base{ID: "5", Name: "AWS"},
					Children: []DeploymentNode{{Base: Base{ID: "9", Name: "Region"}}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := NewIndex(tt.model)
			require.Error(t, err)
			assert.Nil(t, ix)
			assert.Equal(t, errors.CodeDuplicateID, errors.GetCode(err))
		})
	}
}

func TestNewIndexNilModel(t *testing.T) {
	ix, err := NewIndex(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
}

func TestModelTraversal(t *testing.T) {
	m := sampleModel()

	nodes := m.AllDeploymentNodesRecursively()
	require.Len(t, nodes, 3)
	assert.Equal(t, []string{"5", "6", "7"}, []string{nodes[0].ID, nodes[1].ID, nodes[2].ID})

	assert.Len(t, m.Entities(), 7)
	assert.Len(t, m.EntitiesOf(TypeDeploymentNode), 3)

	edges := m.AllRelationships()
	require.Len(t, edges, 1)
	assert.Equal(t, "1", edges[0].Source.GetID())
	assert.Equal(t, "2", edges[0].Relationship.WithID)
}
