package c4

import "time"

// Architecture is the root of a product architecture document.
type Architecture struct {
	// Name is the product name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// BusinessUnit owns the product.
	BusinessUnit string `json:"businessUnit,omitempty" yaml:"businessUnit,omitempty"`

	// Description is free text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Decisions are the recorded architecture decisions.
	Decisions []Decision `json:"decisions,omitempty" yaml:"decisions,omitempty" validate:"dive"`

	// Model is the entity graph.
	Model Model `json:"model" yaml:"model"`
}

// Decision is an architecture decision record.
type Decision struct {
	ID      string    `json:"id" yaml:"id" validate:"required"`
	Date    time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Title   string    `json:"title" yaml:"title" validate:"required"`
	Status  string    `json:"status,omitempty" yaml:"status,omitempty"`
	Content string    `json:"content,omitempty" yaml:"content,omitempty"`
}

// Model is the entity graph, held as one collection per kind. Nested
// deployment nodes live only inside their parent's Children.
type Model struct {
	People          []Person         `json:"people,omitempty" yaml:"people,omitempty" validate:"dive"`
	Systems         []SoftwareSystem `json:"systems,omitempty" yaml:"systems,omitempty" validate:"dive"`
	Containers      []Container      `json:"containers,omitempty" yaml:"containers,omitempty" validate:"dive"`
	Components      []Component      `json:"components,omitempty" yaml:"components,omitempty" validate:"dive"`
	DeploymentNodes []DeploymentNode `json:"deploymentNodes,omitempty" yaml:"deploymentNodes,omitempty" validate:"dive"`
}

// Edge is a relationship together with the entity that declares it.
type Edge struct {
	Source       Entity
	Relationship Relationship
}

// AllDeploymentNodesRecursively flattens the deployment node forest in
// pre-order. The returned pointers alias the model.
func (m *Model) AllDeploymentNodesRecursively() []*DeploymentNode {
	var out []*DeploymentNode
	var walk func(nodes []DeploymentNode)
	walk = func(nodes []DeploymentNode) {
		for i := range nodes {
			out = append(out, &nodes[i])
			walk(nodes[i].Children)
		}
	}
	walk(m.DeploymentNodes)
	return out
}

// EntitiesOf returns the entities of one kind, in declaration order.
// Deployment nodes are flattened recursively.
func (m *Model) EntitiesOf(t Type) []Entity {
	var out []Entity
	switch t {
	case TypePerson:
		for i := range m.People {
			out = append(out, &m.People[i])
		}
	case TypeSystem:
		for i := range m.Systems {
			out = append(out, &m.Systems[i])
		}
	case TypeContainer:
		for i := range m.Containers {
			out = append(out, &m.Containers[i])
		}
	case TypeComponent:
		for i := range m.Components {
			out = append(out, &m.Components[i])
		}
	case TypeDeploymentNode:
		for _, n := range m.AllDeploymentNodesRecursively() {
			out = append(out, n)
		}
	}
	return out
}

// Entities returns every entity of the model, kind by kind.
func (m *Model) Entities() []Entity {
	var out []Entity
	for _, t := range Types {
		out = append(out, m.EntitiesOf(t)...)
	}
	return out
}

// AllRelationships returns every relationship of the model with its source.
func (m *Model) AllRelationships() []Edge {
	var out []Edge
	for _, e := range m.Entities() {
		for _, r := range e.GetRelationships() {
			out = append(out, Edge{Source: e, Relationship: r})
		}
	}
	return out
}
