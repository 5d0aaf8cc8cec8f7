package c4

// Type identifies the kind of an entity in the C4 model.
type Type string

const (
	// TypePerson is a human user of the architecture.
	TypePerson Type = "person"

	// TypeSystem is a software system.
	TypeSystem Type = "system"

	// TypeContainer is a deployable unit inside a software system.
	TypeContainer Type = "container"

	// TypeComponent is a logical building block inside a container.
	TypeComponent Type = "component"

	// TypeDeploymentNode is an infrastructure node hosting container instances.
	TypeDeploymentNode Type = "deploymentNode"
)

// Types lists every entity kind in model collection order.
var Types = []Type{TypePerson, TypeSystem, TypeContainer, TypeComponent, TypeDeploymentNode}

// String returns the string representation of the Type.
func (t Type) String() string {
	return string(t)
}

// Location places a person or software system relative to the organisation
// that owns the architecture.
type Location string

const (
	// LocationInternal marks entities owned by the organisation.
	LocationInternal Location = "INTERNAL"

	// LocationExternal marks third-party entities.
	LocationExternal Location = "EXTERNAL"

	// LocationUnspecified is used when ownership is not recorded.
	LocationUnspecified Location = "UNSPECIFIED"
)

// String returns the string representation of the Location.
func (l Location) String() string {
	return string(l)
}

// Action is the verb of a relationship.
type Action string

const (
	// ActionUses is a system-to-system or container-to-container dependency.
	ActionUses Action = "USES"

	// ActionInteractsWith is a person interacting with another person.
	ActionInteractsWith Action = "INTERACTS_WITH"

	// ActionDelivers is a system delivering something to a person.
	ActionDelivers Action = "DELIVERS"
)

// String returns the string representation of the Action.
func (a Action) String() string {
	return string(a)
}
