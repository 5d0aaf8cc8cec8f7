package c4

// Tag is a free-form label attached to an entity. An entity's tags form a set.
type Tag string

// Entity is the capability shared by every element of the C4 model.
// Concrete variants are *Person, *SoftwareSystem, *Container, *Component and
// *DeploymentNode.
type Entity interface {
	// Type returns the entity kind.
	Type() Type

	// GetID returns the globally unique, stable id.
	GetID() string

	// GetAlias returns the optional alias.
	GetAlias() string

	// GetPath returns the hierarchical address of the entity.
	GetPath() Path

	// GetName returns the display name.
	GetName() string

	// GetDescription returns the free-text description.
	GetDescription() string

	// GetTags returns the tags attached to the entity.
	GetTags() []Tag

	// GetRelationships returns the outgoing relationships in declaration order.
	GetRelationships() []Relationship
}

// Base is the field record common to all entities.
type Base struct {
	// ID is the stable identifier used for cross-snapshot identity.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Alias is an optional human-friendly handle, such as "@Developer".
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`

	// Path is the hierarchical address of the entity.
	Path Path `json:"path,omitempty" yaml:"path,omitempty"`

	// Name is the display name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Description is free text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Tags are labels used for filtering and styling.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Relationships are the outgoing edges of the entity.
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty" validate:"dive"`
}

// GetID implements Entity.
func (b Base) GetID() string { return b.ID }

// GetAlias implements Entity.
func (b Base) GetAlias() string { return b.Alias }

// GetPath implements Entity.
func (b Base) GetPath() Path { return b.Path }

// GetName implements Entity.
func (b Base) GetName() string { return b.Name }

// GetDescription implements Entity.
func (b Base) GetDescription() string { return b.Description }

// GetTags implements Entity.
func (b Base) GetTags() []Tag { return b.Tags }

// GetRelationships implements Entity.
func (b Base) GetRelationships() []Relationship { return b.Relationships }

// Relationship is a directed edge from its owning entity to another entity.
// The destination is addressed by id or, failing that, by alias.
type Relationship struct {
	// ID identifies the relationship; views refer to it.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Alias is an optional handle for the relationship.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`

	// Action is the relationship verb.
	Action Action `json:"action" yaml:"action" validate:"required,oneof=USES INTERACTS_WITH DELIVERS"`

	// WithID is the destination entity id.
	WithID string `json:"withId,omitempty" yaml:"withId,omitempty" validate:"required_without=WithAlias"`

	// WithAlias is the destination entity alias, used when WithID is empty.
	WithAlias string `json:"withAlias,omitempty" yaml:"withAlias,omitempty"`

	// Description is free text, such as "Runs".
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Technology is the transport or protocol, such as "HTTPS".
	Technology string `json:"technology,omitempty" yaml:"technology,omitempty"`
}

// Person is a human user of the architecture.
type Person struct {
	Base `yaml:",inline"`

	// Location places the person inside or outside the organisation.
	Location Location `json:"location,omitempty" yaml:"location,omitempty" validate:"omitempty,oneof=INTERNAL EXTERNAL UNSPECIFIED"`
}

// Type implements Entity.
func (Person) Type() Type { return TypePerson }

// SoftwareSystem is the highest level of abstraction below a person.
type SoftwareSystem struct {
	Base `yaml:",inline"`

	// Location places the system inside or outside the organisation.
	Location Location `json:"location,omitempty" yaml:"location,omitempty" validate:"omitempty,oneof=INTERNAL EXTERNAL UNSPECIFIED"`
}

// Type implements Entity.
func (SoftwareSystem) Type() Type { return TypeSystem }

// Container is a separately deployable unit belonging to a software system.
type Container struct {
	Base `yaml:",inline"`

	// SystemID is the id of the owning software system.
	SystemID string `json:"systemId,omitempty" yaml:"systemId,omitempty" validate:"required_without=SystemAlias"`

	// SystemAlias is the alias of the owning software system, used when SystemID is empty.
	SystemAlias string `json:"systemAlias,omitempty" yaml:"systemAlias,omitempty"`

	// Technology describes the implementation stack.
	Technology string `json:"technology,omitempty" yaml:"technology,omitempty"`

	// URL points at documentation or the running service.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Type implements Entity.
func (Container) Type() Type { return TypeContainer }

// Component is a grouping of functionality inside a container.
type Component struct {
	Base `yaml:",inline"`

	// ContainerID is the id of the owning container.
	ContainerID string `json:"containerId,omitempty" yaml:"containerId,omitempty" validate:"required_without=ContainerAlias"`

	// ContainerAlias is the alias of the owning container, used when ContainerID is empty.
	ContainerAlias string `json:"containerAlias,omitempty" yaml:"containerAlias,omitempty"`

	// Technology describes the implementation stack.
	Technology string `json:"technology,omitempty" yaml:"technology,omitempty"`

	// URL points at documentation or source.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// SrcMappings lists source files or directories implementing the component.
	SrcMappings []string `json:"srcMappings,omitempty" yaml:"srcMappings,omitempty"`
}

// Type implements Entity.
func (Component) Type() Type { return TypeComponent }

// Reference addresses another entity by id or alias.
type Reference struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty" validate:"required_without=Alias"`
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// ContainerInstance places a number of replicas of a container on a deployment node.
type ContainerInstance struct {
	// ID identifies the instance.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Environment is the deployment environment, such as "Production".
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`

	// ContainerReference points at the deployed container.
	ContainerReference Reference `json:"containerReference" yaml:"containerReference"`

	// Instances is the replica count.
	Instances int `json:"instances,omitempty" yaml:"instances,omitempty" validate:"gte=0"`
}

// DeploymentNode is an infrastructure node. It is the only recursive entity:
// it owns its child nodes and the container instances it hosts.
type DeploymentNode struct {
	Base `yaml:",inline"`

	// Environment is the deployment environment, such as "Production".
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`

	// Technology describes the infrastructure, such as "Amazon Web Services".
	Technology string `json:"technology,omitempty" yaml:"technology,omitempty"`

	// Instances is the number of copies of this node.
	Instances int `json:"instances,omitempty" yaml:"instances,omitempty" validate:"gte=0"`

	// Children are the nested deployment nodes, in declaration order.
	Children []DeploymentNode `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`

	// ContainerInstances are the containers deployed on this node.
	ContainerInstances []ContainerInstance `json:"containerInstances,omitempty" yaml:"containerInstances,omitempty" validate:"dive"`
}

// Type implements Entity.
func (DeploymentNode) Type() Type { return TypeDeploymentNode }

var (
	_ Entity = (*Person)(nil)
	_ Entity = (*SoftwareSystem)(nil)
	_ Entity = (*Container)(nil)
	_ Entity = (*Component)(nil)
	_ Entity = (*DeploymentNode)(nil)
)
