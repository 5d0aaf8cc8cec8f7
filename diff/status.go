package diff

// Status classifies how an entity changed between two snapshots.
type Status string

const (
	// StatusCreated means the entity is absent before and present after.
	StatusCreated Status = "CREATED"

	// StatusDeleted means the entity is present before and absent after.
	StatusDeleted Status = "DELETED"

	// StatusUpdated means the entity is present in both and its own fields differ.
	StatusUpdated Status = "UPDATED"

	// StatusNoUpdate means the entity is present in both and structurally equal.
	StatusNoUpdate Status = "NO_UPDATE"

	// StatusChildrenUpdated means the entity's own fields are unchanged but at
	// least one descendant changed.
	StatusChildrenUpdated Status = "CHILDREN_UPDATED"
)

// Statuses lists every status in reporting order.
var Statuses = []Status{StatusCreated, StatusDeleted, StatusUpdated, StatusChildrenUpdated, StatusNoUpdate}

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// Inverse returns the status seen when the two snapshots are swapped.
func (s Status) Inverse() Status {
	switch s {
	case StatusCreated:
		return StatusDeleted
	case StatusDeleted:
		return StatusCreated
	default:
		return s
	}
}
