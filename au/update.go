// Package au models Architecture Update documents: the technical design
// decisions (TDDs), functional requirements and feature stories describing a
// proposed change to a product architecture.
package au

import (
	"sort"
	"strings"
)

const componentReferencePrefix = "Component-"

// TddID identifies a technical design decision within one document.
type TddID string

// FunctionalRequirementID identifies a functional requirement within one document.
type FunctionalRequirementID string

// DecisionID identifies a decision within one document.
type DecisionID string

// ComponentReference is the textual reference "Component-<id>" to a component
// of the architecture.
type ComponentReference string

// NewComponentReference returns the reference to the component with the given id.
func NewComponentReference(id string) ComponentReference {
	return ComponentReference(componentReferencePrefix + id)
}

// ComponentID extracts the component id. It reports false when the reference
// is not of the form "Component-<id>".
func (r ComponentReference) ComponentID() (string, bool) {
	id, ok := strings.CutPrefix(string(r), componentReferencePrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// String returns the string representation of the ComponentReference.
func (r ComponentReference) String() string {
	return string(r)
}

// ArchitectureUpdate is the root of an Architecture Update document.
type ArchitectureUpdate struct {
	// Name identifies the update.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Milestone is the product milestone the update belongs to.
	Milestone string `json:"milestone,omitempty" yaml:"milestone,omitempty"`

	// Authors wrote the update.
	Authors []Person `json:"authors,omitempty" yaml:"authors,omitempty" validate:"dive"`

	// PCAs are the product chief architects approving the update.
	PCAs []Person `json:"PCAs,omitempty" yaml:"PCAs,omitempty" validate:"dive"`

	// P2 links the product requirement document.
	P2 P2 `json:"P2" yaml:"P2"`

	// P1 links the milestone summary.
	P1 P1 `json:"P1" yaml:"P1"`

	// UsefulLinks are supporting documents.
	UsefulLinks []Link `json:"useful-links,omitempty" yaml:"useful-links,omitempty"`

	// MilestoneDependencies are milestones this update depends on.
	MilestoneDependencies []MilestoneDependency `json:"milestone-dependencies,omitempty" yaml:"milestone-dependencies,omitempty"`

	// Decisions are keyed by decision id.
	Decisions map[DecisionID]Decision `json:"decisions,omitempty" yaml:"decisions,omitempty"`

	// TDDs are grouped by the component they describe, then keyed by TDD id.
	TDDs map[ComponentReference]map[TddID]Tdd `json:"tdds,omitempty" yaml:"tdds,omitempty"`

	// FunctionalRequirements are keyed by requirement id.
	FunctionalRequirements map[FunctionalRequirementID]FunctionalRequirement `json:"functional-requirements,omitempty" yaml:"functional-requirements,omitempty"`

	// Capabilities holds the epic and its feature stories.
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities"`
}

// Person is an author or product chief architect.
type Person struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Jira references a ticket. An empty Ticket means no ticket exists yet.
type Jira struct {
	Ticket string `json:"ticket,omitempty" yaml:"ticket"`
	Link   string `json:"link,omitempty" yaml:"link"`
}

// P2 links the product requirement document.
type P2 struct {
	Link string `json:"link,omitempty" yaml:"link"`
	Jira Jira   `json:"jira" yaml:"jira"`
}

// P1 links the milestone summary.
type P1 struct {
	Link      string   `json:"link,omitempty" yaml:"link"`
	Jira      Jira     `json:"jira" yaml:"jira"`
	Sentences []string `json:"sentences,omitempty" yaml:"sentences,omitempty"`
}

// Link is a described hyperlink.
type Link struct {
	Description string `json:"description,omitempty" yaml:"description"`
	Link        string `json:"link,omitempty" yaml:"link"`
}

// MilestoneDependency records a dependency on another milestone.
type MilestoneDependency struct {
	Description string `json:"description,omitempty" yaml:"description"`
	Links       []Link `json:"links,omitempty" yaml:"links,omitempty"`
}

// Decision is a design decision backed by TDDs.
type Decision struct {
	Text          string  `json:"text" yaml:"text"`
	TDDReferences []TddID `json:"tdd-references,omitempty" yaml:"tdd-references,omitempty"`
}

// Tdd is a technical design decision about one component.
type Tdd struct {
	Text string `json:"text" yaml:"text"`
}

// FunctionalRequirement is a requirement implemented by the update.
type FunctionalRequirement struct {
	Text          string  `json:"text" yaml:"text"`
	Source        string  `json:"source,omitempty" yaml:"source,omitempty"`
	TDDReferences []TddID `json:"tdd-references,omitempty" yaml:"tdd-references,omitempty"`
}

// Capabilities groups the epic and its feature stories.
type Capabilities struct {
	Epic           Epic           `json:"epic" yaml:"epic"`
	FeatureStories []FeatureStory `json:"feature-stories,omitempty" yaml:"feature-stories,omitempty"`
}

// Epic is the Jira epic the stories belong to.
type Epic struct {
	Title string `json:"title,omitempty" yaml:"title"`
	Jira  Jira   `json:"jira" yaml:"jira"`
}

// FeatureStory is a unit of delivery referencing TDDs and requirements.
type FeatureStory struct {
	Title                           string                    `json:"title" yaml:"title"`
	Jira                            Jira                      `json:"jira,omitempty" yaml:"jira,omitempty"`
	TDDReferences                   []TddID                   `json:"tdd-references,omitempty" yaml:"tdd-references,omitempty"`
	FunctionalRequirementReferences []FunctionalRequirementID `json:"functional-requirement-references,omitempty" yaml:"functional-requirement-references,omitempty"`
}

// TddEntry is a TDD together with its id and the component it describes.
type TddEntry struct {
	ID        TddID
	Component ComponentReference
	Tdd       Tdd
}

// AllTDDs flattens the TDDs of the document, ordered by component reference
// and then TDD id.
func (u *ArchitectureUpdate) AllTDDs() []TddEntry {
	var out []TddEntry
	for _, ref := range u.ComponentReferences() {
		ids := make([]TddID, 0, len(u.TDDs[ref]))
		for id := range u.TDDs[ref] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			out = append(out, TddEntry{ID: id, Component: ref, Tdd: u.TDDs[ref][id]})
		}
	}
	return out
}

// FindTDD returns the first TDD with the given id in AllTDDs order.
func (u *ArchitectureUpdate) FindTDD(id TddID) (TddEntry, bool) {
	for _, e := range u.AllTDDs() {
		if e.ID == id {
			return e, true
		}
	}
	return TddEntry{}, false
}

// ComponentReferences returns the component references of the document in order.
func (u *ArchitectureUpdate) ComponentReferences() []ComponentReference {
	refs := make([]ComponentReference, 0, len(u.TDDs))
	for ref := range u.TDDs {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// SortedRequirementIDs returns the functional requirement ids in order.
func (u *ArchitectureUpdate) SortedRequirementIDs() []FunctionalRequirementID {
	ids := make([]FunctionalRequirementID, 0, len(u.FunctionalRequirements))
	for id := range u.FunctionalRequirements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedDecisionIDs returns the decision ids in order.
func (u *ArchitectureUpdate) SortedDecisionIDs() []DecisionID {
	ids := make([]DecisionID, 0, len(u.Decisions))
	for id := range u.Decisions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
