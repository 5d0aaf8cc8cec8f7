// Package c4 provides the entity model of a product architecture described
// with the C4 model: people, software systems, containers, components and
// deployment nodes, plus the relationships between them.
//
// # Design Principles
//
//   - Pure data structures with struct tags for YAML, JSON and validation
//   - Entities share a Base field record and are accessed through the Entity
//     capability interface; kind-specific fields live only on their variant
//   - Edges are string ids resolved through an Index, never pointers
//   - DeploymentNode is the only recursive entity and owns its children
//   - Values are built with struct literals; there are no builders
//
// # Identity
//
// Every entity carries an id that is stable across snapshots of the same
// architecture. Ids are unique across all kinds within one model; NewIndex
// rejects a model that breaks this rule.
//
// # Quick Start
//
//	model := &c4.Model{
//		People: []c4.Person{{
//			Base: c4.Base{ID: "1", Name: "Developer", Path: c4.PersonPath("Developer")},
//		}},
//	}
//
//	ix, err := c4.NewIndex(model)
//	if err != nil {
//		return err
//	}
//	dev, ok := ix.FindEntityByPath("@Developer")
package c4
