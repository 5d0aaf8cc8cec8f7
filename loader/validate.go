package loader

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
)

// validateStruct runs the validate tags of doc and folds every field error
// into a single CodeSchemaFailed error.
func validateStruct(doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, errors.CodeSchemaFailed, "document validation failed")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return errors.NewWithContext(
		errors.CodeSchemaFailed,
		"document validation failed: "+strings.Join(problems, "; "),
		map[string]interface{}{
			"fields": len(problems),
		},
	)
}

// checkReferences verifies that every id or alias in m points at an entity of
// the expected kind. Duplicate ids are reported as CodeDuplicateID.
func checkReferences(m *c4.Model) error {
	ix, err := c4.NewIndex(m)
	if err != nil {
		return err
	}

	var problems []string
	expect := func(owner, field, id, alias string, want c4.Type) {
		e, ok := ix.ResolveReference(id, alias)
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%s: %s %s does not exist", owner, field, refString(id, alias)))
		case want != "" && e.Type() != want:
			problems = append(problems, fmt.Sprintf("%s: %s %s is a %s, not a %s", owner, field, refString(id, alias), e.Type(), want))
		}
	}

	for _, edge := range m.AllRelationships() {
		r := edge.Relationship
		expect(edge.Source.GetID(), "relationship destination", r.WithID, r.WithAlias, "")
	}
	for _, c := range m.Containers {
		expect(c.ID, "system", c.SystemID, c.SystemAlias, c4.TypeSystem)
	}
	for _, c := range m.Components {
		expect(c.ID, "container", c.ContainerID, c.ContainerAlias, c4.TypeContainer)
	}
	for _, n := range m.AllDeploymentNodesRecursively() {
		for _, ci := range n.ContainerInstances {
			ref := ci.ContainerReference
			expect(n.ID, "container instance "+ci.ID, ref.ID, ref.Alias, c4.TypeContainer)
		}
	}

	if len(problems) > 0 {
		return errors.NewWithContext(
			errors.CodeSchemaFailed,
			"unresolved references: "+strings.Join(problems, "; "),
			map[string]interface{}{
				"references": len(problems),
			},
		)
	}
	return nil
}

func refString(id, alias string) string {
	if id != "" {
		return fmt.Sprintf("id %q", id)
	}
	return fmt.Sprintf("alias %q", alias)
}
