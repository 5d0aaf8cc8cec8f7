// Package validation checks an Architecture Update document against the
// current architecture and the architecture of the branch it was cut from.
//
// Validation is organised as independent rules, each tagged with a Stage.
// Every rule always runs; stages only select which results a caller reads.
// Rule violations are collected as data in a Result and never returned as
// Go errors.
package validation

// Rule defines the interface that all validation rules must implement.
type Rule interface {
	// Name returns a unique kebab-case identifier, such as "tdd-component-exists".
	Name() string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// Stage returns the stage the rule's violations are reported under.
	Stage() Stage

	// Check examines the context and returns any violations found.
	Check(ctx *Context) []Error
}

// CheckFunc is a function that performs rule checking on a context.
type CheckFunc func(ctx *Context) []Error

// SimpleRule creates a rule from a check function.
//
//nolint:ireturn // Builder functions should return interfaces
func SimpleRule(name, description string, stage Stage, check CheckFunc) Rule {
	return &simpleRule{
		name:        name,
		description: description,
		stage:       stage,
		check:       check,
	}
}

type simpleRule struct {
	name        string
	description string
	stage       Stage
	check       CheckFunc
}

func (r *simpleRule) Name() string        { return r.name }
func (r *simpleRule) Description() string { return r.description }
func (r *simpleRule) Stage() Stage        { return r.stage }

func (r *simpleRule) Check(ctx *Context) []Error {
	return r.check(ctx)
}
