package validation

import "fmt"

// Stage groups rules so callers can report on a subset of them.
type Stage string

const (
	// StageTDD covers the technical design decisions and their components.
	StageTDD Stage = "TDD"

	// StageStory covers feature stories and functional requirements.
	StageStory Stage = "STORY"
)

// Stages lists every stage in reporting order.
var Stages = []Stage{StageTDD, StageStory}

// String returns the string representation of the Stage.
func (s Stage) String() string {
	return string(s)
}

// ErrorType classifies a validation error.
type ErrorType string

const (
	// ErrInvalidComponentReference is a TDD component reference that is
	// malformed, unknown, or names an entity that is not a component.
	ErrInvalidComponentReference ErrorType = "INVALID_COMPONENT_REFERENCE"

	// ErrInvalidDeletedComponentReference is a TDD about a component that
	// exists in the base architecture but was deleted from the current one.
	ErrInvalidDeletedComponentReference ErrorType = "INVALID_DELETED_COMPONENT_REFERENCE"

	// ErrDuplicateTdd is a TDD id defined under more than one component.
	ErrDuplicateTdd ErrorType = "DUPLICATE_TDD"

	// ErrInvalidTddReferenceInDecision is a decision referencing an unknown TDD.
	ErrInvalidTddReferenceInDecision ErrorType = "INVALID_TDD_REFERENCE_IN_DECISION"

	// ErrInvalidTddReference is a functional requirement referencing an unknown TDD.
	ErrInvalidTddReference ErrorType = "INVALID_TDD_REFERENCE"

	// ErrInvalidTddReferenceInStory is a feature story referencing an unknown TDD.
	ErrInvalidTddReferenceInStory ErrorType = "INVALID_TDD_REFERENCE_IN_STORY"

	// ErrInvalidRequirementReferenceInStory is a feature story referencing an
	// unknown functional requirement.
	ErrInvalidRequirementReferenceInStory ErrorType = "INVALID_FUNCTIONAL_REQUIREMENT_REFERENCE_IN_STORY"

	// ErrStoryMissingReferences is a feature story with neither TDD nor
	// functional requirement references.
	ErrStoryMissingReferences ErrorType = "STORY_MISSING_REFERENCES"

	// ErrTddWithoutStory is a TDD no feature story covers, directly or
	// through a functional requirement.
	ErrTddWithoutStory ErrorType = "TDD_WITHOUT_STORY"
)

// String returns the string representation of the ErrorType.
func (t ErrorType) String() string {
	return string(t)
}

// Error is a single rule violation. Violations are data, not Go errors.
type Error struct {
	// Type classifies the violation.
	Type ErrorType `json:"type"`

	// Stage is the stage of the rule that found the violation.
	Stage Stage `json:"stage"`

	// Rule is the name of the rule that found the violation.
	Rule string `json:"rule"`

	// Description is a human-readable explanation.
	Description string `json:"description"`
}

// String returns a formatted string representation of the error.
func (e Error) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Type, e.Description)
}

// NewError creates an Error of the given type. Stage and Rule are filled in
// by Validate.
func NewError(t ErrorType, format string, args ...interface{}) Error {
	return Error{Type: t, Description: fmt.Sprintf(format, args...)}
}

// Result holds every violation found by Validate, in rule order.
type Result struct {
	errors []Error
}

// IsValid reports whether none of the given stages has errors. With no
// stages it considers all of them.
func (r *Result) IsValid(stages ...Stage) bool {
	return len(r.Errors(stages...)) == 0
}

// Errors returns the errors of the given stages, in the order they were
// found. With no stages it returns all errors.
func (r *Result) Errors(stages ...Stage) []Error {
	if len(stages) == 0 {
		return append([]Error(nil), r.errors...)
	}
	want := make(map[Stage]bool, len(stages))
	for _, s := range stages {
		want[s] = true
	}
	var out []Error
	for _, e := range r.errors {
		if want[e.Stage] {
			out = append(out, e)
		}
	}
	return out
}
