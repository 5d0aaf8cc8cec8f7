package validation

import (
	"strings"

	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/c4"
)

// DefaultRules returns the rules Validate runs when no rules are configured.
func DefaultRules() []Rule {
	return []Rule{
		SimpleRule("tdd-component-exists",
			"TDDs must describe a component of the current architecture",
			StageTDD, checkComponentReferences),
		SimpleRule("tdd-unique",
			"A TDD id may only be defined under one component",
			StageTDD, checkDuplicateTDDs),
		SimpleRule("decision-tdd-exists",
			"Decisions may only reference TDDs defined in the update",
			StageTDD, checkDecisionReferences),
		SimpleRule("requirement-tdd-exists",
			"Functional requirements may only reference TDDs defined in the update",
			StageStory, checkRequirementReferences),
		SimpleRule("story-references-exist",
			"Feature stories may only reference TDDs and requirements defined in the update",
			StageStory, checkStoryReferences),
		SimpleRule("story-not-empty",
			"Feature stories must reference at least one TDD or functional requirement",
			StageStory, checkStoryCompleteness),
		SimpleRule("tdd-has-story",
			"Every TDD must be covered by a feature story. References to unknown TDDs cover nothing, "+
				"so a misspelled story reference that was a TDD's only coverage is also reported here",
			StageStory, checkTDDCoverage),
	}
}

func checkComponentReferences(ctx *Context) []Error {
	var errs []Error
	for _, ref := range ctx.Update.ComponentReferences() {
		id, ok := ref.ComponentID()
		if !ok {
			errs = append(errs, NewError(ErrInvalidComponentReference,
				"Component reference %q is malformed.", ref))
			continue
		}

		if e, found := ctx.Current.FindEntityByID(id); found {
			if e.Type() != c4.TypeComponent {
				errs = append(errs, NewError(ErrInvalidComponentReference,
					"Component id %q refers to a %s, not a component.", id, e.Type()))
			}
			continue
		}

		if e, found := ctx.Base.FindEntityByID(id); found && e.Type() == c4.TypeComponent {
			errs = append(errs, NewError(ErrInvalidDeletedComponentReference,
				"Deleted component id %q is invalid.", id))
			continue
		}

		errs = append(errs, NewError(ErrInvalidComponentReference,
			"Component id %q does not exist.", id))
	}
	return errs
}

func checkDuplicateTDDs(ctx *Context) []Error {
	owners := make(map[au.TddID][]string)
	var order []au.TddID
	for _, e := range ctx.Update.AllTDDs() {
		if _, seen := owners[e.ID]; !seen {
			order = append(order, e.ID)
		}
		owners[e.ID] = append(owners[e.ID], e.Component.String())
	}

	var errs []Error
	for _, id := range order {
		if len(owners[id]) > 1 {
			errs = append(errs, NewError(ErrDuplicateTdd,
				"TDD %q is defined under more than one component: %s.", id, strings.Join(owners[id], ", ")))
		}
	}
	return errs
}

func checkDecisionReferences(ctx *Context) []Error {
	defined := ctx.DefinedTDDs()
	var errs []Error
	for _, id := range ctx.Update.SortedDecisionIDs() {
		for _, ref := range ctx.Update.Decisions[id].TDDReferences {
			if !defined[ref] {
				errs = append(errs, NewError(ErrInvalidTddReferenceInDecision,
					"Decision %q contains TDD reference %q that does not exist.", id, ref))
			}
		}
	}
	return errs
}

func checkRequirementReferences(ctx *Context) []Error {
	defined := ctx.DefinedTDDs()
	var errs []Error
	for _, id := range ctx.Update.SortedRequirementIDs() {
		for _, ref := range ctx.Update.FunctionalRequirements[id].TDDReferences {
			if !defined[ref] {
				errs = append(errs, NewError(ErrInvalidTddReference,
					"Functional requirement %q contains TDD reference %q that does not exist.", id, ref))
			}
		}
	}
	return errs
}

func checkStoryReferences(ctx *Context) []Error {
	defined := ctx.DefinedTDDs()
	var errs []Error
	for _, story := range ctx.Update.Capabilities.FeatureStories {
		for _, ref := range story.TDDReferences {
			if !defined[ref] {
				errs = append(errs, NewError(ErrInvalidTddReferenceInStory,
					"Feature story %q contains TDD reference %q that does not exist.", story.Title, ref))
			}
		}
		for _, ref := range story.FunctionalRequirementReferences {
			if _, ok := ctx.Update.FunctionalRequirements[ref]; !ok {
				errs = append(errs, NewError(ErrInvalidRequirementReferenceInStory,
					"Feature story %q contains functional requirement reference %q that does not exist.", story.Title, ref))
			}
		}
	}
	return errs
}

func checkStoryCompleteness(ctx *Context) []Error {
	var errs []Error
	for _, story := range ctx.Update.Capabilities.FeatureStories {
		if len(story.TDDReferences) == 0 && len(story.FunctionalRequirementReferences) == 0 {
			errs = append(errs, NewError(ErrStoryMissingReferences,
				"Feature story %q has no TDD or functional requirement references.", story.Title))
		}
	}
	return errs
}

func checkTDDCoverage(ctx *Context) []Error {
	covered := make(map[au.TddID]bool)
	for _, story := range ctx.Update.Capabilities.FeatureStories {
		for _, ref := range story.TDDReferences {
			covered[ref] = true
		}
		for _, ref := range story.FunctionalRequirementReferences {
			for _, tdd := range ctx.Update.FunctionalRequirements[ref].TDDReferences {
				covered[tdd] = true
			}
		}
	}

	var errs []Error
	seen := make(map[au.TddID]bool)
	for _, e := range ctx.Update.AllTDDs() {
		if covered[e.ID] || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		errs = append(errs, NewError(ErrTddWithoutStory,
			"TDD %q is not referenced by any feature story.", e.ID))
	}
	return errs
}
