package au

import (
	"github.com/eugenedong/arch-as-code/errors"
)

// Story is the payload of a feature story ready to be filed in an issue tracker.
type Story struct {
	Title                  string             `json:"title"`
	TDDs                   []StoryTDD         `json:"tdds"`
	FunctionalRequirements []StoryRequirement `json:"functionalRequirements"`
}

// StoryTDD is a TDD as it appears in a Story.
type StoryTDD struct {
	ID                 TddID              `json:"id"`
	Text               string             `json:"text"`
	ComponentReference ComponentReference `json:"componentReference"`
}

// StoryRequirement is a functional requirement as it appears in a Story.
type StoryRequirement struct {
	ID            FunctionalRequirementID `json:"id"`
	Text          string                  `json:"text"`
	Source        string                  `json:"source,omitempty"`
	TDDReferences []TddID                 `json:"tddReferences,omitempty"`
}

// BuildStories resolves the references of every feature story that has no
// ticket yet. A reference to a TDD or requirement missing from the document
// is an error; validate the document first to get a full report.
func BuildStories(u *ArchitectureUpdate) ([]Story, error) {
	var stories []Story
	for _, fs := range u.Capabilities.FeatureStories {
		if fs.Jira.Ticket != "" {
			continue
		}

		story := Story{
			Title:                  fs.Title,
			TDDs:                   make([]StoryTDD, 0, len(fs.TDDReferences)),
			FunctionalRequirements: make([]StoryRequirement, 0, len(fs.FunctionalRequirementReferences)),
		}

		for _, id := range fs.TDDReferences {
			entry, ok := u.FindTDD(id)
			if !ok {
				return nil, errors.NewWithContext(
					errors.CodeInvalidInput,
					"feature story references unknown TDD "+string(id),
					map[string]interface{}{"story": fs.Title, "tdd": string(id)},
				)
			}
			story.TDDs = append(story.TDDs, StoryTDD{
				ID:                 entry.ID,
				Text:               entry.Tdd.Text,
				ComponentReference: entry.Component,
			})
		}

		for _, id := range fs.FunctionalRequirementReferences {
			fr, ok := u.FunctionalRequirements[id]
			if !ok {
				return nil, errors.NewWithContext(
					errors.CodeInvalidInput,
					"feature story references unknown functional requirement "+string(id),
					map[string]interface{}{"story": fs.Title, "requirement": string(id)},
				)
			}
			story.FunctionalRequirements = append(story.FunctionalRequirements, StoryRequirement{
				ID:            id,
				Text:          fr.Text,
				Source:        fr.Source,
				TDDReferences: fr.TDDReferences,
			})
		}

		stories = append(stories, story)
	}
	return stories, nil
}
