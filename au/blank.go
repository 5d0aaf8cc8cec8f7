package au

// Sample placeholders used by Blank.
const (
	SampleTddID         TddID                   = "[SAMPLE-TDD-ID]"
	SampleRequirementID FunctionalRequirementID = "[SAMPLE-REQUIREMENT-ID]"
	SampleDecisionID    DecisionID              = "[SAMPLE-DECISION-ID]"
	SampleComponentID                           = "[SAMPLE-COMPONENT-ID]"
	SampleStoryTitle                            = "[SAMPLE FEATURE STORY TITLE]"
)

// Blank returns the template document written for a new update called name.
func Blank(name string) *ArchitectureUpdate {
	sampleLink := Link{Description: "[SAMPLE LINK DESCRIPTION]", Link: "[SAMPLE-LINK]"}
	sampleJira := Jira{Ticket: "[SAMPLE JIRA TICKET]", Link: "[SAMPLE JIRA TICKET LINK]"}
	samplePerson := Person{Name: "[SAMPLE PERSON NAME]", Email: "[SAMPLE PERSON EMAIL]"}

	return &ArchitectureUpdate{
		Name:      name,
		Milestone: "[SAMPLE MILESTONE]",
		Authors:   []Person{samplePerson},
		PCAs:      []Person{samplePerson},
		P2:        P2{Link: "[SAMPLE LINK TO P2]", Jira: sampleJira},
		P1: P1{
			Link:      "[SAMPLE LINK TO P1]",
			Jira:      sampleJira,
			Sentences: []string{"[SAMPLE SENTENCE]"},
		},
		UsefulLinks: []Link{sampleLink},
		MilestoneDependencies: []MilestoneDependency{
			{Description: "[SAMPLE MILESTONE DEPENDENCY]", Links: []Link{sampleLink}},
		},
		Decisions: map[DecisionID]Decision{
			SampleDecisionID: {Text: "[SAMPLE DECISION TEXT]", TDDReferences: []TddID{SampleTddID}},
		},
		TDDs: map[ComponentReference]map[TddID]Tdd{
			NewComponentReference(SampleComponentID): {
				SampleTddID: {Text: "[SAMPLE TDD TEXT]"},
			},
		},
		FunctionalRequirements: map[FunctionalRequirementID]FunctionalRequirement{
			SampleRequirementID: {
				Text:          "[SAMPLE REQUIREMENT TEXT]",
				Source:        "[SAMPLE REQUIREMENT SOURCE TEXT]",
				TDDReferences: []TddID{SampleTddID},
			},
		},
		Capabilities: Capabilities{
			Epic: Epic{Title: "[SAMPLE EPIC TITLE]", Jira: sampleJira},
			FeatureStories: []FeatureStory{{
				Title:                           SampleStoryTitle,
				TDDReferences:                   []TddID{SampleTddID},
				FunctionalRequirementReferences: []FunctionalRequirementID{SampleRequirementID},
			}},
		},
	}
}
