package store

import (
	"time"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// SessionCount is the number of sessions in the workshop curriculum.
const SessionCount = 6

// State is the full workshop state held by the [Store]. Its JSON encoding is
// the durable snapshot format: all entity collections, the organization, the
// session cursor, and the save/cloud timestamps are persisted, while the
// transient sync fields (dirty flag, sync status, last sync error) live on
// the Store itself and are deliberately absent here. That split must not
// change, or previously saved snapshots stop loading.
type State struct {
	Organization   *models.Organization `json:"organization"`
	CurrentSession int                  `json:"currentSession"`

	IcebreakerResponses []models.IcebreakerResponse   `json:"icebreakerResponses"`
	FutureHeadlines     []models.FutureHeadline       `json:"futureHeadlines"`
	CognitiveBiases     []models.CognitiveBias        `json:"cognitiveBiases"`
	FrictionPoints      []models.FrictionPoint        `json:"frictionPoints"`
	Opportunities       []models.Opportunity          `json:"opportunities"`
	ScoredOpportunities []models.ScoredOpportunity    `json:"scoredOpportunities"`
	WorkingPrinciples   []models.WorkingPrinciple     `json:"workingPrinciples"`
	Tradeoffs           []models.Tradeoff             `json:"tradeoffs"`
	DesignPrinciples    []models.DesignPrinciple      `json:"designPrinciples"`
	PilotDesigns        []models.PilotDesign          `json:"pilotDesigns"`
	MVPSpecs            []models.MVPSpec              `json:"mvpSpecs"`
	Pilots              []models.PilotPlan            `json:"pilots"`
	RACIEntries         []models.RACIEntry            `json:"raciEntries"`
	RoadmapMilestones   []models.RoadmapMilestone     `json:"roadmapMilestones"`
	ScalingChecklist    []models.ScalingChecklistItem `json:"scalingChecklist"`
	TrainingPlan        []models.TrainingPlanEntry    `json:"trainingPlan"`
	LessonsLearned      []models.LessonLearned        `json:"lessonsLearned"`
	NextOpportunities   []models.NextOpportunity      `json:"nextOpportunities"`

	LastSaved    *time.Time `json:"lastSaved"`
	CloudOrgID   *models.ID `json:"cloudOrgId"`
	LastSyncedAt *time.Time `json:"lastSyncedAt"`
}

// newState returns the initial workshop state: empty collections, session 1,
// and the five fixed tradeoff sliders seeded in their neutral position.
func newState() State {
	return State{
		CurrentSession: 1,
		Tradeoffs:      models.SeedTradeoffs(),
	}
}

// clone returns a copy of the state with every collection slice duplicated,
// nested string lists included, so callers can hold the result without
// aliasing store internals.
func (st State) clone() State {
	out := st
	if st.Organization != nil {
		org := *st.Organization
		out.Organization = &org
	}
	out.IcebreakerResponses = cloneSlice(st.IcebreakerResponses)
	out.FutureHeadlines = cloneSlice(st.FutureHeadlines)
	out.CognitiveBiases = cloneSlice(st.CognitiveBiases)
	out.FrictionPoints = cloneSlice(st.FrictionPoints)
	out.Opportunities = cloneSlice(st.Opportunities)
	out.ScoredOpportunities = cloneSlice(st.ScoredOpportunities)
	out.WorkingPrinciples = cloneSlice(st.WorkingPrinciples)
	for i := range out.WorkingPrinciples {
		out.WorkingPrinciples[i].Dos = cloneSlice(out.WorkingPrinciples[i].Dos)
		out.WorkingPrinciples[i].Donts = cloneSlice(out.WorkingPrinciples[i].Donts)
	}
	out.Tradeoffs = cloneSlice(st.Tradeoffs)
	out.DesignPrinciples = cloneSlice(st.DesignPrinciples)
	out.PilotDesigns = cloneSlice(st.PilotDesigns)
	out.MVPSpecs = cloneSlice(st.MVPSpecs)
	for i := range out.MVPSpecs {
		out.MVPSpecs[i].CoreFeatures = cloneSlice(out.MVPSpecs[i].CoreFeatures)
	}
	out.Pilots = cloneSlice(st.Pilots)
	out.RACIEntries = cloneSlice(st.RACIEntries)
	out.RoadmapMilestones = cloneSlice(st.RoadmapMilestones)
	out.ScalingChecklist = cloneSlice(st.ScalingChecklist)
	out.TrainingPlan = cloneSlice(st.TrainingPlan)
	out.LessonsLearned = cloneSlice(st.LessonsLearned)
	out.NextOpportunities = cloneSlice(st.NextOpportunities)
	return out
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
