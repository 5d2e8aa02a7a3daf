package models

import (
	"time"
)

// Priority ranks a friction point during triage.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PrincipleType names one of the four working-principle cards the curriculum
// asks every team to fill out. The store does not enforce the one-per-type
// convention; the consuming surface does.
type PrincipleType string

const (
	PrincipleHumanOversight PrincipleType = "human-oversight"
	PrincipleDataPrivacy    PrincipleType = "data-privacy"
	PrincipleTransparency   PrincipleType = "transparency"
	PrincipleAugmentation   PrincipleType = "augmentation"
)

// PrincipleTypes lists the fixed principle cards in curriculum order.
func PrincipleTypes() []PrincipleType {
	return []PrincipleType{
		PrincipleHumanOversight,
		PrincipleDataPrivacy,
		PrincipleTransparency,
		PrincipleAugmentation,
	}
}

// Organization is the workshop's root record. At most one is held locally at
// a time; "start fresh" replaces it rather than deleting it.
type Organization struct {
	ID                ID        `json:"id"`
	Name              string    `json:"name"`
	CurrentSession    int       `json:"currentSession"`
	CompletionPercent int       `json:"completionPercent"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FrictionPoint is a logged pain point in an existing business process.
type FrictionPoint struct {
	ID          ID        `json:"id"`
	ProcessArea string    `json:"processArea"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ScoredOpportunity is an opportunity placed on the value/complexity matrix.
// Quadrant is derived from the two scores at scoring time and stored; editing
// the scores afterwards does not recompute it unless the caller does.
type ScoredOpportunity struct {
	ID               ID       `json:"id"`
	FrictionID       *ID      `json:"frictionId,omitempty"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ValueScore       int      `json:"valueScore"`
	ComplexityScore  int      `json:"complexityScore"`
	Quadrant         Quadrant `json:"quadrant"`
	VoteCount        int      `json:"voteCount"`
	SelectedForPilot bool     `json:"selectedForPilot"`
}

// WorkingPrinciple captures the do/don't lists for one principle card.
type WorkingPrinciple struct {
	ID            ID            `json:"id"`
	PrincipleType PrincipleType `json:"principleType"`
	Dos           []string      `json:"dos"`
	Donts         []string      `json:"donts"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Tradeoff records where the team landed on one tension slider. The five
// fixed topics are seeded at store initialization; custom ones come and go.
type Tradeoff struct {
	ID               ID     `json:"id"`
	Topic            string `json:"topic"`
	SliderValue      int    `json:"sliderValue"`
	Rationale        string `json:"rationale"`
	Ignored          bool   `json:"ignored"`
	IsCustom         bool   `json:"isCustom"`
	CustomTitle      string `json:"customTitle,omitempty"`
	CustomQuestion   string `json:"customQuestion,omitempty"`
	CustomLeftLabel  string `json:"customLeftLabel,omitempty"`
	CustomRightLabel string `json:"customRightLabel,omitempty"`
}

// MVPSpec sketches the minimum viable version of a selected opportunity.
type MVPSpec struct {
	ID               ID        `json:"id"`
	OpportunityID    *ID       `json:"opportunityId,omitempty"`
	Name             string    `json:"name"`
	ProblemStatement string    `json:"problemStatement"`
	TargetUsers      string    `json:"targetUsers"`
	CoreFeatures     []string  `json:"coreFeatures"`
	SuccessCriteria  string    `json:"successCriteria"`
	OutOfScope       string    `json:"outOfScope"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PilotPlan is the execution plan for one pilot.
type PilotPlan struct {
	ID             ID        `json:"id"`
	MVPSpecID      *ID       `json:"mvpSpecId,omitempty"`
	Name           string    `json:"name"`
	Owner          string    `json:"owner"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	SuccessMetrics string    `json:"successMetrics"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RoadmapMilestone is one entry on the implementation roadmap.
type RoadmapMilestone struct {
	ID          ID        `json:"id"`
	PilotID     *ID       `json:"pilotId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Quarter     string    `json:"quarter"`
	Status      string    `json:"status"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ScalingChecklistItem is one readiness check for scaling beyond the pilot.
type ScalingChecklistItem struct {
	ID       ID     `json:"id"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Checked  bool   `json:"checked"`
}

// TrainingPlanEntry is one row of the team enablement plan.
type TrainingPlanEntry struct {
	ID       ID     `json:"id"`
	Audience string `json:"audience"`
	Topic    string `json:"topic"`
	Format   string `json:"format"`
	Timeline string `json:"timeline"`
}

// LessonLearned is a retrospective note from a running or finished pilot.
type LessonLearned struct {
	ID          ID        `json:"id"`
	PilotID     *ID       `json:"pilotId,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NextOpportunity queues a friction point for a later wave of work.
type NextOpportunity struct {
	ID            ID     `json:"id"`
	FrictionID    *ID    `json:"frictionId,omitempty"`
	Title         string `json:"title"`
	Notes         string `json:"notes"`
	TargetQuarter string `json:"targetQuarter"`
}

// IcebreakerResponse is a participant's answer to a session icebreaker.
type IcebreakerResponse struct {
	ID              ID        `json:"id"`
	ParticipantName string    `json:"participantName"`
	Response        string    `json:"response"`
	SessionIndex    int       `json:"sessionIndex"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CognitiveBias is one bias card the team can acknowledge during framing.
type CognitiveBias struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Acknowledged bool   `json:"acknowledged"`
}

// FutureHeadline is the "newspaper headline from two years out" exercise.
type FutureHeadline struct {
	ID              ID        `json:"id"`
	ParticipantName string    `json:"participantName"`
	Headline        string    `json:"headline"`
	Year            int       `json:"year"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Opportunity is a raw brainstormed idea, prior to scoring.
type Opportunity struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProcessArea string    `json:"processArea"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DesignPrinciple is one statement in the team's solution design charter.
type DesignPrinciple struct {
	ID        ID        `json:"id"`
	Statement string    `json:"statement"`
	Rationale string    `json:"rationale"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// PilotDesign is the experiment design worksheet for a candidate pilot.
type PilotDesign struct {
	ID            ID        `json:"id"`
	OpportunityID *ID       `json:"opportunityId,omitempty"`
	Hypothesis    string    `json:"hypothesis"`
	Scope         string    `json:"scope"`
	DataNeeds     string    `json:"dataNeeds"`
	Risks         string    `json:"risks"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RACIEntry assigns responsibility roles for one pilot activity.
type RACIEntry struct {
	ID          ID     `json:"id"`
	PilotID     *ID    `json:"pilotId,omitempty"`
	Activity    string `json:"activity"`
	Responsible string `json:"responsible"`
	Accountable string `json:"accountable"`
	Consulted   string `json:"consulted"`
	Informed    string `json:"informed"`
}
