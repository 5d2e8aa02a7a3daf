package store

import (
	"time"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// The actions below repeat one pattern per entity collection: Add generates
// the id (and creation timestamp where the entity has one) and appends in
// insertion order; Update merges a pointer-field patch into the record with
// the given id; Delete removes by id. Update and Delete on a missing id are
// silent no-ops. Every action marks the store dirty and persists.

// --- Icebreaker responses ---

func (s *Store) AddIcebreakerResponse(r models.IcebreakerResponse) models.IcebreakerResponse {
	r.ID = models.NewID()
	r.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.IcebreakerResponses = append(st.IcebreakerResponses, r) })
	return r
}

type IcebreakerResponsePatch struct {
	ParticipantName *string `json:"participantName"`
	Response        *string `json:"response"`
	SessionIndex    *int    `json:"sessionIndex"`
}

func (s *Store) UpdateIcebreakerResponse(id models.ID, patch IcebreakerResponsePatch) {
	s.mutate(func(st *State) {
		updateWhere(st.IcebreakerResponses,
			func(r *models.IcebreakerResponse) bool { return r.ID == id },
			func(r *models.IcebreakerResponse) {
				setIf(&r.ParticipantName, patch.ParticipantName)
				setIf(&r.Response, patch.Response)
				setIf(&r.SessionIndex, patch.SessionIndex)
			})
	})
}

func (s *Store) DeleteIcebreakerResponse(id models.ID) {
	s.mutate(func(st *State) {
		st.IcebreakerResponses, _ = deleteWhere(st.IcebreakerResponses,
			func(r *models.IcebreakerResponse) bool { return r.ID == id })
	})
}

// --- Future headlines ---

func (s *Store) AddFutureHeadline(h models.FutureHeadline) models.FutureHeadline {
	h.ID = models.NewID()
	h.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.FutureHeadlines = append(st.FutureHeadlines, h) })
	return h
}

type FutureHeadlinePatch struct {
	ParticipantName *string `json:"participantName"`
	Headline        *string `json:"headline"`
	Year            *int    `json:"year"`
}

func (s *Store) UpdateFutureHeadline(id models.ID, patch FutureHeadlinePatch) {
	s.mutate(func(st *State) {
		updateWhere(st.FutureHeadlines,
			func(h *models.FutureHeadline) bool { return h.ID == id },
			func(h *models.FutureHeadline) {
				setIf(&h.ParticipantName, patch.ParticipantName)
				setIf(&h.Headline, patch.Headline)
				setIf(&h.Year, patch.Year)
			})
	})
}

func (s *Store) DeleteFutureHeadline(id models.ID) {
	s.mutate(func(st *State) {
		st.FutureHeadlines, _ = deleteWhere(st.FutureHeadlines,
			func(h *models.FutureHeadline) bool { return h.ID == id })
	})
}

// --- Cognitive biases ---

func (s *Store) AddCognitiveBias(b models.CognitiveBias) models.CognitiveBias {
	b.ID = models.NewID()
	s.mutate(func(st *State) { st.CognitiveBiases = append(st.CognitiveBiases, b) })
	return b
}

type CognitiveBiasPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Acknowledged *bool   `json:"acknowledged"`
}

func (s *Store) UpdateCognitiveBias(id models.ID, patch CognitiveBiasPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.CognitiveBiases,
			func(b *models.CognitiveBias) bool { return b.ID == id },
			func(b *models.CognitiveBias) {
				setIf(&b.Name, patch.Name)
				setIf(&b.Description, patch.Description)
				setIf(&b.Acknowledged, patch.Acknowledged)
			})
	})
}

func (s *Store) DeleteCognitiveBias(id models.ID) {
	s.mutate(func(st *State) {
		st.CognitiveBiases, _ = deleteWhere(st.CognitiveBiases,
			func(b *models.CognitiveBias) bool { return b.ID == id })
	})
}

// ToggleCognitiveBias flips the acknowledged flag of the bias with the given
// id.
func (s *Store) ToggleCognitiveBias(id models.ID) {
	s.mutate(func(st *State) {
		updateWhere(st.CognitiveBiases,
			func(b *models.CognitiveBias) bool { return b.ID == id },
			func(b *models.CognitiveBias) { b.Acknowledged = !b.Acknowledged })
	})
}

// --- Friction points ---

func (s *Store) AddFrictionPoint(fp models.FrictionPoint) models.FrictionPoint {
	fp.ID = models.NewID()
	fp.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.FrictionPoints = append(st.FrictionPoints, fp) })
	return fp
}

type FrictionPointPatch struct {
	ProcessArea *string          `json:"processArea"`
	Description *string          `json:"description"`
	Priority    *models.Priority `json:"priority"`
}

func (s *Store) UpdateFrictionPoint(id models.ID, patch FrictionPointPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.FrictionPoints,
			func(fp *models.FrictionPoint) bool { return fp.ID == id },
			func(fp *models.FrictionPoint) {
				setIf(&fp.ProcessArea, patch.ProcessArea)
				setIf(&fp.Description, patch.Description)
				setIf(&fp.Priority, patch.Priority)
			})
	})
}

func (s *Store) DeleteFrictionPoint(id models.ID) {
	s.mutate(func(st *State) {
		st.FrictionPoints, _ = deleteWhere(st.FrictionPoints,
			func(fp *models.FrictionPoint) bool { return fp.ID == id })
	})
}

// --- Opportunities (unscored brainstorm ideas) ---

func (s *Store) AddOpportunity(o models.Opportunity) models.Opportunity {
	o.ID = models.NewID()
	o.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.Opportunities = append(st.Opportunities, o) })
	return o
}

type OpportunityPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ProcessArea *string `json:"processArea"`
}

func (s *Store) UpdateOpportunity(id models.ID, patch OpportunityPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.Opportunities,
			func(o *models.Opportunity) bool { return o.ID == id },
			func(o *models.Opportunity) {
				setIf(&o.Title, patch.Title)
				setIf(&o.Description, patch.Description)
				setIf(&o.ProcessArea, patch.ProcessArea)
			})
	})
}

func (s *Store) DeleteOpportunity(id models.ID) {
	s.mutate(func(st *State) {
		st.Opportunities, _ = deleteWhere(st.Opportunities,
			func(o *models.Opportunity) bool { return o.ID == id })
	})
}

// --- Scored opportunities ---

// AddScoredOpportunity places an opportunity on the priority matrix. The
// quadrant is classified from the two scores here, at scoring time, and
// stored on the record; later score edits do not recompute it. Callers that
// edit scores and want a fresh quadrant must pass one in the update patch.
func (s *Store) AddScoredOpportunity(o models.ScoredOpportunity) models.ScoredOpportunity {
	o.ID = models.NewID()
	o.Quadrant = models.ClassifyQuadrant(o.ValueScore, o.ComplexityScore)
	s.mutate(func(st *State) { st.ScoredOpportunities = append(st.ScoredOpportunities, o) })
	return o
}

type ScoredOpportunityPatch struct {
	FrictionID       *models.ID       `json:"frictionId"`
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	ValueScore       *int             `json:"valueScore"`
	ComplexityScore  *int             `json:"complexityScore"`
	Quadrant         *models.Quadrant `json:"quadrant"`
	SelectedForPilot *bool            `json:"selectedForPilot"`
}

func (s *Store) UpdateScoredOpportunity(id models.ID, patch ScoredOpportunityPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.ScoredOpportunities,
			func(o *models.ScoredOpportunity) bool { return o.ID == id },
			func(o *models.ScoredOpportunity) {
				if patch.FrictionID != nil {
					o.FrictionID = patch.FrictionID
				}
				setIf(&o.Title, patch.Title)
				setIf(&o.Description, patch.Description)
				setIf(&o.ValueScore, patch.ValueScore)
				setIf(&o.ComplexityScore, patch.ComplexityScore)
				setIf(&o.Quadrant, patch.Quadrant)
				setIf(&o.SelectedForPilot, patch.SelectedForPilot)
			})
	})
}

func (s *Store) DeleteScoredOpportunity(id models.ID) {
	s.mutate(func(st *State) {
		st.ScoredOpportunities, _ = deleteWhere(st.ScoredOpportunities,
			func(o *models.ScoredOpportunity) bool { return o.ID == id })
	})
}

// VoteForOpportunity adds exactly one dot vote to the opportunity with the
// given id. The store enforces no vote budget; that is the caller's job.
func (s *Store) VoteForOpportunity(id models.ID) {
	s.mutate(func(st *State) {
		updateWhere(st.ScoredOpportunities,
			func(o *models.ScoredOpportunity) bool { return o.ID == id },
			func(o *models.ScoredOpportunity) { o.VoteCount++ })
	})
}

// TogglePilotSelection flips whether the opportunity is selected as a pilot
// candidate.
func (s *Store) TogglePilotSelection(id models.ID) {
	s.mutate(func(st *State) {
		updateWhere(st.ScoredOpportunities,
			func(o *models.ScoredOpportunity) bool { return o.ID == id },
			func(o *models.ScoredOpportunity) { o.SelectedForPilot = !o.SelectedForPilot })
	})
}

// --- Working principles ---

func (s *Store) AddWorkingPrinciple(p models.WorkingPrinciple) models.WorkingPrinciple {
	p.ID = models.NewID()
	p.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.WorkingPrinciples = append(st.WorkingPrinciples, p) })
	return p
}

type WorkingPrinciplePatch struct {
	PrincipleType *models.PrincipleType `json:"principleType"`
	Dos           *[]string             `json:"dos"`
	Donts         *[]string             `json:"donts"`
}

func (s *Store) UpdateWorkingPrinciple(id models.ID, patch WorkingPrinciplePatch) {
	s.mutate(func(st *State) {
		updateWhere(st.WorkingPrinciples,
			func(p *models.WorkingPrinciple) bool { return p.ID == id },
			func(p *models.WorkingPrinciple) {
				setIf(&p.PrincipleType, patch.PrincipleType)
				setIf(&p.Dos, patch.Dos)
				setIf(&p.Donts, patch.Donts)
			})
	})
}

func (s *Store) DeleteWorkingPrinciple(id models.ID) {
	s.mutate(func(st *State) {
		st.WorkingPrinciples, _ = deleteWhere(st.WorkingPrinciples,
			func(p *models.WorkingPrinciple) bool { return p.ID == id })
	})
}

// --- Tradeoffs ---

// AddCustomTradeoff appends a participant-defined tradeoff slider. The five
// fixed-topic sliders are seeded at initialization and never re-added.
func (s *Store) AddCustomTradeoff(t models.Tradeoff) models.Tradeoff {
	t.ID = models.NewID()
	t.IsCustom = true
	s.mutate(func(st *State) { st.Tradeoffs = append(st.Tradeoffs, t) })
	return t
}

type TradeoffPatch struct {
	SliderValue      *int    `json:"sliderValue"`
	Rationale        *string `json:"rationale"`
	Ignored          *bool   `json:"ignored"`
	CustomTitle      *string `json:"customTitle"`
	CustomQuestion   *string `json:"customQuestion"`
	CustomLeftLabel  *string `json:"customLeftLabel"`
	CustomRightLabel *string `json:"customRightLabel"`
}

func (s *Store) UpdateTradeoff(id models.ID, patch TradeoffPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.Tradeoffs,
			func(t *models.Tradeoff) bool { return t.ID == id },
			func(t *models.Tradeoff) {
				setIf(&t.SliderValue, patch.SliderValue)
				setIf(&t.Rationale, patch.Rationale)
				setIf(&t.Ignored, patch.Ignored)
				setIf(&t.CustomTitle, patch.CustomTitle)
				setIf(&t.CustomQuestion, patch.CustomQuestion)
				setIf(&t.CustomLeftLabel, patch.CustomLeftLabel)
				setIf(&t.CustomRightLabel, patch.CustomRightLabel)
			})
	})
}

func (s *Store) DeleteTradeoff(id models.ID) {
	s.mutate(func(st *State) {
		st.Tradeoffs, _ = deleteWhere(st.Tradeoffs,
			func(t *models.Tradeoff) bool { return t.ID == id })
	})
}

// ToggleTradeoffIgnored flips whether a tradeoff is excluded from the
// report.
func (s *Store) ToggleTradeoffIgnored(id models.ID) {
	s.mutate(func(st *State) {
		updateWhere(st.Tradeoffs,
			func(t *models.Tradeoff) bool { return t.ID == id },
			func(t *models.Tradeoff) { t.Ignored = !t.Ignored })
	})
}

// --- Design principles ---

func (s *Store) AddDesignPrinciple(p models.DesignPrinciple) models.DesignPrinciple {
	p.ID = models.NewID()
	p.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.DesignPrinciples = append(st.DesignPrinciples, p) })
	return p
}

type DesignPrinciplePatch struct {
	Statement *string `json:"statement"`
	Rationale *string `json:"rationale"`
	SortOrder *int    `json:"sortOrder"`
}

func (s *Store) UpdateDesignPrinciple(id models.ID, patch DesignPrinciplePatch) {
	s.mutate(func(st *State) {
		updateWhere(st.DesignPrinciples,
			func(p *models.DesignPrinciple) bool { return p.ID == id },
			func(p *models.DesignPrinciple) {
				setIf(&p.Statement, patch.Statement)
				setIf(&p.Rationale, patch.Rationale)
				setIf(&p.SortOrder, patch.SortOrder)
			})
	})
}

func (s *Store) DeleteDesignPrinciple(id models.ID) {
	s.mutate(func(st *State) {
		st.DesignPrinciples, _ = deleteWhere(st.DesignPrinciples,
			func(p *models.DesignPrinciple) bool { return p.ID == id })
	})
}

// --- Pilot designs ---

func (s *Store) AddPilotDesign(d models.PilotDesign) models.PilotDesign {
	d.ID = models.NewID()
	d.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.PilotDesigns = append(st.PilotDesigns, d) })
	return d
}

type PilotDesignPatch struct {
	OpportunityID *models.ID `json:"opportunityId"`
	Hypothesis    *string    `json:"hypothesis"`
	Scope         *string    `json:"scope"`
	DataNeeds     *string    `json:"dataNeeds"`
	Risks         *string    `json:"risks"`
}

func (s *Store) UpdatePilotDesign(id models.ID, patch PilotDesignPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.PilotDesigns,
			func(d *models.PilotDesign) bool { return d.ID == id },
			func(d *models.PilotDesign) {
				if patch.OpportunityID != nil {
					d.OpportunityID = patch.OpportunityID
				}
				setIf(&d.Hypothesis, patch.Hypothesis)
				setIf(&d.Scope, patch.Scope)
				setIf(&d.DataNeeds, patch.DataNeeds)
				setIf(&d.Risks, patch.Risks)
			})
	})
}

func (s *Store) DeletePilotDesign(id models.ID) {
	s.mutate(func(st *State) {
		st.PilotDesigns, _ = deleteWhere(st.PilotDesigns,
			func(d *models.PilotDesign) bool { return d.ID == id })
	})
}

// --- MVP specs ---

func (s *Store) AddMVPSpec(m models.MVPSpec) models.MVPSpec {
	m.ID = models.NewID()
	m.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.MVPSpecs = append(st.MVPSpecs, m) })
	return m
}

type MVPSpecPatch struct {
	OpportunityID    *models.ID `json:"opportunityId"`
	Name             *string    `json:"name"`
	ProblemStatement *string    `json:"problemStatement"`
	TargetUsers      *string    `json:"targetUsers"`
	CoreFeatures     *[]string  `json:"coreFeatures"`
	SuccessCriteria  *string    `json:"successCriteria"`
	OutOfScope       *string    `json:"outOfScope"`
}

func (s *Store) UpdateMVPSpec(id models.ID, patch MVPSpecPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.MVPSpecs,
			func(m *models.MVPSpec) bool { return m.ID == id },
			func(m *models.MVPSpec) {
				if patch.OpportunityID != nil {
					m.OpportunityID = patch.OpportunityID
				}
				setIf(&m.Name, patch.Name)
				setIf(&m.ProblemStatement, patch.ProblemStatement)
				setIf(&m.TargetUsers, patch.TargetUsers)
				setIf(&m.CoreFeatures, patch.CoreFeatures)
				setIf(&m.SuccessCriteria, patch.SuccessCriteria)
				setIf(&m.OutOfScope, patch.OutOfScope)
			})
	})
}

func (s *Store) DeleteMVPSpec(id models.ID) {
	s.mutate(func(st *State) {
		st.MVPSpecs, _ = deleteWhere(st.MVPSpecs,
			func(m *models.MVPSpec) bool { return m.ID == id })
	})
}

// --- Pilot plans ---

func (s *Store) AddPilot(p models.PilotPlan) models.PilotPlan {
	p.ID = models.NewID()
	p.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.Pilots = append(st.Pilots, p) })
	return p
}

type PilotPlanPatch struct {
	MVPSpecID      *models.ID `json:"mvpSpecId"`
	Name           *string    `json:"name"`
	Owner          *string    `json:"owner"`
	StartDate      *string    `json:"startDate"`
	EndDate        *string    `json:"endDate"`
	SuccessMetrics *string    `json:"successMetrics"`
	Status         *string    `json:"status"`
}

func (s *Store) UpdatePilot(id models.ID, patch PilotPlanPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.Pilots,
			func(p *models.PilotPlan) bool { return p.ID == id },
			func(p *models.PilotPlan) {
				if patch.MVPSpecID != nil {
					p.MVPSpecID = patch.MVPSpecID
				}
				setIf(&p.Name, patch.Name)
				setIf(&p.Owner, patch.Owner)
				setIf(&p.StartDate, patch.StartDate)
				setIf(&p.EndDate, patch.EndDate)
				setIf(&p.SuccessMetrics, patch.SuccessMetrics)
				setIf(&p.Status, patch.Status)
			})
	})
}

func (s *Store) DeletePilot(id models.ID) {
	s.mutate(func(st *State) {
		st.Pilots, _ = deleteWhere(st.Pilots,
			func(p *models.PilotPlan) bool { return p.ID == id })
	})
}

// --- RACI entries ---

func (s *Store) AddRACIEntry(e models.RACIEntry) models.RACIEntry {
	e.ID = models.NewID()
	s.mutate(func(st *State) { st.RACIEntries = append(st.RACIEntries, e) })
	return e
}

type RACIEntryPatch struct {
	PilotID     *models.ID `json:"pilotId"`
	Activity    *string    `json:"activity"`
	Responsible *string    `json:"responsible"`
	Accountable *string    `json:"accountable"`
	Consulted   *string    `json:"consulted"`
	Informed    *string    `json:"informed"`
}

func (s *Store) UpdateRACIEntry(id models.ID, patch RACIEntryPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.RACIEntries,
			func(e *models.RACIEntry) bool { return e.ID == id },
			func(e *models.RACIEntry) {
				if patch.PilotID != nil {
					e.PilotID = patch.PilotID
				}
				setIf(&e.Activity, patch.Activity)
				setIf(&e.Responsible, patch.Responsible)
				setIf(&e.Accountable, patch.Accountable)
				setIf(&e.Consulted, patch.Consulted)
				setIf(&e.Informed, patch.Informed)
			})
	})
}

func (s *Store) DeleteRACIEntry(id models.ID) {
	s.mutate(func(st *State) {
		st.RACIEntries, _ = deleteWhere(st.RACIEntries,
			func(e *models.RACIEntry) bool { return e.ID == id })
	})
}

// --- Roadmap milestones ---

func (s *Store) AddRoadmapMilestone(m models.RoadmapMilestone) models.RoadmapMilestone {
	m.ID = models.NewID()
	m.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.RoadmapMilestones = append(st.RoadmapMilestones, m) })
	return m
}

type RoadmapMilestonePatch struct {
	PilotID     *models.ID `json:"pilotId"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Quarter     *string    `json:"quarter"`
	Status      *string    `json:"status"`
	SortOrder   *int       `json:"sortOrder"`
}

func (s *Store) UpdateRoadmapMilestone(id models.ID, patch RoadmapMilestonePatch) {
	s.mutate(func(st *State) {
		updateWhere(st.RoadmapMilestones,
			func(m *models.RoadmapMilestone) bool { return m.ID == id },
			func(m *models.RoadmapMilestone) {
				if patch.PilotID != nil {
					m.PilotID = patch.PilotID
				}
				setIf(&m.Title, patch.Title)
				setIf(&m.Description, patch.Description)
				setIf(&m.Quarter, patch.Quarter)
				setIf(&m.Status, patch.Status)
				setIf(&m.SortOrder, patch.SortOrder)
			})
	})
}

func (s *Store) DeleteRoadmapMilestone(id models.ID) {
	s.mutate(func(st *State) {
		st.RoadmapMilestones, _ = deleteWhere(st.RoadmapMilestones,
			func(m *models.RoadmapMilestone) bool { return m.ID == id })
	})
}

// --- Scaling checklist ---

func (s *Store) AddScalingChecklistItem(i models.ScalingChecklistItem) models.ScalingChecklistItem {
	i.ID = models.NewID()
	s.mutate(func(st *State) { st.ScalingChecklist = append(st.ScalingChecklist, i) })
	return i
}

type ScalingChecklistItemPatch struct {
	Category *string `json:"category"`
	Label    *string `json:"label"`
	Checked  *bool   `json:"checked"`
}

func (s *Store) UpdateScalingChecklistItem(id models.ID, patch ScalingChecklistItemPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.ScalingChecklist,
			func(i *models.ScalingChecklistItem) bool { return i.ID == id },
			func(i *models.ScalingChecklistItem) {
				setIf(&i.Category, patch.Category)
				setIf(&i.Label, patch.Label)
				setIf(&i.Checked, patch.Checked)
			})
	})
}

func (s *Store) DeleteScalingChecklistItem(id models.ID) {
	s.mutate(func(st *State) {
		st.ScalingChecklist, _ = deleteWhere(st.ScalingChecklist,
			func(i *models.ScalingChecklistItem) bool { return i.ID == id })
	})
}

// --- Training plan ---

func (s *Store) AddTrainingPlanEntry(e models.TrainingPlanEntry) models.TrainingPlanEntry {
	e.ID = models.NewID()
	s.mutate(func(st *State) { st.TrainingPlan = append(st.TrainingPlan, e) })
	return e
}

type TrainingPlanEntryPatch struct {
	Audience *string `json:"audience"`
	Topic    *string `json:"topic"`
	Format   *string `json:"format"`
	Timeline *string `json:"timeline"`
}

func (s *Store) UpdateTrainingPlanEntry(id models.ID, patch TrainingPlanEntryPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.TrainingPlan,
			func(e *models.TrainingPlanEntry) bool { return e.ID == id },
			func(e *models.TrainingPlanEntry) {
				setIf(&e.Audience, patch.Audience)
				setIf(&e.Topic, patch.Topic)
				setIf(&e.Format, patch.Format)
				setIf(&e.Timeline, patch.Timeline)
			})
	})
}

func (s *Store) DeleteTrainingPlanEntry(id models.ID) {
	s.mutate(func(st *State) {
		st.TrainingPlan, _ = deleteWhere(st.TrainingPlan,
			func(e *models.TrainingPlanEntry) bool { return e.ID == id })
	})
}

// --- Lessons learned ---

func (s *Store) AddLessonLearned(l models.LessonLearned) models.LessonLearned {
	l.ID = models.NewID()
	l.CreatedAt = time.Now().UTC()
	s.mutate(func(st *State) { st.LessonsLearned = append(st.LessonsLearned, l) })
	return l
}

type LessonLearnedPatch struct {
	PilotID     *models.ID `json:"pilotId"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
}

func (s *Store) UpdateLessonLearned(id models.ID, patch LessonLearnedPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.LessonsLearned,
			func(l *models.LessonLearned) bool { return l.ID == id },
			func(l *models.LessonLearned) {
				if patch.PilotID != nil {
					l.PilotID = patch.PilotID
				}
				setIf(&l.Category, patch.Category)
				setIf(&l.Description, patch.Description)
			})
	})
}

func (s *Store) DeleteLessonLearned(id models.ID) {
	s.mutate(func(st *State) {
		st.LessonsLearned, _ = deleteWhere(st.LessonsLearned,
			func(l *models.LessonLearned) bool { return l.ID == id })
	})
}

// --- Next opportunities ---

func (s *Store) AddNextOpportunity(n models.NextOpportunity) models.NextOpportunity {
	n.ID = models.NewID()
	s.mutate(func(st *State) { st.NextOpportunities = append(st.NextOpportunities, n) })
	return n
}

type NextOpportunityPatch struct {
	FrictionID    *models.ID `json:"frictionId"`
	Title         *string    `json:"title"`
	Notes         *string    `json:"notes"`
	TargetQuarter *string    `json:"targetQuarter"`
}

func (s *Store) UpdateNextOpportunity(id models.ID, patch NextOpportunityPatch) {
	s.mutate(func(st *State) {
		updateWhere(st.NextOpportunities,
			func(n *models.NextOpportunity) bool { return n.ID == id },
			func(n *models.NextOpportunity) {
				if patch.FrictionID != nil {
					n.FrictionID = patch.FrictionID
				}
				setIf(&n.Title, patch.Title)
				setIf(&n.Notes, patch.Notes)
				setIf(&n.TargetQuarter, patch.TargetQuarter)
			})
	})
}

func (s *Store) DeleteNextOpportunity(id models.ID) {
	s.mutate(func(st *State) {
		st.NextOpportunities, _ = deleteWhere(st.NextOpportunities,
			func(n *models.NextOpportunity) bool { return n.ID == id })
	})
}
