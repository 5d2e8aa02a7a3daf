package remote

import (
	"time"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// Row types mirror the six remote tables. Columns are snake_case and flat;
// the translation functions below are the only place the local camelCase
// entity shape and the remote row shape meet. Weak references stay plain id
// columns with no foreign-key constraint, matching their advisory role.

type organizationRow struct {
	ID                models.ID `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name"`
	CurrentSession    int       `gorm:"column:current_session"`
	CompletionPercent int       `gorm:"column:completion_percent"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (organizationRow) TableName() string { return "organizations" }

type frictionPointRow struct {
	ID          models.ID `gorm:"column:id;primaryKey"`
	OrgID       models.ID `gorm:"column:org_id;index"`
	ProcessArea string    `gorm:"column:process_area"`
	Description string    `gorm:"column:description"`
	Priority    string    `gorm:"column:priority"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (frictionPointRow) TableName() string { return "friction_points" }

type scoredOpportunityRow struct {
	ID               models.ID  `gorm:"column:id;primaryKey"`
	OrgID            models.ID  `gorm:"column:org_id;index"`
	FrictionID       *models.ID `gorm:"column:friction_id"`
	Title            string     `gorm:"column:title"`
	Description      string     `gorm:"column:description"`
	ValueScore       int        `gorm:"column:value_score"`
	ComplexityScore  int        `gorm:"column:complexity_score"`
	Quadrant         string     `gorm:"column:quadrant"`
	VoteCount        int        `gorm:"column:vote_count"`
	SelectedForPilot bool       `gorm:"column:selected_for_pilot"`
}

func (scoredOpportunityRow) TableName() string { return "scored_opportunities" }

type pilotRow struct {
	ID             models.ID  `gorm:"column:id;primaryKey"`
	OrgID          models.ID  `gorm:"column:org_id;index"`
	MVPSpecID      *models.ID `gorm:"column:mvp_spec_id"`
	Name           string     `gorm:"column:name"`
	Owner          string     `gorm:"column:owner"`
	StartDate      string     `gorm:"column:start_date"`
	EndDate        string     `gorm:"column:end_date"`
	SuccessMetrics string     `gorm:"column:success_metrics"`
	Status         string     `gorm:"column:status"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (pilotRow) TableName() string { return "pilots" }

type roadmapMilestoneRow struct {
	ID          models.ID  `gorm:"column:id;primaryKey"`
	OrgID       models.ID  `gorm:"column:org_id;index"`
	PilotID     *models.ID `gorm:"column:pilot_id"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	Quarter     string     `gorm:"column:quarter"`
	Status      string     `gorm:"column:status"`
	SortOrder   int        `gorm:"column:sort_order"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (roadmapMilestoneRow) TableName() string { return "roadmap_milestones" }

type raciEntryRow struct {
	ID          models.ID  `gorm:"column:id;primaryKey"`
	OrgID       models.ID  `gorm:"column:org_id;index"`
	PilotID     *models.ID `gorm:"column:pilot_id"`
	Activity    string     `gorm:"column:activity"`
	Responsible string     `gorm:"column:responsible"`
	Accountable string     `gorm:"column:accountable"`
	Consulted   string     `gorm:"column:consulted"`
	Informed    string     `gorm:"column:informed"`
}

func (raciEntryRow) TableName() string { return "raci_entries" }

// --- entity ↔ row translation ---

func organizationToRow(org models.Organization) organizationRow {
	return organizationRow{
		ID:                org.ID,
		Name:              org.Name,
		CurrentSession:    org.CurrentSession,
		CompletionPercent: org.CompletionPercent,
		CreatedAt:         org.CreatedAt,
		UpdatedAt:         org.UpdatedAt,
	}
}

func (r organizationRow) toModel() models.Organization {
	return models.Organization{
		ID:                r.ID,
		Name:              r.Name,
		CurrentSession:    r.CurrentSession,
		CompletionPercent: r.CompletionPercent,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func frictionPointToRow(orgID models.ID, fp models.FrictionPoint) frictionPointRow {
	return frictionPointRow{
		ID:          fp.ID,
		OrgID:       orgID,
		ProcessArea: fp.ProcessArea,
		Description: fp.Description,
		Priority:    string(fp.Priority),
		CreatedAt:   fp.CreatedAt,
	}
}

func (r frictionPointRow) toModel() models.FrictionPoint {
	return models.FrictionPoint{
		ID:          r.ID,
		ProcessArea: r.ProcessArea,
		Description: r.Description,
		Priority:    models.Priority(r.Priority),
		CreatedAt:   r.CreatedAt,
	}
}

func scoredOpportunityToRow(orgID models.ID, o models.ScoredOpportunity) scoredOpportunityRow {
	return scoredOpportunityRow{
		ID:               o.ID,
		OrgID:            orgID,
		FrictionID:       o.FrictionID,
		Title:            o.Title,
		Description:      o.Description,
		ValueScore:       o.ValueScore,
		ComplexityScore:  o.ComplexityScore,
		Quadrant:         string(o.Quadrant),
		VoteCount:        o.VoteCount,
		SelectedForPilot: o.SelectedForPilot,
	}
}

func (r scoredOpportunityRow) toModel() models.ScoredOpportunity {
	return models.ScoredOpportunity{
		ID:               r.ID,
		FrictionID:       r.FrictionID,
		Title:            r.Title,
		Description:      r.Description,
		ValueScore:       r.ValueScore,
		ComplexityScore:  r.ComplexityScore,
		Quadrant:         models.Quadrant(r.Quadrant),
		VoteCount:        r.VoteCount,
		SelectedForPilot: r.SelectedForPilot,
	}
}

func pilotToRow(orgID models.ID, p models.PilotPlan) pilotRow {
	return pilotRow{
		ID:             p.ID,
		OrgID:          orgID,
		MVPSpecID:      p.MVPSpecID,
		Name:           p.Name,
		Owner:          p.Owner,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		SuccessMetrics: p.SuccessMetrics,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
	}
}

func (r pilotRow) toModel() models.PilotPlan {
	return models.PilotPlan{
		ID:             r.ID,
		MVPSpecID:      r.MVPSpecID,
		Name:           r.Name,
		Owner:          r.Owner,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		SuccessMetrics: r.SuccessMetrics,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func roadmapMilestoneToRow(orgID models.ID, m models.RoadmapMilestone) roadmapMilestoneRow {
	return roadmapMilestoneRow{
		ID:          m.ID,
		OrgID:       orgID,
		PilotID:     m.PilotID,
		Title:       m.Title,
		Description: m.Description,
		Quarter:     m.Quarter,
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
	}
}

func (r roadmapMilestoneRow) toModel() models.RoadmapMilestone {
	return models.RoadmapMilestone{
		ID:          r.ID,
		PilotID:     r.PilotID,
		Title:       r.Title,
		Description: r.Description,
		Quarter:     r.Quarter,
		Status:      r.Status,
		SortOrder:   r.SortOrder,
		CreatedAt:   r.CreatedAt,
	}
}

func raciEntryToRow(orgID models.ID, e models.RACIEntry) raciEntryRow {
	return raciEntryRow{
		ID:          e.ID,
		OrgID:       orgID,
		PilotID:     e.PilotID,
		Activity:    e.Activity,
		Responsible: e.Responsible,
		Accountable: e.Accountable,
		Consulted:   e.Consulted,
		Informed:    e.Informed,
	}
}

func (r raciEntryRow) toModel() models.RACIEntry {
	return models.RACIEntry{
		ID:          r.ID,
		PilotID:     r.PilotID,
		Activity:    r.Activity,
		Responsible: r.Responsible,
		Accountable: r.Accountable,
		Consulted:   r.Consulted,
		Informed:    r.Informed,
	}
}

func rowsToModels[R interface{ toModel() M }, M any](rows []R) []M {
	if len(rows) == 0 {
		return nil
	}
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out
}
