package remote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmapper/agentmapper/pkg/models"
)

func TestFrictionPointRowTranslation(t *testing.T) {
	orgID := models.NewID()
	fp := models.FrictionPoint{
		ID:          models.NewID(),
		ProcessArea: "finance",
		Description: "manual invoicing",
		Priority:    models.PriorityHigh,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	row := frictionPointToRow(orgID, fp)
	assert.Equal(t, orgID, row.OrgID)
	assert.Equal(t, fp, row.toModel())
}

func TestScoredOpportunityRowTranslation(t *testing.T) {
	orgID := models.NewID()
	frictionID := models.NewID()
	o := models.ScoredOpportunity{
		ID:               models.NewID(),
		FrictionID:       &frictionID,
		Title:            "auto-triage",
		Description:      "route tickets automatically",
		ValueScore:       4,
		ComplexityScore:  2,
		Quadrant:         models.QuadrantQuickWin,
		VoteCount:        7,
		SelectedForPilot: true,
	}

	row := scoredOpportunityToRow(orgID, o)
	assert.Equal(t, "quick-win", row.Quadrant)
	assert.Equal(t, o, row.toModel())
}

func TestScoredOpportunityRowNilWeakRef(t *testing.T) {
	o := models.ScoredOpportunity{ID: models.NewID(), Title: "standalone"}
	row := scoredOpportunityToRow(models.NewID(), o)
	assert.Nil(t, row.FrictionID)
	assert.Nil(t, row.toModel().FrictionID)
}

func TestPilotRowTranslation(t *testing.T) {
	orgID := models.NewID()
	specID := models.NewID()
	p := models.PilotPlan{
		ID:             models.NewID(),
		MVPSpecID:      &specID,
		Name:           "invoice pilot",
		Owner:          "ops",
		StartDate:      "2026-09-01",
		EndDate:        "2026-10-15",
		SuccessMetrics: "cycle time below 2 days",
		Status:         "planned",
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	assert.Equal(t, p, pilotToRow(orgID, p).toModel())
}

func TestRoadmapMilestoneRowTranslation(t *testing.T) {
	pilotID := models.NewID()
	m := models.RoadmapMilestone{
		ID:          models.NewID(),
		PilotID:     &pilotID,
		Title:       "expand to EU",
		Description: "roll pilot out to EU entities",
		Quarter:     "Q2",
		Status:      "planned",
		SortOrder:   3,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	assert.Equal(t, m, roadmapMilestoneToRow(models.NewID(), m).toModel())
}

func TestRACIEntryRowTranslation(t *testing.T) {
	pilotID := models.NewID()
	e := models.RACIEntry{
		ID:          models.NewID(),
		PilotID:     &pilotID,
		Activity:    "model evaluation",
		Responsible: "data team",
		Accountable: "cto",
		Consulted:   "legal",
		Informed:    "all hands",
	}
	assert.Equal(t, e, raciEntryToRow(models.NewID(), e).toModel())
}

func TestOrganizationRowTranslation(t *testing.T) {
	org := models.Organization{
		ID:                models.NewID(),
		Name:              "Acme Corp",
		CurrentSession:    3,
		CompletionPercent: 40,
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
		UpdatedAt:         time.Now().UTC().Truncate(time.Second),
	}
	assert.Equal(t, org, organizationToRow(org).toModel())
}

func TestRowsToModels(t *testing.T) {
	assert.Nil(t, rowsToModels[frictionPointRow, models.FrictionPoint](nil))

	rows := []frictionPointRow{
		frictionPointToRow(models.NewID(), models.FrictionPoint{ID: models.NewID(), Description: "a"}),
		frictionPointToRow(models.NewID(), models.FrictionPoint{ID: models.NewID(), Description: "b"}),
	}
	out := rowsToModels(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Description)
	assert.Equal(t, "b", out[1].Description)
}
