package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryStorage())
}

func TestNewStoreSeedsTradeoffs(t *testing.T) {
	s := newTestStore(t)
	snap := s.Snapshot()
	require.Len(t, snap.Tradeoffs, 5)
	assert.Equal(t, 1, snap.CurrentSession)
	assert.Nil(t, snap.Organization)
	assert.False(t, s.IsDirty())
}

func TestAddAssignsDistinctIDs(t *testing.T) {
	s := newTestStore(t)
	seen := make(map[models.ID]bool)
	for i := 0; i < 20; i++ {
		fp := s.AddFrictionPoint(models.FrictionPoint{Description: "slow approvals"})
		require.False(t, fp.ID.IsZero())
		require.False(t, seen[fp.ID])
		seen[fp.ID] = true
		assert.False(t, fp.CreatedAt.IsZero())
	}
	assert.Len(t, s.Snapshot().FrictionPoints, 20)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	fp := s.AddFrictionPoint(models.FrictionPoint{Description: "original"})

	desc := "changed"
	s.UpdateFrictionPoint(models.NewID(), store.FrictionPointPatch{Description: &desc})

	snap := s.Snapshot()
	require.Len(t, snap.FrictionPoints, 1)
	assert.Equal(t, "original", snap.FrictionPoints[0].Description)
	assert.Equal(t, fp.ID, snap.FrictionPoints[0].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	fp := s.AddFrictionPoint(models.FrictionPoint{Description: "one"})
	s.AddFrictionPoint(models.FrictionPoint{Description: "two"})

	s.DeleteFrictionPoint(fp.ID)
	require.Len(t, s.Snapshot().FrictionPoints, 1)

	// Deleting the same id again changes nothing.
	s.DeleteFrictionPoint(fp.ID)
	s.DeleteFrictionPoint(models.NewID())
	require.Len(t, s.Snapshot().FrictionPoints, 1)
	assert.Equal(t, "two", s.Snapshot().FrictionPoints[0].Description)
}

func TestPatchOnlyTouchesProvidedFields(t *testing.T) {
	s := newTestStore(t)
	fp := s.AddFrictionPoint(models.FrictionPoint{
		ProcessArea: "finance",
		Description: "manual invoicing",
		Priority:    models.PriorityHigh,
	})

	desc := "manual invoice matching"
	s.UpdateFrictionPoint(fp.ID, store.FrictionPointPatch{Description: &desc})

	got := s.Snapshot().FrictionPoints[0]
	assert.Equal(t, "manual invoice matching", got.Description)
	assert.Equal(t, "finance", got.ProcessArea)
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestScoredOpportunityQuadrantStoredAtScoringTime(t *testing.T) {
	s := newTestStore(t)
	o := s.AddScoredOpportunity(models.ScoredOpportunity{
		Title:           "auto-triage",
		ValueScore:      4,
		ComplexityScore: 2,
	})
	assert.Equal(t, models.QuadrantQuickWin, o.Quadrant)

	// Editing the scores without passing a quadrant keeps the stale one.
	value, complexity := 1, 5
	s.UpdateScoredOpportunity(o.ID, store.ScoredOpportunityPatch{
		ValueScore:      &value,
		ComplexityScore: &complexity,
	})
	got := s.Snapshot().ScoredOpportunities[0]
	assert.Equal(t, 1, got.ValueScore)
	assert.Equal(t, 5, got.ComplexityScore)
	assert.Equal(t, models.QuadrantQuickWin, got.Quadrant)

	// Passing a quadrant replaces it.
	q := models.ClassifyQuadrant(value, complexity)
	s.UpdateScoredOpportunity(o.ID, store.ScoredOpportunityPatch{Quadrant: &q})
	assert.Equal(t, models.QuadrantDeprioritize, s.Snapshot().ScoredOpportunities[0].Quadrant)
}

func TestVotesAccumulate(t *testing.T) {
	s := newTestStore(t)
	o := s.AddScoredOpportunity(models.ScoredOpportunity{Title: "votable", ValueScore: 3, ComplexityScore: 3})

	s.VoteForOpportunity(o.ID)
	s.VoteForOpportunity(o.ID)
	s.VoteForOpportunity(o.ID)
	assert.Equal(t, 3, s.Snapshot().ScoredOpportunities[0].VoteCount)

	// Voting on an unknown id touches nothing.
	s.VoteForOpportunity(models.NewID())
	assert.Equal(t, 3, s.Snapshot().ScoredOpportunities[0].VoteCount)
}

func TestTogglePilotSelection(t *testing.T) {
	s := newTestStore(t)
	o := s.AddScoredOpportunity(models.ScoredOpportunity{Title: "candidate", ValueScore: 4, ComplexityScore: 1})

	s.TogglePilotSelection(o.ID)
	assert.True(t, s.Snapshot().ScoredOpportunities[0].SelectedForPilot)
	s.TogglePilotSelection(o.ID)
	assert.False(t, s.Snapshot().ScoredOpportunities[0].SelectedForPilot)
}

func TestAddCustomTradeoffForcesCustomFlag(t *testing.T) {
	s := newTestStore(t)
	tr := s.AddCustomTradeoff(models.Tradeoff{
		Topic:       "cloud-vs-onprem",
		SliderValue: 30,
		IsCustom:    false,
	})
	assert.True(t, tr.IsCustom)
	assert.Len(t, s.Snapshot().Tradeoffs, 6)
}

func TestToggleTradeoffIgnored(t *testing.T) {
	s := newTestStore(t)
	id := s.Snapshot().Tradeoffs[0].ID
	s.ToggleTradeoffIgnored(id)
	assert.True(t, s.Snapshot().Tradeoffs[0].Ignored)
	s.ToggleTradeoffIgnored(id)
	assert.False(t, s.Snapshot().Tradeoffs[0].Ignored)
}

func TestDirtyFlagLifecycle(t *testing.T) {
	s := newTestStore(t)
	require.False(t, s.IsDirty())

	s.AddFrictionPoint(models.FrictionPoint{Description: "anything"})
	assert.True(t, s.IsDirty())

	// Further mutations keep it set.
	s.AddFrictionPoint(models.FrictionPoint{Description: "more"})
	assert.True(t, s.IsDirty())

	s.MarkSaved()
	assert.False(t, s.IsDirty())
	require.NotNil(t, s.LastSaved())

	s.MarkDirty()
	assert.True(t, s.IsDirty())
}

func TestStartWorkshop(t *testing.T) {
	s := newTestStore(t)
	org := s.StartWorkshop("Acme Corp")
	require.False(t, org.ID.IsZero())
	assert.Equal(t, "Acme Corp", org.Name)
	assert.Equal(t, 1, org.CurrentSession)

	got := s.Organization()
	require.NotNil(t, got)
	assert.Equal(t, org.ID, got.ID)
}

func TestSessionAdvanceClampsAndTracksCompletion(t *testing.T) {
	s := newTestStore(t)
	s.StartWorkshop("Acme Corp")

	for i := 0; i < 10; i++ {
		s.AdvanceSession()
	}
	assert.Equal(t, store.SessionCount, s.CurrentSession())
	assert.Equal(t, 100, s.Organization().CompletionPercent)

	s.SetCurrentSession(-3)
	assert.Equal(t, 1, s.CurrentSession())
	assert.Equal(t, 0, s.Organization().CompletionPercent)

	s.SetCurrentSession(4)
	assert.Equal(t, 60, s.Organization().CompletionPercent)
}

func TestResetWorkshopIsWholesale(t *testing.T) {
	s := newTestStore(t)
	s.StartWorkshop("Acme Corp")
	s.AddFrictionPoint(models.FrictionPoint{Description: "x"})
	s.AddScoredOpportunity(models.ScoredOpportunity{Title: "y", ValueScore: 3, ComplexityScore: 3})
	s.AdvanceSession()

	s.ResetWorkshop()

	snap := s.Snapshot()
	assert.Nil(t, snap.Organization)
	assert.Empty(t, snap.FrictionPoints)
	assert.Empty(t, snap.ScoredOpportunities)
	assert.Equal(t, 1, snap.CurrentSession)
	assert.Len(t, snap.Tradeoffs, 5)
	assert.False(t, s.IsDirty())
}

func TestRestoreRoundTrip(t *testing.T) {
	storage := store.NewMemoryStorage()

	s := store.New(storage)
	s.StartWorkshop("Acme Corp")
	s.AddFrictionPoint(models.FrictionPoint{Description: "persisted"})
	s.SetCurrentSession(3)

	// A second store over the same storage picks up the snapshot, clean.
	s2 := store.New(storage)
	require.NoError(t, s2.Restore())
	snap := s2.Snapshot()
	require.NotNil(t, snap.Organization)
	assert.Equal(t, "Acme Corp", snap.Organization.Name)
	assert.Equal(t, 3, snap.CurrentSession)
	require.Len(t, snap.FrictionPoints, 1)
	assert.False(t, s2.IsDirty())
}

func TestRestoreWithoutSnapshotKeepsInitialState(t *testing.T) {
	s := store.New(store.NewMemoryStorage())
	require.NoError(t, s.Restore())
	assert.Equal(t, 1, s.CurrentSession())
	assert.Len(t, s.Snapshot().Tradeoffs, 5)
}

func TestSnapshotJSONShape(t *testing.T) {
	s := newTestStore(t)
	s.StartWorkshop("Acme Corp")
	s.MarkDirty()

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"organization", "currentSession",
		"icebreakerResponses", "futureHeadlines", "cognitiveBiases",
		"frictionPoints", "opportunities", "scoredOpportunities",
		"workingPrinciples", "tradeoffs", "designPrinciples",
		"pilotDesigns", "mvpSpecs", "pilots", "raciEntries",
		"roadmapMilestones", "scalingChecklist", "trainingPlan",
		"lessonsLearned", "nextOpportunities",
		"lastSaved", "cloudOrgId", "lastSyncedAt",
	} {
		assert.Contains(t, raw, key, "snapshot must carry %q", key)
	}

	// Transient sync fields never reach the snapshot.
	for _, key := range []string{"syncStatus", "syncError", "isDirty", "dirty"} {
		assert.NotContains(t, raw, key, "snapshot must not carry %q", key)
	}
}

func TestSnapshotDoesNotAliasStore(t *testing.T) {
	s := newTestStore(t)
	s.AddFrictionPoint(models.FrictionPoint{Description: "original"})

	snap := s.Snapshot()
	snap.FrictionPoints[0].Description = "mutated copy"

	assert.Equal(t, "original", s.Snapshot().FrictionPoints[0].Description)
}

func TestSnapshotDoesNotAliasNestedSlices(t *testing.T) {
	s := newTestStore(t)
	s.AddWorkingPrinciple(models.WorkingPrinciple{
		PrincipleType: models.PrincipleHumanOversight,
		Dos:           []string{"measure first"},
		Donts:         []string{"skip review"},
	})
	s.AddMVPSpec(models.MVPSpec{
		CoreFeatures: []string{"triage queue"},
	})

	snap := s.Snapshot()
	snap.WorkingPrinciples[0].Dos[0] = "mutated copy"
	snap.WorkingPrinciples[0].Donts[0] = "mutated copy"
	snap.MVPSpecs[0].CoreFeatures[0] = "mutated copy"

	fresh := s.Snapshot()
	assert.Equal(t, "measure first", fresh.WorkingPrinciples[0].Dos[0])
	assert.Equal(t, "skip review", fresh.WorkingPrinciples[0].Donts[0])
	assert.Equal(t, "triage queue", fresh.MVPSpecs[0].CoreFeatures[0])
}

func TestSubscribersRunAfterMutation(t *testing.T) {
	s := newTestStore(t)
	var calls int
	s.Subscribe(func() { calls++ })

	s.AddFrictionPoint(models.FrictionPoint{Description: "x"})
	s.MarkSaved()
	assert.Equal(t, 2, calls)
}
