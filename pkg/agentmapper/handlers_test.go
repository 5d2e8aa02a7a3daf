package agentmapper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

// nullSyncer satisfies store.CloudSyncer for wiring tests that never reach
// the network path.
type nullSyncer struct{}

func (nullSyncer) CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error) {
	return org, nil
}
func (nullSyncer) SyncWorkshopData(ctx context.Context, orgID models.ID, snap store.CloudSnapshot) error {
	return nil
}
func (nullSyncer) LoadWorkshopData(ctx context.Context, orgID models.ID) (store.CloudSnapshot, error) {
	return store.CloudSnapshot{}, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return &App{
		store:  store.New(store.NewMemoryStorage(), store.WithCloud(nullSyncer{})),
		config: &Config{Addr: ":0"},
		log:    zerolog.Nop(),
	}
}

func doJSON(t *testing.T, a *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.routes().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	a := newTestApp(t)
	rec := doJSON(t, a, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "idle", resp["sync"])
}

func TestWorkshopLifecycleOverHTTP(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, "POST", "/api/workshop/start", map[string]string{"name": "Acme Corp"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var org models.Organization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
	assert.Equal(t, "Acme Corp", org.Name)
	require.False(t, org.ID.IsZero())

	rec = doJSON(t, a, "POST", "/api/workshop/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"currentSession":2}`, rec.Body.String())

	rec = doJSON(t, a, "PUT", "/api/workshop/session", map[string]int{"session": 99})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"currentSession":%d}`, store.SessionCount), rec.Body.String())

	rec = doJSON(t, a, "GET", "/api/workshop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, float64(store.SessionCount), meta["currentSession"])
	assert.Equal(t, true, meta["isDirty"])

	rec = doJSON(t, a, "POST", "/api/workshop/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, a.store.IsDirty())

	rec = doJSON(t, a, "POST", "/api/workshop/reset", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, a.store.Organization())
	assert.Equal(t, 1, a.store.CurrentSession())
}

func TestCollectionCRUDOverHTTP(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, "POST", "/api/friction-points", map[string]string{
		"processArea": "finance",
		"description": "manual invoicing",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.FrictionPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())

	rec = doJSON(t, a, "GET", "/api/friction-points", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.FrictionPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, a, "PUT", "/api/friction-points/"+created.ID.String(), map[string]string{
		"description": "manual invoice matching",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "manual invoice matching", a.store.Snapshot().FrictionPoints[0].Description)
	assert.Equal(t, "finance", a.store.Snapshot().FrictionPoints[0].ProcessArea)

	// Unknown ids are a silent no-op, bad ids are a client error.
	rec = doJSON(t, a, "PUT", "/api/friction-points/"+models.NewID().String(), map[string]string{"description": "x"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, a, "PUT", "/api/friction-points/not-a-uuid", map[string]string{"description": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, a, "DELETE", "/api/friction-points/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, a.store.Snapshot().FrictionPoints)
}

func TestEmptyCollectionListsAsArray(t *testing.T) {
	a := newTestApp(t)
	rec := doJSON(t, a, "GET", "/api/pilots", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestScoreAndRescoreOverHTTP(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, "POST", "/api/scored-opportunities", map[string]any{
		"title":           "auto-triage",
		"valueScore":      4,
		"complexityScore": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var o models.ScoredOpportunity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, models.QuadrantQuickWin, o.Quadrant)

	rec = doJSON(t, a, "PUT", "/api/scored-opportunities/"+o.ID.String()+"/score", map[string]int{
		"valueScore":      1,
		"complexityScore": 5,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	got := a.store.Snapshot().ScoredOpportunities[0]
	assert.Equal(t, 1, got.ValueScore)
	assert.Equal(t, 5, got.ComplexityScore)
	assert.Equal(t, models.QuadrantDeprioritize, got.Quadrant)
}

func TestVoteAndToggleOverHTTP(t *testing.T) {
	a := newTestApp(t)
	o := a.store.AddScoredOpportunity(models.ScoredOpportunity{Title: "votable", ValueScore: 3, ComplexityScore: 3})

	for i := 0; i < 3; i++ {
		rec := doJSON(t, a, "POST", "/api/scored-opportunities/"+o.ID.String()+"/vote", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Equal(t, 3, a.store.Snapshot().ScoredOpportunities[0].VoteCount)

	rec := doJSON(t, a, "POST", "/api/scored-opportunities/"+o.ID.String()+"/toggle-pilot", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, a.store.Snapshot().ScoredOpportunities[0].SelectedForPilot)

	trID := a.store.Snapshot().Tradeoffs[0].ID
	rec = doJSON(t, a, "POST", "/api/tradeoffs/"+trID.String()+"/toggle-ignored", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, a.store.Snapshot().Tradeoffs[0].Ignored)
}

func TestCloudEndpoints(t *testing.T) {
	a := newTestApp(t)

	// Sync before connect is a precondition failure, not a gateway error.
	rec := doJSON(t, a, "POST", "/api/cloud/sync", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, a, "POST", "/api/cloud/connect", map[string]string{"name": "Acme Corp"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["cloudOrgId"])

	rec = doJSON(t, a, "POST", "/api/cloud/sync", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a, "GET", "/api/cloud/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "idle", status["status"])
	assert.Equal(t, resp["cloudOrgId"], status["cloudOrgId"])

	rec = doJSON(t, a, "POST", "/api/cloud/disconnect", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	_, connected := a.store.CloudOrgID()
	assert.False(t, connected)
}

func TestCloudEndpointsWithoutSyncer(t *testing.T) {
	// A store built without a cloud adapter is a local configuration
	// condition; the cloud endpoints answer 503, not a gateway error.
	a := &App{
		store:  store.New(store.NewMemoryStorage()),
		config: &Config{Addr: ":0"},
		log:    zerolog.Nop(),
	}

	rec := doJSON(t, a, "POST", "/api/cloud/connect", map[string]string{"name": "Acme Corp"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, a, "POST", "/api/cloud/load", map[string]string{"orgId": models.NewID().String()})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, a, "POST", "/api/cloud/sync", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSnapshotExport(t *testing.T) {
	a := newTestApp(t)
	a.store.StartWorkshop("Acme Corp")

	rec := doJSON(t, a, "GET", "/api/snapshot", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "organization")
	assert.Contains(t, raw, "tradeoffs")
	assert.Contains(t, raw, "lastSaved")
	assert.NotContains(t, raw, "syncStatus")
}

func TestParseCommands(t *testing.T) {
	cmd, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	assert.IsType(t, &RunCommand{}, cmd)
	assert.Equal(t, ":8080", config.Addr)

	cmd, config, err = Parse([]string{"-addr=:9999", "-state-file=/tmp/x.json", "migrate"})
	require.NoError(t, err)
	assert.IsType(t, &MigrateCommand{}, cmd)
	assert.Equal(t, ":9999", config.Addr)
	assert.Equal(t, "/tmp/x.json", config.StateFile)

	_, _, err = Parse([]string{})
	assert.Error(t, err)
	_, _, err = Parse([]string{"frobnicate"})
	assert.Error(t, err)
}
