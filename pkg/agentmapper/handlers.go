package agentmapper

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

// handleHealth reports service liveness plus the current sync status, so a
// monitor can tell a healthy local-only instance from one with a failing
// cloud backend.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, _ := a.store.SyncState()
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"sync":   status,
		"time":   time.Now().Unix(),
	})
}

// Workshop lifecycle handlers.

func (a *App) handleGetWorkshop(w http.ResponseWriter, r *http.Request) {
	status, lastErr := a.store.SyncState()
	resp := map[string]any{
		"organization":   a.store.Organization(),
		"currentSession": a.store.CurrentSession(),
		"isDirty":        a.store.IsDirty(),
		"lastSaved":      a.store.LastSaved(),
		"syncStatus":     status,
		"lastSyncedAt":   a.store.LastSyncedAt(),
	}
	if lastErr != "" {
		resp["syncError"] = lastErr
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *App) handleStartWorkshop(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	org := a.store.StartWorkshop(req.Name)
	respondJSON(w, http.StatusCreated, org)
}

func (a *App) handleResetWorkshop(w http.ResponseWriter, r *http.Request) {
	a.store.ResetWorkshop()
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleAdvanceSession(w http.ResponseWriter, r *http.Request) {
	a.store.AdvanceSession()
	respondJSON(w, http.StatusOK, map[string]int{"currentSession": a.store.CurrentSession()})
}

func (a *App) handleSetSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Session int `json:"session"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	a.store.SetCurrentSession(req.Session)
	respondJSON(w, http.StatusOK, map[string]int{"currentSession": a.store.CurrentSession()})
}

func (a *App) handleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	var patch store.OrganizationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	a.store.UpdateOrganization(patch)
	respondJSON(w, http.StatusOK, a.store.Organization())
}

func (a *App) handleSave(w http.ResponseWriter, r *http.Request) {
	a.store.MarkSaved()
	respondJSON(w, http.StatusOK, map[string]any{"lastSaved": a.store.LastSaved()})
}

// handleSnapshot exports the full workshop state in the durable snapshot
// format.
func (a *App) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.Snapshot())
}

// Specialized collection actions.

// handleRescore edits both matrix scores and re-classifies the quadrant from
// the new values. The plain PUT on the collection leaves a stored quadrant
// untouched unless the caller sends one; this endpoint is the "drag the dot
// on the matrix" action, which always recomputes.
func (a *App) handleRescore(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	var req struct {
		ValueScore      int `json:"valueScore"`
		ComplexityScore int `json:"complexityScore"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	quadrant := models.ClassifyQuadrant(req.ValueScore, req.ComplexityScore)
	a.store.UpdateScoredOpportunity(id, store.ScoredOpportunityPatch{
		ValueScore:      &req.ValueScore,
		ComplexityScore: &req.ComplexityScore,
		Quadrant:        &quadrant,
	})
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleVote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	a.store.VoteForOpportunity(id)
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleTogglePilot(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	a.store.TogglePilotSelection(id)
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleToggleTradeoffIgnored(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	a.store.ToggleTradeoffIgnored(id)
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleToggleBias(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	a.store.ToggleCognitiveBias(id)
	respondJSON(w, http.StatusNoContent, nil)
}

// Cloud operation handlers.

func (a *App) handleCloudConnect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	orgID, err := a.store.ConnectCloud(r.Context(), req.Name)
	if err != nil {
		respondError(w, cloudErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"cloudOrgId": orgID})
}

// cloudErrorStatus maps cloud orchestration failures to HTTP statuses. A
// store built without a cloud adapter is a local configuration condition,
// not a backend failure, so it answers 503 rather than 502; syncing before
// connecting is a precondition failure and answers 409.
func cloudErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNoCloudSyncer):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrNotConnected):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func (a *App) handleCloudLoad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrgID models.ID `json:"orgId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := a.store.LoadCloud(r.Context(), req.OrgID); err != nil {
		respondError(w, cloudErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, a.store.Snapshot())
}

func (a *App) handleCloudSync(w http.ResponseWriter, r *http.Request) {
	if err := a.store.SyncCloud(r.Context()); err != nil {
		respondError(w, cloudErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"lastSyncedAt": a.store.LastSyncedAt()})
}

func (a *App) handleCloudDisconnect(w http.ResponseWriter, r *http.Request) {
	a.store.DisconnectCloud()
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *App) handleCloudStatus(w http.ResponseWriter, r *http.Request) {
	status, lastErr := a.store.SyncState()
	resp := map[string]any{
		"status":       status,
		"lastSyncedAt": a.store.LastSyncedAt(),
	}
	if id, ok := a.store.CloudOrgID(); ok {
		resp["cloudOrgId"] = id
	}
	if lastErr != "" {
		resp["error"] = lastErr
	}
	respondJSON(w, http.StatusOK, resp)
}

// respondJSON writes the payload as JSON with the given status. A nil
// payload writes the status line only.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_, _ = w.Write(response)
	}
}

// respondError sends a JSON error response shaped {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
