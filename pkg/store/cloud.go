package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// SyncStatus is the store-level cloud synchronization state.
type SyncStatus string

const (
	StatusIdle    SyncStatus = "idle"
	StatusSyncing SyncStatus = "syncing"
	StatusError   SyncStatus = "error"
	// StatusOffline is a valid externally supplied status (set by network
	// observability hooks via SetSyncStatus); the connect/load/sync actions
	// never transition into it themselves.
	StatusOffline SyncStatus = "offline"
)

var (
	// ErrNotConnected is returned by SyncCloud when no cloud organization
	// has been connected yet.
	ErrNotConnected = errors.New("not connected to a cloud organization")
	// ErrNoCloudSyncer is returned when the store was built without a cloud
	// adapter.
	ErrNoCloudSyncer = errors.New("cloud sync is not available")
)

// CloudSnapshot is the remote-synchronized subset of the workshop state.
// Only these collections round-trip to the cloud backend; everything else
// stays local-only.
type CloudSnapshot struct {
	Organization        *models.Organization
	FrictionPoints      []models.FrictionPoint
	ScoredOpportunities []models.ScoredOpportunity
	Pilots              []models.PilotPlan
	RoadmapMilestones   []models.RoadmapMilestone
	RACIEntries         []models.RACIEntry
}

// CloudSyncer is the remote persistence surface the orchestrator needs. It
// is implemented by the remote adapter and by test fakes; it must be
// stateless and safe for concurrent use.
type CloudSyncer interface {
	// CreateOrganization inserts a new organization row and returns it with
	// any server-assigned defaults applied.
	CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error)
	// SyncWorkshopData bulk-upserts the snapshot under the given
	// organization id. Upserts are insert-or-replace by id; nothing is
	// deleted remotely.
	SyncWorkshopData(ctx context.Context, orgID models.ID, snap CloudSnapshot) error
	// LoadWorkshopData fetches the full remote snapshot for the given
	// organization id.
	LoadWorkshopData(ctx context.Context, orgID models.ID) (CloudSnapshot, error)
}

// SyncState reports the transient cloud-sync fields.
func (s *Store) SyncState() (status SyncStatus, lastErr string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncStatus, s.syncError
}

// SetSyncStatus overrides the sync status. It exists for network
// observability hooks (marking the store offline); the orchestrated actions
// manage the status themselves.
func (s *Store) SetSyncStatus(status SyncStatus) {
	s.mu.Lock()
	s.syncStatus = status
	s.mu.Unlock()
	s.notify()
}

// CloudOrgID returns the connected cloud organization id, if any.
func (s *Store) CloudOrgID() (models.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CloudOrgID == nil {
		return models.ID{}, false
	}
	return *s.state.CloudOrgID, true
}

// LastSyncedAt returns the timestamp of the last successful cloud
// operation, if any.
func (s *Store) LastSyncedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LastSyncedAt == nil {
		return nil
	}
	t := *s.state.LastSyncedAt
	return &t
}

// ConnectCloud creates a remote organization named name, records its id
// locally, and pushes the current local snapshot to it. The push is
// best-effort: if it fails the connection is kept, the status shows the
// error, and the error is returned so the caller can surface it. If the
// organization cannot be created no connection is recorded at all.
//
// Connect, LoadCloud and SyncCloud must not be run concurrently with each
// other; callers serialize them (the consuming surface disables its controls
// while one is in flight).
func (s *Store) ConnectCloud(ctx context.Context, name string) (models.ID, error) {
	if s.cloud == nil {
		return models.ID{}, ErrNoCloudSyncer
	}
	s.setSyncStatus(StatusSyncing, "")

	s.mu.RLock()
	candidate := models.Organization{
		ID:             models.NewID(),
		Name:           name,
		CurrentSession: s.state.CurrentSession,
	}
	if s.state.Organization != nil {
		candidate.CompletionPercent = s.state.Organization.CompletionPercent
	}
	now := time.Now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	s.mu.RUnlock()

	created, err := s.cloud.CreateOrganization(ctx, candidate)
	if err != nil {
		s.setSyncStatus(StatusError, err.Error())
		return models.ID{}, fmt.Errorf("create cloud organization: %w", err)
	}

	s.mu.Lock()
	orgID := created.ID
	s.state.CloudOrgID = &orgID
	if s.state.Organization == nil {
		org := created
		s.state.Organization = &org
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	s.log.Info().Stringer("org", orgID).Msg("connected to cloud organization")

	if err := s.cloud.SyncWorkshopData(ctx, orgID, s.cloudSnapshot()); err != nil {
		s.setSyncStatus(StatusError, err.Error())
		return orgID, fmt.Errorf("push workshop data: %w", err)
	}

	s.finishCloudOp()
	return orgID, nil
}

// LoadCloud fetches the remote snapshot for orgID and replaces the local
// state wholesale with it. The replace is all-or-nothing: on any fetch
// failure the local state is left byte-for-byte untouched and the status
// shows the error. A successful load yields clean state (dirty flag off)
// because the local state now mirrors the remote.
//
// Local-only collections are reset to their initial state by the replace;
// only the remote-synchronized collections come back from the cloud.
func (s *Store) LoadCloud(ctx context.Context, orgID models.ID) error {
	if s.cloud == nil {
		return ErrNoCloudSyncer
	}
	s.setSyncStatus(StatusSyncing, "")

	snap, err := s.cloud.LoadWorkshopData(ctx, orgID)
	if err != nil {
		s.setSyncStatus(StatusError, err.Error())
		return fmt.Errorf("load workshop data: %w", err)
	}

	now := time.Now().UTC()
	s.mu.Lock()
	st := newState()
	st.Organization = snap.Organization
	if snap.Organization != nil {
		st.CurrentSession = snap.Organization.CurrentSession
	}
	st.FrictionPoints = snap.FrictionPoints
	st.ScoredOpportunities = snap.ScoredOpportunities
	st.Pilots = snap.Pilots
	st.RoadmapMilestones = snap.RoadmapMilestones
	st.RACIEntries = snap.RACIEntries
	st.CloudOrgID = &orgID
	st.LastSyncedAt = &now
	st.LastSaved = s.state.LastSaved
	s.state = st
	s.dirty = false
	s.syncStatus = StatusIdle
	s.syncError = ""
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	s.log.Info().Stringer("org", orgID).Msg("loaded workshop from cloud")
	return nil
}

// SyncCloud pushes the current local snapshot, including the organization
// metadata, to the connected cloud organization. It fails synchronously with
// ErrNotConnected, before any status transition or network call, when no
// connection exists. The dirty flag is left alone: sync is a mirror push,
// not a save point.
func (s *Store) SyncCloud(ctx context.Context) error {
	if s.cloud == nil {
		return ErrNoCloudSyncer
	}
	orgID, ok := s.CloudOrgID()
	if !ok {
		return ErrNotConnected
	}
	s.setSyncStatus(StatusSyncing, "")

	if err := s.cloud.SyncWorkshopData(ctx, orgID, s.cloudSnapshot()); err != nil {
		s.setSyncStatus(StatusError, err.Error())
		return fmt.Errorf("sync workshop data: %w", err)
	}

	s.finishCloudOp()
	s.log.Info().Stringer("org", orgID).Msg("synced workshop to cloud")
	return nil
}

// DisconnectCloud severs the cloud connection locally. No network call is
// made and no local collection is touched; only the connection id, the sync
// timestamps and the error are cleared.
func (s *Store) DisconnectCloud() {
	s.mu.Lock()
	s.state.CloudOrgID = nil
	s.state.LastSyncedAt = nil
	s.syncStatus = StatusIdle
	s.syncError = ""
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	s.log.Info().Msg("disconnected from cloud")
}

// cloudSnapshot captures the remote-synchronized subset of the current
// state, with the organization carrying the live session cursor. When a
// cloud connection exists the organization is keyed by the connected id,
// not its local one: a workshop started locally keeps its own organization
// id after connecting, and the push must land on the connected remote row,
// not create a stray one.
func (s *Store) cloudSnapshot() CloudSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := CloudSnapshot{
		FrictionPoints:      cloneSlice(s.state.FrictionPoints),
		ScoredOpportunities: cloneSlice(s.state.ScoredOpportunities),
		Pilots:              cloneSlice(s.state.Pilots),
		RoadmapMilestones:   cloneSlice(s.state.RoadmapMilestones),
		RACIEntries:         cloneSlice(s.state.RACIEntries),
	}
	if s.state.Organization != nil {
		org := *s.state.Organization
		org.CurrentSession = s.state.CurrentSession
		if s.state.CloudOrgID != nil {
			org.ID = *s.state.CloudOrgID
		}
		snap.Organization = &org
	}
	return snap
}

func (s *Store) setSyncStatus(status SyncStatus, msg string) {
	s.mu.Lock()
	s.syncStatus = status
	s.syncError = msg
	s.mu.Unlock()
	s.notify()
}

// finishCloudOp records a successful cloud operation: status back to idle
// and LastSyncedAt stamped (and persisted, since the stamp is part of the
// durable snapshot).
func (s *Store) finishCloudOp() {
	s.mu.Lock()
	now := time.Now().UTC()
	s.state.LastSyncedAt = &now
	s.syncStatus = StatusIdle
	s.syncError = ""
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}
