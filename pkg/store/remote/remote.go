// Package remote is the cloud persistence adapter: a stateless, row-oriented
// client for the relational backend that mirrors workshop data. It owns the
// translation between the local entity shape and the remote snake_case row
// shape and performs all network I/O for the store's cloud actions.
//
// Only a strict subset of the workshop's collections is remote-synchronized:
// organizations, friction points, scored opportunities, pilots, roadmap
// milestones and RACI entries. The remaining collections are local-only;
// that asymmetry is part of the contract.
//
// The adapter never retries and applies no timeout of its own; the caller's
// context is the only cancellation lever.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// Environment variables holding the backend connection parameters.
const (
	EnvEndpoint  = "AGENTMAPPER_SYNC_ENDPOINT"
	EnvAccessKey = "AGENTMAPPER_SYNC_KEY"
)

// ErrNotConfigured is returned by every method when the backend connection
// parameters are missing. It is raised before any network attempt.
var ErrNotConfigured = errors.New(
	"cloud backend not configured: set " + EnvEndpoint + " and " + EnvAccessKey)

// Config holds the two backend connection parameters.
type Config struct {
	// Endpoint is the backend URL, e.g. postgres://sync.example.com:5432/agentmapper.
	Endpoint string
	// AccessKey authenticates the workshop client against the backend.
	AccessKey string
}

// ConfigFromEnv reads the connection parameters from the process
// environment.
func ConfigFromEnv() Config {
	return Config{
		Endpoint:  os.Getenv(EnvEndpoint),
		AccessKey: os.Getenv(EnvAccessKey),
	}
}

// Configured reports whether both connection parameters are present.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != ""
}

// dsn builds the database connection string, injecting the access key as the
// credential for the endpoint's user (default "agentmapper").
func (c Config) dsn() string {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return c.Endpoint
	}
	user := "agentmapper"
	if u.User != nil {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.AccessKey)
	return u.String()
}

// Client is the adapter. It holds no mutable state beyond the connection
// pool and is safe to share across any number of concurrent callers.
type Client struct {
	db *gorm.DB
}

// New creates a client for the given config. An unconfigured config yields a
// usable client whose every method fails fast with [ErrNotConfigured]; a
// configured one opens the backend connection.
func New(cfg Config) (*Client, error) {
	if !cfg.Configured() {
		return &Client{}, nil
	}
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to cloud backend: %w", err)
	}
	return &Client{db: db}, nil
}

// ready is the fail-fast gate every method passes before touching the
// network.
func (c *Client) ready() error {
	if c == nil || c.db == nil {
		return ErrNotConfigured
	}
	return nil
}

// Migrate creates or updates the six remote tables.
func (c *Client) Migrate(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).AutoMigrate(
		&organizationRow{},
		&frictionPointRow{},
		&scoredOpportunityRow{},
		&pilotRow{},
		&roadmapMilestoneRow{},
		&raciEntryRow{},
	)
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- Organizations ---

// CreateOrganization inserts the organization row and returns it with any
// backend-assigned defaults applied.
func (c *Client) CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error) {
	if err := c.ready(); err != nil {
		return models.Organization{}, err
	}
	row := organizationToRow(org)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Organization{}, err
	}
	return row.toModel(), nil
}

// GetOrganization fetches one organization by id.
func (c *Client) GetOrganization(ctx context.Context, id models.ID) (models.Organization, error) {
	if err := c.ready(); err != nil {
		return models.Organization{}, err
	}
	var row organizationRow
	if err := c.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return models.Organization{}, err
	}
	return row.toModel(), nil
}

// UpdateOrganization replaces the organization row. The row must exist.
func (c *Client) UpdateOrganization(ctx context.Context, org models.Organization) (models.Organization, error) {
	if err := c.ready(); err != nil {
		return models.Organization{}, err
	}
	var existing organizationRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", org.ID).Error; err != nil {
		return models.Organization{}, err
	}
	row := organizationToRow(org)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.Organization{}, err
	}
	return row.toModel(), nil
}

// --- Friction points ---

func (c *Client) CreateFrictionPoint(ctx context.Context, orgID models.ID, fp models.FrictionPoint) (models.FrictionPoint, error) {
	if err := c.ready(); err != nil {
		return models.FrictionPoint{}, err
	}
	row := frictionPointToRow(orgID, fp)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.FrictionPoint{}, err
	}
	return row.toModel(), nil
}

func (c *Client) ListFrictionPoints(ctx context.Context, orgID models.ID) ([]models.FrictionPoint, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var rows []frictionPointRow
	err := c.db.WithContext(ctx).Where("org_id = ?", orgID).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToModels(rows), nil
}

func (c *Client) UpdateFrictionPoint(ctx context.Context, orgID models.ID, fp models.FrictionPoint) (models.FrictionPoint, error) {
	if err := c.ready(); err != nil {
		return models.FrictionPoint{}, err
	}
	var existing frictionPointRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", fp.ID).Error; err != nil {
		return models.FrictionPoint{}, err
	}
	row := frictionPointToRow(orgID, fp)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.FrictionPoint{}, err
	}
	return row.toModel(), nil
}

func (c *Client) DeleteFrictionPoint(ctx context.Context, id models.ID) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Delete(&frictionPointRow{}, "id = ?", id).Error
}

// --- Scored opportunities ---

func (c *Client) CreateScoredOpportunity(ctx context.Context, orgID models.ID, o models.ScoredOpportunity) (models.ScoredOpportunity, error) {
	if err := c.ready(); err != nil {
		return models.ScoredOpportunity{}, err
	}
	row := scoredOpportunityToRow(orgID, o)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.ScoredOpportunity{}, err
	}
	return row.toModel(), nil
}

func (c *Client) ListScoredOpportunities(ctx context.Context, orgID models.ID) ([]models.ScoredOpportunity, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var rows []scoredOpportunityRow
	err := c.db.WithContext(ctx).Where("org_id = ?", orgID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToModels(rows), nil
}

func (c *Client) UpdateScoredOpportunity(ctx context.Context, orgID models.ID, o models.ScoredOpportunity) (models.ScoredOpportunity, error) {
	if err := c.ready(); err != nil {
		return models.ScoredOpportunity{}, err
	}
	var existing scoredOpportunityRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", o.ID).Error; err != nil {
		return models.ScoredOpportunity{}, err
	}
	row := scoredOpportunityToRow(orgID, o)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.ScoredOpportunity{}, err
	}
	return row.toModel(), nil
}

func (c *Client) DeleteScoredOpportunity(ctx context.Context, id models.ID) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Delete(&scoredOpportunityRow{}, "id = ?", id).Error
}

// --- Pilots ---

func (c *Client) CreatePilot(ctx context.Context, orgID models.ID, p models.PilotPlan) (models.PilotPlan, error) {
	if err := c.ready(); err != nil {
		return models.PilotPlan{}, err
	}
	row := pilotToRow(orgID, p)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.PilotPlan{}, err
	}
	return row.toModel(), nil
}

func (c *Client) ListPilots(ctx context.Context, orgID models.ID) ([]models.PilotPlan, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var rows []pilotRow
	err := c.db.WithContext(ctx).Where("org_id = ?", orgID).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToModels(rows), nil
}

func (c *Client) UpdatePilot(ctx context.Context, orgID models.ID, p models.PilotPlan) (models.PilotPlan, error) {
	if err := c.ready(); err != nil {
		return models.PilotPlan{}, err
	}
	var existing pilotRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", p.ID).Error; err != nil {
		return models.PilotPlan{}, err
	}
	row := pilotToRow(orgID, p)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.PilotPlan{}, err
	}
	return row.toModel(), nil
}

func (c *Client) DeletePilot(ctx context.Context, id models.ID) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Delete(&pilotRow{}, "id = ?", id).Error
}

// --- Roadmap milestones ---

func (c *Client) CreateRoadmapMilestone(ctx context.Context, orgID models.ID, m models.RoadmapMilestone) (models.RoadmapMilestone, error) {
	if err := c.ready(); err != nil {
		return models.RoadmapMilestone{}, err
	}
	row := roadmapMilestoneToRow(orgID, m)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.RoadmapMilestone{}, err
	}
	return row.toModel(), nil
}

func (c *Client) ListRoadmapMilestones(ctx context.Context, orgID models.ID) ([]models.RoadmapMilestone, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var rows []roadmapMilestoneRow
	err := c.db.WithContext(ctx).Where("org_id = ?", orgID).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToModels(rows), nil
}

func (c *Client) UpdateRoadmapMilestone(ctx context.Context, orgID models.ID, m models.RoadmapMilestone) (models.RoadmapMilestone, error) {
	if err := c.ready(); err != nil {
		return models.RoadmapMilestone{}, err
	}
	var existing roadmapMilestoneRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", m.ID).Error; err != nil {
		return models.RoadmapMilestone{}, err
	}
	row := roadmapMilestoneToRow(orgID, m)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.RoadmapMilestone{}, err
	}
	return row.toModel(), nil
}

func (c *Client) DeleteRoadmapMilestone(ctx context.Context, id models.ID) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Delete(&roadmapMilestoneRow{}, "id = ?", id).Error
}

// --- RACI entries ---

func (c *Client) CreateRACIEntry(ctx context.Context, orgID models.ID, e models.RACIEntry) (models.RACIEntry, error) {
	if err := c.ready(); err != nil {
		return models.RACIEntry{}, err
	}
	row := raciEntryToRow(orgID, e)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.RACIEntry{}, err
	}
	return row.toModel(), nil
}

func (c *Client) ListRACIEntries(ctx context.Context, orgID models.ID) ([]models.RACIEntry, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var rows []raciEntryRow
	err := c.db.WithContext(ctx).Where("org_id = ?", orgID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToModels(rows), nil
}

func (c *Client) UpdateRACIEntry(ctx context.Context, orgID models.ID, e models.RACIEntry) (models.RACIEntry, error) {
	if err := c.ready(); err != nil {
		return models.RACIEntry{}, err
	}
	var existing raciEntryRow
	if err := c.db.WithContext(ctx).First(&existing, "id = ?", e.ID).Error; err != nil {
		return models.RACIEntry{}, err
	}
	row := raciEntryToRow(orgID, e)
	if err := c.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.RACIEntry{}, err
	}
	return row.toModel(), nil
}

func (c *Client) DeleteRACIEntry(ctx context.Context, id models.ID) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.db.WithContext(ctx).Delete(&raciEntryRow{}, "id = ?", id).Error
}
