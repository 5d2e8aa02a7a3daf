package remote

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/clause"

	"github.com/agentmapper/agentmapper/pkg/models"
	"github.com/agentmapper/agentmapper/pkg/store"
)

// upsertRows is the generic core of a push: insert every row, replacing the
// existing row on id conflict. Rows are never deleted here; a push only ever
// adds or overwrites.
func upsertRows[R any](ctx context.Context, c *Client, rows []R) error {
	if len(rows) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// SyncWorkshopData pushes the snapshot's remote-synchronized collections to
// the backend, one upsert batch per collection, batches running
// concurrently. The first failure wins; remaining batches still run to
// completion so the backend is left no worse than partially updated.
func (c *Client) SyncWorkshopData(ctx context.Context, orgID models.ID, snap store.CloudSnapshot) error {
	if err := c.ready(); err != nil {
		return err
	}

	var (
		fps        []frictionPointRow
		opps       []scoredOpportunityRow
		pilots     []pilotRow
		milestones []roadmapMilestoneRow
		racis      []raciEntryRow
	)
	for _, fp := range snap.FrictionPoints {
		fps = append(fps, frictionPointToRow(orgID, fp))
	}
	for _, o := range snap.ScoredOpportunities {
		opps = append(opps, scoredOpportunityToRow(orgID, o))
	}
	for _, p := range snap.Pilots {
		pilots = append(pilots, pilotToRow(orgID, p))
	}
	for _, m := range snap.RoadmapMilestones {
		milestones = append(milestones, roadmapMilestoneToRow(orgID, m))
	}
	for _, e := range snap.RACIEntries {
		racis = append(racis, raciEntryToRow(orgID, e))
	}

	jobs := []func() error{
		func() error { return upsertRows(ctx, c, fps) },
		func() error { return upsertRows(ctx, c, opps) },
		func() error { return upsertRows(ctx, c, pilots) },
		func() error { return upsertRows(ctx, c, milestones) },
		func() error { return upsertRows(ctx, c, racis) },
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(jobs))
	for _, job := range jobs {
		wg.Add(1)
		go func(job func() error) {
			defer wg.Done()
			if err := job(); err != nil {
				errs <- err
			}
		}(job)
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return err
	}

	if snap.Organization != nil {
		org := *snap.Organization
		org.UpdatedAt = time.Now().UTC()
		row := organizationToRow(org)
		if err := upsertRows(ctx, c, []organizationRow{row}); err != nil {
			return err
		}
	}
	return nil
}

// LoadWorkshopData fetches the organization and its five remote-synchronized
// collections concurrently. Either every fetch succeeds and a complete
// snapshot is returned, or the first error is returned and the snapshot is
// discarded.
func (c *Client) LoadWorkshopData(ctx context.Context, orgID models.ID) (store.CloudSnapshot, error) {
	if err := c.ready(); err != nil {
		return store.CloudSnapshot{}, err
	}

	var snap store.CloudSnapshot
	var wg sync.WaitGroup
	errs := make(chan error, 6)

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errs <- err
			}
		}()
	}

	// Each fetch writes a distinct snapshot field, so no lock is needed.
	run(func() error {
		org, err := c.GetOrganization(ctx, orgID)
		if err != nil {
			return err
		}
		snap.Organization = &org
		return nil
	})
	run(func() error {
		var err error
		snap.FrictionPoints, err = c.ListFrictionPoints(ctx, orgID)
		return err
	})
	run(func() error {
		var err error
		snap.ScoredOpportunities, err = c.ListScoredOpportunities(ctx, orgID)
		return err
	})
	run(func() error {
		var err error
		snap.Pilots, err = c.ListPilots(ctx, orgID)
		return err
	})
	run(func() error {
		var err error
		snap.RoadmapMilestones, err = c.ListRoadmapMilestones(ctx, orgID)
		return err
	})
	run(func() error {
		var err error
		snap.RACIEntries, err = c.ListRACIEntries(ctx, orgID)
		return err
	})

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return store.CloudSnapshot{}, err
	}
	return snap, nil
}
