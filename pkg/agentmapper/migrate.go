package agentmapper

import (
	"context"
	"fmt"
)

// Migrate creates or updates the cloud backend schema. The cloud backend
// must be configured; a local-only setup has nothing to migrate.
func (a *App) Migrate(ctx context.Context, cmd *MigrateCommand) error {
	a.log.Info().Msg("migrating cloud backend schema")
	if err := a.remote.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate cloud backend: %w", err)
	}
	a.log.Info().Msg("cloud backend schema up to date")
	return nil
}
