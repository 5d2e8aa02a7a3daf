package agentmapper

// Command represents a discrete application operation with its specific
// configuration. Each implementation carries the parameters for one
// operation; Parse produces the command and the shared [Config], and Main
// routes execution to the matching method on [App].
type Command interface {
	// Name returns the command identifier used for routing. It matches the
	// CLI sub-command name.
	Name() string
}

// RunCommand starts the HTTP server that exposes the workshop action
// surface. The server runs until the context is cancelled, then shuts down
// gracefully, finishing in-flight requests.
type RunCommand struct {
	// All configuration comes from App.Config.
}

func (c *RunCommand) Name() string {
	return "run"
}

// MigrateCommand creates or updates the cloud backend schema for the six
// remote-synchronized tables. It is safe to run repeatedly; only missing
// schema elements are created. It requires the cloud backend to be
// configured.
type MigrateCommand struct {
	// All configuration comes from App.Config.
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}
