package agentmapper

import (
	"flag"
	"fmt"
)

// Parse parses command line arguments and returns the command to execute,
// the application configuration, and any error that occurred. Flags override
// the environment-derived defaults.
func Parse(args []string) (Command, *Config, error) {
	flagSet := flag.NewFlagSet("agentmapper", flag.ContinueOnError)

	config := ConfigFromEnv()

	var (
		addr      = flagSet.String("addr", config.Addr, "HTTP listen address")
		stateFile = flagSet.String("state-file", config.StateFile, "Path of the workshop snapshot file")
		logLevel  = flagSet.String("log-level", config.LogLevel, "Log level: debug, info, warn, error")
	)

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	config.Addr = *addr
	config.StateFile = *stateFile
	config.LogLevel = *logLevel

	remainingArgs := flagSet.Args()
	if len(remainingArgs) == 0 {
		return nil, nil, fmt.Errorf(`subcommand required

Usage: agentmapper [flags] <command>

Commands:
  run       Start the AgentMapper server
  migrate   Create or update the cloud backend schema

Examples:
  agentmapper run                                    # Local-only workshop server
  agentmapper -addr=:8090 run                        # Custom listen address
  agentmapper -state-file=/var/lib/agentmapper.json run
  agentmapper migrate                                # Requires AGENTMAPPER_SYNC_ENDPOINT and AGENTMAPPER_SYNC_KEY`)
	}

	var cmd Command
	switch remainingArgs[0] {
	case "run":
		cmd = &RunCommand{}
	case "migrate":
		cmd = &MigrateCommand{}
	default:
		return nil, nil, fmt.Errorf("unknown command: %s\n\nValid commands: run, migrate", remainingArgs[0])
	}

	return cmd, config, nil
}
