package config

const (
	defaultConfigPath     = "~/.config/uipathctl/config.toml"
	defaultTokenURL       = "https://cloud.uipath.com/identity_/connect/token"
	defaultScope          = "OR.Assets OR.Folders OR.Jobs OR.Machines OR.Queues OR.Robots OR.Execution OR.Administration OR.Monitoring"
	defaultTimeoutSeconds = 30
	defaultStateDir       = "~/.local/share/uipathctl"
	defaultJournalName    = "journal.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Orchestrator: Orchestrator{
			TokenURL:       defaultTokenURL,
			Scope:          defaultScope,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
