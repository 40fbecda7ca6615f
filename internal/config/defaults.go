package config

const (
	defaultConfigPath       = "~/.config/jellyname/config.toml"
	projectConfigName       = "jellyname.toml"
	defaultStateDir         = "~/.local/state/jellyname"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// defaultExtensions mirrors the video containers media servers index.
var defaultExtensions = []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Naming: Naming{
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Output: Output{
			Summary: true,
		},
	}
}
