package config

// Settings holds the mutable runtime state shared across screens. A
// single instance is created at startup and passed by pointer, so a
// language change in the preferences screen is visible everywhere
// immediately.
type Settings struct {
	Language string
}

// NewSettings derives the initial runtime settings from configuration.
func NewSettings(cfg *Config) *Settings {
	return &Settings{Language: cfg.Language}
}
