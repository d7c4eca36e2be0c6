// internal/config/config.go
package config

type Config struct {
	Scripter ScripterConfig `yaml:"scripter"`
}

type ScripterConfig struct {
	Files     FilesConfig     `yaml:"files"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Output    OutputConfig    `yaml:"output"`
}

// ---- FILES ----

type FilesConfig struct {
	// CatalogCSV points at a pro settings description sheet.
	// Empty means the embedded default catalog.
	CatalogCSV string `yaml:"catalog_csv"`

	// Library points at the normalized car settings library (YAML).
	Library string `yaml:"library"`
}

// ---- SIMULATOR ----

type SimulatorConfig struct {
	InactivityTimeoutMs int `yaml:"inactivity_timeout_ms"`
	MaxSessionMs        int `yaml:"max_session_ms"`
	WatchdogIntervalMs  int `yaml:"watchdog_interval_ms"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	// Script is the default output path for generated scripts.
	Script string `yaml:"script"`
}
