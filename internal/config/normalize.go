// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultInactivityTimeoutMs = 10_000
	DefaultMaxSessionMs        = 30_000
	DefaultWatchdogIntervalMs  = 100
	DefaultScriptPath          = "car_setup.ahk"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	s := &cfg.Scripter.Simulator
	if s.InactivityTimeoutMs == 0 {
		s.InactivityTimeoutMs = DefaultInactivityTimeoutMs
	}
	if s.MaxSessionMs == 0 {
		s.MaxSessionMs = DefaultMaxSessionMs
	}
	if s.WatchdogIntervalMs == 0 {
		s.WatchdogIntervalMs = DefaultWatchdogIntervalMs
	}

	if cfg.Scripter.Output.Script == "" {
		cfg.Scripter.Output.Script = DefaultScriptPath
	}
}
