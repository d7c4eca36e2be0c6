// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	s := cfg.Scripter.Simulator

	if s.InactivityTimeoutMs < 0 {
		return fmt.Errorf("config: inactivity_timeout_ms must be >= 0, got %d", s.InactivityTimeoutMs)
	}
	if s.MaxSessionMs < 0 {
		return fmt.Errorf("config: max_session_ms must be >= 0, got %d", s.MaxSessionMs)
	}
	if s.WatchdogIntervalMs < 0 {
		return fmt.Errorf("config: watchdog_interval_ms must be >= 0, got %d", s.WatchdogIntervalMs)
	}

	// The watchdog must be able to observe the inactivity window.
	if s.WatchdogIntervalMs > 0 && s.InactivityTimeoutMs > 0 &&
		s.WatchdogIntervalMs >= s.InactivityTimeoutMs {
		return fmt.Errorf(
			"config: watchdog_interval_ms (%d) must be shorter than inactivity_timeout_ms (%d)",
			s.WatchdogIntervalMs, s.InactivityTimeoutMs,
		)
	}

	if s.InactivityTimeoutMs > 0 && s.MaxSessionMs > 0 &&
		s.MaxSessionMs < s.InactivityTimeoutMs {
		return fmt.Errorf(
			"config: max_session_ms (%d) must not be shorter than inactivity_timeout_ms (%d)",
			s.MaxSessionMs, s.InactivityTimeoutMs,
		)
	}

	return nil
}
