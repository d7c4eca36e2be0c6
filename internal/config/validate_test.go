// internal/config/validate_test.go
package config

import "testing"

func simCfg(inactivity, maxSession, watchdog int) *Config {
	return &Config{
		Scripter: ScripterConfig{
			Simulator: SimulatorConfig{
				InactivityTimeoutMs: inactivity,
				MaxSessionMs:        maxSession,
				WatchdogIntervalMs:  watchdog,
			},
		},
	}
}

// ---- tests ----

func TestValidate_ZeroValuesAreDefaults(t *testing.T) {
	if err := Validate(simCfg(0, 0, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	if err := Validate(simCfg(-1, 0, 0)); err == nil {
		t.Fatalf("expected error for negative inactivity timeout")
	}
}

func TestValidate_WatchdogSlowerThanInactivity(t *testing.T) {
	if err := Validate(simCfg(1000, 30000, 1000)); err == nil {
		t.Fatalf("expected error: watchdog cannot observe inactivity window")
	}
}

func TestValidate_MaxShorterThanInactivity(t *testing.T) {
	if err := Validate(simCfg(10000, 5000, 100)); err == nil {
		t.Fatalf("expected error: max session shorter than inactivity")
	}
}

func TestNormalize_AppliesDefaults(t *testing.T) {
	cfg := simCfg(0, 0, 0)
	Normalize(cfg)

	s := cfg.Scripter.Simulator
	if s.InactivityTimeoutMs != DefaultInactivityTimeoutMs ||
		s.MaxSessionMs != DefaultMaxSessionMs ||
		s.WatchdogIntervalMs != DefaultWatchdogIntervalMs {
		t.Fatalf("defaults not applied: %+v", s)
	}
	if cfg.Scripter.Output.Script != DefaultScriptPath {
		t.Fatalf("script path default not applied: %q", cfg.Scripter.Output.Script)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := simCfg(5000, 60000, 50)
	cfg.Scripter.Output.Script = "out.ahk"
	Normalize(cfg)

	s := cfg.Scripter.Simulator
	if s.InactivityTimeoutMs != 5000 || s.MaxSessionMs != 60000 || s.WatchdogIntervalMs != 50 {
		t.Fatalf("explicit values overwritten: %+v", s)
	}
	if cfg.Scripter.Output.Script != "out.ahk" {
		t.Fatalf("explicit script path overwritten: %q", cfg.Scripter.Output.Script)
	}
}
