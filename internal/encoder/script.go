// internal/encoder/script.go
package encoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Script renders the setup as an AutoHotkey script.
// The structure is fixed: header, auto-skipped listing, then per
// tick-emitting setting a labeled comment and its directional tick
// lines, with exactly one advance line between consecutive blocks,
// then the trailer. Byte-identical output for identical inputs.
func (s *CarSetup) Script() string {
	lines := []string{
		"#SingleInstance Force",
		"SetWorkingDir %A_ScriptDir%",
		"",
		"; Command line mode support",
		`if (A_Args.Length() > 0 && A_Args[1] = "--cli") {`,
		"    SetTimer, ApplySettings, -100  ; Run after 100ms",
		"    return",
		"}",
		"",
		"; Default starting positions:",
		"; - Front Power Distribution: Starts at 60% (right to decrease)",
		"; - Front Brake Balance: Starts at 80% (right to decrease)",
		"; - All other settings: Start at 0",
		"",
		"; Auto-skipped settings (not available for this car):",
	}

	for _, name := range s.AutoSkipped {
		lines = append(lines, fmt.Sprintf("; - %s", name))
	}

	lines = append(lines,
		"",
		"ApplySettings:",
		"{",
		"    SetKeyDelay, 50, 50  ; Adjust timing if needed",
		"",
	)

	needsAdvance := false
	for _, setting := range s.Settings {
		keys := setting.Keystrokes()
		if len(keys) == 0 {
			continue
		}

		if setting.Reset {
			lines = append(lines, fmt.Sprintf(
				"    ; Adjusting %s (from %s%%)",
				setting.Name, formatPercent(setting.Start),
			))
		} else {
			lines = append(lines, fmt.Sprintf("    ; Adjusting %s", setting.Name))
		}

		if needsAdvance {
			lines = append(lines, "    Send {Down}")
		}
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("    Send {%s}", k))
		}
		needsAdvance = true
	}

	lines = append(lines,
		"",
		`    if (A_Args.Length() > 0 && A_Args[1] = "--cli") {`,
		"        ExitApp",
		"    } else {",
		"        MsgBox, Settings applied!",
		"    }",
		"    return",
		"}",
	)

	return strings.Join(lines, "\n")
}

// formatPercent renders a fraction as a bare percentage (0.6 -> "60").
// Rounded to 4 decimals so binary float noise never leaks into output.
func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*100*1e4)/1e4, 'f', -1, 64)
}
