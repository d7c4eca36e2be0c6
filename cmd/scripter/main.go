// cmd/scripter/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tamzrod/tcm-scripter/internal/catalog"
	"github.com/tamzrod/tcm-scripter/internal/config"
	"github.com/tamzrod/tcm-scripter/internal/encoder"
	"github.com/tamzrod/tcm-scripter/internal/library"
	"github.com/tamzrod/tcm-scripter/internal/session"
	"github.com/tamzrod/tcm-scripter/internal/simulator"
	"github.com/tamzrod/tcm-scripter/internal/tui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// generate / cars / simulate flags
	flagCategory     string
	flagManufacturer string
	flagModel        string
	flagOutput       string
	flagSkip         []string
	flagSettings     []string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scripter",
	Short: "TCM pro-settings script generator and simulator",
	Long: `scripter encodes car pro-settings into replayable tick scripts and
hosts a terminal simulator of the in-game settings screen.

Targets come from a community settings library (YAML); the pro-settings
catalog describing each setting's range and step is embedded, with an
optional CSV override.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Encode one car's settings into a tick script",
	Long: `Looks a car up in the settings library, encodes every usable setting
into directional ticks and writes the resulting script file.

Example:
  scripter generate --category RACING --manufacturer FERRARI --model "488 GT3" -o ferrari.ahk`,
	RunE: runGenerate,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List library categories",
	RunE:  runCategories,
}

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List the cars of one category, grouped by manufacturer",
	RunE:  runCars,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the interactive settings-screen simulator",
	Long: `Opens a terminal rendition of the in-game settings screen. Arrow keys
navigate and adjust; the session closes itself after the configured
inactivity or maximum-age window.

By default every catalog setting is shown; --settings restricts the
session to a subset, in catalog order.`,
	RunE: runSimulate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVar(&flagCategory, "category", "", "library category")
	generateCmd.Flags().StringVar(&flagManufacturer, "manufacturer", "", "car manufacturer")
	generateCmd.Flags().StringVar(&flagModel, "model", "", "car model")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "script output path (default from config)")
	generateCmd.Flags().StringSliceVar(&flagSkip, "skip", nil, "setting names to exclude")
	_ = generateCmd.MarkFlagRequired("category")
	_ = generateCmd.MarkFlagRequired("manufacturer")
	_ = generateCmd.MarkFlagRequired("model")

	carsCmd.Flags().StringVar(&flagCategory, "category", "", "library category")
	_ = carsCmd.MarkFlagRequired("category")

	simulateCmd.Flags().StringSliceVar(&flagSettings, "settings", nil, "restrict the session to these settings")

	rootCmd.AddCommand(generateCmd, categoriesCmd, carsCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns a validated, normalized configuration. Without
// --config every default applies.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if path := cfg.Scripter.Files.CatalogCSV; path != "" {
		return catalog.LoadFile(path, logger)
	}
	return catalog.Default(logger)
}

func loadLibrary(cfg *config.Config) (*library.Library, error) {
	path := cfg.Scripter.Files.Library
	if path == "" {
		return nil, fmt.Errorf("no settings library configured (scripter.files.library)")
	}
	return library.LoadFile(path, logger)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	targets, err := lib.CarSettings(flagCategory, flagManufacturer, flagModel)
	if err != nil {
		return err
	}

	setup, err := encoder.NewCarSetup(cat, targets, flagSkip)
	if err != nil {
		return err
	}

	out := flagOutput
	if out == "" {
		out = cfg.Scripter.Output.Script
	}
	if err := os.WriteFile(out, []byte(setup.Script()), 0o644); err != nil {
		return fmt.Errorf("writing script %s: %w", out, err)
	}

	logger.Info("script generated",
		zap.String("path", out),
		zap.Int("settings", len(setup.Settings)),
		zap.Int("auto_skipped", len(setup.AutoSkipped)))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d settings encoded, %d skipped\n",
		out, len(setup.Settings), len(setup.AutoSkipped))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	for _, name := range lib.CategoryNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runCars(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	listing, err := lib.Cars(flagCategory)
	if err != nil {
		return err
	}
	for _, l := range listing {
		fmt.Fprintln(cmd.OutOrStdout(), l.Manufacturer)
		for _, m := range l.Models {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", m)
		}
	}
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	defs := cat.Definitions()
	if len(flagSettings) > 0 {
		defs = cat.Select(flagSettings)
		if len(defs) == 0 {
			return fmt.Errorf("none of the requested settings exist: %s", strings.Join(flagSettings, ", "))
		}
	}

	sim := cfg.Scripter.Simulator
	ctl, err := session.New(defs, session.Config{
		Timeouts: simulator.Timeouts{
			Inactivity: time.Duration(sim.InactivityTimeoutMs) * time.Millisecond,
			MaxAge:     time.Duration(sim.MaxSessionMs) * time.Millisecond,
		},
		PollInterval: time.Duration(sim.WatchdogIntervalMs) * time.Millisecond,
		OnTimeout: func(reason string) {
			logger.Info("session closed by watchdog", zap.String("reason", reason))
		},
	}, logger)
	if err != nil {
		return err
	}
	if err := ctl.Start(); err != nil {
		return err
	}
	defer ctl.Stop()

	_, err = tea.NewProgram(tui.New(ctl)).Run()
	return err
}
