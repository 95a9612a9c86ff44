// Package commands wires the pathrun CLI.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pathrun/internal/config"
	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/searchpath"
)

// Version is set at build time
var Version = "dev"

// app holds what every subcommand needs after flag parsing
type app struct {
	configPath string
	logPath    string
	pathFlag   []string

	bus       eventbus.EventBus
	configSvc config.ConfigService
	cfg       *config.Config
	logFile   io.Closer
}

// searchPath resolves the directories to index; --path wins over config and $PATH
func (a *app) searchPath() domain.SearchPath {
	if len(a.pathFlag) > 0 {
		return searchpath.Resolve("", &config.Config{SearchPaths: a.pathFlag})
	}
	return searchpath.FromEnvironment(a.cfg)
}

func (a *app) setup() error {
	a.bus = eventbus.New()
	a.bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s", event.Path)
		}
	})
	a.bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	a.configSvc = config.NewConfigServiceWithBus(a.bus, a.configPath)

	cfg, err := a.configSvc.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.openLog(cfg.LogFile)
	return nil
}

// setupWithoutConfig prepares commands that must work while config.toml is unreadable
func (a *app) setupWithoutConfig() error {
	a.bus = eventbus.New()
	a.configSvc = config.NewConfigServiceWithBus(a.bus, a.configPath)
	a.cfg = config.DefaultConfig()
	a.openLog("")
	return nil
}

func (a *app) openLog(configured string) {
	logPath := a.logPath
	if logPath == "" {
		logPath = configured
	}
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	closer, err := setupLogging(logPath)
	if err != nil {
		// Logging is best effort; keep running without a log file
		log.SetOutput(io.Discard)
		return
	}
	a.logFile = closer
}

func (a *app) teardown() {
	if a.bus != nil {
		a.bus.Close()
		a.bus = nil
	}
	log.SetOutput(os.Stderr)
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// setupLogging points the standard logger at path
func setupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}

// NewRootCmd creates the pathrun command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pathrun",
		Short: "Find and launch executables from your search path",
		Long: `pathrun indexes every executable on the search path and completes
"<command> [params]" against it. Pick a candidate and run it in a terminal,
in a terminal that closes on exit, or in the background.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&a.logPath, "log-file", "", "log file (overrides log_file in config)")
	rootCmd.PersistentFlags().StringSliceVarP(&a.pathFlag, "path", "p", nil, "directories to index instead of $PATH (repeatable)")

	rootCmd.AddCommand(
		newCompleteCmd(a),
		newListCmd(a),
		newPathsCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
