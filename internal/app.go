// Package internal provides the App struct that wires the RaptorFlow
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/raptorflow/internal/cli"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/internal/observability"
	"github.com/valter-silva-au/raptorflow/internal/storage"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// EventLogFileName is the JSONL event log kept in the base path.
const EventLogFileName = ".rf_events.jsonl"

// HomeEnv overrides base path discovery.
const HomeEnv = "RF_HOME"

// App holds all service dependencies for RaptorFlow.
type App struct {
	BasePath string

	ConfigMgr core.ConfigurationManager
	Config    *models.WorkspaceConfig

	MoveStore     core.MoveStore
	AudienceStore storage.AudienceStore
	MoveMgr       core.MoveManager

	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components. basePath is the directory that
// holds .rfconfig, moves.yaml, audiences.yaml and the event log.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Config = cfg

	// Non-fatal: run without events and metrics if the log can't be opened.
	if eventLog, err := observability.NewJSONLEventLog(filepath.Join(basePath, EventLogFileName)); err == nil {
		app.EventLog = eventLog
		app.MetricsCalc = observability.NewMetricsCalculator(eventLog)
	}

	var events core.EventLogger
	if app.EventLog != nil {
		events = &eventLogAdapter{log: app.EventLog}
	}

	app.MoveStore = storage.NewMoveStore(basePath)
	app.MoveMgr = core.NewMoveManager(cfg.WorkspaceID, app.MoveStore, events)

	app.AudienceStore = storage.NewAudienceStore(basePath)
	if err := app.AudienceStore.Load(); err != nil {
		return nil, fmt.Errorf("loading audiences: %w", err)
	}

	cli.Cfg = cfg
	cli.MoveMgr = app.MoveMgr
	cli.Audiences = app.AudienceStore
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath returns RF_HOME when set, else the nearest ancestor of the
// working directory holding a .rfconfig file, else the working directory.
func ResolveBasePath() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	for dir := cwd; ; {
		if hasConfig(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}

func hasConfig(dir string) bool {
	for _, name := range []string{core.ConfigFileName, core.ConfigFileName + ".yaml", core.ConfigFileName + ".yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   observability.LevelInfo,
		Type:    eventType,
		Message: eventMessages[eventType],
		Data:    data,
	})
}

var eventMessages = map[string]string{
	observability.EventMoveLaunched:      "move launched",
	observability.EventTaskStatusChanged: "task status changed",
}
