package cli

import (
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/internal/observability"
	"github.com/valter-silva-au/raptorflow/internal/storage"
	"github.com/valter-silva-au/raptorflow/pkg/models"
	"go.uber.org/zap"
)

// Service instances, set during app initialization in app.go.
var (
	Cfg       *models.WorkspaceConfig
	MoveMgr   core.MoveManager
	Audiences storage.AudienceStore

	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator

	Logger = zap.NewNop()
)

func workspaceID() string {
	if id := workspaceConfig().WorkspaceID; id != "" {
		return id
	}
	return core.DefaultConfig().WorkspaceID
}

func workspaceConfig() *models.WorkspaceConfig {
	if Cfg == nil {
		return core.DefaultConfig()
	}
	return Cfg
}
