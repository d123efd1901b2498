// Package wire provides dependency injection for the facscrub application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/facscrub/internal/adapters/sqlite"
	"github.com/example/facscrub/internal/app"
	"github.com/example/facscrub/internal/db"
	"github.com/example/facscrub/internal/ports/primary"
)

var (
	normalizerService primary.NormalizerService
	auditService      primary.AuditService
	exportService     primary.ExportService
	once              sync.Once
)

// NormalizerService returns the singleton NormalizerService instance.
func NormalizerService() primary.NormalizerService {
	once.Do(initServices)
	return normalizerService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with the injected DB
	taskRepo := sqlite.NewTaskRepository(database)
	inspectionRepo := sqlite.NewInspectionRepository(database)
	consumableRepo := sqlite.NewConsumableRepository(database)

	// Services (primary ports implementation)
	normalizerService = app.NewNormalizerService(taskRepo, inspectionRepo, consumableRepo)
	auditService = app.NewAuditService(taskRepo, inspectionRepo, consumableRepo)
	exportService = app.NewExportService(taskRepo, inspectionRepo, consumableRepo)
}
