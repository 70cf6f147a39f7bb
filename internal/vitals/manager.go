package vitals

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mortalidad.saluddatos.org/internal/metrics"
	"mortalidad.saluddatos.org/vitalsdb"
)

// Manager owns the mortality dataset and provides access to it. The parsed
// dataset stays in memory for the debug UI; aggregations run against the
// SQLite store.
type Manager struct {
	config       Config
	dataset      *Dataset
	VitalsDB     *vitalsdb.Client
	lastUpdated  time.Time
	mu           sync.RWMutex
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured data directory, imports
// it into the database, and optionally starts the file watcher for hot
// reloads.
func InitManager(config Config) (*Manager, error) {
	dataset, err := LoadDataset(config.DataDir)
	if err != nil {
		return nil, err
	}

	dbClient, err := vitalsdb.NewClient(vitalsdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error building mortality database: %w", err)
	}

	manager := &Manager{
		config:       config,
		VitalsDB:     dbClient,
		shutdownChan: make(chan struct{}),
	}

	if err := manager.importDataset(context.Background(), dataset); err != nil {
		_ = dbClient.Close()
		return nil, err
	}

	if config.WatchEnabled {
		if err := manager.startWatcher(); err != nil {
			config.logger().Warn("dataset watcher disabled", "error", err)
		}
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.VitalsDB != nil {
			_ = manager.VitalsDB.Close()
		}
	})
}

// Dataset returns the currently loaded dataset.
func (manager *Manager) Dataset() *Dataset {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.dataset
}

// LastUpdated reports when the dataset was last (re)loaded.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// Reload re-reads the CSV files and reimports them. The previous dataset
// keeps serving until the new import commits.
func (manager *Manager) Reload(ctx context.Context) error {
	dataset, err := LoadDataset(manager.config.DataDir)
	if err != nil {
		return err
	}
	return manager.importDataset(ctx, dataset)
}

func (manager *Manager) importDataset(ctx context.Context, dataset *Dataset) error {
	start := time.Now()

	err := manager.VitalsDB.ImportDataset(ctx, dataset.Deaths, dataset.Departments, dataset.Municipalities, dataset.Causes)
	if err != nil {
		return fmt.Errorf("error importing dataset: %w", err)
	}

	manager.mu.Lock()
	manager.dataset = dataset
	manager.lastUpdated = time.Now()
	manager.mu.Unlock()

	metrics.RecordImport(time.Since(start), len(dataset.Deaths), dataset.SkippedRows)

	if manager.config.Verbose {
		manager.config.logger().Info("dataset imported",
			slog.Int("deaths", len(dataset.Deaths)),
			slog.Int("departments", len(dataset.Departments)),
			slog.Int("municipalities", len(dataset.Municipalities)),
			slog.Int("causes", len(dataset.Causes)),
			slog.Int("skipped_rows", dataset.SkippedRows),
			slog.Duration("duration", time.Since(start)))
	}

	return nil
}

// LogStatistics logs the dataset counts at startup.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	dataset := manager.Dataset()
	if dataset == nil {
		return
	}

	logger.Info("dataset statistics",
		slog.String("data_dir", manager.config.DataDir),
		slog.Time("last_updated", manager.LastUpdated()),
		slog.Int("deaths", len(dataset.Deaths)),
		slog.Int("departments", len(dataset.Departments)),
		slog.Int("municipalities", len(dataset.Municipalities)),
		slog.Int("causes", len(dataset.Causes)))
}
