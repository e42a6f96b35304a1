// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/infra/config"
	"github.com/runoshun/todo-iq/internal/infra/jsonstore"
	"github.com/runoshun/todo-iq/internal/infra/logging"
	"github.com/runoshun/todo-iq/internal/infra/sqlitestore"
	"github.com/runoshun/todo-iq/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir    string // Directory holding the store and logs
	StorePath  string // Path to the task store
	ConfigPath string // Path to config.toml
}

// Options overrides the directories used by New. Empty fields use the XDG defaults.
type Options struct {
	ConfigDir string // Directory holding config.toml
	DataHome  string // Parent of the default data directory
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.BoardRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	Logger           domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	logFile   *logging.Logger

	// Configuration
	Config Config
}

// New loads the configuration and wires the store it selects.
func New(opts Options) (*Container, error) {
	var (
		configLoader  *config.Loader
		configManager *config.Manager
	)
	if opts.ConfigDir == "" && opts.DataHome == "" {
		configLoader = config.NewLoader()
		configManager = config.NewManager()
	} else {
		configLoader = config.NewLoaderWithDirs(opts.ConfigDir, opts.DataHome)
		configManager = config.NewManagerWithDir(opts.ConfigDir)
	}

	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		DataDir:    appConfig.Tasks.DataDir,
		StorePath:  domain.StorePath(appConfig.Tasks.DataDir, appConfig.Tasks.Store),
		ConfigPath: configLoader.Path(),
	}

	// Create task repository based on config
	var (
		taskRepo  domain.BoardRepository
		storeInit domain.StoreInitializer
	)
	switch appConfig.Tasks.Store {
	case domain.StoreSQLite:
		store := sqlitestore.New(cfg.StorePath)
		taskRepo, storeInit = store, store
	default:
		store := jsonstore.New(cfg.StorePath)
		taskRepo, storeInit = store, store
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))
	logger.Debug("app", fmt.Sprintf("store=%s path=%s", appConfig.Tasks.Store, cfg.StorePath))

	return &Container{
		Tasks:            taskRepo,
		StoreInitializer: storeInit,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		ConfigManager:    configManager,
		Logger:           logger,
		AppConfig:        appConfig,
		logFile:          logger,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, tasks domain.BoardRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		AppConfig:        appConfig,
		Config:           cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

func (c *Container) frequencies() domain.Frequencies {
	return c.AppConfig.Frequencies
}

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.Logger)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.frequencies(), c.Logger)
}

// RenameTaskUseCase returns a new RenameTask use case.
func (c *Container) RenameTaskUseCase() *usecase.RenameTask {
	return usecase.NewRenameTask(c.Tasks, c.frequencies(), c.Logger)
}

// ChangeFrequencyUseCase returns a new ChangeFrequency use case.
func (c *Container) ChangeFrequencyUseCase() *usecase.ChangeFrequency {
	return usecase.NewChangeFrequency(c.Tasks, c.frequencies(), c.Logger)
}

// ChangeDescriptionUseCase returns a new ChangeDescription use case.
func (c *Container) ChangeDescriptionUseCase() *usecase.ChangeDescription {
	return usecase.NewChangeDescription(c.Tasks, c.frequencies(), c.Logger)
}

// SetAsleepUseCase returns a new SetAsleep use case.
func (c *Container) SetAsleepUseCase() *usecase.SetAsleep {
	return usecase.NewSetAsleep(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// RenewTaskUseCase returns a new RenewTask use case.
func (c *Container) RenewTaskUseCase() *usecase.RenewTask {
	return usecase.NewRenewTask(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// MarkOverdueUseCase returns a new MarkOverdue use case.
func (c *Container) MarkOverdueUseCase() *usecase.MarkOverdue {
	return usecase.NewMarkOverdue(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// FinishTaskUseCase returns a new FinishTask use case.
func (c *Container) FinishTaskUseCase() *usecase.FinishTask {
	return usecase.NewFinishTask(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Tasks, c.frequencies(), c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.frequencies(), c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.frequencies(), c.Clock)
}

// ToDoUseCase returns a new ToDo use case.
func (c *Container) ToDoUseCase() *usecase.ToDo {
	return usecase.NewToDo(c.Tasks, c.frequencies(), c.Clock)
}

// RefreshUseCase returns a new Refresh use case.
func (c *Container) RefreshUseCase() *usecase.Refresh {
	return usecase.NewRefresh(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// ListFrequenciesUseCase returns a new ListFrequencies use case.
func (c *Container) ListFrequenciesUseCase() *usecase.ListFrequencies {
	return usecase.NewListFrequencies(c.Tasks, c.frequencies())
}

// ClearFrequencyUseCase returns a new ClearFrequency use case.
func (c *Container) ClearFrequencyUseCase() *usecase.ClearFrequency {
	return usecase.NewClearFrequency(c.Tasks, c.frequencies(), c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.frequencies(), c.Clock, c.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.frequencies())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// SetConfigUseCase returns a new SetConfig use case.
func (c *Container) SetConfigUseCase() *usecase.SetConfig {
	return usecase.NewSetConfig(c.ConfigManager, c.Logger)
}
