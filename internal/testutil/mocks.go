// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockBoardRepository is a test double for domain.BoardRepository.
// Load and Save copy the snapshot so callers can't alias stored data.
// Fields are ordered to minimize memory padding.
type MockBoardRepository struct {
	Stored    *domain.Snapshot
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockBoardRepository creates a repository holding an empty board.
func NewMockBoardRepository() *MockBoardRepository {
	return &MockBoardRepository{Stored: &domain.Snapshot{}}
}

// Load returns a copy of the stored snapshot.
func (m *MockBoardRepository) Load() (*domain.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return CloneSnapshot(m.Stored), nil
}

// Save stores a copy of snap.
func (m *MockBoardRepository) Save(snap *domain.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Stored = CloneSnapshot(snap)
	return nil
}

// Find returns the stored task with the given name.
func (m *MockBoardRepository) Find(name string) (domain.Task, bool) {
	for _, list := range [][]domain.Task{m.Stored.Agenda, m.Stored.Sleepers} {
		for _, t := range list {
			if t.Name == name {
				return t, true
			}
		}
	}
	return domain.Task{}, false
}

// AgendaNames returns the names of the stored agenda tasks in order.
func (m *MockBoardRepository) AgendaNames() []string {
	return taskNames(m.Stored.Agenda)
}

// SleeperNames returns the names of the stored sleeping tasks in order.
func (m *MockBoardRepository) SleeperNames() []string {
	return taskNames(m.Stored.Sleepers)
}

func taskNames(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

// CloneSnapshot returns a deep copy of snap.
func CloneSnapshot(snap *domain.Snapshot) *domain.Snapshot {
	if snap == nil {
		return &domain.Snapshot{}
	}
	return &domain.Snapshot{
		Ordering: slices.Clone(snap.Ordering),
		Agenda:   cloneTasks(snap.Agenda),
		Sleepers: cloneTasks(snap.Sleepers),
	}
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := slices.Clone(tasks)
	for i := range out {
		if out[i].Until != nil {
			u := *out[i].Until
			out[i].Until = &u
		}
	}
	return out
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
}

// Initialize marks the store as initialized.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized returns whether the store is initialized.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config or a default one.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	AutoRefresh *bool
	SetErr      error
	ConfigPath  string
}

// Path returns the configured path.
func (m *MockConfigManager) Path() string {
	return m.ConfigPath
}

// SetAutoRefresh records the requested value.
func (m *MockConfigManager) SetAutoRefresh(enabled bool) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.AutoRefresh = &enabled
	return nil
}

// MockLogger records log lines as "LEVEL [category] msg".
type MockLogger struct {
	Lines []string
	mu    sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lines = append(m.Lines, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// Debug records a debug line.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info line.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning line.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error line.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Ensure mocks implement their interfaces.
var (
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.BoardRepository  = (*MockBoardRepository)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.ConfigLoader     = (*MockConfigLoader)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
)
