// Package state persists which files a batch run has already ingested so
// interrupted runs can resume without re-parsing everything.
package state

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/utils"
)

type State struct {
	CompletedFiles map[string]bool `json:"completed_files"`
}

type Manager struct {
	path  string
	state State
	mu    sync.Mutex
}

// NewManager loads existing state from path, or starts fresh. A corrupt
// state file is logged and discarded rather than aborting the run.
func NewManager(path string) (*Manager, error) {
	m := &Manager{
		path: path,
		state: State{
			CompletedFiles: make(map[string]bool),
		},
	}

	if _, err := os.Stat(path); err == nil {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(content, &m.state); err != nil {
			utils.LogError("Failed to parse state file %s: %v. Starting fresh.", path, err)
			m.state.CompletedFiles = make(map[string]bool)
		}
		if m.state.CompletedFiles == nil {
			m.state.CompletedFiles = make(map[string]bool)
		}
	}

	return m, nil
}

func (m *Manager) IsCompleted(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.CompletedFiles[path]
}

func (m *Manager) MarkCompleted(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.CompletedFiles[path] = true
	m.save()
}

func (m *Manager) save() {
	// Must be called with lock held
	content, err := json.MarshalIndent(m.state, "", "  ")
	if err == nil {
		os.WriteFile(m.path, content, 0644)
	} else {
		utils.LogError("Failed to save state: %v", err)
	}
}
