package pinmap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Repository knows how to look up a board pin map by name.
type Repository interface {
	Lookup(name string) (*Board, error)
}

// MemoryRepository is a simple in-memory implementation useful during tests or
// when the caller preloads a fixed set of boards.
type MemoryRepository struct {
	mu     sync.RWMutex
	boards map[string]*Board
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		boards: make(map[string]*Board),
	}
}

// NewBuiltinRepository creates a repository pre-loaded with the builtin
// reference boards.
func NewBuiltinRepository() *MemoryRepository {
	repo := NewMemoryRepository()
	for _, name := range BuiltinNames() {
		board, _ := Builtin(name)
		repo.Add(board)
	}
	return repo
}

// Add registers a board under its own name. Registering the same name again
// replaces the earlier board.
func (r *MemoryRepository) Add(board *Board) error {
	if board == nil || board.Name == "" {
		return fmt.Errorf("pinmap: board without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards[board.Name] = board
	return nil
}

// AddFile extracts the board from a parsed pin map file and registers it.
func (r *MemoryRepository) AddFile(file *BoardFile) (*Board, error) {
	board, err := ExtractBoard(file)
	if err != nil {
		return nil, err
	}
	if err := r.Add(board); err != nil {
		return nil, err
	}
	return board, nil
}

// Lookup implements the Repository interface.
func (r *MemoryRepository) Lookup(name string) (*Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if board, ok := r.boards[name]; ok {
		return board, nil
	}
	return nil, fmt.Errorf("pinmap: no board named %s", name)
}

// Names returns the registered board names in sorted order.
func (r *MemoryRepository) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.boards))
	for name := range r.boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFiles parses the provided file paths and adds each board to the
// repository.
func (r *MemoryRepository) LoadFiles(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	parser, err := NewParser()
	if err != nil {
		return err
	}
	for _, path := range paths {
		file, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("pinmap: parse %s: %w", path, err)
		}
		if _, err := r.AddFile(file); err != nil {
			return fmt.Errorf("pinmap: add %s: %w", path, err)
		}
	}
	return nil
}

// LoadDir recursively loads all .pinmap files from the provided directory.
func (r *MemoryRepository) LoadDir(root string) error {
	parser, err := NewParser()
	if err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !isPinMapFile(path) {
			return nil
		}
		file, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("pinmap: parse %s: %w", path, err)
		}
		if _, err := r.AddFile(file); err != nil {
			return fmt.Errorf("pinmap: add %s: %w", path, err)
		}
		return nil
	})
}

func isPinMapFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pinmap"
}
