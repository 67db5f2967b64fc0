// Package project loads per-board project files that tie together a pin
// map, an assignment CSV, and simulation options.
package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/sim"
)

// Project describes one board's constraint and simulation flow.
//
// Relative paths in PinmapDirs, Assignments, and Constraints are resolved
// against the directory of the project file by Load. Paths inside the VCS
// and Verdi sections are handed to the tools untouched.
type Project struct {
	// Board names the pin map to resolve assignments against, either a
	// builtin board or one loaded from PinmapDirs.
	Board string `yaml:"board"`

	// PinmapDirs lists directories scanned for .pinmap files.
	PinmapDirs []string `yaml:"pinmap_dirs,omitempty"`

	// Assignments is the CSV file of logical signal assignments.
	Assignments string `yaml:"assignments,omitempty"`

	// Constraints is where the generated document is written.
	Constraints string `yaml:"constraints,omitempty"`

	VCS   *sim.VCSOptions   `yaml:"vcs,omitempty"`
	Verdi *sim.VerdiOptions `yaml:"verdi,omitempty"`
}

// Parse decodes a project from YAML. Unknown fields are rejected so that
// typos fail loudly instead of being silently dropped.
func Parse(data []byte) (*Project, error) {
	var proj Project
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&proj); err != nil {
		return nil, fmt.Errorf("project: parse: %w", err)
	}

	if err := validate(&proj); err != nil {
		return nil, err
	}
	return &proj, nil
}

// Load reads and parses a project file, resolving relative paths against
// the file's directory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}

	proj, err := Parse(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i, dir := range proj.PinmapDirs {
		proj.PinmapDirs[i] = resolve(base, dir)
	}
	proj.Assignments = resolve(base, proj.Assignments)
	proj.Constraints = resolve(base, proj.Constraints)
	return proj, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func validate(p *Project) error {
	if p.Board == "" {
		return fmt.Errorf("project: board is required")
	}
	if p.Verdi != nil {
		if err := p.Verdi.Validate(); err != nil {
			return err
		}
	}
	return nil
}
