package repository

import (
	"os"
	"path/filepath"
)

// Detector identifies repository and project root folders
type Detector struct {
	// Project root marker files/directories
	markers []string
	// Directory where upward search stops, empty means filesystem root
	stopDir string
}

// New creates a new repository detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"Gemfile",  // Bundler projects
			"Rakefile", // Rake projects
			".git",     // Generic VCS marker
		},
		stopDir: os.Getenv("HOME"),
	}
}

// DetectRepository identifies the repository containing the given path, a git root wins over other markers
func (d *Detector) DetectRepository(location string) (*Repository, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}

	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	if gitRoot := d.findRoot(startDir, ".git"); gitRoot != "" {
		return &Repository{Kind: "git", Root: gitRoot}, nil
	}
	if root := d.findRoot(startDir, d.markers...); root != "" {
		return &Repository{Kind: "ruby", Root: root}, nil
	}
	return &Repository{Kind: "unknown", Root: startDir}, nil
}

// findRoot searches up the directory tree for any of the markers
func (d *Detector) findRoot(startDir string, markers ...string) string {
	dir := startDir
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		if d.stopDir != "" && parent == d.stopDir {
			return ""
		}
		dir = parent
	}
	return ""
}
