package repository

import (
	"path/filepath"
	"strings"
)

// Repository represents the project enclosing a scanned location
type Repository struct {
	Kind string // git, ruby or unknown
	Root string // Absolute path to the repository root
}

// Ancestors returns directories from the repository root down to the parent of location
func (r *Repository) Ancestors(location string) []string {
	rel, err := filepath.Rel(r.Root, location)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	parts := strings.Split(rel, string(filepath.Separator))
	dirs := []string{r.Root}
	current := r.Root
	for _, part := range parts[:len(parts)-1] {
		current = filepath.Join(current, part)
		dirs = append(dirs, current)
	}
	return dirs
}
