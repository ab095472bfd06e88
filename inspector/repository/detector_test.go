package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectRepository(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(root string) string
		wantKind string
		wantRoot func(root string) string
	}{
		{
			name: "git root above scanned dir",
			setup: func(root string) string {
				require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
				require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", "app"), 0755))
				return filepath.Join(root, "lib", "app")
			},
			wantKind: "git",
			wantRoot: func(root string) string { return root },
		},
		{
			name: "gemfile project",
			setup: func(root string) string {
				require.NoError(t, os.WriteFile(filepath.Join(root, "Gemfile"), []byte("source 'https://rubygems.org'\n"), 0644))
				require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0755))
				return filepath.Join(root, "lib")
			},
			wantKind: "ruby",
			wantRoot: func(root string) string { return root },
		},
		{
			name: "file location starts from parent",
			setup: func(root string) string {
				require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
				location := filepath.Join(root, "a.rb")
				require.NoError(t, os.WriteFile(location, []byte("x = 1\n"), 0644))
				return location
			},
			wantKind: "git",
			wantRoot: func(root string) string { return root },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			location := tt.setup(root)
			detector := &Detector{markers: New().markers, stopDir: filepath.Dir(root)}
			repo, err := detector.DetectRepository(location)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, repo.Kind)
			assert.Equal(t, tt.wantRoot(root), repo.Root)
		})
	}
}

func TestDetector_DetectRepository_Missing(t *testing.T) {
	_, err := New().DetectRepository(filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, err)
}

func TestRepository_Ancestors(t *testing.T) {
	repo := &Repository{Kind: "git", Root: filepath.FromSlash("/work/project")}
	tests := []struct {
		name     string
		location string
		expect   []string
	}{
		{name: "root itself", location: "/work/project", expect: nil},
		{name: "direct child", location: "/work/project/lib", expect: []string{"/work/project"}},
		{name: "nested", location: "/work/project/lib/app/models", expect: []string{"/work/project", "/work/project/lib", "/work/project/lib/app"}},
		{name: "outside", location: "/work/other", expect: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expect []string
			for _, dir := range tt.expect {
				expect = append(expect, filepath.FromSlash(dir))
			}
			assert.Equal(t, expect, repo.Ancestors(filepath.FromSlash(tt.location)))
		})
	}
}
