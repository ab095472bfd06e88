package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScan(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.rb"), []byte("x =- y\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.rb"), []byte("def broken(\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer func() { _ = os.Chdir(wd) }()

	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())

	require.NoError(t, runScan(cmd, nil))
	assert.Equal(t, "warning: ambiguous assignment\n  --> a.rb:1:4\n\nx =- y\n   ^\n", stdout.String())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	assert.NotNil(t, rootCmd.Args(rootCmd, []string{"dir"}))
	assert.Nil(t, rootCmd.Args(rootCmd, nil))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level  string
		expect slog.Level
	}{
		{level: "debug", expect: slog.LevelDebug},
		{level: "INFO", expect: slog.LevelInfo},
		{level: "error", expect: slog.LevelError},
		{level: "", expect: slog.LevelWarn},
		{level: "bogus", expect: slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.level)
			assert.True(t, logger.Enabled(context.Background(), tt.expect))
			assert.False(t, logger.Enabled(context.Background(), tt.expect-1))
		})
	}
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, colorEnabled(&bytes.Buffer{}))
}
