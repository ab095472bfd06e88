package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/viant/afs"
	"github.com/viant/ambiguous/analyzer/diagnostic"
	"github.com/viant/ambiguous/analyzer/enumerator"
	"github.com/viant/ambiguous/analyzer/rule"
	"github.com/viant/ambiguous/inspector/ruby"
	"github.com/viant/ambiguous/inspector/syntax"
)

// Analyzer scans Ruby sources and reports findings of its rules
type Analyzer struct {
	fs         afs.Service
	language   string
	rules      []rule.Rule
	output     io.Writer
	logger     *slog.Logger
	colored    bool
	enumerator *enumerator.Enumerator
	inspector  *ruby.Inspector
	renderer   *diagnostic.Renderer
}

// New creates an analyzer, it fails when the file type matcher cannot be built
func New(options ...Option) (*Analyzer, error) {
	a := &Analyzer{
		language: enumerator.Ruby,
		rules:    rule.Default(),
		output:   os.Stdout,
	}
	for _, option := range options {
		option(a)
	}
	if a.fs == nil {
		a.fs = afs.New()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	matcher, err := enumerator.NewMatcher(a.language)
	if err != nil {
		return nil, fmt.Errorf("failed to build file type matcher: %w", err)
	}
	a.enumerator = enumerator.New(a.fs, matcher, a.logger)
	a.inspector = ruby.NewInspector()
	a.renderer = diagnostic.NewRenderer(a.colored)
	return a, nil
}

// AnalyzeDir analyzes every matching file under root sequentially, unreadable or unparseable files are skipped
func (a *Analyzer) AnalyzeDir(ctx context.Context, root string) error {
	return a.enumerator.Enumerate(ctx, root, func(ctx context.Context, entry *enumerator.Entry) error {
		code, err := a.enumerator.Read(ctx, entry)
		if err != nil {
			a.logger.Debug("skipping unreadable file", "path", entry.Path, "error", err)
			return nil
		}
		if !utf8.Valid(code) {
			a.logger.Debug("skipping unreadable file", "path", entry.Path, "error", "invalid UTF-8")
			return nil
		}
		return a.AnalyzeSourceCode(ctx, entry.Path, code)
	})
}

// AnalyzeSourceCode parses code and writes rendered findings to the output.
// Findings of a file are written only once all of them rendered.
func (a *Analyzer) AnalyzeSourceCode(ctx context.Context, name string, code []byte) error {
	file, err := a.inspector.InspectSource(ctx, name, code)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.logger.Debug("skipping unparseable file", "path", name, "error", err)
		return nil
	}
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		if hash, err := file.Input.Hash(); err != nil {
			a.logger.Debug("parsing", "path", name, "error", err)
		} else {
			a.logger.Debug("parsing", "path", name, "hash", fmt.Sprintf("%016x", hash))
		}
	}
	if file.Tree == nil {
		a.logger.Debug("skipping unparseable file", "path", name)
		return nil
	}
	findings := a.Findings(file.Tree)
	if len(findings) == 0 {
		return nil
	}
	buffer := bytes.Buffer{}
	for _, finding := range findings {
		if err := a.renderer.Render(&buffer, file.Input, finding); err != nil {
			a.logger.Warn("skipping file", "path", name, "error", err)
			return nil
		}
	}
	if _, err := a.output.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("failed to write diagnostics for %s: %w", name, err)
	}
	return nil
}

// Findings applies all rules to the tree
func (a *Analyzer) Findings(root syntax.Node) []diagnostic.Finding {
	var findings []diagnostic.Finding
	for _, aRule := range a.rules {
		findings = append(findings, aRule(root)...)
	}
	return findings
}
