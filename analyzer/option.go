package analyzer

import (
	"io"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/ambiguous/analyzer/rule"
)

type Option func(*Analyzer)

// WithFS sets storage service used to enumerate and read files
func WithFS(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

// WithOutput sets diagnostics destination, stdout by default
func WithOutput(w io.Writer) Option {
	return func(a *Analyzer) {
		a.output = w
	}
}

// WithRules replaces the default rule set
func WithRules(rules ...rule.Rule) Option {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithLogger sets logger, logs are discarded by default
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithColor enables colored severity labels
func WithColor(enabled bool) Option {
	return func(a *Analyzer) {
		a.colored = enabled
	}
}

// WithLanguage sets the language (go-enry name) of scanned files, e.g. "Ruby"
func WithLanguage(name string) Option {
	return func(a *Analyzer) {
		a.language = name
	}
}
