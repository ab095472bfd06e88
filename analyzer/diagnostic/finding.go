// Package diagnostic converts findings into human readable reports.
package diagnostic

import "github.com/viant/ambiguous/inspector/source"

// Finding represents a single flagged span
type Finding struct {
	Span    source.Span `yaml:"span"`
	Message string      `yaml:"message"`
}
