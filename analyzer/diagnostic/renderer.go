package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/viant/ambiguous/inspector/source"
)

// ErrPositionOutOfRange is returned when a span cannot be resolved against its input
var ErrPositionOutOfRange = errors.New("position out of range")

// Renderer writes findings in the following layout:
//
//	warning: ambiguous assignment
//	  --> a.rb:1:3
//
//	x =- y
//	  ^
type Renderer struct {
	label *color.Color
}

// NewRenderer creates a renderer, colored controls the severity label styling
func NewRenderer(colored bool) *Renderer {
	label := color.New(color.Bold, color.FgYellow)
	if colored {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	return &Renderer{label: label}
}

// Render writes finding to w
func (r *Renderer) Render(w io.Writer, input *source.Input, finding Finding) error {
	text, err := r.Format(input, finding)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// Format returns rendered finding
func (r *Renderer) Format(input *source.Input, finding Finding) (string, error) {
	span := finding.Span
	lineNo, column, ok := input.LineColForPos(span.Begin)
	if !ok {
		return "", fmt.Errorf("%w: %s offset %d", ErrPositionOutOfRange, input.Name, span.Begin)
	}
	line, ok := input.LineText(lineNo)
	if !ok {
		return "", fmt.Errorf("%w: %s line %d", ErrPositionOutOfRange, input.Name, lineNo+1)
	}
	prefix := fmt.Sprintf("%s:%d:%d", input.Name, lineNo+1, column+1)
	highlight := strings.Repeat(" ", column) + strings.Repeat("^", span.Size())

	builder := strings.Builder{}
	builder.WriteString(r.message(finding.Message))
	builder.WriteString("\n  --> ")
	builder.WriteString(prefix)
	builder.WriteString("\n\n")
	builder.WriteString(line)
	builder.WriteString("\n")
	builder.WriteString(highlight)
	builder.WriteString("\n")
	return builder.String(), nil
}

// message styles the severity label preceding the first colon
func (r *Renderer) message(msg string) string {
	severity, rest, found := strings.Cut(msg, ":")
	if !found {
		return msg
	}
	return r.label.Sprint(severity) + ":" + rest
}
