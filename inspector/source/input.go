package source

import (
	"sort"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Line represents a single source line, End excludes the line terminator
type Line struct {
	Start int
	End   int
	next  int // start of the following line
}

// Input represents decoded source text together with its line index
type Input struct {
	Name   string
	Source []byte
	Lines  []Line
}

// NewInput creates an input and indexes its lines
func NewInput(name string, src []byte) *Input {
	return &Input{
		Name:   name,
		Source: src,
		Lines:  buildLines(src),
	}
}

func buildLines(src []byte) []Line {
	var lines []Line
	start := 0
	for i, b := range src {
		if b != '\n' {
			continue
		}
		end := i
		if end > start && src[end-1] == '\r' {
			end--
		}
		lines = append(lines, Line{Start: start, End: end, next: i + 1})
		start = i + 1
	}
	// trailing line without terminator, or the empty line after the last newline
	lines = append(lines, Line{Start: start, End: len(src), next: len(src) + 1})
	return lines
}

// LineColForPos returns 0-based line number and byte column for the given offset
func (i *Input) LineColForPos(pos int) (int, int, bool) {
	if pos < 0 || pos > len(i.Source) || len(i.Lines) == 0 {
		return 0, 0, false
	}
	idx := sort.Search(len(i.Lines), func(k int) bool {
		return i.Lines[k].next > pos
	})
	if idx == len(i.Lines) {
		return 0, 0, false
	}
	return idx, pos - i.Lines[idx].Start, true
}

// LineText returns raw text of the line, without terminator
func (i *Input) LineText(line int) (string, bool) {
	if line < 0 || line >= len(i.Lines) {
		return "", false
	}
	l := i.Lines[line]
	return Span{Begin: l.Start, End: l.End}.Source(i)
}

// Hash returns content fingerprint
func (i *Input) Hash() (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(i.Source)
	return hash.Sum64(), err
}
