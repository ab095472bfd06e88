package source

// Span is a half-open byte range [Begin, End) into an Input
type Span struct {
	Begin int `yaml:"begin"`
	End   int `yaml:"end"`
}

// Size returns number of bytes covered by the span, zero for an insertion point
func (s Span) Size() int {
	if s.End < s.Begin {
		return 0
	}
	return s.End - s.Begin
}

// Source returns the text covered by the span, ok is false when the span falls outside the input
func (s Span) Source(input *Input) (string, bool) {
	if input == nil || s.Begin < 0 || s.Begin > s.End || s.End > len(input.Source) {
		return "", false
	}
	return string(input.Source[s.Begin:s.End]), true
}
