package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ambiguous/inspector/source"
)

func TestInput_LineColForPos(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		pos      int
		wantLine int
		wantCol  int
		wantOk   bool
	}{
		{name: "first byte", src: "x =- y\n", pos: 0, wantLine: 0, wantCol: 0, wantOk: true},
		{name: "operator", src: "x =- y\n", pos: 3, wantLine: 0, wantCol: 3, wantOk: true},
		{name: "newline belongs to its line", src: "a\nb\n", pos: 1, wantLine: 0, wantCol: 1, wantOk: true},
		{name: "second line", src: "a = 1\nx =- y\n", pos: 9, wantLine: 1, wantCol: 3, wantOk: true},
		{name: "end of input", src: "a\nb", pos: 3, wantLine: 1, wantCol: 1, wantOk: true},
		{name: "crlf", src: "a = 1\r\nx =- y\r\n", pos: 10, wantLine: 1, wantCol: 3, wantOk: true},
		{name: "negative", src: "a", pos: -1, wantOk: false},
		{name: "past end", src: "a", pos: 2, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := source.NewInput("test.rb", []byte(tt.src))
			line, col, ok := input.LineColForPos(tt.pos)
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestInput_LineText(t *testing.T) {
	input := source.NewInput("test.rb", []byte("a = 1\r\nx =- y\nlast"))
	var actual []string
	for i := range input.Lines {
		text, ok := input.LineText(i)
		assert.True(t, ok)
		actual = append(actual, text)
	}
	assert.Equal(t, []string{"a = 1", "x =- y", "last"}, actual)

	_, ok := input.LineText(len(input.Lines))
	assert.False(t, ok)
}

func TestSpan(t *testing.T) {
	input := source.NewInput("test.rb", []byte("x =- y\n"))

	span := source.Span{Begin: 3, End: 4}
	assert.Equal(t, 1, span.Size())
	text, ok := span.Source(input)
	assert.True(t, ok)
	assert.Equal(t, "-", text)

	assert.Equal(t, 0, source.Span{Begin: 2, End: 2}.Size())
	_, ok = source.Span{Begin: 5, End: 20}.Source(input)
	assert.False(t, ok)
}

func TestInput_Hash(t *testing.T) {
	a, err := source.NewInput("a.rb", []byte("x =- y\n")).Hash()
	assert.Nil(t, err)
	b, err := source.NewInput("b.rb", []byte("x =- y\n")).Hash()
	assert.Nil(t, err)
	c, err := source.NewInput("a.rb", []byte("x = -y\n")).Hash()
	assert.Nil(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
