// Package syntax defines the closed set of syntax nodes the analyzer inspects.
package syntax

import "github.com/viant/ambiguous/inspector/source"

// Kind represents node kind
type Kind string

const (
	KindSequence    Kind = "sequence"
	KindAssignment  Kind = "assignment"
	KindCall        Kind = "call"
	KindVariableRef Kind = "variable_ref"
	KindOther       Kind = "other"
)

// UnaryMinus is the method name of the negation operator
const UnaryMinus = "-@"

// Node represents a syntax node
type Node interface {
	Kind() Kind
	// Expression returns span of the whole construct
	Expression() source.Span
}

// Sequence represents an ordered list of statements
type Sequence struct {
	Statements []Node
	Span       source.Span
}

// Assignment represents local variable assignment
type Assignment struct {
	Target   string
	Value    Node         // optional
	Operator *source.Span // optional span of "="
	Span     source.Span
}

// Call represents method or operator application
type Call struct {
	Method   string
	Selector *source.Span // optional span of the operator/method token
	Receiver Node         // optional
	Span     source.Span
}

// VariableRef represents a bare local variable reference
type VariableRef struct {
	Name string
	Span source.Span
}

// Other represents any construct not modeled above
type Other struct {
	Type string
	Span source.Span
}

func (n *Sequence) Kind() Kind              { return KindSequence }
func (n *Sequence) Expression() source.Span { return n.Span }

func (n *Assignment) Kind() Kind              { return KindAssignment }
func (n *Assignment) Expression() source.Span { return n.Span }

func (n *Call) Kind() Kind              { return KindCall }
func (n *Call) Expression() source.Span { return n.Span }

func (n *VariableRef) Kind() Kind              { return KindVariableRef }
func (n *VariableRef) Expression() source.Span { return n.Span }

func (n *Other) Kind() Kind              { return KindOther }
func (n *Other) Expression() source.Span { return n.Span }
