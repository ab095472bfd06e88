package ruby

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/viant/ambiguous/inspector/source"
	"github.com/viant/ambiguous/inspector/syntax"
)

// File represents parse result, Tree is nil when the source could not be parsed
type File struct {
	Tree  syntax.Node
	Input *source.Input
}

// Inspector parses Ruby source with tree-sitter and adapts it into syntax nodes
type Inspector struct {
	language *sitter.Language
}

// NewInspector creates a new Ruby Inspector
func NewInspector() *Inspector {
	return &Inspector{language: ruby.GetLanguage()}
}

// InspectSource parses Ruby source code, name is used as the input display name
func (i *Inspector) InspectSource(ctx context.Context, name string, src []byte) (*File, error) {
	file := &File{Input: source.NewInput(name, src)}

	parser := sitter.NewParser()
	parser.SetLanguage(i.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if tree == nil {
		return file, nil
	}
	rootNode := tree.RootNode()
	if rootNode == nil || rootNode.HasError() {
		return file, nil
	}
	file.Tree = adapt(rootNode, src)
	return file, nil
}

// adapt maps tree-sitter node onto syntax node, only constructs relevant to analysis are descended into
func adapt(node *sitter.Node, src []byte) syntax.Node {
	switch node.Type() {
	case "program":
		return adaptSequence(node, src)
	case "assignment":
		return adaptAssignment(node, src)
	case "unary":
		return adaptUnary(node, src)
	case "identifier":
		return &syntax.VariableRef{Name: node.Content(src), Span: spanOf(node)}
	}
	return other(node)
}

func adaptSequence(node *sitter.Node, src []byte) syntax.Node {
	sequence := &syntax.Sequence{Span: spanOf(node)}
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "comment", "empty_statement":
			continue
		}
		sequence.Statements = append(sequence.Statements, adapt(child, src))
	}
	return sequence
}

func adaptAssignment(node *sitter.Node, src []byte) syntax.Node {
	left := node.ChildByFieldName("left")
	if left == nil || left.Type() != "identifier" {
		return other(node)
	}
	assignment := &syntax.Assignment{
		Target: left.Content(src),
		Span:   spanOf(node),
	}
	if right := node.ChildByFieldName("right"); right != nil {
		assignment.Value = adapt(right, src)
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if !child.IsNamed() && child.Type() == "=" {
			operator := spanOf(child)
			assignment.Operator = &operator
			break
		}
	}
	return assignment
}

func adaptUnary(node *sitter.Node, src []byte) syntax.Node {
	call := &syntax.Call{Span: spanOf(node)}
	if operator := node.ChildByFieldName("operator"); operator != nil {
		call.Method = methodName(operator.Type())
		selector := spanOf(operator)
		call.Selector = &selector
	}
	if operand := node.ChildByFieldName("operand"); operand != nil {
		call.Receiver = adapt(operand, src)
	}
	return call
}

// methodName returns Ruby method name of a unary operator token
func methodName(operator string) string {
	switch operator {
	case "-":
		return syntax.UnaryMinus
	case "+":
		return "+@"
	case "not":
		return "!"
	}
	return operator
}

func other(node *sitter.Node) syntax.Node {
	return &syntax.Other{Type: node.Type(), Span: spanOf(node)}
}

func spanOf(node *sitter.Node) source.Span {
	return source.Span{Begin: int(node.StartByte()), End: int(node.EndByte())}
}
