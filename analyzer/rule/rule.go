// Package rule detects ambiguous constructs in adapted syntax trees.
package rule

import (
	"github.com/viant/ambiguous/analyzer/diagnostic"
	"github.com/viant/ambiguous/inspector/syntax"
)

// AmbiguousAssignmentMessage is reported for `x =- y`
const AmbiguousAssignmentMessage = "warning: ambiguous assignment"

// Rule inspects a file root and returns findings in source order
type Rule func(root syntax.Node) []diagnostic.Finding

// Default returns rules applied by the analyzer
func Default() []Rule {
	return []Rule{AmbiguousAssignment}
}

// AmbiguousAssignment flags top-level `target =- var`: the assignment operator touches the
// unary minus while the operand is separated from it, which reads as subtraction
func AmbiguousAssignment(root syntax.Node) []diagnostic.Finding {
	sequence, ok := root.(*syntax.Sequence)
	if !ok {
		return nil
	}
	var findings []diagnostic.Finding
	for _, statement := range sequence.Statements {
		if finding, ok := matchAmbiguousAssignment(statement); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}

func matchAmbiguousAssignment(statement syntax.Node) (diagnostic.Finding, bool) {
	assignment, ok := statement.(*syntax.Assignment)
	if !ok || assignment.Value == nil || assignment.Operator == nil {
		return diagnostic.Finding{}, false
	}
	call, ok := matchUnaryMinus(assignment.Value)
	if !ok || assignment.Operator.End != call.Selector.Begin {
		return diagnostic.Finding{}, false
	}
	variable, ok := call.Receiver.(*syntax.VariableRef)
	if !ok {
		return diagnostic.Finding{}, false
	}
	if call.Selector.End >= variable.Expression().Begin {
		return diagnostic.Finding{}, false
	}
	return diagnostic.Finding{Span: *call.Selector, Message: AmbiguousAssignmentMessage}, true
}

// matchUnaryMinus returns negation call with both selector and receiver present
func matchUnaryMinus(node syntax.Node) (*syntax.Call, bool) {
	call, ok := node.(*syntax.Call)
	if !ok || call.Selector == nil || call.Receiver == nil {
		return nil, false
	}
	return call, call.Method == syntax.UnaryMinus
}
