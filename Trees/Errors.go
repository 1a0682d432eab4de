package Trees

import "fmt"

// EmptyTreeError is returned by queries that need at least one element.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// Reasons carried by MalformedExpressionError.
const (
	ReasonUnderflow = "operator needs two operands"
	ReasonNoOperand = "expression has no operands"
	ReasonLeftover  = "operands left without an operator"
)

// MalformedExpressionError reports a postfix string that doesn't describe
// exactly one tree. Pos is the byte offset of Token in the input; for
// ReasonNoOperand and ReasonLeftover, Pos is the input length and Token is 0.
type MalformedExpressionError struct {
	Pos    int
	Token  rune
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	if e.Token == 0 {
		return fmt.Sprintf("malformed postfix expression at %d: %s", e.Pos, e.Reason)
	}
	return fmt.Sprintf("malformed postfix expression at %d (%q): %s", e.Pos, e.Token, e.Reason)
}

// InvalidSliceError is returned by Build when the slice isn't strictly
// ascending. Prev is at Index, Next at Index+1.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v, %v", e.Index, e.Prev, e.Next)
}

// TraversalMismatchError is returned when a pair of traversals can't
// describe the same tree of distinct elements.
type TraversalMismatchError struct {
	Reason string
}

func (e *TraversalMismatchError) Error() string {
	return "traversals don't match: " + e.Reason
}
