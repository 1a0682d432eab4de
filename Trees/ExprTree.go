package Trees

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

var _ Traversable[rune] = (*ExprTree)(nil)

// ExprTree is a binary expression tree. Leaves hold operands and inner
// nodes hold binary operators. It's fixed once built.
type ExprTree struct {
	root *node[rune]
	sz   uint
}

// IsOperand reports whether r is read as an operand by ParsePostfix: an
// ASCII letter or digit. Everything else except separators is an operator.
func IsOperand(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t'
}

// ParsePostfix builds the tree of a postfix expression with one rune per
// token, e.g. "ab+c*". Spaces and tabs are skipped. An operand pushes a
// leaf onto a working stack; an operator pops the right then the left
// subtree and pushes the combined tree. Returns *MalformedExpressionError
// if an operator finds fewer than two subtrees, or if the scan doesn't end
// with exactly one tree.
// Time: O(n)
func ParsePostfix(expr string) (*ExprTree, error) {
	st := arraystack.New()
	var sz uint
	for i, r := range expr {
		if isSeparator(r) {
			continue
		}
		n := &node[rune]{v: r}
		if !IsOperand(r) {
			if st.Size() < 2 {
				return nil, &MalformedExpressionError{i, r, ReasonUnderflow}
			}
			rt, _ := st.Pop()
			lt, _ := st.Pop()
			n.l, n.r = lt.(*node[rune]), rt.(*node[rune])
		}
		st.Push(n)
		sz++
	}
	switch st.Size() {
	case 0:
		return nil, &MalformedExpressionError{len(expr), 0, ReasonNoOperand}
	case 1:
		root, _ := st.Pop()
		return &ExprTree{root.(*node[rune]), sz}, nil
	default:
		return nil, &MalformedExpressionError{len(expr), 0, ReasonLeftover}
	}
}

// FromTraversals rebuilds a tree from its pre-order and in-order renderings.
// Every rune must be distinct, otherwise the tree isn't unique and
// *TraversalMismatchError is returned, as it is for renderings of different
// trees.
// Time: O(n)
func FromTraversals(pre, in string) (*ExprTree, error) {
	root, err := rebuild([]rune(pre), []rune(in))
	if err != nil {
		return nil, err
	}
	return &ExprTree{root, uint(len([]rune(in)))}, nil
}

// rebuild the tree with pre-order pre and in-order in. Recursive.
func rebuild[T comparable](pre, in []T) (*node[T], error) {
	if len(pre) != len(in) {
		return nil, &TraversalMismatchError{fmt.Sprintf("lengths %d and %d differ", len(pre), len(in))}
	}
	pos := make(map[T]int, len(in))
	for i, v := range in {
		if _, dup := pos[v]; dup {
			return nil, &TraversalMismatchError{fmt.Sprintf("%v repeats", v)}
		}
		pos[v] = i
	}
	//p is the pre-order of the subtree whose in-order is in[lo:lo+len(p)].
	var build func(p []T, lo int) (*node[T], error)
	build = func(p []T, lo int) (*node[T], error) {
		if len(p) == 0 {
			return nil, nil
		}
		k, ok := pos[p[0]]
		if !ok || k < lo || k >= lo+len(p) {
			return nil, &TraversalMismatchError{fmt.Sprintf("%v is out of place", p[0])}
		}
		n, ls := &node[T]{v: p[0]}, k-lo
		var err error
		if n.l, err = build(p[1:1+ls], lo); err != nil {
			return nil, err
		}
		if n.r, err = build(p[1+ls:], k+1); err != nil {
			return nil, err
		}
		return n, nil
	}
	return build(pre, 0)
}

// Size is the number of operands and operators.
func (u *ExprTree) Size() uint {
	return u.sz
}

// Height of the tree, 0 for a single operand.
func (u *ExprTree) Height() int {
	return height(u.root)
}

// PreOrder [Traversable.PreOrder]. Recursive.
func (u *ExprTree) PreOrder() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		preOrder(u.root, yield)
	}
}

// InOrder [Traversable.InOrder]. Recursive.
func (u *ExprTree) InOrder() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		inOrder(u.root, yield)
	}
}

// PostOrder [Traversable.PostOrder]. Recursive.
// This is the postfix expression without separators.
func (u *ExprTree) PostOrder() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		postOrder(u.root, yield)
	}
}

// LevelOrder [Traversable.LevelOrder]
func (u *ExprTree) LevelOrder() func() ([]rune, bool) {
	return levelOrder(u.root)
}

// String is the in-order rendering, which drops the grouping of the
// operands, e.g. "a+b*c".
func (u *ExprTree) String() string {
	var sb strings.Builder
	for r := range u.InOrder() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Parenthesized renders the infix expression with every operator and its
// operands in parentheses, e.g. "((a+b)*c)". Recursive.
func (u *ExprTree) Parenthesized() string {
	var sb strings.Builder
	var write func(*node[rune])
	write = func(n *node[rune]) {
		if n == nil {
			return
		} else if n.l == nil && n.r == nil {
			sb.WriteRune(n.v)
			return
		}
		sb.WriteByte('(')
		write(n.l)
		sb.WriteRune(n.v)
		write(n.r)
		sb.WriteByte(')')
	}
	write(u.root)
	return sb.String()
}
