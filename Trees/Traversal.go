package Trees

import (
	"github.com/g-m-twostay/go-bintrees/Queues"
)

// The depth-first walks below recurse once per level of the tree and stop
// as soon as yield returns false. Each returns false iff it was stopped.

func preOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || yield(n.v) && preOrder(n.l, yield) && preOrder(n.r, yield)
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || inOrder(n.l, yield) && yield(n.v) && inOrder(n.r, yield)
}

func postOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || postOrder(n.l, yield) && postOrder(n.r, yield) && yield(n.v)
}

// levelOrder returns f acting like an iterator over the levels of the tree
// rooted at root. Each call to f drains the frontier of one level, left to
// right, and queues the next one. When valid==false f is exhausted, and it
// stays exhausted. The tree must not be modified while f is in use.
// Time: f(): O(width of the level); Space: O(max width)
func levelOrder[T any](root *node[T]) func() ([]T, bool) {
	frontier := Queues.MakeArrayQueue[*node[T]](8)
	if root != nil {
		frontier.Push(root)
	}
	return func() (level []T, valid bool) {
		if frontier.Empty() {
			return nil, false
		}
		level = make([]T, 0, frontier.Size())
		for i := frontier.Size(); i > 0; i-- {
			n, _ := frontier.Pop()
			level = append(level, n.v)
			if n.l != nil {
				frontier.Push(n.l)
			}
			if n.r != nil {
				frontier.Push(n.r)
			}
		}
		return level, true
	}
}

// height counts the levels of the tree rooted at root, minus one. -1 for an
// empty tree. Iterative.
// Time: O(n)
func height[T any](root *node[T]) int {
	d := -1
	for next := levelOrder(root); ; d++ {
		if _, ok := next(); !ok {
			return d
		}
	}
}
