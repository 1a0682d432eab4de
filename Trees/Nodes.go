package Trees

// A node in a binary tree. A nil *node is the absent child.
// Every node is referenced by exactly one parent or by the tree itself.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// minNode of the subtree rooted at n. n mustn't be nil. Recursive.
// Time: O(D)
func minNode[T any](n *node[T]) *node[T] {
	if n.l == nil {
		return n
	}
	return minNode(n.l)
}

// maxNode of the subtree rooted at n. n mustn't be nil. Recursive.
// Time: O(D)
func maxNode[T any](n *node[T]) *node[T] {
	if n.r == nil {
		return n
	}
	return maxNode(n.r)
}
