package Trees

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*BST[int])(nil)

// BST is an unbalanced binary search tree with no repeated values. The
// shape depends only on the order of insertions and removals, so the
// height D is O(n) in the worst case, e.g. when inserting sorted values.
// Methods without a suffix are iterative; the Rec variants recurse once
// per level and give the same results.
// The zero value isn't usable, create it with New, NewFunc or Build.
// A BST isn't safe for concurrent use.
type BST[T any] struct {
	root *node[T]
	sz   uint
	cmp  func(T, T) int // <0, 0, >0 for less, equal, greater.
}

// New returns an empty BST ordered by cmp.Compare.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty BST ordered by compare, which must be a strict
// total order returning a negative number, zero, or a positive number.
func NewFunc[T any](compare func(a, b T) int) *BST[T] {
	return &BST[T]{cmp: compare}
}

// Build a height balanced BST from the given slice, which must be strictly
// ascending, otherwise *InvalidSliceError is returned. This is faster than
// repeatedly calling Insert.
// Time: O(n)
func Build[T constraints.Ordered](sli []T) (*BST[T], error) {
	for i := 1; i < len(sli); i++ {
		if cmp.Compare(sli[i-1], sli[i]) >= 0 {
			return nil, &InvalidSliceError{i - 1, sli[i-1], sli[i]}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BST[T]{build(sli), uint(len(sli)), cmp.Compare[T]}, nil
}

// Size returns the number of elements.
// Time: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Clear [Tree.Clear]
// Time: O(1)
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Height of the tree, the number of edges on the longest root to leaf
// path. -1 for an empty tree.
// Time: O(n)
func (u *BST[T]) Height() int {
	return height(u.root)
}

// Insert [Tree.Insert]
// Walks down the child slots and attaches a new leaf.
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c == 0 {
			return false
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T]{v: v}
	u.sz++
	return true
}

// insert the value v to the subtree rooting at cur recursively. Returns the
// new root of the subtree and whether v was added.
func (u *BST[T]) insert(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return &node[T]{v: v}, true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l, inserted = u.insert(cur.l, v)
	} else if c > 0 {
		cur.r, inserted = u.insert(cur.r, v)
	}
	return cur, inserted
}

// InsertRec [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D); Space: O(D)
func (u *BST[T]) InsertRec(v T) bool {
	var inserted bool
	if u.root, inserted = u.insert(u.root, v); inserted {
		u.sz++
	}
	return inserted
}

// Remove [Tree.Remove]
// A node with two children takes the minimum of its right subtree, which
// is then unlinked in place; otherwise the node is replaced by its only
// child, if any.
// Time: O(D); Space: O(1)
func (u *BST[T]) Remove(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c > 0 {
			curPtr = &cur.r
		} else {
			if cur.l == nil {
				*curPtr = cur.r
			} else if cur.r == nil {
				*curPtr = cur.l
			} else {
				t := &cur.r
				for (*t).l != nil {
					t = &(*t).l
				}
				cur.v = (*t).v
				*t = (*t).r
			}
			u.sz--
			return true
		}
	}
	return false
}

// remove an element v from the subtree rooting at cur recursively. Returns
// the new root of the subtree and whether v was removed.
func (u *BST[T]) remove(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l, removed = u.remove(cur.l, v)
	} else if c > 0 {
		cur.r, removed = u.remove(cur.r, v)
	} else if cur.l != nil && cur.r != nil {
		cur.v = minNode(cur.r).v
		cur.r, _ = u.remove(cur.r, cur.v)
		removed = true
	} else if cur.l != nil {
		return cur.l, true
	} else {
		return cur.r, true
	}
	return cur, removed
}

// RemoveRec [Tree.Remove]. Recursive.
// It is a wrapper for remove. The links on the search path are rebuilt
// instead of mutated in place, the resulting in-order is the same as Remove.
// Time: O(D); Space: O(D)
func (u *BST[T]) RemoveRec(v T) bool {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.sz--
	}
	return removed
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

func (u *BST[T]) has(cur *node[T], v T) bool {
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.has(cur.l, v)
	} else if c > 0 {
		return u.has(cur.r, v)
	}
	return true
}

// HasRec [Tree.Has]. Recursive.
// Time: O(D); Space: O(D)
func (u *BST[T]) HasRec(v T) bool {
	return u.has(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), &EmptyTreeError{"Minimum"}
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, nil
}

// MinimumRec [Tree.Minimum]. Recursive.
// Time: O(D); Space: O(D)
func (u *BST[T]) MinimumRec() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Minimum"}
	}
	return minNode(u.root).v, nil
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), &EmptyTreeError{"Maximum"}
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, nil
}

// MaximumRec [Tree.Maximum]. Recursive.
// Time: O(D); Space: O(D)
func (u *BST[T]) MaximumRec() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Maximum"}
	}
	return maxNode(u.root).v, nil
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (r T, has bool) {
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			r, has = cur.v, true
			cur = cur.r
		}
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (r T, has bool) {
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			r, has = cur.v, true
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// Corrupt [Tree.Corrupt]
// Also reports a mismatch between Size and the number of nodes.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	var prev T
	var n uint
	for v := range u.InOrder() {
		if n > 0 && u.cmp(prev, v) >= 0 {
			return true
		}
		prev = v
		n++
	}
	return n != u.sz
}

// PreOrder [Traversable.PreOrder]. Recursive.
func (u *BST[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrder(u.root, yield)
	}
}

// InOrder [Traversable.InOrder]. Recursive.
// The elements come in ascending order.
func (u *BST[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(u.root, yield)
	}
}

// PostOrder [Traversable.PostOrder]. Recursive.
func (u *BST[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(u.root, yield)
	}
}

// LevelOrder [Traversable.LevelOrder]
// Time: f(): O(width of the level); Space: O(max width)
func (u *BST[T]) LevelOrder() func() ([]T, bool) {
	return levelOrder(u.root)
}
