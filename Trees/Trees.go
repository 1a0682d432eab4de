package Trees

import "iter"

// Traversable is a binary tree that can be walked in the usual orders.
// The depth-first orders are implemented recursively and yield lazily;
// breaking out of the range loop ends the walk. The tree must not be
// modified during a traversal.
type Traversable[T any] interface {
	//PreOrder visits the node, then its left and right subtrees.
	PreOrder() iter.Seq[T]
	//InOrder visits the left subtree, the node, then the right subtree.
	InOrder() iter.Seq[T]
	//PostOrder visits the left and right subtrees, then the node.
	PostOrder() iter.Seq[T]
	//LevelOrder returns A closure function f acting like an iterator over
	//the levels of the tree, root first. Each call gives the elements of
	//one level from left to right: level, valid=f(). When valid==false,
	//then f is exhausted, and valid can't turn true after it first became
	//false. Call LevelOrder again for a fresh traversal.
	LevelOrder() func() ([]T, bool)
}

// Tree represents an ordered binary tree without repeated values.
// Receivers that have A bool as A second return value indicate whether
// the first return value is defined. Receivers returning an error fail
// with *EmptyTreeError on an empty tree.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	Traversable[T]
	//Insert v to the Tree. Returns true if v wasn't in the tree before.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was in the tree.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Empty is true iff the tree has no root.
	Empty() bool
	//Clear discards every element.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of that specific implementation.
	Corrupt() bool
}
