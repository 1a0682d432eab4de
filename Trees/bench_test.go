package Trees

import (
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bSize = 1 << 15
)

// Random insertion order keeps the unbalanced tree's height near 2ln(n),
// comparable with the balanced trees below.

func BenchmarkBST_Insert(b *testing.B) {
	for range b.N {
		t := New[int]()
		for _, j := range rg.Perm(bSize) {
			t.Insert(j)
		}
	}
}

func BenchmarkBST_InsertRec(b *testing.B) {
	for range b.N {
		t := New[int]()
		for _, j := range rg.Perm(bSize) {
			t.InsertRec(j)
		}
	}
}

func BenchmarkBST_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := New[int]()
		for _, j := range rg.Perm(bSize) {
			t.Insert(j)
		}
		order := rg.Perm(bSize)
		b.StartTimer()
		for _, j := range order {
			t.Remove(j)
		}
	}
}

func BenchmarkBST_RemoveRec(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := New[int]()
		for _, j := range rg.Perm(bSize) {
			t.Insert(j)
		}
		order := rg.Perm(bSize)
		b.StartTimer()
		for _, j := range order {
			t.RemoveRec(j)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
	}
}

func BenchmarkBST_LevelOrder(b *testing.B) {
	t := New[int]()
	for _, j := range rg.Perm(bSize) {
		t.Insert(j)
	}
	b.ResetTimer()
	for range b.N {
		for next := t.LevelOrder(); ; {
			if _, ok := next(); !ok {
				break
			}
		}
	}
}
