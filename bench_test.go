package bst

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/openacid/testkeys"
	"github.com/petar/GoLLRB/llrb"
)

const benchN = 100000

var sideEff *Node

func randomKeys(n int) []Key {
	rnd := rand.New(rand.NewSource(0))
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = Key(rnd.Int())
	}
	return keys
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, keys []Key)) {
	for _, fn := range testkeys.AssetNames() {
		keys := hashedKeys(fn)
		if len(keys) < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func BenchmarkWordsTreeInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []Key) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			tree := New()
			for _, k := range keys {
				tree.Insert(k)
			}
		}
	})
}

func BenchmarkWordsTreeSearch(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []Key) {
		tree := New()
		for _, k := range keys {
			tree.Insert(k)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			sideEff = tree.Search(keys[i%len(keys)])
		}
	})
}

func BenchmarkInsert(b *testing.B) {
	keys := randomKeys(benchN)
	b.Run("bst", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := New()
			for _, k := range keys {
				tree.Insert(k)
			}
		}
	})
	b.Run("llrb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := llrb.New()
			for _, k := range keys {
				tree.InsertNoReplace(llrb.Int(k))
			}
		}
	})
	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := btree.NewOrderedG[Key](32)
			for _, k := range keys {
				tree.ReplaceOrInsert(k)
			}
		}
	})
}

func BenchmarkDelete(b *testing.B) {
	keys := randomKeys(benchN)
	b.Run("bst", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			tree := New()
			for _, k := range keys {
				tree.Insert(k)
			}
			b.StartTimer()
			for _, k := range keys {
				tree.Delete(k)
			}
		}
	})
	b.Run("llrb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			tree := llrb.New()
			for _, k := range keys {
				tree.InsertNoReplace(llrb.Int(k))
			}
			b.StartTimer()
			for _, k := range keys {
				tree.Delete(llrb.Int(k))
			}
		}
	})
}

func BenchmarkSuccessorChain(b *testing.B) {
	tree := New()
	for _, k := range randomKeys(benchN) {
		tree.Insert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for n := tree.Minimum(); n != nil; n = n.Successor() {
			sideEff = n
		}
	}
}
