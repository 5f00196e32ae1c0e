package rowstore_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/rowstore"
	"github.com/hupe1980/rowstore/index"
	"github.com/hupe1980/rowstore/query"
	"github.com/hupe1980/rowstore/row"
)

func BenchmarkInsert(b *testing.B) {
	b.Run("no index", func(b *testing.B) {
		store := rowstore.New[string](2)
		benchmarkInsert(b, store)
	})

	b.Run("hash index", func(b *testing.B) {
		store := rowstore.New[string](2)
		store.Index(0, index.Hash[string]())
		benchmarkInsert(b, store)
	})

	b.Run("btree index", func(b *testing.B) {
		store := rowstore.New[string](2)
		store.Index(0, index.BTree[string]())
		benchmarkInsert(b, store)
	})
}

func benchmarkInsert(b *testing.B, store *rowstore.Store[string]) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		istr := strconv.Itoa(i)
		store.Insert(row.Slice[string]{istr, istr})
	}
}

func BenchmarkFind(b *testing.B) {
	const size = 10000

	b.Run("scan", func(b *testing.B) {
		store := benchStore(size)
		benchmarkFind(b, store, size)
	})

	b.Run("hash index", func(b *testing.B) {
		store := benchStore(size)
		store.Index(0, index.Hash[string]())
		benchmarkFind(b, store, size)
	})

	b.Run("btree index", func(b *testing.B) {
		store := benchStore(size)
		store.Index(0, index.BTree[string]())
		benchmarkFind(b, store, size)
	})
}

func benchStore(size int) *rowstore.Store[string] {
	store := rowstore.New[string](2)
	for i := 0; i < size; i++ {
		istr := strconv.Itoa(i)
		store.Insert(row.Slice[string]{istr, istr})
	}
	return store
}

func benchmarkFind(b *testing.B, store *rowstore.Store[string], size int) {
	b.ReportAllocs()
	b.ResetTimer()

	var matched int
	for i := 0; i < b.N; i++ {
		for range store.Find(query.Eq(0, strconv.Itoa(i%size))) {
			matched++
		}
	}
	if matched != b.N {
		b.Fatalf("matched %d rows, want %d", matched, b.N)
	}
}

func BenchmarkDelete(b *testing.B) {
	b.ReportAllocs()

	store := rowstore.New[string](2)
	store.Index(0, index.Hash[string]())

	for i := 0; i < b.N; i++ {
		istr := strconv.Itoa(i)
		store.Insert(row.Slice[string]{istr, istr})
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if n := store.Delete(query.Eq(0, strconv.Itoa(i))); n != 1 {
			b.Fatalf("deleted %d rows for key %d, want 1", n, i)
		}
	}
}
