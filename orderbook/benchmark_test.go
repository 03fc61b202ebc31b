package orderbook

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchmarkInsert(b *testing.B, kind EngineKind) {
	rng := rand.New(rand.NewSource(1))
	s, err := NewSideWithEngine[int](Ask, kind)
	if err != nil {
		b.Fatalf("NewSideWithEngine: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := float64(rng.Intn(10000)) / 100
		s.Insert(i, Order{Price: price, Volume: 1, Timestamp: Timestamp(i)})
	}
}

func BenchmarkInsertDeque(b *testing.B)    { benchmarkInsert(b, EngineDeque) }
func BenchmarkInsertBTree(b *testing.B)    { benchmarkInsert(b, EngineBTree) }
func BenchmarkInsertSkipList(b *testing.B) { benchmarkInsert(b, EngineSkipList) }
func BenchmarkInsertHeap(b *testing.B)     { benchmarkInsert(b, EngineHeap) }

func benchmarkResolveMatches(b *testing.B, kind EngineKind) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		book, err := NewWithEngine[int](kind)
		if err != nil {
			b.Fatalf("NewWithEngine: %v", err)
		}
		for j := 0; j < 1000; j++ {
			book.InsertAsk(j, Order{Price: 100 + float64(rng.Intn(50)), Volume: 1, Timestamp: Timestamp(j)})
			book.InsertBid(-j-1, Order{Price: 100 - float64(rng.Intn(50)), Volume: 1, Timestamp: Timestamp(j)})
		}
		b.StartTimer()
		book.ResolveMatches()
	}
}

func BenchmarkResolveMatchesDeque(b *testing.B)    { benchmarkResolveMatches(b, EngineDeque) }
func BenchmarkResolveMatchesBTree(b *testing.B)    { benchmarkResolveMatches(b, EngineBTree) }
func BenchmarkResolveMatchesSkipList(b *testing.B) { benchmarkResolveMatches(b, EngineSkipList) }
func BenchmarkResolveMatchesHeap(b *testing.B)     { benchmarkResolveMatches(b, EngineHeap) }

func ExampleSide_All() {
	s := NewSide[string](Ask)
	s.Insert("a", Order{Price: 11, Volume: 1})
	s.Insert("b", Order{Price: 10, Volume: 1})
	for k, o := range s.All() {
		fmt.Println(k, o.Price)
	}
	// Output:
	// b 10
	// a 11
}
