package orderbook

import "testing"

func ringToSlice(r *ringDeque[int]) []int {
	out := make([]int, r.Len())
	for i := 0; i < r.Len(); i++ {
		out[i] = r.At(i)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRingDequePushAndAt(t *testing.T) {
	var r ringDeque[int]
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	r.PushFront(0)

	got := ringToSlice(&r)
	want := []int{0, 1, 2, 3}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRingDequeInsertAtMiddle(t *testing.T) {
	var r ringDeque[int]
	for _, v := range []int{10, 20, 40} {
		r.PushBack(v)
	}
	r.InsertAt(2, 30)

	got := ringToSlice(&r)
	want := []int{10, 20, 30, 40}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRingDequeInsertAtHeadAndTail(t *testing.T) {
	var r ringDeque[int]
	r.InsertAt(0, 5)
	r.InsertAt(0, 1)
	r.InsertAt(r.Len(), 9)

	got := ringToSlice(&r)
	want := []int{1, 5, 9}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRingDequeRemoveAt(t *testing.T) {
	var r ringDeque[int]
	for _, v := range []int{1, 2, 3, 4} {
		r.PushBack(v)
	}

	r.RemoveAt(1) // drop the 2
	got := ringToSlice(&r)
	want := []int{1, 3, 4}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	r.RemoveAt(2) // drop the trailing 4
	got = ringToSlice(&r)
	want = []int{1, 3}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRingDequePopFront(t *testing.T) {
	var r ringDeque[int]
	for _, v := range []int{1, 2, 3} {
		r.PushBack(v)
	}

	v, ok := r.PopFront()
	if !ok || v != 1 {
		t.Fatalf("PopFront = %d, %v, want 1, true", v, ok)
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
}

func TestRingDequeWrapsAfterChurn(t *testing.T) {
	var r ringDeque[int]
	for _, v := range []int{1, 2, 3, 4} {
		r.PushBack(v)
	}
	r.PopFront()
	r.PopFront()
	r.PushBack(5)
	r.PushBack(6)

	got := ringToSlice(&r)
	want := []int{3, 4, 5, 6}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v (internal buffer should have wrapped)", got, want)
	}

	first, second := r.Segments()
	if len(first)+len(second) != 4 {
		t.Fatalf("segments %v / %v do not sum to 4 entries", first, second)
	}
}

func TestDequeUpperBoundAcrossWrappedSegments(t *testing.T) {
	var r ringDeque[int]
	for _, v := range []int{10, 20, 30, 40} {
		r.PushBack(v)
	}
	r.PopFront()
	r.PopFront()
	r.PushBack(50)
	r.PushBack(60) // buffer now wraps: logical order 30,40,50,60

	first, second := r.Segments()
	isWorse := func(v int) bool { return v > 45 }
	pos := dequeUpperBound(first, second, isWorse)
	if pos != 2 {
		t.Fatalf("dequeUpperBound = %d, want 2 (first index where value > 45)", pos)
	}
}
