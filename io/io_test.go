package io

import (
	"testing"

	"github.com/openalpha/orderbook/orderbook"
)

func TestParseOrderbookRoutesBySideToken(t *testing.T) {
	book, err := ParseOrderbook("a; a1; 10; 15\nb; b1; 15; 20\na; a2; 3.5; 10.1")
	if err != nil {
		t.Fatalf("ParseOrderbook: %v", err)
	}

	dir, a1, ok := book.Get("a1")
	if !ok || dir != orderbook.Ask {
		t.Fatalf("a1 dir/ok = %v/%v, want Ask/true", dir, ok)
	}
	if a1.Volume != 10 || a1.Price != 15 {
		t.Errorf("a1 = %+v, want volume 10 price 15", a1)
	}

	dir, b1, ok := book.Get("b1")
	if !ok || dir != orderbook.Bid {
		t.Fatalf("b1 dir/ok = %v/%v, want Bid/true", dir, ok)
	}
	if b1.Volume != 15 || b1.Price != 20 {
		t.Errorf("b1 = %+v, want volume 15 price 20", b1)
	}

	_, a2, ok := book.Get("a2")
	if !ok {
		t.Fatalf("a2 not found")
	}
	if a2.Volume != 3.5 || a2.Price != 10.1 {
		t.Errorf("a2 = %+v, want volume 3.5 price 10.1", a2)
	}
}

func TestParseOrderbookTimestampsAreSequentialAcrossWholeStream(t *testing.T) {
	book, err := ParseOrderbook("a; a1; 10; 15\nb; b1; 15; 20\na; a2; 3.5; 10.1")
	if err != nil {
		t.Fatalf("ParseOrderbook: %v", err)
	}

	_, a1, _ := book.Get("a1")
	_, b1, _ := book.Get("b1")
	_, a2, _ := book.Get("a2")

	if a1.Timestamp != 0 {
		t.Errorf("a1.Timestamp = %d, want 0", a1.Timestamp)
	}
	if b1.Timestamp != 1 {
		t.Errorf("b1.Timestamp = %d, want 1 (sequential across the whole stream, not per-side)", b1.Timestamp)
	}
	if a2.Timestamp != 2 {
		t.Errorf("a2.Timestamp = %d, want 2", a2.Timestamp)
	}
}

func TestParseOrderbookRejectsUnknownSideToken(t *testing.T) {
	if _, err := ParseOrderbook("x; a1; 10; 15"); err == nil {
		t.Fatalf("expected a fatal error for an unrecognized side token")
	}
}

func TestParseOrderbookRejectsMalformedLine(t *testing.T) {
	if _, err := ParseOrderbook("a; a1; 10"); err == nil {
		t.Fatalf("expected an error for a line missing a field")
	}
}

func TestParseOrderbookRejectsDuplicateKey(t *testing.T) {
	if _, err := ParseOrderbook("a; k; 1; 10\nb; k; 1; 9"); err == nil {
		t.Fatalf("expected an error for a key already resting on the book")
	}
}

func TestFormatSide(t *testing.T) {
	book, err := ParseOrderbook("b; a; 5; 10\nb; b; 15; 20\nb; c; 3.5; 10.1")
	if err != nil {
		t.Fatalf("ParseOrderbook: %v", err)
	}

	got := FormatSide(book.Bids())
	want := "bid\n15\t@\t20\n3.5\t@\t10.1\n5\t@\t10\n"
	if got != want {
		t.Errorf("FormatSide =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatBook(t *testing.T) {
	book, err := ParseOrderbook("a; a1; 3; 10\na; a2; 4; 11\nb; b1; 5; 9")
	if err != nil {
		t.Fatalf("ParseOrderbook: %v", err)
	}

	if book.Asks().Len() != 2 {
		t.Errorf("asks len = %d, want 2", book.Asks().Len())
	}
	if book.Bids().Len() != 1 {
		t.Errorf("bids len = %d, want 1", book.Bids().Len())
	}

	out := FormatBook(book)
	if out == "" {
		t.Errorf("FormatBook returned empty output")
	}
}
