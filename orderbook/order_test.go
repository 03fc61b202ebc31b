package orderbook

import (
	"math"
	"testing"
)

func TestOrderCost(t *testing.T) {
	o := Order{Price: 10, Volume: 2.5}
	if got := o.Cost(); got != 25 {
		t.Errorf("Cost() = %v, want 25", got)
	}
}

func TestValidPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  bool
	}{
		{10, true},
		{0, true},
		{-5, true},
		{nan(), false},
		{math.Inf(1), false},
	}
	for _, c := range cases {
		if got := validPrice(c.price); got != c.want {
			t.Errorf("validPrice(%v) = %v, want %v", c.price, got, c.want)
		}
	}
}

func TestValidRestingVolume(t *testing.T) {
	cases := []struct {
		volume float64
		want   bool
	}{
		{1, true},
		{0.0001, true},
		{0, false},
		{-1, false},
		{nan(), false},
	}
	for _, c := range cases {
		if got := validRestingVolume(c.volume); got != c.want {
			t.Errorf("validRestingVolume(%v) = %v, want %v", c.volume, got, c.want)
		}
	}
}
